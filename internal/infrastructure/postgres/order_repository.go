package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/pedidos-api/internal/domain/entity"
	"github.com/jhoicas/pedidos-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implementación del puerto OrderRepository sobre PostgreSQL (usable con pool o tx).
// order_items.product_id no lleva FK: eliminar un producto del catálogo no rompe
// el histórico de pedidos; la referencia se resuelve con LEFT JOIN.
type OrderRepo struct {
	q Querier
}

// NewOrderRepository construye el adaptador de persistencia para pedidos. Pasar pool o tx (Querier).
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

// Create persiste el pedido y sus líneas; asigna los IDs generados.
// Debe llamarse dentro de una transacción (TxRunner) junto con el ajuste de stock.
func (r *OrderRepo) Create(order *entity.Order) error {
	query := `
		INSERT INTO orders (customer_id, date, status, total)
		VALUES ($1, $2, $3, $4)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		order.CustomerID, order.Date, order.Status, order.Total,
	).Scan(&order.ID)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}
	for i := range order.Items {
		item := &order.Items[i]
		item.OrderID = order.ID
		err := r.q.QueryRow(context.Background(),
			`INSERT INTO order_items (order_id, product_id, quantity, subtotal)
			 VALUES ($1, $2, $3, $4)
			 RETURNING id`,
			item.OrderID, item.ProductID, item.Quantity, item.Subtotal,
		).Scan(&item.ID)
		if err != nil {
			return fmt.Errorf("insert order item: %w", err)
		}
	}
	return nil
}

// GetByID obtiene el pedido con el cliente resuelto (sin líneas).
func (r *OrderRepo) GetByID(id int64) (*entity.Order, error) {
	query := `
		SELECT o.id, o.customer_id, o.date, o.status, o.total,
		       u.id, u.name, u.email, u.role
		FROM orders o
		JOIN users u ON u.id = o.customer_id
		WHERE o.id = $1`
	var o entity.Order
	var u entity.User
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&o.ID, &o.CustomerID, &o.Date, &o.Status, &o.Total,
		&u.ID, &u.Name, &u.Email, &u.Role,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	o.Customer = &u
	return &o, nil
}

// GetWithItems obtiene el pedido con cliente, líneas y referencias de producto.
// El producto de una línea puede venir nil si fue eliminado del catálogo.
func (r *OrderRepo) GetWithItems(id int64) (*entity.Order, error) {
	order, err := r.GetByID(id)
	if err != nil || order == nil {
		return order, err
	}
	query := `
		SELECT i.id, i.order_id, i.product_id, i.quantity, i.subtotal,
		       p.id, p.name, p.price, p.stock
		FROM order_items i
		LEFT JOIN products p ON p.id = i.product_id
		WHERE i.order_id = $1
		ORDER BY i.id`
	rows, err := r.q.Query(context.Background(), query, id)
	if err != nil {
		return nil, fmt.Errorf("list order items: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var it entity.OrderItem
		// Columnas del producto en punteros: el LEFT JOIN las deja NULL si fue eliminado
		var pid *int64
		var pname *string
		var pprice *decimal.Decimal
		var pstock *int
		if err := rows.Scan(&it.ID, &it.OrderID, &it.ProductID, &it.Quantity, &it.Subtotal,
			&pid, &pname, &pprice, &pstock); err != nil {
			return nil, fmt.Errorf("scan order item: %w", err)
		}
		if pid != nil {
			it.Product = &entity.Product{ID: *pid, Name: *pname, Price: *pprice, Stock: *pstock}
		}
		order.Items = append(order.Items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return order, nil
}

// List devuelve los pedidos más recientes primero (por fecha), con cliente resuelto.
func (r *OrderRepo) List(limit, offset int) ([]*entity.Order, error) {
	query := `
		SELECT o.id, o.customer_id, o.date, o.status, o.total,
		       u.id, u.name, u.email, u.role
		FROM orders o
		JOIN users u ON u.id = o.customer_id
		ORDER BY o.date DESC
		LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()
	var list []*entity.Order
	for rows.Next() {
		var o entity.Order
		var u entity.User
		if err := rows.Scan(&o.ID, &o.CustomerID, &o.Date, &o.Status, &o.Total,
			&u.ID, &u.Name, &u.Email, &u.Role); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		o.Customer = &u
		list = append(list, &o)
	}
	return list, rows.Err()
}

// UpdateStatus actualiza el estado del pedido.
func (r *OrderRepo) UpdateStatus(id int64, status string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE orders SET status = $2 WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("update order status: %w", err)
	}
	return nil
}

// Delete elimina el pedido y sus líneas (cascada explícita, misma transacción).
func (r *OrderRepo) Delete(id int64) error {
	if _, err := r.q.Exec(context.Background(),
		`DELETE FROM order_items WHERE order_id = $1`, id); err != nil {
		return fmt.Errorf("delete order items: %w", err)
	}
	if _, err := r.q.Exec(context.Background(),
		`DELETE FROM orders WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete order: %w", err)
	}
	return nil
}

// CountByCustomer cuenta pedidos de un usuario.
func (r *OrderRepo) CountByCustomer(customerID int64) (int, error) {
	var count int
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM orders WHERE customer_id = $1`, customerID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count orders by customer: %w", err)
	}
	return count, nil
}

package repository

import "github.com/jhoicas/pedidos-api/internal/domain/entity"

// OrderRepository define el puerto de persistencia para Order y sus líneas (DIP).
// El pedido es dueño exclusivo de sus OrderItems: Delete elimina en cascada.
type OrderRepository interface {
	// Create persiste el pedido y sus líneas; asigna los IDs generados.
	Create(order *entity.Order) error
	// GetByID obtiene el pedido con el cliente resuelto (sin líneas).
	GetByID(id int64) (*entity.Order, error)
	// GetWithItems obtiene el pedido con cliente, líneas y referencias de producto.
	GetWithItems(id int64) (*entity.Order, error)
	// List devuelve los pedidos más recientes primero (por fecha), con cliente resuelto.
	List(limit, offset int) ([]*entity.Order, error)
	UpdateStatus(id int64, status string) error
	Delete(id int64) error
	// CountByCustomer cuenta pedidos de un usuario (bloquea la eliminación de usuarios con pedidos).
	CountByCustomer(customerID int64) (int, error)
}

package orders

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/pedidos-api/internal/application/dto"
	"github.com/jhoicas/pedidos-api/internal/domain"
	"github.com/jhoicas/pedidos-api/internal/domain/entity"
	"github.com/jhoicas/pedidos-api/internal/domain/repository"
)

// OrderUseCase motor de pedidos: creación con decremento atómico de stock,
// cambios de estado con grafo de transiciones y eliminación con devolución de stock.
// Toda mutación de stock ocurre bajo bloqueo de fila (SELECT FOR UPDATE) dentro
// de una transacción; un commit fallido nunca queda aplicado a medias.
type OrderUseCase struct {
	txRunner    TxRunner
	orderRepo   repository.OrderRepository
	userRepo    repository.UserRepository
	productRepo repository.ProductRepository
}

// NewOrderUseCase construye el motor de pedidos.
func NewOrderUseCase(
	txRunner TxRunner,
	orderRepo repository.OrderRepository,
	userRepo repository.UserRepository,
	productRepo repository.ProductRepository,
) *OrderUseCase {
	return &OrderUseCase{
		txRunner:    txRunner,
		orderRepo:   orderRepo,
		userRepo:    userRepo,
		productRepo: productRepo,
	}
}

// Create crea un pedido con una línea de producto.
// Valida cliente y producto, y dentro de una transacción: bloquea la fila del
// producto, verifica stock suficiente, inserta pedido + línea y decrementa stock.
// Errores: ErrInvalidInput (ids/cantidad no positivos o usuario sin rol cliente),
// ErrNotFound (cliente o producto inexistente), ErrInsufficientStock.
func (uc *OrderUseCase) Create(ctx context.Context, in dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	if in.CustomerID <= 0 || in.ProductID <= 0 || in.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}

	customer, err := uc.userRepo.GetByID(in.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	// El motor no confía en el filtrado de la UI: el pedido debe ser de un cliente.
	if customer.Role != entity.RoleCliente {
		return nil, domain.ErrInvalidInput
	}

	var order *entity.Order
	err = uc.txRunner.Run(ctx, func(
		orderRepo repository.OrderRepository,
		productRepo repository.ProductRepository,
	) error {
		// Bloquea la fila del producto: verificación y decremento son una sola unidad atómica
		product, err := productRepo.GetForUpdate(in.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		if product.Stock < in.Quantity {
			return domain.ErrInsufficientStock
		}

		subtotal := product.Price.Mul(decimal.NewFromInt(int64(in.Quantity)))
		order = &entity.Order{
			CustomerID: in.CustomerID,
			Date:       time.Now().UTC(),
			Status:     entity.StatusPendiente,
			Total:      subtotal,
			Items: []entity.OrderItem{{
				ProductID: in.ProductID,
				Quantity:  in.Quantity,
				Subtotal:  subtotal,
			}},
		}
		if err := orderRepo.Create(order); err != nil {
			return err
		}
		return productRepo.UpdateStock(product.ID, product.Stock-in.Quantity)
	})
	if err != nil {
		return nil, err
	}

	order.Customer = customer
	return toOrderResponse(order, true), nil
}

// UpdateStatus cambia el estado de un pedido validando el grafo de transiciones.
// Errores: ErrInvalidInput (estado desconocido), ErrNotFound, ErrConflict (transición ilegal).
func (uc *OrderUseCase) UpdateStatus(ctx context.Context, id int64, status string) (*dto.OrderResponse, error) {
	if id <= 0 || !entity.ValidStatus(status) {
		return nil, domain.ErrInvalidInput
	}
	order, err := uc.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	if !entity.CanTransition(order.Status, status) {
		return nil, domain.ErrConflict
	}
	if err := uc.orderRepo.UpdateStatus(id, status); err != nil {
		return nil, err
	}
	order.Status = status
	return toOrderResponse(order, false), nil
}

// Delete elimina un pedido devolviendo el stock de cada línea, todo en una transacción.
// Si el producto de una línea ya no existe, la devolución se omite (política
// log-and-continue) y la eliminación continúa. Errores: ErrNotFound.
func (uc *OrderUseCase) Delete(ctx context.Context, id int64) (*dto.DeleteOrderResponse, error) {
	if id <= 0 {
		return nil, domain.ErrInvalidInput
	}

	restored := make([]dto.RestoredStockItem, 0)
	err := uc.txRunner.Run(ctx, func(
		orderRepo repository.OrderRepository,
		productRepo repository.ProductRepository,
	) error {
		order, err := orderRepo.GetWithItems(id)
		if err != nil {
			return err
		}
		if order == nil {
			return domain.ErrNotFound
		}

		for _, item := range order.Items {
			product, err := productRepo.GetForUpdate(item.ProductID)
			if err != nil {
				return err
			}
			if product == nil {
				// Producto eliminado después del pedido: se omite la devolución
				log.Warn().
					Int64("order_id", id).
					Int64("product_id", item.ProductID).
					Int("quantity", item.Quantity).
					Msg("producto inexistente al devolver stock, se omite")
				restored = append(restored, dto.RestoredStockItem{
					ProductID: item.ProductID,
					Quantity:  item.Quantity,
					Skipped:   true,
				})
				continue
			}
			if err := productRepo.UpdateStock(product.ID, product.Stock+item.Quantity); err != nil {
				return err
			}
			restored = append(restored, dto.RestoredStockItem{
				ProductID: item.ProductID,
				Quantity:  item.Quantity,
			})
		}

		// Las líneas se eliminan en cascada con el pedido
		return orderRepo.Delete(id)
	})
	if err != nil {
		return nil, err
	}
	return &dto.DeleteOrderResponse{ID: id, Restored: restored}, nil
}

// List devuelve los pedidos más recientes primero, con el cliente resuelto.
func (uc *OrderUseCase) List(ctx context.Context, limit, offset int) (*dto.OrderListResponse, error) {
	list, err := uc.orderRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.OrderResponse, 0, len(list))
	for _, o := range list {
		items = append(items, *toOrderResponse(o, false))
	}
	return &dto.OrderListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// GetDetails obtiene un pedido con sus líneas y referencias de producto.
func (uc *OrderUseCase) GetDetails(ctx context.Context, id int64) (*dto.OrderResponse, error) {
	if id <= 0 {
		return nil, domain.ErrInvalidInput
	}
	order, err := uc.orderRepo.GetWithItems(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	return toOrderResponse(order, true), nil
}

func toOrderResponse(o *entity.Order, withItems bool) *dto.OrderResponse {
	out := &dto.OrderResponse{
		ID:         o.ID,
		CustomerID: o.CustomerID,
		Date:       o.Date,
		Status:     o.Status,
		Total:      o.Total,
	}
	if o.Customer != nil {
		out.CustomerName = o.Customer.Name
	}
	if withItems {
		out.Items = make([]dto.OrderItemResponse, 0, len(o.Items))
		for _, it := range o.Items {
			item := dto.OrderItemResponse{
				ID:        it.ID,
				ProductID: it.ProductID,
				Quantity:  it.Quantity,
				Subtotal:  it.Subtotal,
			}
			if it.Product != nil {
				item.ProductName = it.Product.Name
			}
			out.Items = append(out.Items, item)
		}
	}
	return out
}

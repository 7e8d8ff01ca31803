package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateOrderRequest creación de pedido: un cliente y una línea de producto.
type CreateOrderRequest struct {
	CustomerID int64 `json:"customer_id"`
	ProductID  int64 `json:"product_id"`
	Quantity   int   `json:"quantity"`
}

// UpdateOrderStatusRequest cambio de estado de un pedido.
type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

// OrderItemResponse línea de un pedido.
type OrderItemResponse struct {
	ID          int64           `json:"id"`
	ProductID   int64           `json:"product_id"`
	ProductName string          `json:"product_name,omitempty"` // vacío si el producto fue eliminado
	Quantity    int             `json:"quantity"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

// OrderResponse representación de un pedido.
type OrderResponse struct {
	ID           int64               `json:"id"`
	CustomerID   int64               `json:"customer_id"`
	CustomerName string              `json:"customer_name,omitempty"`
	Date         time.Time           `json:"date"`
	Status       string              `json:"status"`
	Total        decimal.Decimal     `json:"total"`
	Items        []OrderItemResponse `json:"items,omitempty"`
}

// RestoredStockItem resultado de la devolución de stock de una línea al eliminar un pedido.
// Skipped indica que el producto ya no existe y la devolución se omitió.
type RestoredStockItem struct {
	ProductID int64 `json:"product_id"`
	Quantity  int   `json:"quantity"`
	Skipped   bool  `json:"skipped,omitempty"`
}

// DeleteOrderResponse confirmación de eliminación con el stock devuelto por línea.
type DeleteOrderResponse struct {
	ID       int64               `json:"id"`
	Restored []RestoredStockItem `json:"restored"`
}

// OrderListResponse listado paginado de pedidos (más recientes primero).
type OrderListResponse struct {
	Items []OrderResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}

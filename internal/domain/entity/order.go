package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados del ciclo de vida de un pedido.
const (
	StatusPendiente  = "Pendiente"
	StatusProcesando = "Procesando"
	StatusEnviado    = "Enviado"
	StatusCancelado  = "Cancelado"
)

// ValidStatus reporta si status es un estado conocido.
func ValidStatus(status string) bool {
	switch status {
	case StatusPendiente, StatusProcesando, StatusEnviado, StatusCancelado:
		return true
	}
	return false
}

// statusTransitions define el grafo de transiciones permitidas.
// Enviado y Cancelado son estados terminales.
var statusTransitions = map[string][]string{
	StatusPendiente:  {StatusProcesando, StatusEnviado, StatusCancelado},
	StatusProcesando: {StatusEnviado, StatusCancelado},
	StatusEnviado:    {},
	StatusCancelado:  {},
}

// CanTransition reporta si un pedido puede pasar de from a to.
func CanTransition(from, to string) bool {
	for _, next := range statusTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Order representa el pedido de un cliente: estado, total calculado y sus líneas.
// Invariante: Total == suma de los subtotales de Items.
type Order struct {
	ID         int64
	CustomerID int64
	Customer   *User // referencia no propietaria, resuelta en listados y detalle
	Date       time.Time
	Status     string
	Total      decimal.Decimal
	Items      []OrderItem
}

// OrderItem representa una línea de producto dentro de un pedido.
// Inmutable después de la creación; se elimina solo junto con el pedido (cascada).
type OrderItem struct {
	ID        int64
	OrderID   int64
	ProductID int64
	Product   *Product // referencia no propietaria, puede ser nil si el producto fue eliminado
	Quantity  int
	Subtotal  decimal.Decimal // Quantity × precio del producto al momento del pedido
}

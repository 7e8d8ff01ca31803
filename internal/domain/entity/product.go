package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo.
// Stock nunca es negativo: solo lo mutan el CRUD de catálogo y el motor de pedidos
// (decrementa al crear un pedido, restaura al eliminarlo).
type Product struct {
	ID          int64
	Name        string
	Description string // opcional
	Category    string // opcional
	Price       decimal.Decimal // precio de venta, no negativo, precisión 2 decimales
	Stock       int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

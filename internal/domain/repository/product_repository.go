package repository

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/pedidos-api/internal/domain/entity"
)

// ProductFilter criterios opcionales para el listado de catálogo.
type ProductFilter struct {
	Text     string // busca en nombre y descripción, sin distinguir mayúsculas ni tildes
	Category string
	MinPrice *decimal.Decimal
	MaxPrice *decimal.Decimal
}

// ProductRepository define el puerto de persistencia para Product (DIP).
// GetForUpdate y UpdateStock existen para el motor de pedidos: la verificación
// y el decremento de stock deben ocurrir bajo bloqueo de fila en una transacción.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id int64) (*entity.Product, error)
	GetForUpdate(id int64) (*entity.Product, error)
	Update(product *entity.Product) error
	UpdateStock(id int64, stock int) error
	List(filter ProductFilter) ([]*entity.Product, error)
	Categories() ([]string, error)
	Delete(id int64) error
}

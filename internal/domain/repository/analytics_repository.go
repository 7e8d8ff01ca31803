package repository

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/pedidos-api/internal/domain/entity"
)

// TopProduct producto con su cantidad total vendida (para el dashboard).
type TopProduct struct {
	ProductID int64
	Name      string
	Quantity  int64
}

// AnalyticsRepository define consultas agregadas de solo lectura para el dashboard.
type AnalyticsRepository interface {
	CountProducts() (int, error)
	CountOrdersByStatus() (map[string]int, error)
	SalesTotalSince(since time.Time) (decimal.Decimal, error)
	LowStockProducts(threshold int) ([]*entity.Product, error)
	TopProducts(limit int) ([]TopProduct, error)
}

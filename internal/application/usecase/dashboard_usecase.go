package usecase

import (
	"time"

	"github.com/jhoicas/pedidos-api/internal/application/dto"
	"github.com/jhoicas/pedidos-api/internal/domain/repository"
)

// Umbral de stock bajo para el dashboard.
const lowStockThreshold = 5

// DashboardUseCase agregados de solo lectura para la pantalla inicial del back office.
type DashboardUseCase struct {
	repo repository.AnalyticsRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(repo repository.AnalyticsRepository) *DashboardUseCase {
	return &DashboardUseCase{repo: repo}
}

// Summary arma el resumen: productos, pedidos por estado, ventas últimos 30 días,
// stock bajo y productos más vendidos.
func (uc *DashboardUseCase) Summary() (*dto.DashboardResponse, error) {
	totalProducts, err := uc.repo.CountProducts()
	if err != nil {
		return nil, err
	}
	byStatus, err := uc.repo.CountOrdersByStatus()
	if err != nil {
		return nil, err
	}
	sales, err := uc.repo.SalesTotalSince(time.Now().AddDate(0, 0, -30))
	if err != nil {
		return nil, err
	}
	lowStock, err := uc.repo.LowStockProducts(lowStockThreshold)
	if err != nil {
		return nil, err
	}
	top, err := uc.repo.TopProducts(5)
	if err != nil {
		return nil, err
	}

	lowStockItems := make([]dto.ProductResponse, 0, len(lowStock))
	for _, p := range lowStock {
		lowStockItems = append(lowStockItems, *toProductResponse(p))
	}
	topItems := make([]dto.TopProductResponse, 0, len(top))
	for _, t := range top {
		topItems = append(topItems, dto.TopProductResponse{
			ProductID: t.ProductID,
			Name:      t.Name,
			Quantity:  t.Quantity,
		})
	}
	return &dto.DashboardResponse{
		TotalProducts:  totalProducts,
		OrdersByStatus: byStatus,
		SalesLast30d:   sales,
		LowStock:       lowStockItems,
		TopProducts:    topItems,
	}, nil
}

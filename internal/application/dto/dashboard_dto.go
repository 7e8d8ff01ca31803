package dto

import "github.com/shopspring/decimal"

// DashboardResponse agregados para la pantalla inicial del back office.
type DashboardResponse struct {
	TotalProducts  int                  `json:"total_products"`
	OrdersByStatus map[string]int       `json:"orders_by_status"`
	SalesLast30d   decimal.Decimal      `json:"sales_last_30d"`
	LowStock       []ProductResponse    `json:"low_stock"`
	TopProducts    []TopProductResponse `json:"top_products"`
}

// TopProductResponse producto más vendido por cantidad.
type TopProductResponse struct {
	ProductID int64  `json:"product_id"`
	Name      string `json:"name"`
	Quantity  int64  `json:"quantity"`
}

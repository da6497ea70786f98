package dto

import "github.com/shopspring/decimal"

// DashboardSummary resumen del panel principal. Todo se deriva del snapshot
// cargado en la misma petición; no hay caché ni actualización incremental.
type DashboardSummary struct {
	TotalProducts int `json:"total_products"`
	// LowStockCount cuenta todas las alertas pendientes, sin distinguir tipo
	// (simplificación de presentación heredada del panel).
	LowStockCount   int                `json:"low_stock_count"`
	TotalValue      decimal.Decimal    `json:"total_value"`
	RecentMovements []MovementResponse `json:"recent_movements"`
	TopProducts     []TopProductDTO    `json:"top_products"`
}

// TopProductDTO producto del top-5 por valor de inventario.
type TopProductDTO struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	CurrentStock int             `json:"current_stock"`
	SalePrice    decimal.Decimal `json:"sale_price"`
	StockValue   decimal.Decimal `json:"stock_value"`
}

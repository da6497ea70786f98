package dto

import "github.com/shopspring/decimal"

// ReportSummary agregado completo de la vista de reportes.
type ReportSummary struct {
	TotalInvestment decimal.Decimal `json:"total_investment"`
	TotalRevenue    decimal.Decimal `json:"total_revenue"`
	// Profit puede ser negativo; el signo decide el estilo en el cliente.
	Profit             decimal.Decimal      `json:"profit"`
	TotalEntries       int                  `json:"total_entries"`
	TotalExits         int                  `json:"total_exits"`
	ProductsByCategory []CategoryCountDTO   `json:"products_by_category"`
	LowStockProducts   []LowStockProductDTO `json:"low_stock_products"`
	TopSellingProducts []TopSellingDTO      `json:"top_selling_products"`
}

// CategoryCountDTO barra del histograma de productos por categoría.
// Percentage se escala contra la categoría con más productos; si el máximo es
// cero la barra es 0% (nunca NaN).
type CategoryCountDTO struct {
	Category   string  `json:"category"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// LowStockProductDTO fila de la tabla de stock bajo.
type LowStockProductDTO struct {
	Name     string `json:"name"`
	Stock    int    `json:"stock"`
	MinStock int    `json:"min_stock"`
}

// TopSellingDTO producto del top-5 por unidades vendidas, con barra escalada
// contra el máximo del propio top (misma guarda de denominador cero).
type TopSellingDTO struct {
	Name       string  `json:"name"`
	Quantity   int     `json:"quantity"`
	Percentage float64 `json:"percentage"`
}

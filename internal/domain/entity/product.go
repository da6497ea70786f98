package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del inventario.
// CategoryID y SupplierID son opcionales (vacíos = sin referencia). El stock actual
// lo mantienen los triggers de la base de datos a partir de los movimientos.
type Product struct {
	ID            string
	Name          string
	Description   string
	SKU           string // código único
	Barcode       string
	CategoryID    string
	SupplierID    string
	PurchasePrice decimal.Decimal
	SalePrice     decimal.Decimal
	CurrentStock  int
	MinStock      int
	MaxStock      int
	Unit          string // etiqueta de unidad de medida: "unidad", "kg", ...
	ImageURL      string
	IsActive      bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// IsLowStock indica si el producto está en o por debajo de su stock mínimo.
// La misma condición alimenta el indicador del listado y la tabla de reportes.
func (p *Product) IsLowStock() bool {
	return p.CurrentStock <= p.MinStock
}

// StockValue devuelve el valor de inventario del producto (stock actual × precio de venta).
func (p *Product) StockValue() decimal.Decimal {
	return p.SalePrice.Mul(decimal.NewFromInt(int64(p.CurrentStock)))
}

package entity

import "time"

// Tipos de alerta de stock. Valores desconocidos se muestran tal cual (fallback del cliente).
const (
	AlertTypeLowStock   = "low_stock"
	AlertTypeOutOfStock = "out_of_stock"
	AlertTypeOverstock  = "overstock"
)

// StockAlert representa una condición de stock observada sobre un producto.
// Las alertas las generan los triggers de la base de datos; la aplicación solo
// las lista y las marca como resueltas.
type StockAlert struct {
	ID         string
	ProductID  string
	AlertType  string
	IsResolved bool
	CreatedAt  time.Time
	ResolvedAt *time.Time // nil mientras la alerta esté pendiente
}

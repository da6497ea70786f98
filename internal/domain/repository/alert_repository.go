package repository

import (
	"context"
	"time"

	"stockpanel/internal/domain/entity"
)

// AlertWithProduct fila de alerta con los campos mínimos del producto que
// necesita el listado: nombre, SKU y stocks actual/mínimo/máximo.
type AlertWithProduct struct {
	entity.StockAlert
	ProductName  string
	ProductSKU   string
	CurrentStock int
	MinStock     int
	MaxStock     int
}

// AlertFilter filtros del listado de alertas.
type AlertFilter struct {
	OnlyUnresolved bool
}

// AlertRepository puerto de persistencia para alertas de stock. Las alertas se
// generan fuera de la aplicación (triggers de la DB); la única mutación expuesta
// es marcarlas como resueltas.
type AlertRepository interface {
	// List devuelve alertas con producto resuelto, más recientes primero.
	List(ctx context.Context, filter AlertFilter) ([]AlertWithProduct, error)
	// ListUnresolved devuelve las alertas pendientes sin joins (stat del dashboard).
	ListUnresolved(ctx context.Context) ([]*entity.StockAlert, error)
	// Resolve marca la alerta como resuelta y estampa resolvedAt.
	// Devuelve domain.ErrNotFound si no existe.
	Resolve(ctx context.Context, id string, resolvedAt time.Time) error
}

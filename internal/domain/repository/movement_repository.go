package repository

import (
	"context"

	"stockpanel/internal/domain/entity"
)

// MovementWithProduct fila de movimiento con los datos mínimos del producto
// para el listado (nombre, SKU y unidad).
type MovementWithProduct struct {
	entity.InventoryMovement
	ProductName string
	ProductSKU  string
	ProductUnit string
}

// MovementFilter filtros del listado de movimientos.
// Type vacío lista todos; Limit <= 0 no limita.
type MovementFilter struct {
	Type  string // entrada | salida
	Limit int
}

// MovementRepository puerto de persistencia para movimientos de inventario.
// Los movimientos son inmutables: solo alta y lectura.
type MovementRepository interface {
	Create(ctx context.Context, movement *entity.InventoryMovement) error

	// List devuelve movimientos con producto resuelto, más recientes primero.
	List(ctx context.Context, filter MovementFilter) ([]MovementWithProduct, error)
	// ListAll devuelve todos los movimientos sin joins (agregaciones de reportes).
	ListAll(ctx context.Context) ([]*entity.InventoryMovement, error)
}

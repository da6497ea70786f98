package repository

import (
	"context"

	"stockpanel/internal/domain/entity"
)

// ProductWithRefs fila de producto con los nombres de sus referencias resueltos
// por LEFT JOIN. Los nombres quedan vacíos cuando no hay referencia.
type ProductWithRefs struct {
	entity.Product
	CategoryName string
	SupplierName string
}

// ProductRepository puerto de persistencia para productos.
// GetByID y GetBySKU devuelven (nil, nil) cuando el producto no existe.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	GetBySKU(ctx context.Context, sku string) (*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id string) error

	// List devuelve todos los productos con categoría y proveedor resueltos,
	// más recientes primero.
	List(ctx context.Context) ([]ProductWithRefs, error)
	// ListActive devuelve los productos activos ordenados por nombre
	// (select del formulario de movimientos).
	ListActive(ctx context.Context) ([]*entity.Product, error)
}

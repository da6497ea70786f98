package repository

import (
	"context"

	"stockpanel/internal/domain/entity"
)

// SupplierRepository puerto de persistencia para proveedores.
// GetByID devuelve (nil, nil) cuando el proveedor no existe.
type SupplierRepository interface {
	Create(ctx context.Context, supplier *entity.Supplier) error
	GetByID(ctx context.Context, id string) (*entity.Supplier, error)
	Update(ctx context.Context, supplier *entity.Supplier) error
	Delete(ctx context.Context, id string) error

	// List devuelve todos los proveedores, más recientes primero.
	List(ctx context.Context) ([]*entity.Supplier, error)
	// ListByName devuelve todos los proveedores ordenados alfabéticamente (selects de formularios).
	ListByName(ctx context.Context) ([]*entity.Supplier, error)
}

package repository

import (
	"context"

	"stockpanel/internal/domain/entity"
)

// CategoryRepository puerto de persistencia para categorías.
// GetByID devuelve (nil, nil) cuando la categoría no existe.
type CategoryRepository interface {
	Create(ctx context.Context, category *entity.Category) error
	GetByID(ctx context.Context, id string) (*entity.Category, error)
	Update(ctx context.Context, category *entity.Category) error
	Delete(ctx context.Context, id string) error

	// List devuelve todas las categorías, más recientes primero.
	List(ctx context.Context) ([]*entity.Category, error)
	// ListByName devuelve todas las categorías ordenadas alfabéticamente (selects de formularios).
	ListByName(ctx context.Context) ([]*entity.Category, error)
}

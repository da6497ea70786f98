package repository

import (
	"context"

	"stockpanel/internal/domain/entity"
)

// UserRepository puerto de persistencia para usuarios.
// GetByID y GetByEmail devuelven (nil, nil) cuando el usuario no existe.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
}

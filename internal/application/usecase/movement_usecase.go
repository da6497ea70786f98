package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"stockpanel/internal/application/dto"
	"stockpanel/internal/domain"
	"stockpanel/internal/domain/entity"
	"stockpanel/internal/domain/repository"
)

// MovementUseCase registro y listado de movimientos de inventario.
// Los movimientos son inmutables: no hay actualización ni borrado.
type MovementUseCase struct {
	repo repository.MovementRepository
}

// NewMovementUseCase construye el caso de uso.
func NewMovementUseCase(repo repository.MovementRepository) *MovementUseCase {
	return &MovementUseCase{repo: repo}
}

// Register registra un movimiento. El total se calcula aquí, una sola vez,
// como quantity × unit_price, y queda fijado: nunca se reconcilia contra
// precios posteriores del producto (precio histórico).
func (uc *MovementUseCase) Register(ctx context.Context, createdBy string, in dto.RegisterMovementRequest) (*dto.MovementResponse, error) {
	if !entity.ValidMovementType(in.Type) {
		return nil, domain.ErrInvalidInput
	}
	if in.Quantity <= 0 || in.UnitPrice.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	movement := &entity.InventoryMovement{
		ID:         uuid.New().String(),
		ProductID:  in.ProductID,
		Type:       in.Type,
		Quantity:   in.Quantity,
		UnitPrice:  in.UnitPrice,
		TotalPrice: in.UnitPrice.Mul(decimal.NewFromInt(int64(in.Quantity))),
		Reference:  in.Reference,
		Notes:      in.Notes,
		CreatedBy:  createdBy,
		CreatedAt:  time.Now(),
	}
	if err := uc.repo.Create(ctx, movement); err != nil {
		return nil, err
	}
	return toMovementResponse(repository.MovementWithProduct{InventoryMovement: *movement}), nil
}

// List lista movimientos con producto resuelto; el filtro por tipo es
// server-side y dispara una nueva consulta.
func (uc *MovementUseCase) List(ctx context.Context, movementType string) (*dto.MovementListResponse, error) {
	if movementType != "" && !entity.ValidMovementType(movementType) {
		return nil, domain.ErrInvalidInput
	}
	list, err := uc.repo.List(ctx, repository.MovementFilter{Type: movementType})
	if err != nil {
		return nil, err
	}
	items := make([]dto.MovementResponse, 0, len(list))
	for _, m := range list {
		items = append(items, *toMovementResponse(m))
	}
	return &dto.MovementListResponse{Items: items}, nil
}

func toMovementResponse(m repository.MovementWithProduct) *dto.MovementResponse {
	return &dto.MovementResponse{
		ID:          m.ID,
		ProductID:   m.ProductID,
		ProductName: m.ProductName,
		ProductSKU:  m.ProductSKU,
		ProductUnit: m.ProductUnit,
		Type:        m.Type,
		Quantity:    m.Quantity,
		UnitPrice:   m.UnitPrice,
		TotalPrice:  m.TotalPrice,
		Reference:   m.Reference,
		Notes:       m.Notes,
		CreatedBy:   m.CreatedBy,
		CreatedAt:   m.CreatedAt,
	}
}

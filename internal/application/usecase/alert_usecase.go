package usecase

import (
	"context"
	"time"

	"stockpanel/internal/application/dto"
	"stockpanel/internal/domain/repository"
)

// AlertUseCase listado y resolución de alertas de stock. Las alertas se
// generan fuera de la aplicación; aquí solo se consultan y se resuelven.
type AlertUseCase struct {
	repo repository.AlertRepository
}

// NewAlertUseCase construye el caso de uso.
func NewAlertUseCase(repo repository.AlertRepository) *AlertUseCase {
	return &AlertUseCase{repo: repo}
}

// List lista alertas, más recientes primero. onlyUnresolved filtra las pendientes.
func (uc *AlertUseCase) List(ctx context.Context, onlyUnresolved bool) (*dto.AlertListResponse, error) {
	list, err := uc.repo.List(ctx, repository.AlertFilter{OnlyUnresolved: onlyUnresolved})
	if err != nil {
		return nil, err
	}
	items := make([]dto.AlertResponse, 0, len(list))
	for _, a := range list {
		items = append(items, dto.AlertResponse{
			ID:           a.ID,
			ProductID:    a.ProductID,
			ProductName:  a.ProductName,
			ProductSKU:   a.ProductSKU,
			CurrentStock: a.CurrentStock,
			MinStock:     a.MinStock,
			MaxStock:     a.MaxStock,
			AlertType:    a.AlertType,
			IsResolved:   a.IsResolved,
			CreatedAt:    a.CreatedAt,
			ResolvedAt:   a.ResolvedAt,
		})
	}
	return &dto.AlertListResponse{Items: items}, nil
}

// Resolve marca una alerta como resuelta estampando el momento actual.
func (uc *AlertUseCase) Resolve(ctx context.Context, id string) error {
	return uc.repo.Resolve(ctx, id, time.Now())
}

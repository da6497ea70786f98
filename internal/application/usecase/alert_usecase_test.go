package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stockpanel/internal/application/usecase"
	"stockpanel/internal/domain"
	"stockpanel/internal/domain/entity"
	"stockpanel/internal/domain/repository"
)

type fakeAlertRepo struct {
	alerts     []repository.AlertWithProduct
	lastFilter repository.AlertFilter
	resolvedID string
	resolvedAt time.Time
	resolveErr error
}

func (f *fakeAlertRepo) List(_ context.Context, filter repository.AlertFilter) ([]repository.AlertWithProduct, error) {
	f.lastFilter = filter
	if filter.OnlyUnresolved {
		out := make([]repository.AlertWithProduct, 0, len(f.alerts))
		for _, a := range f.alerts {
			if !a.IsResolved {
				out = append(out, a)
			}
		}
		return out, nil
	}
	return f.alerts, nil
}
func (f *fakeAlertRepo) ListUnresolved(context.Context) ([]*entity.StockAlert, error) {
	return nil, nil
}
func (f *fakeAlertRepo) Resolve(_ context.Context, id string, resolvedAt time.Time) error {
	if f.resolveErr != nil {
		return f.resolveErr
	}
	f.resolvedID = id
	f.resolvedAt = resolvedAt
	return nil
}

func alerta(id, tipo string, resolved bool) repository.AlertWithProduct {
	return repository.AlertWithProduct{
		StockAlert: entity.StockAlert{
			ID:         id,
			ProductID:  "p1",
			AlertType:  tipo,
			IsResolved: resolved,
		},
		ProductName: "Taladro",
		ProductSKU:  "TAL-001",
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests List / Resolve
// ──────────────────────────────────────────────────────────────────────────────

func TestListAlerts_FiltroPendientes(t *testing.T) {
	repo := &fakeAlertRepo{alerts: []repository.AlertWithProduct{
		alerta("a1", entity.AlertTypeLowStock, false),
		alerta("a2", entity.AlertTypeOutOfStock, true),
	}}
	uc := usecase.NewAlertUseCase(repo)

	out, err := uc.List(context.Background(), true)
	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.Equal(t, "a1", out.Items[0].ID)
	assert.True(t, repo.lastFilter.OnlyUnresolved)

	out, err = uc.List(context.Background(), false)
	require.NoError(t, err)
	assert.Len(t, out.Items, 2, "sin filtro se listan resueltas y pendientes")
}

func TestResolveAlert_EstampaMomento(t *testing.T) {
	repo := &fakeAlertRepo{}
	uc := usecase.NewAlertUseCase(repo)

	before := time.Now()
	err := uc.Resolve(context.Background(), "a1")
	require.NoError(t, err)

	assert.Equal(t, "a1", repo.resolvedID)
	assert.False(t, repo.resolvedAt.Before(before), "el momento de resolución lo pone el servidor")
}

func TestResolveAlert_Inexistente(t *testing.T) {
	repo := &fakeAlertRepo{resolveErr: domain.ErrNotFound}
	uc := usecase.NewAlertUseCase(repo)

	err := uc.Resolve(context.Background(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

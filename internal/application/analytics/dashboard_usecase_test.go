package analytics_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stockpanel/internal/application/analytics"
	"stockpanel/internal/domain/entity"
	"stockpanel/internal/domain/repository"
)

type fakeAlertRepo struct {
	unresolved []*entity.StockAlert
	err        error
}

func (f *fakeAlertRepo) List(context.Context, repository.AlertFilter) ([]repository.AlertWithProduct, error) {
	return nil, nil
}
func (f *fakeAlertRepo) ListUnresolved(context.Context) ([]*entity.StockAlert, error) {
	return f.unresolved, f.err
}
func (f *fakeAlertRepo) Resolve(context.Context, string, time.Time) error { return nil }

// ──────────────────────────────────────────────────────────────────────────────
// Tests DashboardUseCase
// ──────────────────────────────────────────────────────────────────────────────

func TestDashboard_TotalesYValor(t *testing.T) {
	prodRepo := &fakeProductRepo{products: []repository.ProductWithRefs{
		producto("p1", "Taladro", "Herramientas", 4, 1, "100.00"), // 400
		producto("p2", "Martillo", "Herramientas", 10, 1, "25.50"), // 255
	}}
	alertRepo := &fakeAlertRepo{unresolved: []*entity.StockAlert{
		{ID: "a1", ProductID: "p1", AlertType: entity.AlertTypeLowStock},
		{ID: "a2", ProductID: "p2", AlertType: entity.AlertTypeOverstock},
	}}
	uc := analytics.NewDashboardUseCase(prodRepo, alertRepo, &fakeMovementRepo{})

	out, err := uc.GetSummary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, out.TotalProducts)
	assert.Equal(t, 2, out.LowStockCount,
		"la stat de stock bajo cuenta todas las alertas pendientes sin distinguir tipo")
	assert.True(t, out.TotalValue.Equal(decimal.RequireFromString("655.00")),
		"valor total = suma de stock × precio de venta")
}

func TestDashboard_TopPorValorDeInventario(t *testing.T) {
	prodRepo := &fakeProductRepo{products: []repository.ProductWithRefs{
		producto("p1", "A", "", 1, 0, "10"),  // 10
		producto("p2", "B", "", 2, 0, "50"),  // 100
		producto("p3", "C", "", 5, 0, "90"),  // 450
		producto("p4", "D", "", 1, 0, "5"),   // 5
		producto("p5", "E", "", 3, 0, "100"), // 300
		producto("p6", "F", "", 10, 0, "1"),  // 10
	}}
	uc := analytics.NewDashboardUseCase(prodRepo, &fakeAlertRepo{}, &fakeMovementRepo{})

	out, err := uc.GetSummary(context.Background())
	require.NoError(t, err)
	require.Len(t, out.TopProducts, 5, "el top se corta en cinco productos")

	assert.Equal(t, "C", out.TopProducts[0].Name)
	assert.True(t, out.TopProducts[0].StockValue.Equal(decimal.RequireFromString("450")))
	assert.Equal(t, "E", out.TopProducts[1].Name)
	assert.Equal(t, "B", out.TopProducts[2].Name)
}

func TestDashboard_MovimientosRecientes(t *testing.T) {
	movRepo := &fakeMovementRepo{withRefs: []repository.MovementWithProduct{
		{
			InventoryMovement: entity.InventoryMovement{
				ID:         "m1",
				ProductID:  "p1",
				Type:       entity.MovementTypeEntrada,
				Quantity:   3,
				UnitPrice:  decimal.RequireFromString("2.50"),
				TotalPrice: decimal.RequireFromString("7.50"),
			},
			ProductName: "Taladro",
			ProductSKU:  "SKU-1",
			ProductUnit: "unidad",
		},
	}}
	uc := analytics.NewDashboardUseCase(&fakeProductRepo{}, &fakeAlertRepo{}, movRepo)

	out, err := uc.GetSummary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 5, movRepo.lastList.Limit, "el dashboard pide solo los 5 más recientes")
	require.Len(t, out.RecentMovements, 1)
	assert.Equal(t, "Taladro", out.RecentMovements[0].ProductName)
	assert.True(t, out.RecentMovements[0].TotalPrice.Equal(decimal.RequireFromString("7.50")),
		"el total viene congelado del movimiento, no se recalcula")
}

func TestDashboard_ErrorDeLectura(t *testing.T) {
	uc := analytics.NewDashboardUseCase(&fakeProductRepo{err: assert.AnError}, &fakeAlertRepo{}, &fakeMovementRepo{})

	_, err := uc.GetSummary(context.Background())
	assert.Error(t, err)
}

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

// ──────────────────────────────────────────────────────────────────────────────
// Fakes de repositorios
// ──────────────────────────────────────────────────────────────────────────────

type fakeProductRepo struct {
	products []repository.ProductWithRefs
	err      error
}

func (f *fakeProductRepo) Create(context.Context, *entity.Product) error { return nil }
func (f *fakeProductRepo) GetByID(context.Context, string) (*entity.Product, error) {
	return nil, nil
}
func (f *fakeProductRepo) GetBySKU(context.Context, string) (*entity.Product, error) {
	return nil, nil
}
func (f *fakeProductRepo) Update(context.Context, *entity.Product) error { return nil }
func (f *fakeProductRepo) Delete(context.Context, string) error          { return nil }
func (f *fakeProductRepo) List(context.Context) ([]repository.ProductWithRefs, error) {
	return f.products, f.err
}
func (f *fakeProductRepo) ListActive(context.Context) ([]*entity.Product, error) {
	return nil, nil
}

type fakeMovementRepo struct {
	movements []*entity.InventoryMovement
	withRefs  []repository.MovementWithProduct
	lastList  repository.MovementFilter
	err       error
}

func (f *fakeMovementRepo) Create(context.Context, *entity.InventoryMovement) error { return nil }
func (f *fakeMovementRepo) List(_ context.Context, filter repository.MovementFilter) ([]repository.MovementWithProduct, error) {
	f.lastList = filter
	return f.withRefs, f.err
}
func (f *fakeMovementRepo) ListAll(context.Context) ([]*entity.InventoryMovement, error) {
	return f.movements, f.err
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

func producto(id, name, category string, stock, minStock int, salePrice string) repository.ProductWithRefs {
	return repository.ProductWithRefs{
		Product: entity.Product{
			ID:           id,
			Name:         name,
			CurrentStock: stock,
			MinStock:     minStock,
			SalePrice:    decimal.RequireFromString(salePrice),
			IsActive:     true,
		},
		CategoryName: category,
	}
}

func movimiento(productID, tipo string, qty int, total string) *entity.InventoryMovement {
	return &entity.InventoryMovement{
		ID:         "m-" + productID + "-" + tipo,
		ProductID:  productID,
		Type:       tipo,
		Quantity:   qty,
		TotalPrice: decimal.RequireFromString(total),
		CreatedAt:  time.Now(),
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests ReportUseCase
// ──────────────────────────────────────────────────────────────────────────────

func TestReport_TotalesYGanancia(t *testing.T) {
	movRepo := &fakeMovementRepo{movements: []*entity.InventoryMovement{
		movimiento("p1", entity.MovementTypeEntrada, 10, "1000.00"),
		movimiento("p2", entity.MovementTypeEntrada, 5, "250.50"),
		movimiento("p1", entity.MovementTypeSalida, 4, "800.00"),
	}}
	uc := analytics.NewReportUseCase(&fakeProductRepo{}, movRepo, nil)

	out, err := uc.GetSummary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, out.TotalEntries)
	assert.Equal(t, 1, out.TotalExits)
	assert.True(t, out.TotalInvestment.Equal(decimal.RequireFromString("1250.50")),
		"la inversión suma los totales de entradas")
	assert.True(t, out.TotalRevenue.Equal(decimal.RequireFromString("800.00")),
		"los ingresos suman los totales de salidas")
	assert.True(t, out.Profit.Equal(decimal.RequireFromString("-450.50")),
		"la ganancia puede ser negativa (ingresos - inversión)")
}

func TestReport_HistogramaPorCategoria(t *testing.T) {
	prodRepo := &fakeProductRepo{products: []repository.ProductWithRefs{
		producto("p1", "Taladro", "Herramientas", 10, 2, "100"),
		producto("p2", "Martillo", "Herramientas", 10, 2, "20"),
		producto("p3", "Cable", "", 10, 2, "5"), // sin categoría
	}}
	uc := analytics.NewReportUseCase(prodRepo, &fakeMovementRepo{}, nil)

	out, err := uc.GetSummary(context.Background())
	require.NoError(t, err)
	require.Len(t, out.ProductsByCategory, 2)

	assert.Equal(t, "Herramientas", out.ProductsByCategory[0].Category)
	assert.Equal(t, 2, out.ProductsByCategory[0].Count)
	assert.InDelta(t, 100.0, out.ProductsByCategory[0].Percentage, 0.001,
		"la categoría más poblada escala al 100%")

	assert.Equal(t, "Sin categoría", out.ProductsByCategory[1].Category)
	assert.Equal(t, 1, out.ProductsByCategory[1].Count)
	assert.InDelta(t, 50.0, out.ProductsByCategory[1].Percentage, 0.001)
}

func TestReport_SinDatos_SinNaN(t *testing.T) {
	uc := analytics.NewReportUseCase(&fakeProductRepo{}, &fakeMovementRepo{}, nil)

	out, err := uc.GetSummary(context.Background())
	require.NoError(t, err)

	assert.Empty(t, out.ProductsByCategory)
	assert.Empty(t, out.LowStockProducts)
	assert.Empty(t, out.TopSellingProducts)
	assert.True(t, out.Profit.IsZero())
}

func TestReport_StockBajo(t *testing.T) {
	prodRepo := &fakeProductRepo{products: []repository.ProductWithRefs{
		producto("p1", "Tornillos", "Ferretería", 5, 10, "1"), // 5 <= 10: bajo
		producto("p2", "Tuercas", "Ferretería", 10, 10, "1"),  // límite exacto: bajo
		producto("p3", "Arandelas", "Ferretería", 11, 10, "1"),
	}}
	uc := analytics.NewReportUseCase(prodRepo, &fakeMovementRepo{}, nil)

	out, err := uc.GetSummary(context.Background())
	require.NoError(t, err)
	require.Len(t, out.LowStockProducts, 2)

	assert.Equal(t, "Tornillos", out.LowStockProducts[0].Name)
	assert.Equal(t, 5, out.LowStockProducts[0].Stock)
	assert.Equal(t, 10, out.LowStockProducts[0].MinStock)
	assert.Equal(t, "Tuercas", out.LowStockProducts[1].Name,
		"stock igual al mínimo cuenta como bajo")
}

func TestReport_MasVendidos(t *testing.T) {
	prodRepo := &fakeProductRepo{products: []repository.ProductWithRefs{
		producto("p1", "Taladro", "Herramientas", 10, 2, "100"),
		producto("p2", "Martillo", "Herramientas", 10, 2, "20"),
	}}
	movRepo := &fakeMovementRepo{movements: []*entity.InventoryMovement{
		movimiento("p1", entity.MovementTypeSalida, 3, "300"),
		movimiento("p2", entity.MovementTypeSalida, 8, "160"),
		movimiento("p1", entity.MovementTypeSalida, 2, "200"),
		movimiento("p-borrado", entity.MovementTypeSalida, 1, "10"),
	}}
	uc := analytics.NewReportUseCase(prodRepo, movRepo, nil)

	out, err := uc.GetSummary(context.Background())
	require.NoError(t, err)
	require.Len(t, out.TopSellingProducts, 3)

	assert.Equal(t, "Martillo", out.TopSellingProducts[0].Name)
	assert.Equal(t, 8, out.TopSellingProducts[0].Quantity)
	assert.InDelta(t, 100.0, out.TopSellingProducts[0].Percentage, 0.001)

	assert.Equal(t, "Taladro", out.TopSellingProducts[1].Name,
		"las salidas del mismo producto se acumulan")
	assert.Equal(t, 5, out.TopSellingProducts[1].Quantity)

	assert.Equal(t, "Desconocido", out.TopSellingProducts[2].Name,
		"salidas de productos eliminados se presentan con rótulo fijo")
}

func TestReport_ExportPDFSinGenerador(t *testing.T) {
	uc := analytics.NewReportUseCase(&fakeProductRepo{}, &fakeMovementRepo{}, nil)

	_, err := uc.ExportPDF(context.Background())
	assert.Error(t, err, "sin generador configurado la exportación falla")
}

func TestReport_ErrorDeLectura(t *testing.T) {
	movRepo := &fakeMovementRepo{err: assert.AnError}
	uc := analytics.NewReportUseCase(&fakeProductRepo{}, movRepo, nil)

	_, err := uc.GetSummary(context.Background())
	assert.Error(t, err)
}

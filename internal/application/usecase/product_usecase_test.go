package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stockpanel/internal/application/dto"
	"stockpanel/internal/application/usecase"
	"stockpanel/internal/domain"
	"stockpanel/internal/domain/entity"
	"stockpanel/internal/domain/repository"
)

// fakeProductRepo almacena productos en memoria indexados por ID.
type fakeProductRepo struct {
	byID map[string]*entity.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{byID: map[string]*entity.Product{}}
}

func (f *fakeProductRepo) Create(_ context.Context, p *entity.Product) error {
	f.byID[p.ID] = p
	return nil
}
func (f *fakeProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	return f.byID[id], nil
}
func (f *fakeProductRepo) GetBySKU(_ context.Context, sku string) (*entity.Product, error) {
	for _, p := range f.byID {
		if p.SKU == sku {
			return p, nil
		}
	}
	return nil, nil
}
func (f *fakeProductRepo) Update(_ context.Context, p *entity.Product) error {
	f.byID[p.ID] = p
	return nil
}
func (f *fakeProductRepo) Delete(_ context.Context, id string) error {
	delete(f.byID, id)
	return nil
}
func (f *fakeProductRepo) List(context.Context) ([]repository.ProductWithRefs, error) {
	out := make([]repository.ProductWithRefs, 0, len(f.byID))
	for _, p := range f.byID {
		out = append(out, repository.ProductWithRefs{Product: *p})
	}
	return out, nil
}
func (f *fakeProductRepo) ListActive(context.Context) ([]*entity.Product, error) {
	out := make([]*entity.Product, 0, len(f.byID))
	for _, p := range f.byID {
		if p.IsActive {
			out = append(out, p)
		}
	}
	return out, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Create
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateProduct_Defaults(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo())

	out, err := uc.Create(context.Background(), dto.CreateProductRequest{
		Name: "Taladro",
		SKU:  "TAL-001",
	})
	require.NoError(t, err)

	assert.Equal(t, "unidad", out.Unit, "unidad por defecto")
	assert.True(t, out.IsActive, "activo por defecto")
	assert.NotEmpty(t, out.ID)
}

func TestCreateProduct_SKUDuplicado(t *testing.T) {
	repo := newFakeProductRepo()
	uc := usecase.NewProductUseCase(repo)

	_, err := uc.Create(context.Background(), dto.CreateProductRequest{Name: "A", SKU: "X-1"})
	require.NoError(t, err)

	_, err = uc.Create(context.Background(), dto.CreateProductRequest{Name: "B", SKU: "X-1"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestCreateProduct_PrecioNegativo(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo())

	_, err := uc.Create(context.Background(), dto.CreateProductRequest{
		Name:      "A",
		SKU:       "X-1",
		SalePrice: decimal.RequireFromString("-1"),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Update / Delete
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdateProduct_Inexistente(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo())

	name := "Nuevo"
	out, err := uc.Update(context.Background(), "no-existe", dto.UpdateProductRequest{Name: &name})
	require.NoError(t, err)
	assert.Nil(t, out, "actualizar un producto inexistente devuelve nil sin error")
}

func TestUpdateProduct_CamposParciales(t *testing.T) {
	repo := newFakeProductRepo()
	uc := usecase.NewProductUseCase(repo)

	created, err := uc.Create(context.Background(), dto.CreateProductRequest{
		Name:      "Taladro",
		SKU:       "TAL-001",
		SalePrice: decimal.RequireFromString("100"),
	})
	require.NoError(t, err)

	newPrice := decimal.RequireFromString("120")
	out, err := uc.Update(context.Background(), created.ID, dto.UpdateProductRequest{SalePrice: &newPrice})
	require.NoError(t, err)

	assert.Equal(t, "Taladro", out.Name, "los campos no enviados se conservan")
	assert.True(t, out.SalePrice.Equal(newPrice))
}

func TestDeleteProduct_Inexistente(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo())

	err := uc.Delete(context.Background(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests List — indicador de stock bajo
// ──────────────────────────────────────────────────────────────────────────────

func TestListProducts_IndicadorStockBajo(t *testing.T) {
	repo := newFakeProductRepo()
	uc := usecase.NewProductUseCase(repo)

	bajo, err := uc.Create(context.Background(), dto.CreateProductRequest{
		Name: "Bajo", SKU: "B-1", CurrentStock: 5, MinStock: 10,
	})
	require.NoError(t, err)
	assert.True(t, bajo.LowStock, "stock 5 con mínimo 10 marca stock bajo")

	limite, err := uc.Create(context.Background(), dto.CreateProductRequest{
		Name: "Límite", SKU: "L-1", CurrentStock: 10, MinStock: 10,
	})
	require.NoError(t, err)
	assert.True(t, limite.LowStock, "stock igual al mínimo también marca stock bajo")

	ok, err := uc.Create(context.Background(), dto.CreateProductRequest{
		Name: "OK", SKU: "O-1", CurrentStock: 11, MinStock: 10,
	})
	require.NoError(t, err)
	assert.False(t, ok.LowStock)
}

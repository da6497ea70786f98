// Package analytics contiene los casos de uso de solo lectura del panel:
// el resumen del Dashboard y las agregaciones de Reportes.
package analytics

import (
	"context"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"stockpanel/internal/application/dto"
	"stockpanel/internal/domain/entity"
	"stockpanel/internal/domain/repository"
)

const dashboardTopProducts = 5   // tarjetas del widget "top por valor"
const dashboardRecentMovements = 5 // filas del widget "movimientos recientes"

// DashboardUseCase genera el resumen del panel principal.
//
// Todo se deriva del snapshot cargado en la misma petición: no hay caché ni
// actualización incremental, un recálculo sobre el mismo snapshot debe
// reproducir las cifras exactas.
type DashboardUseCase struct {
	productRepo  repository.ProductRepository
	alertRepo    repository.AlertRepository
	movementRepo repository.MovementRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(
	productRepo repository.ProductRepository,
	alertRepo repository.AlertRepository,
	movementRepo repository.MovementRepository,
) *DashboardUseCase {
	return &DashboardUseCase{
		productRepo:  productRepo,
		alertRepo:    alertRepo,
		movementRepo: movementRepo,
	}
}

// GetSummary construye el DashboardSummary.
//
// Tres consultas en paralelo, sin orden garantizado entre ellas más allá de
// "todas completas antes de derivar":
//  1. productos (con categoría resuelta)
//  2. alertas pendientes (de cualquier tipo: la stat "stock bajo" las cuenta todas)
//  3. los 5 movimientos más recientes (con producto resuelto)
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.DashboardSummary, error) {
	type productsResult struct {
		products []repository.ProductWithRefs
		err      error
	}
	type alertsResult struct {
		alerts []*entity.StockAlert
		err    error
	}
	type movementsResult struct {
		movements []repository.MovementWithProduct
		err       error
	}

	productsCh := make(chan productsResult, 1)
	alertsCh := make(chan alertsResult, 1)
	movementsCh := make(chan movementsResult, 1)

	go func() {
		products, err := uc.productRepo.List(ctx)
		productsCh <- productsResult{products, err}
	}()
	go func() {
		alerts, err := uc.alertRepo.ListUnresolved(ctx)
		alertsCh <- alertsResult{alerts, err}
	}()
	go func() {
		movements, err := uc.movementRepo.List(ctx, repository.MovementFilter{Limit: dashboardRecentMovements})
		movementsCh <- movementsResult{movements, err}
	}()

	products := <-productsCh
	alerts := <-alertsCh
	movements := <-movementsCh

	if products.err != nil {
		return nil, fmt.Errorf("dashboard: productos: %w", products.err)
	}
	if alerts.err != nil {
		return nil, fmt.Errorf("dashboard: alertas: %w", alerts.err)
	}
	if movements.err != nil {
		return nil, fmt.Errorf("dashboard: movimientos: %w", movements.err)
	}

	// Valor total del inventario: Σ stock_actual × precio_venta.
	totalValue := decimal.Zero
	for _, p := range products.products {
		totalValue = totalValue.Add(p.StockValue())
	}

	// Top 5 productos por valor de inventario.
	sorted := make([]repository.ProductWithRefs, len(products.products))
	copy(sorted, products.products)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].StockValue().GreaterThan(sorted[j].StockValue())
	})
	if len(sorted) > dashboardTopProducts {
		sorted = sorted[:dashboardTopProducts]
	}
	top := make([]dto.TopProductDTO, 0, len(sorted))
	for _, p := range sorted {
		top = append(top, dto.TopProductDTO{
			ID:           p.ID,
			Name:         p.Name,
			CurrentStock: p.CurrentStock,
			SalePrice:    p.SalePrice,
			StockValue:   p.StockValue(),
		})
	}

	recent := make([]dto.MovementResponse, 0, len(movements.movements))
	for _, m := range movements.movements {
		recent = append(recent, dto.MovementResponse{
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
		})
	}

	return &dto.DashboardSummary{
		TotalProducts:   len(products.products),
		LowStockCount:   len(alerts.alerts),
		TotalValue:      totalValue,
		RecentMovements: recent,
		TopProducts:     top,
	}, nil
}

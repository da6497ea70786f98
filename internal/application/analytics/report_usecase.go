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

const reportLowStockRows = 5   // filas de la tabla de stock bajo
const reportTopSellingRows = 5 // filas del top por unidades vendidas

// uncategorizedLabel agrupa los productos sin categoría asignada en el
// histograma. Los destinos de salidas sin producto resoluble usan su propio
// rótulo.
const (
	uncategorizedLabel  = "Sin categoría"
	unknownProductLabel = "Desconocido"
)

// ReportPDFGenerator exporta un ReportSummary como documento PDF.
type ReportPDFGenerator interface {
	Generate(summary *dto.ReportSummary) ([]byte, error)
}

// ReportUseCase genera el agregado de la vista de reportes sobre el histórico
// completo de movimientos y el catálogo de productos.
type ReportUseCase struct {
	productRepo  repository.ProductRepository
	movementRepo repository.MovementRepository
	pdfGenerator ReportPDFGenerator
}

// NewReportUseCase construye el caso de uso. pdfGenerator puede ser nil si la
// exportación no está habilitada.
func NewReportUseCase(
	productRepo repository.ProductRepository,
	movementRepo repository.MovementRepository,
	pdfGenerator ReportPDFGenerator,
) *ReportUseCase {
	return &ReportUseCase{
		productRepo:  productRepo,
		movementRepo: movementRepo,
		pdfGenerator: pdfGenerator,
	}
}

// GetSummary construye el ReportSummary completo.
//
// Los totales monetarios usan el total_price congelado de cada movimiento, no
// precios actuales: un reporte sobre el mismo histórico reproduce las mismas
// cifras aunque los precios del catálogo hayan cambiado.
func (uc *ReportUseCase) GetSummary(ctx context.Context) (*dto.ReportSummary, error) {
	type productsResult struct {
		products []repository.ProductWithRefs
		err      error
	}
	type movementsResult struct {
		movements []*entity.InventoryMovement
		err       error
	}

	productsCh := make(chan productsResult, 1)
	movementsCh := make(chan movementsResult, 1)

	go func() {
		products, err := uc.productRepo.List(ctx)
		productsCh <- productsResult{products, err}
	}()
	go func() {
		movements, err := uc.movementRepo.ListAll(ctx)
		movementsCh <- movementsResult{movements, err}
	}()

	products := <-productsCh
	movements := <-movementsCh

	if products.err != nil {
		return nil, fmt.Errorf("reportes: productos: %w", products.err)
	}
	if movements.err != nil {
		return nil, fmt.Errorf("reportes: movimientos: %w", movements.err)
	}

	summary := &dto.ReportSummary{
		TotalInvestment: decimal.Zero,
		TotalRevenue:    decimal.Zero,
	}

	// Partición entradas/salidas y acumulado de unidades vendidas por producto.
	soldByProduct := make(map[string]int)
	for _, m := range movements.movements {
		switch m.Type {
		case entity.MovementTypeEntrada:
			summary.TotalEntries++
			summary.TotalInvestment = summary.TotalInvestment.Add(m.TotalPrice)
		case entity.MovementTypeSalida:
			summary.TotalExits++
			summary.TotalRevenue = summary.TotalRevenue.Add(m.TotalPrice)
			soldByProduct[m.ProductID] += m.Quantity
		}
	}
	summary.Profit = summary.TotalRevenue.Sub(summary.TotalInvestment)

	summary.ProductsByCategory = buildCategoryHistogram(products.products)
	summary.LowStockProducts = buildLowStockRows(products.products)
	summary.TopSellingProducts = buildTopSelling(products.products, soldByProduct)

	return summary, nil
}

// ExportPDF genera el resumen y lo exporta como PDF.
func (uc *ReportUseCase) ExportPDF(ctx context.Context) ([]byte, error) {
	if uc.pdfGenerator == nil {
		return nil, fmt.Errorf("reportes: exportación PDF no configurada")
	}
	summary, err := uc.GetSummary(ctx)
	if err != nil {
		return nil, err
	}
	return uc.pdfGenerator.Generate(summary)
}

// buildCategoryHistogram agrupa productos por nombre de categoría y escala cada
// barra contra la categoría más poblada. Con máximo cero la barra es 0%.
func buildCategoryHistogram(products []repository.ProductWithRefs) []dto.CategoryCountDTO {
	counts := make(map[string]int)
	order := make([]string, 0)
	for _, p := range products {
		name := p.CategoryName
		if name == "" {
			name = uncategorizedLabel
		}
		if _, seen := counts[name]; !seen {
			order = append(order, name)
		}
		counts[name]++
	}

	maxCount := 0
	for _, c := range counts {
		if c > maxCount {
			maxCount = c
		}
	}

	histogram := make([]dto.CategoryCountDTO, 0, len(order))
	for _, name := range order {
		percentage := 0.0
		if maxCount > 0 {
			percentage = float64(counts[name]) / float64(maxCount) * 100
		}
		histogram = append(histogram, dto.CategoryCountDTO{
			Category:   name,
			Count:      counts[name],
			Percentage: percentage,
		})
	}
	return histogram
}

// buildLowStockRows toma los primeros 5 productos con stock en o bajo el
// mínimo, en el orden en que llegan del catálogo.
func buildLowStockRows(products []repository.ProductWithRefs) []dto.LowStockProductDTO {
	rows := make([]dto.LowStockProductDTO, 0, reportLowStockRows)
	for _, p := range products {
		if !p.IsLowStock() {
			continue
		}
		rows = append(rows, dto.LowStockProductDTO{
			Name:     p.Name,
			Stock:    p.CurrentStock,
			MinStock: p.MinStock,
		})
		if len(rows) == reportLowStockRows {
			break
		}
	}
	return rows
}

// buildTopSelling ordena los acumulados de salidas por unidades descendentes y
// toma los primeros 5. Los product_id que ya no existen en el catálogo se
// presentan con un rótulo fijo en lugar de descartarse.
func buildTopSelling(products []repository.ProductWithRefs, soldByProduct map[string]int) []dto.TopSellingDTO {
	names := make(map[string]string, len(products))
	for _, p := range products {
		names[p.ID] = p.Name
	}

	type sold struct {
		productID string
		quantity  int
	}
	ranked := make([]sold, 0, len(soldByProduct))
	for id, qty := range soldByProduct {
		ranked = append(ranked, sold{id, qty})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].quantity != ranked[j].quantity {
			return ranked[i].quantity > ranked[j].quantity
		}
		return ranked[i].productID < ranked[j].productID
	})
	if len(ranked) > reportTopSellingRows {
		ranked = ranked[:reportTopSellingRows]
	}

	maxQty := 0
	if len(ranked) > 0 {
		maxQty = ranked[0].quantity
	}

	top := make([]dto.TopSellingDTO, 0, len(ranked))
	for _, r := range ranked {
		name := names[r.productID]
		if name == "" {
			name = unknownProductLabel
		}
		percentage := 0.0
		if maxQty > 0 {
			percentage = float64(r.quantity) / float64(maxQty) * 100
		}
		top = append(top, dto.TopSellingDTO{
			Name:       name,
			Quantity:   r.quantity,
			Percentage: percentage,
		})
	}
	return top
}

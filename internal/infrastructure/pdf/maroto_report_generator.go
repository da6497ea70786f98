// Package pdf implementa la exportación del reporte de inventario como
// documento PDF usando Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título + fecha de generación                        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  KPIs: Inversión | Ingresos | Ganancia | Entradas | Salidas  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Productos por categoría (con % de barra)             │
//	│  TABLA: Productos con stock bajo                             │
//	│  TABLA: Más vendidos por unidades                            │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"stockpanel/internal/application/dto"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorRed     = &props.Color{Red: 180, Green: 40, Blue: 40}
	colorGreen   = &props.Color{Red: 30, Green: 120, Blue: 60}
)

// MarotoReportGenerator implementa analytics.ReportPDFGenerator usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// Generate genera el PDF del reporte y devuelve sus bytes.
func (g *MarotoReportGenerator) Generate(summary *dto.ReportSummary) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de Inventario", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow())
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(kpiRow(summary))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(sectionTitleRow("PRODUCTOS POR CATEGORÍA"))
	for _, r := range categoryRows(summary.ProductsByCategory) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(2))
	m.AddRows(sectionTitleRow("PRODUCTOS CON STOCK BAJO"))
	for _, r := range lowStockRows(summary.LowStockProducts) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(2))
	m.AddRows(sectionTitleRow("MÁS VENDIDOS (UNIDADES)"))
	for _, r := range topSellingRows(summary.TopSellingProducts) {
		m.AddRows(r)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar reporte: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: título + fecha de generación.
func headerRow() core.Row {
	fecha := time.Now().Format("02/01/2006 15:04")
	return row.New(14).Add(
		col.New(8).Add(
			text.New("Reporte de Inventario", props.Text{
				Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(4).Add(
			text.New("Generado: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 4, Color: colorGray,
			}),
		),
	)
}

// kpiRow: los cinco indicadores financieros/operativos en una fila.
func kpiRow(summary *dto.ReportSummary) core.Row {
	kpi := func(label, value string, valueColor *props.Color) core.Col {
		return col.New(3).Add(
			text.New(label, props.Text{
				Size: 7, Align: align.Center, Color: colorGray, Top: 1,
			}),
			text.New(value, props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Center,
				Color: valueColor, Top: 6,
			}),
		)
	}
	profitColor := colorGreen
	if summary.Profit.IsNegative() {
		profitColor = colorRed
	}
	return row.New(14).Add(
		kpi("Inversión total", "$"+money(summary.TotalInvestment), colorPrimary),
		kpi("Ingresos totales", "$"+money(summary.TotalRevenue), colorPrimary),
		kpi("Ganancia", "$"+money(summary.Profit), profitColor),
		col.New(3).Add(
			text.New("Entradas / Salidas", props.Text{
				Size: 7, Align: align.Center, Color: colorGray, Top: 1,
			}),
			text.New(fmt.Sprintf("%d / %d", summary.TotalEntries, summary.TotalExits), props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Center,
				Color: colorPrimary, Top: 6,
			}),
		),
	)
}

func sectionTitleRow(title string) core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(title, props.Text{
			Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Top: 2,
		}),
	))
}

// categoryRows: una fila por categoría con conteo y porcentaje de barra.
func categoryRows(items []dto.CategoryCountDTO) []core.Row {
	if len(items) == 0 {
		return []core.Row{emptyRow("Sin productos registrados")}
	}
	rows := make([]core.Row, 0, len(items))
	for _, it := range items {
		rows = append(rows, row.New(6).Add(
			col.New(6).Add(text.New(it.Category, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(3).Add(text.New(fmt.Sprintf("%d productos", it.Count), props.Text{
				Size: 8, Align: align.Right, Top: 1,
			})),
			col.New(3).Add(text.New(fmt.Sprintf("%.0f%%", it.Percentage), props.Text{
				Size: 8, Align: align.Right, Top: 1, Right: 1, Color: colorGray,
			})),
		))
	}
	return rows
}

// lowStockRows: nombre, stock actual y stock mínimo por producto.
func lowStockRows(items []dto.LowStockProductDTO) []core.Row {
	if len(items) == 0 {
		return []core.Row{emptyRow("Sin productos con stock bajo")}
	}
	rows := make([]core.Row, 0, len(items))
	for _, it := range items {
		rows = append(rows, row.New(6).Add(
			col.New(6).Add(text.New(it.Name, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(3).Add(text.New(fmt.Sprintf("Stock: %d", it.Stock), props.Text{
				Size: 8, Align: align.Right, Top: 1, Color: colorRed,
			})),
			col.New(3).Add(text.New(fmt.Sprintf("Mínimo: %d", it.MinStock), props.Text{
				Size: 8, Align: align.Right, Top: 1, Right: 1, Color: colorGray,
			})),
		))
	}
	return rows
}

// topSellingRows: nombre, unidades vendidas y porcentaje de barra.
func topSellingRows(items []dto.TopSellingDTO) []core.Row {
	if len(items) == 0 {
		return []core.Row{emptyRow("Sin salidas registradas")}
	}
	rows := make([]core.Row, 0, len(items))
	for _, it := range items {
		rows = append(rows, row.New(6).Add(
			col.New(6).Add(text.New(it.Name, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(3).Add(text.New(fmt.Sprintf("%d unidades", it.Quantity), props.Text{
				Size: 8, Align: align.Right, Top: 1,
			})),
			col.New(3).Add(text.New(fmt.Sprintf("%.0f%%", it.Percentage), props.Text{
				Size: 8, Align: align.Right, Top: 1, Right: 1, Color: colorGray,
			})),
		))
	}
	return rows
}

func emptyRow(msg string) core.Row {
	return row.New(6).Add(col.New(12).Add(
		text.New(msg, props.Text{Size: 8, Top: 1, Left: 1, Color: colorGray}),
	))
}

// money formatea un monto con dos decimales y puntos de miles.
// Ej: 1234567.5 → "1.234.567,50"
func money(d decimal.Decimal) string {
	s := d.Abs().StringFixed(2)
	intPart := s[:len(s)-3]
	decPart := s[len(s)-2:]

	n := len(intPart)
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(intPart) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, c)
	}
	out := string(buf) + "," + decPart
	if d.IsNegative() {
		out = "-" + out
	}
	return out
}

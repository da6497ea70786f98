package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"stockpanel/internal/application/analytics"
	"stockpanel/internal/application/dto"
)

// ReportHandler expone el agregado de reportes y su exportación PDF (protegido).
type ReportHandler struct {
	uc *analytics.ReportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *analytics.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// GetSummary godoc
// @Summary      Reporte de inventario
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ReportSummary
// @Router       /api/reports [get]
//
// Un error de lectura se registra y responde 200 con el agregado en ceros.
func (h *ReportHandler) GetSummary(c *fiber.Ctx) error {
	out, err := h.uc.GetSummary(c.Context())
	if err != nil {
		log.Error().Err(err).Msg("reporte de inventario")
		return c.JSON(dto.ReportSummary{
			TotalInvestment:    decimal.Zero,
			TotalRevenue:       decimal.Zero,
			Profit:             decimal.Zero,
			ProductsByCategory: []dto.CategoryCountDTO{},
			LowStockProducts:   []dto.LowStockProductDTO{},
			TopSellingProducts: []dto.TopSellingDTO{},
		})
	}
	return c.JSON(out)
}

// Export godoc
// @Summary      Exportar reporte como PDF
// @Tags         reports
// @Security     Bearer
// @Produce      application/pdf
// @Success      200  {file}  binary
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/reports/export [get]
//
// A diferencia de las vistas, un PDF a medias no sirve de nada: aquí el error
// sí se devuelve como 500.
func (h *ReportHandler) Export(c *fiber.Ctx) error {
	pdfBytes, err := h.uc.ExportPDF(c.Context())
	if err != nil {
		log.Error().Err(err).Msg("exportar reporte PDF")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "no se pudo generar el PDF"})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="reporte-inventario.pdf"`)
	return c.Send(pdfBytes)
}

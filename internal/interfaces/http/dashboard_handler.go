package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"stockpanel/internal/application/analytics"
	"stockpanel/internal/application/dto"
)

// DashboardHandler expone el resumen del panel principal (protegido).
type DashboardHandler struct {
	uc *analytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *analytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetSummary godoc
// @Summary      Resumen del dashboard
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardSummary
// @Router       /api/dashboard [get]
//
// Un error de lectura se registra y responde 200 con el resumen en ceros:
// el panel muestra tarjetas vacías en lugar de romperse.
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	out, err := h.uc.GetSummary(c.Context())
	if err != nil {
		log.Error().Err(err).Msg("resumen del dashboard")
		return c.JSON(dto.DashboardSummary{
			TotalValue:      decimal.Zero,
			RecentMovements: []dto.MovementResponse{},
			TopProducts:     []dto.TopProductDTO{},
		})
	}
	return c.JSON(out)
}

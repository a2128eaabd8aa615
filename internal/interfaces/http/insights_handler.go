package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/salespulse-api/internal/application/dto"
	"github.com/jhoicas/salespulse-api/internal/application/usecase"
)

// InsightsHandler maneja la generación de insights con el analista IA.
type InsightsHandler struct {
	uc *usecase.InsightsUseCase
}

// NewInsightsHandler construye el handler.
func NewInsightsHandler(uc *usecase.InsightsUseCase) *InsightsHandler {
	return &InsightsHandler{uc: uc}
}

// Generate POST /api/insights
// La consulta es opcional; un fallo del servicio externo responde 200 con el
// mensaje de fallback, nunca un error: la llamada es consultiva y no afecta
// el estado.
func (h *InsightsHandler) Generate(c *fiber.Ctx) error {
	var in dto.InsightsRequest
	if err := c.BodyParser(&in); err != nil && len(c.Body()) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	return c.JSON(h.uc.Generate(c.Context(), in.Query))
}

package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/salespulse-api/internal/application/usecase"
)

// AnalyticsHandler maneja el endpoint del reporte de analítica.
type AnalyticsHandler struct {
	uc *usecase.AnalyticsUseCase
}

// NewAnalyticsHandler construye el handler.
func NewAnalyticsHandler(uc *usecase.AnalyticsUseCase) *AnalyticsHandler {
	return &AnalyticsHandler{uc: uc}
}

// GetReport devuelve top-5 de productos y clientes por ingreso y la serie
// diaria de los últimos 14 días con ventas.
// GET /api/analytics
func (h *AnalyticsHandler) GetReport(c *fiber.Ctx) error {
	return c.JSON(h.uc.GetReport())
}

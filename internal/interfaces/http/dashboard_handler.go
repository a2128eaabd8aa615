package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/salespulse-api/internal/application/analytics"
)

// DashboardHandler maneja el endpoint del resumen de negocio.
type DashboardHandler struct {
	uc *appanalytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *appanalytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetSummary devuelve las métricas de alto nivel del negocio.
// GET /api/dashboard
//
// Respuesta: DashboardSummaryDTO (total_revenue, trailing_revenue,
// sales_count, customer_count, trend, recent_sales[5]).
// No requiere parámetros; las fechas se calculan en el servidor.
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	return c.JSON(h.uc.GetSummary())
}

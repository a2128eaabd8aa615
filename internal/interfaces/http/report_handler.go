package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/salespulse-api/internal/application/dto"
	"github.com/jhoicas/salespulse-api/internal/application/usecase"
)

// ReportHandler maneja la descarga del reporte de ventas en PDF.
type ReportHandler struct {
	uc *usecase.ReportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *usecase.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// SalesReport GET /api/reports/sales
func (h *ReportHandler) SalesReport(c *fiber.Ctx) error {
	pdf, err := h.uc.GenerateSalesReport(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="sales_report.pdf"`)
	return c.Send(pdf)
}

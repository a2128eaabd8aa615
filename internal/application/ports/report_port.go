package ports

import (
	"context"

	"github.com/jhoicas/salespulse-api/internal/application/dto"
)

// SalesReportGenerator genera la representación PDF del reporte de ventas.
type SalesReportGenerator interface {
	GenerateSalesReport(ctx context.Context, data dto.SalesReportData) ([]byte, error)
}

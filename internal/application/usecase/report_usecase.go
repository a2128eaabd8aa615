package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/salespulse-api/internal/application/dto"
	"github.com/jhoicas/salespulse-api/internal/application/ports"
	"github.com/jhoicas/salespulse-api/internal/domain/tracker"
)

const reportRecentSales = 10 // filas en la tabla de ventas recientes del PDF

// ReportUseCase arma los datos agregados del reporte de ventas y delega la
// representación al generador PDF.
type ReportUseCase struct {
	source    ports.StateSource
	generator ports.SalesReportGenerator
	appName   string
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(source ports.StateSource, generator ports.SalesReportGenerator, appName string) *ReportUseCase {
	return &ReportUseCase{source: source, generator: generator, appName: appName}
}

// GenerateSalesReport devuelve los bytes del PDF con las métricas del
// dashboard, el top-5 de productos y las ventas más recientes.
func (uc *ReportUseCase) GenerateSalesReport(ctx context.Context) ([]byte, error) {
	state := uc.source.Snapshot()
	now := time.Now().UTC()

	top := tracker.TopProductsByRevenue(state, 5)
	topProducts := make([]dto.RevenueEntryDTO, 0, len(top))
	for _, e := range top {
		topProducts = append(topProducts, dto.RevenueEntryDTO{ID: e.ID, Name: e.Name, Revenue: e.Revenue})
	}

	recentCount := len(state.Sales)
	if recentCount > reportRecentSales {
		recentCount = reportRecentSales
	}
	recent := make([]dto.ReportSaleRowDTO, 0, recentCount)
	for _, s := range state.Sales[:recentCount] {
		recent = append(recent, dto.ReportSaleRowDTO{
			Date:     s.Date,
			Customer: s.CustomerName,
			Status:   s.Status,
			Amount:   s.TotalAmount,
		})
	}

	data := dto.SalesReportData{
		AppName:         uc.appName,
		GeneratedAt:     now,
		TotalRevenue:    tracker.TotalRevenue(state).Round(2),
		TrailingRevenue: tracker.TrailingRevenue(state, now, 30*24*time.Hour).Round(2),
		SalesCount:      len(state.Sales),
		CustomerCount:   len(state.Customers),
		TopProducts:     topProducts,
		RecentSales:     recent,
	}

	pdf, err := uc.generator.GenerateSalesReport(ctx, data)
	if err != nil {
		return nil, fmt.Errorf("reporte de ventas: %w", err)
	}
	return pdf, nil
}

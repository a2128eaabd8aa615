package usecase

import (
	"github.com/jhoicas/salespulse-api/internal/application/dto"
	"github.com/jhoicas/salespulse-api/internal/application/ports"
	"github.com/jhoicas/salespulse-api/internal/domain/tracker"
)

const (
	analyticsTopN    = 5  // entradas por ranking
	analyticsMaxDays = 14 // días en la serie diaria
)

// AnalyticsUseCase genera el reporte de analítica recalculándolo completo
// sobre el snapshot actual en cada invocación: no hay agregación incremental
// ni caché, los volúmenes de datos no lo ameritan.
type AnalyticsUseCase struct {
	source ports.StateSource
}

// NewAnalyticsUseCase construye el caso de uso.
func NewAnalyticsUseCase(source ports.StateSource) *AnalyticsUseCase {
	return &AnalyticsUseCase{source: source}
}

// GetReport devuelve top-5 de productos y clientes por ingreso (descendente,
// empates estables) y la serie de ingresos de a lo sumo los 14 días calendario
// más recientes con ventas, en orden ascendente.
func (uc *AnalyticsUseCase) GetReport() *dto.AnalyticsReportDTO {
	state := uc.source.Snapshot()

	topProducts := tracker.TopProductsByRevenue(state, analyticsTopN)
	topCustomers := tracker.TopCustomersByRevenue(state, analyticsTopN)
	daily := tracker.DailyRevenue(state, analyticsMaxDays)

	report := &dto.AnalyticsReportDTO{
		TopProducts:  toRevenueEntries(topProducts),
		TopCustomers: toRevenueEntries(topCustomers),
		DailyRevenue: make([]dto.DailyRevenueDTO, 0, len(daily)),
	}
	for _, p := range daily {
		report.DailyRevenue = append(report.DailyRevenue, dto.DailyRevenueDTO{
			Date:   p.Date,
			Amount: p.Amount,
		})
	}
	return report
}

func toRevenueEntries(entries []tracker.RevenueEntry) []dto.RevenueEntryDTO {
	out := make([]dto.RevenueEntryDTO, 0, len(entries))
	for _, e := range entries {
		out = append(out, dto.RevenueEntryDTO{ID: e.ID, Name: e.Name, Revenue: e.Revenue})
	}
	return out
}

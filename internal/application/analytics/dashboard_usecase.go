// Package analytics contiene el caso de uso del Dashboard: el resumen de
// negocio que la vista principal recalcula sobre el estado vigente.
package analytics

import (
	"sort"
	"time"

	"github.com/jhoicas/salespulse-api/internal/application/dto"
	"github.com/jhoicas/salespulse-api/internal/application/ports"
	"github.com/jhoicas/salespulse-api/internal/domain/tracker"
)

const (
	trailingWindow     = 30 * 24 * time.Hour // ventana de ingreso reciente
	dashboardRecentMax = 5                   // ventas en el widget de transacciones
)

// DashboardUseCase genera las métricas de alto nivel: ingreso total, ingreso
// de los últimos 30 días, conteos y la curva de tendencia.
type DashboardUseCase struct {
	source ports.StateSource
	now    func() time.Time
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(source ports.StateSource) *DashboardUseCase {
	return &DashboardUseCase{source: source, now: time.Now}
}

// GetSummary construye el DashboardSummaryDTO desde el snapshot actual.
// La tendencia contiene todas las ventas en orden de fecha ascendente; el
// widget de recientes toma las primeras 5 de la secuencia (ya está ordenada
// de más reciente a más antigua por invariante del estado).
func (uc *DashboardUseCase) GetSummary() *dto.DashboardSummaryDTO {
	state := uc.source.Snapshot()
	now := uc.now()

	trend := make([]dto.TrendPointDTO, 0, len(state.Sales))
	for _, s := range state.Sales {
		trend = append(trend, dto.TrendPointDTO{Date: s.Date, Amount: s.TotalAmount})
	}
	sort.SliceStable(trend, func(i, j int) bool {
		return trend[i].Date.Before(trend[j].Date)
	})

	recentCount := len(state.Sales)
	if recentCount > dashboardRecentMax {
		recentCount = dashboardRecentMax
	}
	recent := make([]dto.RecentSaleDTO, 0, recentCount)
	for _, s := range state.Sales[:recentCount] {
		recent = append(recent, dto.RecentSaleDTO{
			ID:           s.ID,
			CustomerName: s.CustomerName,
			Date:         s.Date,
			TotalAmount:  s.TotalAmount,
			Status:       s.Status,
		})
	}

	return &dto.DashboardSummaryDTO{
		TotalRevenue:    tracker.TotalRevenue(state).Round(2),
		TrailingRevenue: tracker.TrailingRevenue(state, now, trailingWindow).Round(2),
		SalesCount:      len(state.Sales),
		CustomerCount:   len(state.Customers),
		Trend:           trend,
		RecentSales:     recent,
	}
}

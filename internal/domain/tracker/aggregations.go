package tracker

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/salespulse-api/internal/domain/entity"
)

var hundred = decimal.NewFromInt(100)

// RevenueEntry es una fila de ranking: un producto o cliente con su ingreso acumulado.
type RevenueEntry struct {
	ID      string          `json:"id"`
	Name    string          `json:"name"`
	Revenue decimal.Decimal `json:"revenue"`
}

// DailyPoint es un punto de la serie de ingresos por día calendario (UTC).
type DailyPoint struct {
	Date   string          `json:"date"` // formato 2006-01-02
	Amount decimal.Decimal `json:"amount"`
}

// TotalRevenue suma TotalAmount sobre todas las ventas.
func TotalRevenue(state entity.AppState) decimal.Decimal {
	total := decimal.Zero
	for _, s := range state.Sales {
		total = total.Add(s.TotalAmount)
	}
	return total
}

// TrailingRevenue suma TotalAmount de las ventas cuya fecha cae dentro de la
// ventana que termina en now. Borde inferior inclusivo: date >= now-window.
func TrailingRevenue(state entity.AppState, now time.Time, window time.Duration) decimal.Decimal {
	cutoff := now.Add(-window)
	total := decimal.Zero
	for _, s := range state.Sales {
		if !s.Date.Before(cutoff) {
			total = total.Add(s.TotalAmount)
		}
	}
	return total
}

// TopProductsByRevenue devuelve los n productos con mayor ingreso acumulado,
// sumando el Total de cada línea de venta que referencia su ID. Orden
// descendente estable: los empates conservan el orden del catálogo.
func TopProductsByRevenue(state entity.AppState, n int) []RevenueEntry {
	entries := make([]RevenueEntry, 0, len(state.Products))
	for _, p := range state.Products {
		total := decimal.Zero
		for _, s := range state.Sales {
			for _, it := range s.Items {
				if it.ProductID == p.ID {
					total = total.Add(it.Total)
				}
			}
		}
		entries = append(entries, RevenueEntry{ID: p.ID, Name: p.Name, Revenue: total})
	}
	return topN(entries, n)
}

// TopCustomersByRevenue devuelve los n clientes con mayor gasto acumulado,
// sumando TotalAmount de cada venta que los referencia.
func TopCustomersByRevenue(state entity.AppState, n int) []RevenueEntry {
	entries := make([]RevenueEntry, 0, len(state.Customers))
	for _, c := range state.Customers {
		total := decimal.Zero
		for _, s := range state.Sales {
			if s.CustomerID == c.ID {
				total = total.Add(s.TotalAmount)
			}
		}
		entries = append(entries, RevenueEntry{ID: c.ID, Name: c.Name, Revenue: total})
	}
	return topN(entries, n)
}

// DailyRevenue agrupa las ventas por fecha calendario (componente de fecha en
// UTC, ignorando la hora), suma TotalAmount por grupo y devuelve a lo sumo los
// maxDays grupos más recientes en orden ascendente. Los días sin ventas no
// aparecen: no se rellenan con cero.
func DailyRevenue(state entity.AppState, maxDays int) []DailyPoint {
	byDate := make(map[string]decimal.Decimal)
	for _, s := range state.Sales {
		key := s.Date.UTC().Format("2006-01-02")
		byDate[key] = byDate[key].Add(s.TotalAmount)
	}

	dates := make([]string, 0, len(byDate))
	for d := range byDate {
		dates = append(dates, d)
	}
	sort.Strings(dates)

	if maxDays > 0 && len(dates) > maxDays {
		dates = dates[len(dates)-maxDays:]
	}

	points := make([]DailyPoint, 0, len(dates))
	for _, d := range dates {
		points = append(points, DailyPoint{Date: d, Amount: byDate[d]})
	}
	return points
}

// GoalProgress devuelve el porcentaje de avance de la meta, redondeado y
// limitado a 100. Un TargetAmount cero o negativo devuelve 0 en lugar de
// dividir: la creación de metas es total y no puede rechazarlo.
func GoalProgress(goal entity.Goal) int64 {
	if goal.TargetAmount.LessThanOrEqual(decimal.Zero) {
		return 0
	}
	pct := goal.CurrentAmount.Div(goal.TargetAmount).Mul(hundred)
	if pct.GreaterThan(hundred) {
		return 100
	}
	return pct.Round(0).IntPart()
}

// topN ordena descendente por ingreso (estable) y corta a n entradas.
func topN(entries []RevenueEntry, n int) []RevenueEntry {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Revenue.GreaterThan(entries[j].Revenue)
	})
	if n > 0 && len(entries) > n {
		entries = entries[:n]
	}
	return entries
}

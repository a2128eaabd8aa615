package dto

import "github.com/shopspring/decimal"

// AnalyticsReportDTO reporte de analítica: rankings top-5 y serie diaria.
type AnalyticsReportDTO struct {
	TopProducts  []RevenueEntryDTO `json:"top_products"`
	TopCustomers []RevenueEntryDTO `json:"top_customers"`
	DailyRevenue []DailyRevenueDTO `json:"daily_revenue"` // a lo sumo 14 días, ascendente
}

// RevenueEntryDTO fila de ranking por ingreso acumulado.
type RevenueEntryDTO struct {
	ID      string          `json:"id"`
	Name    string          `json:"name"`
	Revenue decimal.Decimal `json:"revenue"`
}

// DailyRevenueDTO ingreso agregado de un día calendario (UTC).
type DailyRevenueDTO struct {
	Date   string          `json:"date"`
	Amount decimal.Decimal `json:"amount"`
}

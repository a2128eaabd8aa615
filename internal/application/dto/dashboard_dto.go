package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// DashboardSummaryDTO métricas de alto nivel para la vista principal.
type DashboardSummaryDTO struct {
	TotalRevenue    decimal.Decimal `json:"total_revenue"`
	TrailingRevenue decimal.Decimal `json:"trailing_revenue"` // últimos 30 días
	SalesCount      int             `json:"sales_count"`
	CustomerCount   int             `json:"customer_count"`
	Trend           []TrendPointDTO `json:"trend"`        // todas las ventas, fecha ascendente
	RecentSales     []RecentSaleDTO `json:"recent_sales"` // las 5 más recientes
}

// TrendPointDTO un punto de la curva de ingresos (una venta).
type TrendPointDTO struct {
	Date   time.Time       `json:"date"`
	Amount decimal.Decimal `json:"amount"`
}

// RecentSaleDTO fila del widget de transacciones recientes.
type RecentSaleDTO struct {
	ID           string          `json:"id"`
	CustomerName string          `json:"customer_name"`
	Date         time.Time       `json:"date"`
	TotalAmount  decimal.Decimal `json:"total_amount"`
	Status       string          `json:"status"`
}

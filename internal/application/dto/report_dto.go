package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SalesReportData datos ya agregados para la representación PDF del reporte
// de ventas. El generador no consulta el estado: recibe todo resuelto.
type SalesReportData struct {
	AppName         string
	GeneratedAt     time.Time
	TotalRevenue    decimal.Decimal
	TrailingRevenue decimal.Decimal // últimos 30 días
	SalesCount      int
	CustomerCount   int
	TopProducts     []RevenueEntryDTO
	RecentSales     []ReportSaleRowDTO
}

// ReportSaleRowDTO fila de la tabla de ventas recientes del PDF.
type ReportSaleRowDTO struct {
	Date     time.Time
	Customer string
	Status   string
	Amount   decimal.Decimal
}

package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// InsightsRequest consulta libre opcional para el analista IA.
type InsightsRequest struct {
	Query string `json:"query"`
}

// InsightsResponse texto markdown generado (o el mensaje de fallback).
type InsightsResponse struct {
	Insights    string    `json:"insights"`
	Provider    string    `json:"provider"`
	GeneratedAt time.Time `json:"generated_at"`
}

// InsightDataSummary resumen acotado del estado que se envía al LLM para
// reducir tokens: a lo sumo las 50 ventas más recientes, el catálogo reducido
// a nombre/stock/precio y las metas completas.
type InsightDataSummary struct {
	CurrentDate string           `json:"current_date"`
	Sales       []SaleSummary    `json:"sales"`
	Products    []ProductSummary `json:"products"`
	Goals       []GoalSummary    `json:"goals"`
}

// SaleSummary venta reducida a fecha, monto redondeado y cliente.
type SaleSummary struct {
	Date     string `json:"date"` // 2006-01-02
	Amount   int64  `json:"amount"`
	Customer string `json:"customer"`
}

// ProductSummary producto reducido a nombre, stock y precio.
type ProductSummary struct {
	Name  string          `json:"name"`
	Stock int64           `json:"stock"`
	Price decimal.Decimal `json:"price"`
}

// GoalSummary meta completa tal como vive en el estado.
type GoalSummary struct {
	ID            string          `json:"id"`
	Title         string          `json:"title"`
	TargetAmount  decimal.Decimal `json:"targetAmount"`
	CurrentAmount decimal.Decimal `json:"currentAmount"`
	Deadline      time.Time       `json:"deadline"`
	Type          string          `json:"type"`
}

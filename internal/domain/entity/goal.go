package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de meta: seleccionan qué atributo de cada venta incrementa el progreso.
const (
	GoalTypeRevenue    = "revenue"     // CurrentAmount += TotalAmount de la venta
	GoalTypeSalesCount = "sales_count" // CurrentAmount += 1 por venta
)

// Goal representa una meta de ingresos o de volumen de ventas.
// CurrentAmount inicia en 0 al crearse y NO se rellena con el histórico de
// ventas existente; solo las ventas registradas después la incrementan.
type Goal struct {
	ID            string          `json:"id"`
	Title         string          `json:"title"`
	TargetAmount  decimal.Decimal `json:"targetAmount"`
	CurrentAmount decimal.Decimal `json:"currentAmount"`
	Deadline      time.Time       `json:"deadline"`
	Type          string          `json:"type"`
}

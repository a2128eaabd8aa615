package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateGoalRequest entrada para crear una meta.
// Deadline en formato 2006-01-02. Type: "revenue" o "sales_count".
// El progreso inicial siempre es 0, sin importar el histórico de ventas.
type CreateGoalRequest struct {
	Title        string          `json:"title"`
	TargetAmount decimal.Decimal `json:"targetAmount"`
	Deadline     string          `json:"deadline"`
	Type         string          `json:"type"`
}

// GoalResponse una meta con su porcentaje de avance calculado (0–100).
type GoalResponse struct {
	ID            string          `json:"id"`
	Title         string          `json:"title"`
	TargetAmount  decimal.Decimal `json:"targetAmount"`
	CurrentAmount decimal.Decimal `json:"currentAmount"`
	Deadline      time.Time       `json:"deadline"`
	Type          string          `json:"type"`
	Progress      int64           `json:"progress"`
}

// GoalListResponse listado de metas en orden de inserción.
type GoalListResponse struct {
	Items []GoalResponse `json:"items"`
	Total int            `json:"total"`
}

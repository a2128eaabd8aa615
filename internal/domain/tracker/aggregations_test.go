package tracker_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/salespulse-api/internal/domain/entity"
	"github.com/jhoicas/salespulse-api/internal/domain/tracker"
)

func TestTotalRevenue_SumaTodasLasVentas(t *testing.T) {
	state := entity.AppState{Sales: []entity.Sale{
		{ID: "s1", TotalAmount: dec("100.50")},
		{ID: "s2", TotalAmount: dec("200.25")},
		{ID: "s3", TotalAmount: dec("0.25")},
	}}

	total := tracker.TotalRevenue(state)

	assert.True(t, total.Equal(dec("301.00")), "total quedó %s", total)
}

func TestTotalRevenue_EstadoVacio(t *testing.T) {
	assert.True(t, tracker.TotalRevenue(entity.AppState{}).IsZero())
}

func TestTrailingRevenue_BordeInferiorInclusivo(t *testing.T) {
	now := date(2024, 3, 31)
	window := 30 * 24 * time.Hour
	state := entity.AppState{Sales: []entity.Sale{
		{ID: "dentro", TotalAmount: dec("100"), Date: now.Add(-5 * 24 * time.Hour)},
		{ID: "borde", TotalAmount: dec("10"), Date: now.Add(-window)}, // exactamente el corte: cuenta
		{ID: "fuera", TotalAmount: dec("1000"), Date: now.Add(-window - time.Second)},
	}}

	total := tracker.TrailingRevenue(state, now, window)

	assert.True(t, total.Equal(dec("110")), "solo cuentan dentro y borde, quedó %s", total)
}

// ──────────────────────────────────────────────────────────────────────────────
// Rankings top-N
// ──────────────────────────────────────────────────────────────────────────────

// buildRankingState arma 10 productos donde el producto pN acumula N*100 de
// ingreso, de modo que el ranking esperado es p10, p9, ... p6.
func buildRankingState() entity.AppState {
	products := make([]entity.Product, 0, 10)
	sales := make([]entity.Sale, 0, 10)
	for i := 1; i <= 10; i++ {
		id := fmt.Sprintf("p%d", i)
		products = append(products, entity.Product{ID: id, Name: "Producto " + id})
		amount := decimal.NewFromInt(int64(i * 100))
		sales = append(sales, entity.Sale{
			ID:          fmt.Sprintf("s%d", i),
			CustomerID:  "c1",
			TotalAmount: amount,
			Items: []entity.SaleItem{
				{ProductID: id, Quantity: 1, PriceAtSale: amount, Total: amount},
			},
		})
	}
	return entity.AppState{
		Customers: []entity.Customer{{ID: "c1", Name: "Acme Corp"}},
		Products:  products,
		Sales:     sales,
	}
}

func TestTopProductsByRevenue_CincoMayoresDescendente(t *testing.T) {
	state := buildRankingState()

	top := tracker.TopProductsByRevenue(state, 5)

	require.Len(t, top, 5)
	expected := []string{"p10", "p9", "p8", "p7", "p6"}
	for i, want := range expected {
		assert.Equal(t, want, top[i].ID, "posición %d", i)
	}
	assert.True(t, top[0].Revenue.Equal(dec("1000")))
}

func TestTopProductsByRevenue_EmpatesConservanOrdenDeCatalogo(t *testing.T) {
	state := entity.AppState{
		Products: []entity.Product{
			{ID: "pa", Name: "A"},
			{ID: "pb", Name: "B"},
		},
		Sales: []entity.Sale{
			{ID: "s1", Items: []entity.SaleItem{{ProductID: "pa", Total: dec("50")}}},
			{ID: "s2", Items: []entity.SaleItem{{ProductID: "pb", Total: dec("50")}}},
		},
	}

	top := tracker.TopProductsByRevenue(state, 5)

	require.Len(t, top, 2)
	assert.Equal(t, "pa", top[0].ID, "el orden estable preserva el catálogo en empates")
	assert.Equal(t, "pb", top[1].ID)
}

func TestTopProductsByRevenue_SumaTodasLasLineas(t *testing.T) {
	// Un mismo producto repetido en dos líneas de la misma venta: ambas cuentan.
	state := entity.AppState{
		Products: []entity.Product{{ID: "p1", Name: "Widget"}},
		Sales: []entity.Sale{
			{ID: "s1", Items: []entity.SaleItem{
				{ProductID: "p1", Total: dec("30")},
				{ProductID: "p1", Total: dec("20")},
			}},
		},
	}

	top := tracker.TopProductsByRevenue(state, 5)

	require.Len(t, top, 1)
	assert.True(t, top[0].Revenue.Equal(dec("50")))
}

func TestTopCustomersByRevenue_SumaPorCliente(t *testing.T) {
	state := entity.AppState{
		Customers: []entity.Customer{
			{ID: "c1", Name: "Acme Corp"},
			{ID: "c2", Name: "Globex"},
		},
		Sales: []entity.Sale{
			{ID: "s1", CustomerID: "c1", TotalAmount: dec("100")},
			{ID: "s2", CustomerID: "c2", TotalAmount: dec("300")},
			{ID: "s3", CustomerID: "c1", TotalAmount: dec("150")},
		},
	}

	top := tracker.TopCustomersByRevenue(state, 5)

	require.Len(t, top, 2)
	assert.Equal(t, "c2", top[0].ID)
	assert.True(t, top[0].Revenue.Equal(dec("300")))
	assert.True(t, top[1].Revenue.Equal(dec("250")))
}

// ──────────────────────────────────────────────────────────────────────────────
// Serie diaria
// ──────────────────────────────────────────────────────────────────────────────

func TestDailyRevenue_AgrupaPorDiaCalendarioUTC(t *testing.T) {
	state := entity.AppState{Sales: []entity.Sale{
		{ID: "s1", TotalAmount: dec("10"), Date: time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)},
		{ID: "s2", TotalAmount: dec("15"), Date: time.Date(2024, 3, 1, 22, 30, 0, 0, time.UTC)},
		{ID: "s3", TotalAmount: dec("7"), Date: time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC)},
	}}

	points := tracker.DailyRevenue(state, 14)

	require.Len(t, points, 2)
	assert.Equal(t, "2024-03-01", points[0].Date)
	assert.True(t, points[0].Amount.Equal(dec("25")), "las horas se ignoran, se agrupa por día")
	assert.Equal(t, "2024-03-02", points[1].Date)
}

func TestDailyRevenue_RecortaALosMasRecientes(t *testing.T) {
	sales := make([]entity.Sale, 0, 20)
	for i := 0; i < 20; i++ {
		sales = append(sales, entity.Sale{
			ID:          fmt.Sprintf("s%d", i),
			TotalAmount: dec("10"),
			Date:        date(2024, 3, 1).Add(time.Duration(i) * 24 * time.Hour),
		})
	}
	state := entity.AppState{Sales: sales}

	points := tracker.DailyRevenue(state, 14)

	require.Len(t, points, 14, "a lo sumo 14 días")
	assert.Equal(t, "2024-03-07", points[0].Date, "se conservan los 14 más recientes")
	assert.Equal(t, "2024-03-20", points[13].Date, "orden ascendente")
}

func TestDailyRevenue_DiasSinVentasNoAparecen(t *testing.T) {
	state := entity.AppState{Sales: []entity.Sale{
		{ID: "s1", TotalAmount: dec("10"), Date: date(2024, 3, 1)},
		{ID: "s2", TotalAmount: dec("20"), Date: date(2024, 3, 5)},
	}}

	points := tracker.DailyRevenue(state, 14)

	require.Len(t, points, 2, "no se rellenan días con cero")
}

// ──────────────────────────────────────────────────────────────────────────────
// Progreso de metas
// ──────────────────────────────────────────────────────────────────────────────

func TestGoalProgress_PorcentajeRedondeado(t *testing.T) {
	goal := entity.Goal{TargetAmount: dec("100"), CurrentAmount: dec("65")}
	assert.Equal(t, int64(65), tracker.GoalProgress(goal))

	goal = entity.Goal{TargetAmount: dec("3"), CurrentAmount: dec("1")}
	assert.Equal(t, int64(33), tracker.GoalProgress(goal), "33.33% redondea a 33")

	goal = entity.Goal{TargetAmount: dec("3"), CurrentAmount: dec("2")}
	assert.Equal(t, int64(67), tracker.GoalProgress(goal), "66.67% redondea a 67")
}

func TestGoalProgress_LimitadoACien(t *testing.T) {
	goal := entity.Goal{TargetAmount: dec("100"), CurrentAmount: dec("250")}
	assert.Equal(t, int64(100), tracker.GoalProgress(goal))
}

func TestGoalProgress_TargetCeroONegativo(t *testing.T) {
	assert.Equal(t, int64(0), tracker.GoalProgress(entity.Goal{TargetAmount: decimal.Zero, CurrentAmount: dec("50")}))
	assert.Equal(t, int64(0), tracker.GoalProgress(entity.Goal{TargetAmount: dec("-10"), CurrentAmount: dec("50")}))
}

package tracker_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/salespulse-api/internal/domain/entity"
	"github.com/jhoicas/salespulse-api/internal/domain/tracker"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fixture: un estado pequeño pero completo sobre el que operan las mutaciones.
// Las funciones del paquete son puras: cada test verifica el estado derivado
// Y que el estado de entrada quedó intacto.
// ──────────────────────────────────────────────────────────────────────────────

func buildState() entity.AppState {
	return entity.AppState{
		Customers: []entity.Customer{
			{ID: "c1", Name: "Acme Corp", Email: "contact@acme.com", JoinedAt: date(2023, 1, 15)},
			{ID: "c2", Name: "Globex", Email: "procurement@globex.com", JoinedAt: date(2023, 3, 22)},
		},
		Products: []entity.Product{
			{ID: "p1", Name: "Premium Widget", Category: "Hardware", Price: dec("199.99"), Stock: 10, SKU: "WDG-001"},
			{ID: "p2", Name: "Consulting Hour", Category: "Services", Price: dec("150.00"), Stock: 2, SKU: "CNS-001"},
		},
		Sales: []entity.Sale{
			{ID: "s_old", CustomerID: "c1", CustomerName: "Acme Corp", TotalAmount: dec("199.99"), Date: date(2024, 1, 10), Status: entity.SaleStatusCompleted},
		},
		Goals: []entity.Goal{
			{ID: "g1", Title: "Revenue", TargetAmount: dec("50000"), CurrentAmount: dec("100"), Type: entity.GoalTypeRevenue},
			{ID: "g2", Title: "Volume", TargetAmount: dec("100"), CurrentAmount: dec("2"), Type: entity.GoalTypeSalesCount},
		},
	}
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// snapshotCounts captura las longitudes de entrada para verificar la pureza.
func snapshotCounts(s entity.AppState) [4]int {
	return [4]int{len(s.Customers), len(s.Products), len(s.Sales), len(s.Goals)}
}

// ──────────────────────────────────────────────────────────────────────────────
// AddCustomer / UpdateCustomer
// ──────────────────────────────────────────────────────────────────────────────

func TestAddCustomer_AgregaAlFinal(t *testing.T) {
	state := buildState()
	nuevo := entity.Customer{ID: "c3", Name: "Initech", Email: "sales@initech.com"}

	next := tracker.AddCustomer(state, nuevo)

	require.Len(t, next.Customers, 3)
	assert.Equal(t, "c3", next.Customers[2].ID, "el cliente nuevo va al final")
	assert.Equal(t, "c1", next.Customers[0].ID, "los existentes conservan su orden")
	assert.Len(t, state.Customers, 2, "el estado de entrada no se muta")
}

func TestUpdateCustomer_PreservaIDYJoinedAt(t *testing.T) {
	state := buildState()
	original := state.Customers[1]

	next := tracker.UpdateCustomer(state, entity.Customer{
		ID:       "c2",
		Name:     "Globex Renamed",
		Email:    "new@globex.com",
		Phone:    "555-9999",
		JoinedAt: date(2030, 1, 1), // intento de sobreescribir: debe ignorarse
	})

	updated := next.Customers[1]
	assert.Equal(t, "Globex Renamed", updated.Name)
	assert.Equal(t, "new@globex.com", updated.Email)
	assert.Equal(t, original.JoinedAt, updated.JoinedAt, "JoinedAt es inmutable")
	assert.Equal(t, original.ID, updated.ID)

	// Los demás clientes no cambian y la entrada queda intacta
	assert.Equal(t, "Acme Corp", next.Customers[0].Name)
	assert.Equal(t, "Globex", state.Customers[1].Name, "el estado de entrada no se muta")
}

func TestUpdateCustomer_IDInexistente_NoOp(t *testing.T) {
	state := buildState()

	next := tracker.UpdateCustomer(state, entity.Customer{ID: "no-existe", Name: "X", Email: "x@x.com"})

	assert.Equal(t, state, next, "un ID desconocido devuelve el estado sin cambios")
}

// ──────────────────────────────────────────────────────────────────────────────
// AddProduct / AddGoal
// ──────────────────────────────────────────────────────────────────────────────

func TestAddProduct_AgregaAlFinal(t *testing.T) {
	state := buildState()

	next := tracker.AddProduct(state, entity.Product{ID: "p3", Name: "Super Gadget", Price: dec("299.50"), Stock: 12})

	require.Len(t, next.Products, 3)
	assert.Equal(t, "p3", next.Products[2].ID)
	assert.Len(t, state.Products, 2, "el estado de entrada no se muta")
}

func TestAddGoal_AgregaAlFinal(t *testing.T) {
	state := buildState()

	next := tracker.AddGoal(state, entity.Goal{ID: "g3", Title: "Nueva", TargetAmount: dec("1000"), CurrentAmount: decimal.Zero, Type: entity.GoalTypeRevenue})

	require.Len(t, next.Goals, 3)
	assert.Equal(t, "g3", next.Goals[2].ID)
	assert.True(t, next.Goals[2].CurrentAmount.IsZero(), "el progreso inicial es 0, sin backfill")
	assert.Len(t, state.Goals, 2)
}

// ──────────────────────────────────────────────────────────────────────────────
// RecordSale: los tres efectos atómicos
// ──────────────────────────────────────────────────────────────────────────────

func buildSale() entity.Sale {
	return entity.Sale{
		ID:           "s_new",
		CustomerID:   "c1",
		CustomerName: "Acme Corp",
		Items: []entity.SaleItem{
			{ProductID: "p1", ProductName: "Premium Widget", Quantity: 3, PriceAtSale: dec("199.99"), Total: dec("599.97")},
		},
		TotalAmount: dec("599.97"),
		Date:        date(2024, 2, 1),
		Status:      entity.SaleStatusCompleted,
	}
}

func TestRecordSale_DescuentaStock(t *testing.T) {
	state := buildState()

	next := tracker.RecordSale(state, buildSale())

	assert.Equal(t, int64(7), next.Products[0].Stock, "stock 10 - cantidad 3 = 7")
	assert.Equal(t, int64(2), next.Products[1].Stock, "los productos no vendidos no cambian")
	assert.Equal(t, int64(10), state.Products[0].Stock, "el estado de entrada no se muta")
}

func TestRecordSale_StockPuedeQuedarNegativo(t *testing.T) {
	state := buildState()
	sale := buildSale()
	sale.Items = []entity.SaleItem{
		{ProductID: "p2", ProductName: "Consulting Hour", Quantity: 5, PriceAtSale: dec("150.00"), Total: dec("750.00")},
	}
	sale.TotalAmount = dec("750.00")

	next := tracker.RecordSale(state, sale)

	assert.Equal(t, int64(-3), next.Products[1].Stock, "la sobreventa no se rechaza")
}

func TestRecordSale_InsertaAlFrente(t *testing.T) {
	state := buildState()

	next := tracker.RecordSale(state, buildSale())

	require.Len(t, next.Sales, 2)
	assert.Equal(t, "s_new", next.Sales[0].ID, "la venta nueva va al frente")
	assert.Equal(t, "s_old", next.Sales[1].ID)
}

func TestRecordSale_AvanzaTodasLasMetas(t *testing.T) {
	state := buildState()

	next := tracker.RecordSale(state, buildSale())

	// revenue: 100 + 599.97; sales_count: 2 + 1 sin importar las líneas
	assert.True(t, next.Goals[0].CurrentAmount.Equal(dec("699.97")),
		"meta revenue avanza por TotalAmount, quedó %s", next.Goals[0].CurrentAmount)
	assert.True(t, next.Goals[1].CurrentAmount.Equal(dec("3")),
		"meta sales_count avanza exactamente 1, quedó %s", next.Goals[1].CurrentAmount)
}

func TestRecordSale_MetaSalesCountAvanzaUnoPorVenta(t *testing.T) {
	state := buildState()
	sale := buildSale()
	// Venta con dos líneas: sales_count igual avanza solo 1
	sale.Items = append(sale.Items, entity.SaleItem{
		ProductID: "p2", ProductName: "Consulting Hour", Quantity: 1, PriceAtSale: dec("150.00"), Total: dec("150.00"),
	})
	sale.TotalAmount = dec("749.97")

	next := tracker.RecordSale(state, sale)

	assert.True(t, next.Goals[1].CurrentAmount.Equal(dec("3")))
}

func TestRecordSale_NoMutaEntrada(t *testing.T) {
	state := buildState()
	before := snapshotCounts(state)
	goalBefore := state.Goals[0].CurrentAmount

	_ = tracker.RecordSale(state, buildSale())

	assert.Equal(t, before, snapshotCounts(state))
	assert.True(t, state.Goals[0].CurrentAmount.Equal(goalBefore))
	assert.Equal(t, "s_old", state.Sales[0].ID)
}

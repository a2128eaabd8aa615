package usecase_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/salespulse-api/internal/application/usecase"
	"github.com/jhoicas/salespulse-api/internal/domain/entity"
)

func TestGetReport_RankingsYSerieDiaria(t *testing.T) {
	state := entity.AppState{
		Customers: []entity.Customer{
			{ID: "c1", Name: "Acme Corp"},
			{ID: "c2", Name: "Globex"},
		},
		Products: []entity.Product{
			{ID: "p1", Name: "Premium Widget"},
			{ID: "p2", Name: "Consulting Hour"},
		},
		Sales: []entity.Sale{
			{
				ID: "s1", CustomerID: "c1", TotalAmount: dec("400"),
				Date: time.Date(2024, 3, 2, 10, 0, 0, 0, time.UTC),
				Items: []entity.SaleItem{
					{ProductID: "p1", Total: dec("400")},
				},
			},
			{
				ID: "s2", CustomerID: "c2", TotalAmount: dec("150"),
				Date: time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC),
				Items: []entity.SaleItem{
					{ProductID: "p2", Total: dec("150")},
				},
			},
		},
	}
	uc := usecase.NewAnalyticsUseCase(&stubSource{state: state})

	report := uc.GetReport()

	require.Len(t, report.TopProducts, 2)
	assert.Equal(t, "p1", report.TopProducts[0].ID, "ranking descendente por ingreso")
	assert.True(t, report.TopProducts[0].Revenue.Equal(dec("400")))

	require.Len(t, report.TopCustomers, 2)
	assert.Equal(t, "c1", report.TopCustomers[0].ID)

	require.Len(t, report.DailyRevenue, 2)
	assert.Equal(t, "2024-03-01", report.DailyRevenue[0].Date, "serie ascendente")
	assert.Equal(t, "2024-03-02", report.DailyRevenue[1].Date)
}

func TestGetReport_EstadoVacio(t *testing.T) {
	uc := usecase.NewAnalyticsUseCase(&stubSource{})

	report := uc.GetReport()

	assert.Empty(t, report.TopProducts)
	assert.Empty(t, report.TopCustomers)
	assert.Empty(t, report.DailyRevenue)
}

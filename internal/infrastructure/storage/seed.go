// Package storage implementa los adaptadores de persistencia del estado:
// un blob JSON completo bajo una clave fija, en archivo, Redis o Postgres.
package storage

import (
	"fmt"
	"math/rand"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/salespulse-api/internal/domain/entity"
)

const (
	seedSaleCount   = 25
	seedHistoryDays = 90
)

// NewSeedState construye los datos demo del primer arranque: forma
// determinista (4 clientes, 5 productos, 2 metas) con 25 ventas históricas de
// fechas aleatorias dentro de los últimos 90 días, ordenadas de más reciente
// a más antigua.
func NewSeedState(now time.Time) entity.AppState {
	customers := seedCustomers()
	products := seedProducts()

	sales := make([]entity.Sale, 0, seedSaleCount)
	for i := 0; i < seedSaleCount; i++ {
		date := now.Add(-time.Duration(rand.Intn(seedHistoryDays)) * 24 * time.Hour)
		customer := customers[rand.Intn(len(customers))]

		numItems := rand.Intn(3) + 1
		items := make([]entity.SaleItem, 0, numItems)
		total := decimal.Zero
		for j := 0; j < numItems; j++ {
			product := products[rand.Intn(len(products))]
			qty := int64(rand.Intn(5) + 1)
			lineTotal := product.Price.Mul(decimal.NewFromInt(qty))
			items = append(items, entity.SaleItem{
				ProductID:   product.ID,
				ProductName: product.Name,
				Quantity:    qty,
				PriceAtSale: product.Price,
				Total:       lineTotal,
			})
			total = total.Add(lineTotal)
		}

		sales = append(sales, entity.Sale{
			ID:           fmt.Sprintf("s%d", i),
			CustomerID:   customer.ID,
			CustomerName: customer.Name,
			Items:        items,
			TotalAmount:  total,
			Date:         date,
			Status:       entity.SaleStatusCompleted,
		})
	}
	sort.SliceStable(sales, func(i, j int) bool {
		return sales[i].Date.After(sales[j].Date)
	})

	return entity.AppState{
		Customers: customers,
		Products:  products,
		Sales:     sales,
		Goals:     seedGoals(),
	}
}

func seedCustomers() []entity.Customer {
	return []entity.Customer{
		{ID: "c1", Name: "Acme Corp", Email: "contact@acme.com", Phone: "555-0101", Company: "Acme Inc.", JoinedAt: seedDate(2023, 1, 15)},
		{ID: "c2", Name: "Globex", Email: "procurement@globex.com", Phone: "555-0102", Company: "Globex Corp", JoinedAt: seedDate(2023, 3, 22)},
		{ID: "c3", Name: "Soylent Corp", Email: "info@soylent.com", Phone: "555-0103", Company: "Soylent", JoinedAt: seedDate(2023, 5, 10)},
		{ID: "c4", Name: "Initech", Email: "sales@initech.com", Phone: "555-0104", Company: "Initech", JoinedAt: seedDate(2023, 6, 5)},
	}
}

func seedProducts() []entity.Product {
	return []entity.Product{
		{ID: "p1", Name: "Premium Widget", Category: "Hardware", Price: seedPrice("199.99"), Stock: 45, SKU: "WDG-001"},
		{ID: "p2", Name: "Service Plan Basic", Category: "Services", Price: seedPrice("49.99"), Stock: 9999, SKU: "SVC-BSC"},
		{ID: "p3", Name: "Service Plan Pro", Category: "Services", Price: seedPrice("149.99"), Stock: 9999, SKU: "SVC-PRO"},
		{ID: "p4", Name: "Super Gadget", Category: "Hardware", Price: seedPrice("299.50"), Stock: 12, SKU: "GDG-002"},
		{ID: "p5", Name: "Consulting Hour", Category: "Services", Price: seedPrice("150.00"), Stock: 500, SKU: "CNS-001"},
	}
}

func seedGoals() []entity.Goal {
	return []entity.Goal{
		{
			ID:            "g1",
			Title:         "Q4 Revenue Target",
			TargetAmount:  decimal.NewFromInt(50000),
			CurrentAmount: decimal.NewFromInt(32450),
			Deadline:      seedDate(2023, 12, 31),
			Type:          entity.GoalTypeRevenue,
		},
		{
			ID:            "g2",
			Title:         "New Customer Acquisition",
			TargetAmount:  decimal.NewFromInt(100),
			CurrentAmount: decimal.NewFromInt(65),
			Deadline:      seedDate(2023, 12, 31),
			Type:          entity.GoalTypeSalesCount,
		},
	}
}

func seedDate(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func seedPrice(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

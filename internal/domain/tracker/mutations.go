// Package tracker contiene la lógica pura del seguimiento de ventas:
// las mutaciones que derivan un AppState nuevo a partir del actual y las
// agregaciones de solo lectura que se recalculan sobre el estado completo.
//
// Ninguna función de este paquete modifica el estado de entrada ni falla:
// las operaciones son totales por contrato. La validación de campos
// obligatorios es responsabilidad del caller (la frontera HTTP).
package tracker

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/salespulse-api/internal/domain/entity"
)

// AddCustomer agrega el cliente al final de la secuencia de clientes.
// El ID debe venir pre-asignado por el caller; la unicidad no se verifica.
func AddCustomer(state entity.AppState, customer entity.Customer) entity.AppState {
	next := state
	next.Customers = appendCustomer(state.Customers, customer)
	return next
}

// UpdateCustomer reemplaza la entrada cuyo ID coincide, preservando ID y
// JoinedAt almacenados (son inmutables). Si el ID no existe el estado se
// devuelve sin cambios: no-op silencioso por contrato, para no fallar ante
// referencias obsoletas.
func UpdateCustomer(state entity.AppState, customer entity.Customer) entity.AppState {
	idx := -1
	for i, c := range state.Customers {
		if c.ID == customer.ID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return state
	}

	customers := make([]entity.Customer, len(state.Customers))
	copy(customers, state.Customers)
	updated := customer
	updated.ID = state.Customers[idx].ID
	updated.JoinedAt = state.Customers[idx].JoinedAt
	customers[idx] = updated

	next := state
	next.Customers = customers
	return next
}

// AddProduct agrega el producto al final de la secuencia de productos.
func AddProduct(state entity.AppState, product entity.Product) entity.AppState {
	products := make([]entity.Product, 0, len(state.Products)+1)
	products = append(products, state.Products...)
	products = append(products, product)

	next := state
	next.Products = products
	return next
}

// RecordSale registra una venta con sus tres efectos derivados, calculados
// desde un único snapshot y aplicados juntos en el estado devuelto:
//
//  1. Por cada producto, si la venta contiene una línea que lo referencia,
//     descuenta su Quantity del stock. El stock puede quedar negativo: la
//     sobreventa no se rechaza.
//  2. La venta se inserta al FRENTE de la secuencia de ventas (orden más
//     reciente primero; a diferencia de clientes/productos que van al final).
//  3. Toda meta avanza: tipo revenue suma TotalAmount; tipo sales_count suma
//     exactamente 1, sin importar cuántas líneas tenga la venta.
//
// No hay estado intermedio observable entre los tres efectos.
func RecordSale(state entity.AppState, sale entity.Sale) entity.AppState {
	products := make([]entity.Product, len(state.Products))
	for i, p := range state.Products {
		if item, ok := findItem(sale.Items, p.ID); ok {
			p.Stock -= item.Quantity
		}
		products[i] = p
	}

	sales := make([]entity.Sale, 0, len(state.Sales)+1)
	sales = append(sales, sale)
	sales = append(sales, state.Sales...)

	one := decimal.NewFromInt(1)
	goals := make([]entity.Goal, len(state.Goals))
	for i, g := range state.Goals {
		switch g.Type {
		case entity.GoalTypeRevenue:
			g.CurrentAmount = g.CurrentAmount.Add(sale.TotalAmount)
		case entity.GoalTypeSalesCount:
			g.CurrentAmount = g.CurrentAmount.Add(one)
		}
		goals[i] = g
	}

	next := state
	next.Products = products
	next.Sales = sales
	next.Goals = goals
	return next
}

// AddGoal agrega la meta al final de la secuencia de metas. El progreso
// inicial lo fija el caller (siempre 0: no hay backfill contra el histórico).
func AddGoal(state entity.AppState, goal entity.Goal) entity.AppState {
	goals := make([]entity.Goal, 0, len(state.Goals)+1)
	goals = append(goals, state.Goals...)
	goals = append(goals, goal)

	next := state
	next.Goals = goals
	return next
}

func appendCustomer(customers []entity.Customer, c entity.Customer) []entity.Customer {
	out := make([]entity.Customer, 0, len(customers)+1)
	out = append(out, customers...)
	out = append(out, c)
	return out
}

// findItem busca la primera línea de la venta que referencia el producto.
func findItem(items []entity.SaleItem, productID string) (entity.SaleItem, bool) {
	for _, it := range items {
		if it.ProductID == productID {
			return it, true
		}
	}
	return entity.SaleItem{}, false
}

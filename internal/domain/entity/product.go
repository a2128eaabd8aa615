package entity

import "github.com/shopspring/decimal"

// DefaultCategory categoría asignada cuando el caller no envía una.
const DefaultCategory = "General"

// Product representa un producto del catálogo.
// Stock puede quedar negativo si se sobrevende: el registro de ventas no lo
// rechaza. La unicidad del SKU no se valida.
type Product struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Category string          `json:"category"`
	Price    decimal.Decimal `json:"price"`
	Stock    int64           `json:"stock"`
	SKU      string          `json:"sku"`
}

package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una venta. El flujo actual solo produce "completed";
// "pending" y "cancelled" quedan como punto de extensión.
const (
	SaleStatusCompleted = "completed"
	SaleStatusPending   = "pending"
	SaleStatusCancelled = "cancelled"
)

// SaleItem es una línea dentro de una venta. ProductName y PriceAtSale son
// snapshots denormalizados tomados al momento de la venta: ediciones
// posteriores del producto no los afectan.
type SaleItem struct {
	ProductID   string          `json:"productId"`
	ProductName string          `json:"productName"`
	Quantity    int64           `json:"quantity"`
	PriceAtSale decimal.Decimal `json:"priceAtSale"`
	Total       decimal.Decimal `json:"total"` // Quantity × PriceAtSale
}

// Sale representa una venta registrada. CustomerName es snapshot denormalizado
// del cliente: una venta sigue siendo legible aunque la referencia quede huérfana.
type Sale struct {
	ID           string          `json:"id"`
	CustomerID   string          `json:"customerId"`
	CustomerName string          `json:"customerName"`
	Items        []SaleItem      `json:"items"`
	TotalAmount  decimal.Decimal `json:"totalAmount"`
	Date         time.Time       `json:"date"`
	Status       string          `json:"status"`
}

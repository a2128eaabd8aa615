package dto

import "github.com/jhoicas/salespulse-api/internal/domain/entity"

// SaleItemRequest una línea del carrito: referencia al producto y cantidad.
// El nombre y el precio se snapshotean del catálogo al registrar la venta.
type SaleItemRequest struct {
	ProductID string `json:"productId"`
	Quantity  int64  `json:"quantity"`
}

// CreateSaleRequest entrada para registrar una venta.
type CreateSaleRequest struct {
	CustomerID string            `json:"customerId"`
	Items      []SaleItemRequest `json:"items"`
}

// SaleListResponse listado de ventas, más reciente primero.
type SaleListResponse struct {
	Items []entity.Sale `json:"items"`
	Total int           `json:"total"`
}

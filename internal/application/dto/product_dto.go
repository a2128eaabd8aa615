package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/salespulse-api/internal/domain/entity"
)

// CreateProductRequest entrada para crear un producto.
// Category por defecto "General"; SKU omitido genera un placeholder aleatorio;
// Stock omitido inicia en 0.
type CreateProductRequest struct {
	Name     string          `json:"name"`
	Category string          `json:"category"`
	Price    decimal.Decimal `json:"price"`
	Stock    int64           `json:"stock"`
	SKU      string          `json:"sku"`
}

// ProductListResponse listado del catálogo en orden de inserción.
type ProductListResponse struct {
	Items []entity.Product `json:"items"`
	Total int              `json:"total"`
}

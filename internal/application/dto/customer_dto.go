package dto

import "github.com/jhoicas/salespulse-api/internal/domain/entity"

// CreateCustomerRequest entrada para crear un cliente.
// Name y Email son obligatorios; Phone y Company se vacían por defecto.
type CreateCustomerRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Company string `json:"company"`
}

// UpdateCustomerRequest entrada para editar los datos de contacto de un
// cliente. ID y JoinedAt no son editables.
type UpdateCustomerRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Company string `json:"company"`
}

// CustomerListResponse listado de clientes en orden de inserción.
type CustomerListResponse struct {
	Items []entity.Customer `json:"items"`
	Total int               `json:"total"`
}

package entity

import "time"

// Customer representa un cliente del negocio.
// ID y JoinedAt son inmutables después de la creación; los datos de contacto
// se editan vía la operación de actualización.
type Customer struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	Phone    string    `json:"phone"`
	Company  string    `json:"company"`
	JoinedAt time.Time `json:"joinedAt"`
}

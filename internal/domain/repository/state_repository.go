package repository

import (
	"context"

	"github.com/jhoicas/salespulse-api/internal/domain/entity"
)

// StateRepository es el puerto de persistencia del estado completo.
// El estado se guarda como un único blob bajo una clave fija: no hay
// escrituras parciales ni transacciones (modelo de un solo escritor).
type StateRepository interface {
	// Load devuelve el estado previamente guardado. Si no existe nada bajo
	// la clave, construye los datos semilla, los persiste y los devuelve.
	Load(ctx context.Context) (entity.AppState, error)

	// Save serializa el estado completo reemplazando cualquier valor anterior.
	Save(ctx context.Context, state entity.AppState) error
}

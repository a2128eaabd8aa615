package ports

import "github.com/jhoicas/salespulse-api/internal/domain/entity"

// StateSource entrega el snapshot actual del estado a los casos de uso de
// solo lectura (dashboard, analítica, insights, reportes).
type StateSource interface {
	Snapshot() entity.AppState
}

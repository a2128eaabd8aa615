package ports

import (
	"context"

	"github.com/jhoicas/salespulse-api/internal/application/dto"
)

// InsightsService define el puerto de salida hacia el servicio de
// texto generativo. Cualquier adaptador (Gemini, Anthropic, mock) debe
// implementar esta interfaz; la aplicación solo conoce este contrato.
type InsightsService interface {
	// GenerateInsights envía el resumen de datos y la consulta del usuario
	// y devuelve el análisis en texto markdown. El contexto debe llevar un
	// timeout para evitar bloqueos en llamadas externas.
	GenerateInsights(ctx context.Context, summary dto.InsightDataSummary, query string) (string, error)

	// Provider identifica el adaptador ("gemini", "anthropic") para logs y respuestas.
	Provider() string
}

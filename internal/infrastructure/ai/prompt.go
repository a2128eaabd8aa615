// Package ai implementa los adaptadores del puerto InsightsService contra las
// APIs REST de Google Gemini y Anthropic (Claude). Ambos usan net/http de la
// librería estándar: no requieren los SDK oficiales.
package ai

import (
	"encoding/json"
	"fmt"

	"github.com/jhoicas/salespulse-api/internal/application/dto"
)

// buildPrompt arma el prompt del analista de ventas a partir del resumen
// acotado del estado y la consulta del usuario. El resumen ya viene reducido
// por el caso de uso; aquí solo se serializa y se inserta en la plantilla.
func buildPrompt(summary dto.InsightDataSummary, query string) (string, error) {
	salesJSON, err := json.Marshal(summary.Sales)
	if err != nil {
		return "", fmt.Errorf("AI: serializar resumen de ventas: %w", err)
	}
	productsJSON, err := json.Marshal(summary.Products)
	if err != nil {
		return "", fmt.Errorf("AI: serializar resumen de productos: %w", err)
	}
	goalsJSON, err := json.Marshal(summary.Goals)
	if err != nil {
		return "", fmt.Errorf("AI: serializar metas: %w", err)
	}

	prompt := fmt.Sprintf(`You are an expert Sales Analyst AI.
Analyze the following sales data JSON summary.

Current Date: %s

Data Summary:
- Sales (last %d): %s
- Products: %s
- Goals: %s

User Query: %s

Format your response as a clean, markdown-formatted list of insights. Keep it professional and concise.`,
		summary.CurrentDate,
		len(summary.Sales),
		salesJSON,
		productsJSON,
		goalsJSON,
		query,
	)
	return prompt, nil
}

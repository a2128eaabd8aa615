package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/salespulse-api/internal/application/dto"
	"github.com/jhoicas/salespulse-api/internal/application/ports"
	"github.com/jhoicas/salespulse-api/internal/domain/entity"
	"github.com/jhoicas/salespulse-api/pkg/logger"
)

const (
	// insightsTimeout limita cada llamada al LLM; las latencias externas no
	// deben bloquear los goroutines del servidor.
	insightsTimeout = 10 * time.Second

	// insightsMaxSales acota el resumen enviado al modelo para reducir tokens.
	insightsMaxSales = 50

	// DefaultInsightsQuery consulta usada cuando el usuario no envía una.
	DefaultInsightsQuery = "Provide 3 key actionable insights to improve revenue and inventory management."

	// FallbackInsights respuesta fija cuando la llamada falla por cualquier
	// motivo (sin credencial, error de red, error del servicio). El fallo se
	// absorbe aquí: nunca se propaga como error al caller y jamás toca el
	// estado guardado.
	FallbackInsights = "Unable to generate insights at this time. Please check your API key or try again later."
)

// InsightsUseCase orquesta la generación de insights: reduce el estado a un
// resumen acotado, consulta el LLM con timeout y convierte cualquier fallo en
// el mensaje de fallback.
type InsightsUseCase struct {
	source ports.StateSource
	llm    ports.InsightsService
	log    *logger.Logger
}

// NewInsightsUseCase construye el caso de uso. llm puede ser nil cuando no hay
// proveedor configurado; toda consulta responde entonces con el fallback.
func NewInsightsUseCase(source ports.StateSource, llm ports.InsightsService, log *logger.Logger) *InsightsUseCase {
	return &InsightsUseCase{source: source, llm: llm, log: log}
}

// Generate produce el análisis en markdown para la consulta dada (o la
// consulta por defecto si viene vacía). Nunca devuelve error.
func (uc *InsightsUseCase) Generate(ctx context.Context, query string) dto.InsightsResponse {
	if query == "" {
		query = DefaultInsightsQuery
	}

	resp := dto.InsightsResponse{
		Provider:    "none",
		GeneratedAt: time.Now().UTC(),
	}
	if uc.llm == nil {
		resp.Insights = FallbackInsights
		return resp
	}
	resp.Provider = uc.llm.Provider()

	summary := buildSummary(uc.source.Snapshot(), time.Now().UTC())

	ctx, cancel := context.WithTimeout(ctx, insightsTimeout)
	defer cancel()

	text, err := uc.llm.GenerateInsights(ctx, summary, query)
	if err != nil {
		uc.log.Warn().Err(err).Str("provider", resp.Provider).Msg("insights IA no disponibles, usando fallback")
		resp.Insights = FallbackInsights
		return resp
	}

	resp.Insights = text
	return resp
}

// buildSummary reduce el estado: a lo sumo las 50 ventas más recientes
// (fecha, monto redondeado, cliente), el catálogo completo reducido a
// nombre/stock/precio y las metas completas.
func buildSummary(state entity.AppState, now time.Time) dto.InsightDataSummary {
	saleCount := len(state.Sales)
	if saleCount > insightsMaxSales {
		saleCount = insightsMaxSales
	}
	sales := make([]dto.SaleSummary, 0, saleCount)
	for _, s := range state.Sales[:saleCount] {
		sales = append(sales, dto.SaleSummary{
			Date:     s.Date.UTC().Format("2006-01-02"),
			Amount:   s.TotalAmount.Round(0).IntPart(),
			Customer: s.CustomerName,
		})
	}

	products := make([]dto.ProductSummary, 0, len(state.Products))
	for _, p := range state.Products {
		products = append(products, dto.ProductSummary{
			Name:  p.Name,
			Stock: p.Stock,
			Price: p.Price,
		})
	}

	goals := make([]dto.GoalSummary, 0, len(state.Goals))
	for _, g := range state.Goals {
		goals = append(goals, dto.GoalSummary{
			ID:            g.ID,
			Title:         g.Title,
			TargetAmount:  g.TargetAmount,
			CurrentAmount: g.CurrentAmount,
			Deadline:      g.Deadline,
			Type:          g.Type,
		})
	}

	return dto.InsightDataSummary{
		CurrentDate: now.Format("2006-01-02"),
		Sales:       sales,
		Products:    products,
		Goals:       goals,
	}
}

package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/salespulse-api/internal/application/dto"
	"github.com/jhoicas/salespulse-api/internal/application/ports"
	"github.com/jhoicas/salespulse-api/internal/application/usecase"
	"github.com/jhoicas/salespulse-api/internal/domain/entity"
	"github.com/jhoicas/salespulse-api/pkg/logger"
)

// stubSource entrega un estado fijo a los casos de uso de solo lectura.
type stubSource struct {
	state entity.AppState
}

func (s *stubSource) Snapshot() entity.AppState { return s.state }

// stubLLM captura la última llamada y responde con un texto fijo o un error.
type stubLLM struct {
	reply       string
	err         error
	lastQuery   string
	lastSummary dto.InsightDataSummary
}

var _ ports.InsightsService = (*stubLLM)(nil)

func (s *stubLLM) GenerateInsights(_ context.Context, summary dto.InsightDataSummary, query string) (string, error) {
	s.lastQuery = query
	s.lastSummary = summary
	if s.err != nil {
		return "", s.err
	}
	return s.reply, nil
}

func (s *stubLLM) Provider() string { return "stub" }

func TestInsights_RespuestaExitosa(t *testing.T) {
	llm := &stubLLM{reply: "## Análisis\n1. Vender más."}
	uc := usecase.NewInsightsUseCase(&stubSource{state: baseState()}, llm, logger.Nop())

	resp := uc.Generate(context.Background(), "¿Cómo va el negocio?")

	assert.Equal(t, "## Análisis\n1. Vender más.", resp.Insights)
	assert.Equal(t, "stub", resp.Provider)
	assert.Equal(t, "¿Cómo va el negocio?", llm.lastQuery)
	assert.False(t, resp.GeneratedAt.IsZero())
}

func TestInsights_ConsultaVaciaUsaLaPorDefecto(t *testing.T) {
	llm := &stubLLM{reply: "ok"}
	uc := usecase.NewInsightsUseCase(&stubSource{state: baseState()}, llm, logger.Nop())

	uc.Generate(context.Background(), "")

	assert.Equal(t, usecase.DefaultInsightsQuery, llm.lastQuery)
}

func TestInsights_ErrorDelProveedorDevuelveFallback(t *testing.T) {
	llm := &stubLLM{err: errors.New("api key inválida")}
	uc := usecase.NewInsightsUseCase(&stubSource{state: baseState()}, llm, logger.Nop())

	resp := uc.Generate(context.Background(), "lo que sea")

	assert.Equal(t, usecase.FallbackInsights, resp.Insights, "el fallo nunca se propaga como error")
	assert.Equal(t, "stub", resp.Provider)
}

func TestInsights_SinProveedorDevuelveFallback(t *testing.T) {
	uc := usecase.NewInsightsUseCase(&stubSource{state: baseState()}, nil, logger.Nop())

	resp := uc.Generate(context.Background(), "lo que sea")

	assert.Equal(t, usecase.FallbackInsights, resp.Insights)
	assert.Equal(t, "none", resp.Provider)
}

func TestInsights_ResumenAcotadoACincuentaVentas(t *testing.T) {
	state := baseState()
	state.Sales = make([]entity.Sale, 0, 60)
	for i := 0; i < 60; i++ {
		state.Sales = append(state.Sales, entity.Sale{
			ID:           fmt.Sprintf("s%d", i),
			CustomerName: "Acme Corp",
			TotalAmount:  dec("99.60"),
			Date:         time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		})
	}
	llm := &stubLLM{reply: "ok"}
	uc := usecase.NewInsightsUseCase(&stubSource{state: state}, llm, logger.Nop())

	uc.Generate(context.Background(), "")

	require.Len(t, llm.lastSummary.Sales, 50, "a lo sumo las 50 ventas más recientes")
	assert.Equal(t, int64(100), llm.lastSummary.Sales[0].Amount, "el monto viaja redondeado")
	assert.Equal(t, "2024-03-01", llm.lastSummary.Sales[0].Date)
	require.Len(t, llm.lastSummary.Products, 1)
	assert.Equal(t, int64(10), llm.lastSummary.Products[0].Stock)
	require.Len(t, llm.lastSummary.Goals, 1)
}

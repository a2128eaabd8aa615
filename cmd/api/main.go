package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	appanalytics "github.com/jhoicas/salespulse-api/internal/application/analytics"
	"github.com/jhoicas/salespulse-api/internal/application/ports"
	"github.com/jhoicas/salespulse-api/internal/application/usecase"
	infraai "github.com/jhoicas/salespulse-api/internal/infrastructure/ai"
	infrapdf "github.com/jhoicas/salespulse-api/internal/infrastructure/pdf"
	"github.com/jhoicas/salespulse-api/internal/infrastructure/storage"
	httpRouter "github.com/jhoicas/salespulse-api/internal/interfaces/http"
	"github.com/jhoicas/salespulse-api/pkg/config"
	"github.com/jhoicas/salespulse-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("storage", cfg.Storage.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()
	repo, closeRepo, err := storage.NewStateRepository(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.Storage.Driver).Msg("inicializar persistencia")
	}
	defer closeRepo()

	trackerUC, err := usecase.NewTrackerUseCase(ctx, repo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("cargar estado inicial")
	}

	dashboardUC := appanalytics.NewDashboardUseCase(trackerUC)
	analyticsUC := usecase.NewAnalyticsUseCase(trackerUC)

	// El proveedor de insights se elige por configuración; Gemini por defecto
	// para mantener la paridad con la versión original del producto.
	var llm ports.InsightsService
	switch cfg.AI.Provider {
	case "anthropic":
		llm = infraai.NewAnthropicService(cfg.AI.AnthropicAPIKey, cfg.AI.AnthropicModel)
	default:
		llm = infraai.NewGeminiService(cfg.AI.GeminiAPIKey, cfg.AI.GeminiModel)
	}
	insightsUC := usecase.NewInsightsUseCase(trackerUC, llm, log)

	pdfGenerator := infrapdf.NewMarotoReportGenerator()
	reportUC := usecase.NewReportUseCase(trackerUC, pdfGenerator, cfg.App.Name)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		TrackerUC:   trackerUC,
		DashboardUC: dashboardUC,
		AnalyticsUC: analyticsUC,
		InsightsUC:  insightsUC,
		ReportUC:    reportUC,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}

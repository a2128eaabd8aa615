package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/salespulse-api/internal/application/analytics"
	"github.com/jhoicas/salespulse-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	TrackerUC   *usecase.TrackerUseCase
	DashboardUC *appanalytics.DashboardUseCase
	AnalyticsUC *usecase.AnalyticsUseCase
	InsightsUC  *usecase.InsightsUseCase
	ReportUC    *usecase.ReportUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Snapshot completo del estado (contrato con la capa de presentación)
	api.Get("/state", func(c *fiber.Ctx) error {
		return c.JSON(deps.TrackerUC.Snapshot())
	})

	// Customers
	customers := api.Group("/customers")
	customerHandler := NewCustomerHandler(deps.TrackerUC)
	customers.Get("/", customerHandler.List)
	customers.Post("/", customerHandler.Create)
	customers.Put("/:id", customerHandler.Update)

	// Products
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.TrackerUC)
	products.Get("/", productHandler.List)
	products.Post("/", productHandler.Create)

	// Sales
	sales := api.Group("/sales")
	saleHandler := NewSaleHandler(deps.TrackerUC)
	sales.Get("/", saleHandler.List)
	sales.Post("/", saleHandler.Create)

	// Goals
	goals := api.Group("/goals")
	goalHandler := NewGoalHandler(deps.TrackerUC)
	goals.Get("/", goalHandler.List)
	goals.Post("/", goalHandler.Create)

	// Dashboard y analítica (solo lectura)
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	api.Get("/dashboard", dashboardHandler.GetSummary)

	analyticsHandler := NewAnalyticsHandler(deps.AnalyticsUC)
	api.Get("/analytics", analyticsHandler.GetReport)

	// Insights IA (consultivo, nunca falla hacia el caller)
	insightsHandler := NewInsightsHandler(deps.InsightsUC)
	api.Post("/insights", insightsHandler.Generate)

	// Reporte PDF
	reportHandler := NewReportHandler(deps.ReportUC)
	api.Get("/reports/sales", reportHandler.SalesReport)
}

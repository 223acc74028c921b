package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/helpdesk-dashboard/internal/api/http/handlers"
	"github.com/spec-kit/helpdesk-dashboard/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Tickets        *handlers.TicketsHandler
	Charts         *handlers.ChartsHandler
	Lookups        *handlers.LookupsHandler
	Presets        *handlers.PresetsHandler
	Export         *handlers.ExportHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	api := app.Group("/api", cfg.AuthMiddleware.Handle)

	api.Get("/tickets", cfg.Tickets.List)
	api.Get("/tickets/stats", cfg.Tickets.Stats)
	api.Post("/tickets/:id/read", cfg.Tickets.MarkRead)

	api.Get("/categories", cfg.Lookups.Categories)
	api.Get("/projects", cfg.Lookups.Projects)

	api.Get("/presets", cfg.Presets.List)
	api.Post("/presets", cfg.Presets.Save)
	api.Delete("/presets/:name", cfg.Presets.Delete)

	admin := api.Group("", auth.RequireAdmin())
	admin.Get("/charts/tickets", cfg.Charts.TicketSeries)
	admin.Get("/export/columns", cfg.Export.Columns)
	admin.Post("/export/tickets", cfg.Export.Extract)
}

// Package routes defines the API routing configuration.
package routes

import (
	"net/http"

	"depositguard/internal/handlers"
	"depositguard/internal/middleware"
	"depositguard/internal/repositories"
	"depositguard/internal/services/district"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
)

// Dependencies are the services the routes dispatch to.
type Dependencies struct {
	Engine   handlers.Assessor
	Resolver *district.Resolver

	// Registry enables the admin routes when set.
	Registry  repositories.LienRepository
	Cache     handlers.Invalidator
	JWTSecret string

	Health  map[string]handlers.Check
	Metrics http.Handler
}

// SetupRoutes configures all application routes.
func SetupRoutes(app *fiber.App, deps Dependencies) {
	health := handlers.NewHealthHandler(deps.Health)
	app.Get("/health", health.HealthCheck)
	if deps.Metrics != nil {
		app.Get("/metrics", adaptor.HTTPHandler(deps.Metrics))
	}

	api := app.Group("/api")

	riskHandler := handlers.NewRiskHandler(deps.Engine, deps.Resolver)
	api.Post("/risk/assess", riskHandler.Assess)
	api.Get("/districts", riskHandler.Districts)

	if deps.Registry == nil {
		return
	}

	auth := middleware.NewAuthMiddleware(deps.JWTSecret)
	registryHandler := handlers.NewRegistryHandler(deps.Registry, deps.Resolver, deps.Cache)

	admin := api.Group("/admin", auth.Handler, middleware.RegistryWriter)
	admin.Put("/liens", registryHandler.UpsertLien)
	admin.Post("/incidents", registryHandler.CreateIncident)
}

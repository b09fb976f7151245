// Package main is the entry point for the risk API server.
// It loads configuration, wires the scoring engine and its data sources,
// and starts the HTTP server.
package main

import (
	"context"
	"log"
	"strings"
	"time"

	"depositguard/internal/config"
	"depositguard/internal/handlers"
	"depositguard/internal/metrics"
	"depositguard/internal/middleware"
	"depositguard/internal/repositories"
	"depositguard/internal/routes"
	"depositguard/internal/services/ancillary"
	"depositguard/internal/services/district"
	"depositguard/internal/services/market"
	"depositguard/internal/services/risk"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// registryStoreRequired reports whether Postgres and Redis back this
// deployment: the registry source reads them and the admin routes write them.
// An estimator-only deployment without admin access runs without either.
func registryStoreRequired(kind, secret string) bool {
	return kind == ancillary.KindRegistry || strings.TrimSpace(secret) != ""
}

func main() {
	config.LoadEnv()

	table := config.Districts()
	resolver := district.NewResolver(table)
	kind := config.GetEnv("ANCILLARY_SOURCE", ancillary.KindEstimator)
	secret := strings.TrimSpace(config.GetEnv("JWT_SECRET", ""))

	opts := ancillary.Options{Kind: kind, Table: table, Resolver: resolver}
	deps := routes.Dependencies{
		Resolver: resolver,
		Health:   map[string]handlers.Check{},
	}

	if registryStoreRequired(kind, secret) {
		if err := repositories.InitDB(); err != nil {
			log.Fatalf("Failed to initialize databases: %v", err)
		}
		defer repositories.Close()

		lienRepo := repositories.NewLienRepository(repositories.DB)
		opts.Repo = lienRepo
		opts.Cache = repositories.CacheService
		opts.CacheTTL = config.GetDurationEnv("ANCILLARY_CACHE_TTL", 6*time.Hour)

		deps.Health["database"] = func(ctx context.Context) error {
			sqlDB, err := repositories.DB.DB()
			if err != nil {
				return err
			}
			return sqlDB.PingContext(ctx)
		}
		deps.Health["redis"] = repositories.CacheService.HealthCheck

		if secret != "" {
			deps.Registry = lienRepo
			deps.Cache = repositories.CacheService
			deps.JWTSecret = secret
		} else {
			log.Println("⚠️ JWT_SECRET not set; admin registry routes are disabled")
		}
	} else {
		log.Println("Registry store not configured; scoring with estimated ancillary data")
	}

	source, err := ancillary.NewSource(opts)
	if err != nil {
		log.Fatalf("Failed to configure ancillary source: %v", err)
	}
	log.Printf("Ancillary risk source: %s", kind)

	provider := market.NewClient(market.ClientConfig{
		BaseURL: config.GetEnv("MARKET_API_BASE", market.DefaultBaseURL),
		APIKey:  config.GetEnv("MARKET_API_KEY", market.DefaultAPIKey),
		Service: config.GetEnv("MARKET_API_SERVICE", market.DefaultService),
		Timeout: config.GetDurationEnv("MARKET_API_TIMEOUT", market.DefaultTimeout),
	})

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	deps.Engine = risk.NewEngine(provider, source, resolver,
		risk.WithMetrics(metrics.NewPrometheusCollector(registry)),
		risk.WithPageSize(config.GetIntEnv("MARKET_PAGE_SIZE", market.DefaultPageSize)),
	)
	deps.Metrics = promhttp.HandlerFor(registry, promhttp.HandlerOpts{})

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: config.GetEnv("CORS_ORIGINS", "http://localhost:5173"),
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,PUT",
	}))

	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))

	app.Use("/api/risk", middleware.RateLimit(config.GetIntEnv("ASSESS_RATE_LIMIT", 30), time.Minute))

	routes.SetupRoutes(app, deps)

	log.Fatal(app.Listen(":" + config.GetEnv("PORT", "3000")))
}

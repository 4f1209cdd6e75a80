// ABOUTME: Huma API server configuration and setup
// ABOUTME: Provides OpenAPI documentation, middleware wiring and operational endpoints

package api

import (
	"context"
	"net/http"

	"cocktails-app-api/api/middleware"
	"cocktails-app-api/core/interfaces"
	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	apiTitle       = "Cocktails API"
	apiVersion     = "1.0.0"
	apiDescription = "Query TheCocktailDB and filter a loaded table of drinks by id, category, ingredients and instructions"
)

// APIConfig holds configuration for the API
type APIConfig struct {
	Logger  interfaces.Logger
	Limiter *middleware.RateLimiter // nil disables rate limiting
	Metrics bool                    // instrument requests and expose /metrics
}

func corsHandler() func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", middleware.RequestIDHeader},
		ExposedHeaders:   []string{middleware.RequestIDHeader, "Retry-After"},
		AllowCredentials: false,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	})
}

func newHumaConfig() huma.Config {
	config := huma.DefaultConfig(apiTitle, apiVersion)
	config.Info.Description = apiDescription
	return config
}

// NewAPI creates and configures a new Huma API instance
func NewAPI() (huma.API, chi.Router) {
	router := chi.NewRouter()
	router.Use(corsHandler())

	// The OpenAPI spec is served at /openapi.json and the docs UI at /docs
	api := humachi.New(router, newHumaConfig())
	registerHealth(api)

	return api, router
}

// NewAPIWithMiddleware creates a new API with middleware configured
func NewAPIWithMiddleware(cfg APIConfig) (huma.API, chi.Router) {
	router := chi.NewRouter()

	// CORS first so preflight requests skip everything else
	router.Use(corsHandler())

	if cfg.Metrics {
		router.Use(middleware.MetricsMiddleware)
	}

	if cfg.Logger != nil {
		router.Use(middleware.RequestLoggingMiddleware(cfg.Logger))
	}

	if cfg.Limiter != nil {
		router.Use(middleware.RateLimitMiddleware(cfg.Limiter))
	}

	if cfg.Metrics {
		router.Handle("/metrics", promhttp.Handler())
	}

	api := humachi.New(router, newHumaConfig())
	registerHealth(api)

	return api, router
}

// HealthOutput is the liveness response
type HealthOutput struct {
	Body struct {
		Status string `json:"status" example:"ok" doc:"Always ok while the process serves requests"`
	}
}

func registerHealth(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "healthz",
		Method:      http.MethodGet,
		Path:        "/healthz",
		Summary:     "Liveness probe",
		Tags:        []string{"Operations"},
	}, func(ctx context.Context, input *struct{}) (*HealthOutput, error) {
		out := &HealthOutput{}
		out.Body.Status = "ok"
		return out, nil
	})
}

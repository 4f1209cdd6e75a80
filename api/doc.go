// Package api provides the HTTP API layer for the Cocktails application.
// It uses the Huma framework on a chi router for OpenAPI documentation,
// request validation, and a clean handler interface.
//
// # Architecture
//
// - server.go: Huma API configuration and setup
// - handlers/: HTTP request handlers for drink lookups and the result table
// - dto/: Data Transfer Objects for requests and responses
// - middleware/: Request logging, rate limiting and Prometheus metrics
//
// The OpenAPI spec is served at /openapi.json and the interactive docs at /docs.
//
// # Usage Example
//
//	humaAPI, router := api.NewAPIWithMiddleware(api.APIConfig{
//	    Logger:  logger,
//	    Limiter: middleware.NewRateLimiter(10, 20, 10*time.Minute),
//	    Metrics: true,
//	})
//
//	handlers.NewDrinksHandler(service).RegisterRoutes(humaAPI)
//	handlers.NewTableHandler(service, store, view).RegisterRoutes(humaAPI)
//
//	http.ListenAndServe(":8000", router)
//
// # Error Handling
//
// Errors use the RFC 7807 problem format. Upstream failures map to 503 with a
// fixed message, missing drinks to 404 and bad arguments to 400.
//
package api

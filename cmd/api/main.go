// ABOUTME: Main entry point for the Cocktails API server
// ABOUTME: Wires together all components and starts the HTTP server

package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cocktails-app-api/api"
	"cocktails-app-api/api/handlers"
	"cocktails-app-api/api/middleware"
	"cocktails-app-api/core/cocktaildb"
	"cocktails-app-api/core/domain"
	"cocktails-app-api/core/interfaces"
	"cocktails-app-api/core/results"
	"cocktails-app-api/infrastructure/cache/memory"
	"cocktails-app-api/infrastructure/cache/redis"
	stdhttp "cocktails-app-api/infrastructure/http/standard"
	stdlogger "cocktails-app-api/infrastructure/logger/standard"
	"cocktails-app-api/pkg/config"
	"cocktails-app-api/pkg/featureflags"
)

func main() {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger := stdlogger.NewLogger(stdlogger.Options{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		File:   cfg.Log.File,
	})

	flags := featureflags.NewEnvManager("FEATURE_")
	ctx := context.Background()

	logger.Info("Starting Cocktails API", map[string]interface{}{
		"port":       cfg.Server.Port,
		"base_url":   cfg.CocktailDB.BaseURL,
		"cache_type": cfg.Cache.Type,
		"flags":      flags.GetAllFlags(),
	})

	var cache interfaces.Cache
	var closeCache func() error
	if flags.IsEnabled(ctx, featureflags.CacheEnabled) {
		cache, closeCache = newCache(cfg, logger)
	}

	httpClient := stdhttp.NewLoggingHTTPClient(cfg.CocktailDB.Timeout, logger)

	deps := interfaces.Dependencies{
		Cache:      cache,
		HTTPClient: httpClient,
		Logger:     logger,
	}

	cocktails := cocktaildb.NewClient(deps, cocktaildb.Config{
		BaseURL:  cfg.CocktailDB.BaseURL,
		CacheTTL: cfg.CocktailDB.CacheTTL,
	})

	view := handlers.NewTableView()
	store := results.NewStore(view, logger)

	apiConfig := api.APIConfig{
		Logger:  logger,
		Metrics: flags.IsEnabled(ctx, featureflags.MetricsEnabled),
	}
	if flags.IsEnabled(ctx, featureflags.RateLimitEnabled) {
		apiConfig.Limiter = middleware.NewRateLimiter(cfg.Server.RateLimitRPS, cfg.Server.RateLimitBurst, 10*time.Minute)
		defer apiConfig.Limiter.Stop()
	}
	humaAPI, router := api.NewAPIWithMiddleware(apiConfig)

	handlers.NewDrinksHandler(cocktails).RegisterRoutes(humaAPI)
	handlers.NewTableHandler(cocktails, store, view).RegisterRoutes(humaAPI)

	if flags.IsEnabled(ctx, featureflags.InitialLoadEnabled) {
		go initialLoad(store, cocktails, cfg.CocktailDB.InitialSearch, cfg.CocktailDB.Timeout)
	}

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: cfg.CocktailDB.Timeout + 5*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("HTTP server starting", map[string]interface{}{
			"address": srv.Addr,
		})
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server error", map[string]interface{}{
				"error": err.Error(),
			})
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...", nil)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shutdown", map[string]interface{}{
			"error": err.Error(),
		})
	}

	if closeCache != nil {
		if err := closeCache(); err != nil {
			logger.Warn("Failed to close cache", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}

	logger.Info("Server stopped", nil)
}

// newCache picks the configured backend, falling back to memory when Redis is unreachable
func newCache(cfg *config.Config, logger interfaces.Logger) (interfaces.Cache, func() error) {
	if cfg.Cache.Type == "redis" {
		redisCache, err := redis.NewRedisCache(cfg.Cache.Redis)
		if err == nil {
			logger.Info("Using Redis cache", map[string]interface{}{
				"address": cfg.Cache.Redis.Address,
			})
			return redisCache, redisCache.Close
		}
		logger.Error("Failed to create Redis cache, falling back to memory", map[string]interface{}{
			"error": err.Error(),
		})
	}

	logger.Info("Using memory cache", nil)
	return memory.NewMemoryCacheWithCleanup(cfg.Cache.Memory.CleanupInterval), nil
}

// initialLoad populates the table the way the UI did on first render
func initialLoad(store *results.Store, svc interfaces.CocktailService, name string, timeout time.Duration) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	// Errors are logged and surfaced through the table view by the store
	_ = store.Load(ctx, func(ctx context.Context) ([]domain.Cocktail, error) {
		return svc.SearchByName(ctx, name)
	})
}

func init() {
	fmt.Println(`
   ___         _   _        _ _        _   ___ ___
  / __|___  __| |_| |_ __ _(_) |___   /_\ | _ \_ _|
 | (__/ _ \/ _| / /  _/ _' | | (_-<  / _ \|  _/| |
  \___\___/\__|_\_\\__\__,_|_|_/__/ /_/ \_\_| |___|
	`)
}

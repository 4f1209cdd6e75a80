// Package infrastructure provides concrete implementations of the interfaces
// defined in the core package.
//
// - cache/memory: In-memory cache backed by patrickmn/go-cache
// - cache/redis: Redis-based cache implementation
// - http/standard: net/http client with request logging and no retries
// - logger/standard: logrus logger with optional lumberjack file rotation
//
// # Cache Implementations
//
//	cache := memory.NewMemoryCache()
//	err := cache.Set(ctx, "key", []byte("value"), 1*time.Hour)
//	value, err := cache.Get(ctx, "key")
//
//	cache, err := redis.NewRedisCache(config.RedisConfig{Address: "localhost:6379"})
//
// # HTTP Client
//
//	client := standard.NewLoggingHTTPClient(10*time.Second, logger)
//	resp, err := client.Get(ctx, "https://www.thecocktaildb.com/api/json/v1/1/list.php?c=list")
//	if err != nil {
//	    // Handle error
//	}
//	defer resp.Body().Close()
//
// # Logger
//
//	logger := standard.NewLogger(standard.Options{Level: "debug", Format: "json"})
//	logger.Info("Result set loaded", map[string]interface{}{
//	    "total": 25,
//	})
//
package infrastructure

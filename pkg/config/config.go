// ABOUTME: Configuration management for the application with environment variable support
// ABOUTME: Loads an optional .env file, applies defaults and validates with struct tags

package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Config holds all application configuration
type Config struct {
	// Server contains HTTP server configuration
	Server ServerConfig

	// CocktailDB contains upstream API configuration
	CocktailDB CocktailDBConfig

	// Cache contains cache configuration
	Cache CacheConfig

	// Log contains logger configuration
	Log LogConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	// Port is the HTTP server port
	Port string `validate:"required,numeric"`

	// RateLimitRPS is the sustained per-client request rate
	RateLimitRPS float64 `validate:"gt=0"`

	// RateLimitBurst is the per-client burst size
	RateLimitBurst int `validate:"gte=1"`

	// ShutdownTimeout bounds graceful shutdown
	ShutdownTimeout time.Duration `validate:"gt=0"`
}

// CocktailDBConfig holds upstream API configuration
type CocktailDBConfig struct {
	// BaseURL is the API root, without a trailing endpoint
	BaseURL string `validate:"required,url"`

	// Timeout bounds each upstream request
	Timeout time.Duration `validate:"gt=0"`

	// CacheTTL is how long list lookups are cached; zero disables caching
	CacheTTL time.Duration `validate:"gte=0"`

	// InitialSearch is the name query used to populate the table at startup
	InitialSearch string `validate:"required"`
}

// CacheConfig holds cache backend configuration
type CacheConfig struct {
	// Type specifies the cache backend (redis/memory)
	Type string `validate:"oneof=redis memory"`

	// Redis contains Redis-specific configuration
	Redis RedisConfig

	// Memory contains in-memory cache configuration
	Memory MemoryConfig
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	// Address is the Redis server address
	Address string

	// Password is the Redis authentication password
	Password string

	// DB is the Redis database number
	DB int `validate:"gte=0"`

	// KeyPrefix namespaces every key written by this service
	KeyPrefix string
}

// MemoryConfig holds in-memory cache configuration
type MemoryConfig struct {
	// CleanupInterval is how often expired entries are purged
	CleanupInterval time.Duration `validate:"gt=0"`
}

// LogConfig holds logger configuration
type LogConfig struct {
	Level  string `validate:"oneof=debug info warn error"`
	Format string `validate:"oneof=text json"`
	File   string
}

// LoadFromEnv loads configuration from environment variables.
// A .env file in the working directory is read first when present; it never
// overrides variables that are already set.
func LoadFromEnv() (*Config, error) {
	_ = godotenv.Load(".env")

	cfg := &Config{
		Server: ServerConfig{
			Port:            getEnvOrDefault("PORT", "8000"),
			RateLimitRPS:    getEnvAsFloatOrDefault("RATE_LIMIT_RPS", 10),
			RateLimitBurst:  getEnvAsIntOrDefault("RATE_LIMIT_BURST", 20),
			ShutdownTimeout: getEnvAsDurationOrDefault("SHUTDOWN_TIMEOUT", 10*time.Second),
		},
		CocktailDB: CocktailDBConfig{
			BaseURL:       getEnvOrDefault("COCKTAILDB_BASE_URL", "https://www.thecocktaildb.com/api/json/v1/1"),
			Timeout:       getEnvAsDurationOrDefault("COCKTAILDB_TIMEOUT", 10*time.Second),
			CacheTTL:      getEnvAsDurationOrDefault("COCKTAILDB_CACHE_TTL", time.Hour),
			InitialSearch: getEnvOrDefault("COCKTAILDB_INITIAL_SEARCH", "a"),
		},
		Cache: CacheConfig{
			Type: strings.ToLower(getEnvOrDefault("CACHE_TYPE", "memory")),
			Redis: RedisConfig{
				Address:   getEnvOrDefault("REDIS_ADDRESS", "localhost:6379"),
				Password:  getEnvOrDefault("REDIS_PASSWORD", ""),
				DB:        getEnvAsIntOrDefault("REDIS_DB", 0),
				KeyPrefix: getEnvOrDefault("REDIS_KEY_PREFIX", "cocktails:"),
			},
			Memory: MemoryConfig{
				CleanupInterval: getEnvAsDurationOrDefault("MEMORY_CACHE_CLEANUP", 10*time.Minute),
			},
		},
		Log: LogConfig{
			Level:  strings.ToLower(getEnvOrDefault("LOG_LEVEL", "info")),
			Format: strings.ToLower(getEnvOrDefault("LOG_FORMAT", "text")),
			File:   getEnvOrDefault("LOG_FILE", ""),
		},
	}

	return cfg, nil
}

// getEnvOrDefault returns the environment variable value or a default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsIntOrDefault returns the environment variable as int or a default
func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}

// getEnvAsDurationOrDefault accepts Go durations ("90s") or bare seconds ("90")
func getEnvAsDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	if d, err := time.ParseDuration(value); err == nil {
		return d
	}
	if secs, err := strconv.Atoi(value); err == nil {
		return time.Duration(secs) * time.Second
	}
	return defaultValue
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			fe := fieldErrs[0]
			return fmt.Errorf("invalid config %s: failed %q check", fe.Namespace(), fe.Tag())
		}
		return err
	}

	if c.Cache.Type == "redis" && c.Cache.Redis.Address == "" {
		return errors.New("redis address cannot be empty when using redis cache")
	}

	return nil
}

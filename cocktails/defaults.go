// ABOUTME: Default implementations for library dependencies
// ABOUTME: Provides factory functions for creating default service implementations

package cocktails

import (
	"time"

	"cocktails-app-api/core/interfaces"
	"cocktails-app-api/infrastructure/cache/memory"
	httpInfra "cocktails-app-api/infrastructure/http/standard"
	loggerInfra "cocktails-app-api/infrastructure/logger/standard"
)

// DefaultHTTPClient creates a default HTTP client with the given timeout
func DefaultHTTPClient(timeout time.Duration) interfaces.HTTPClient {
	return httpInfra.NewStandardHTTPClient(timeout)
}

// DefaultMemoryCache creates a default in-memory cache
func DefaultMemoryCache() interfaces.Cache {
	return memory.NewMemoryCache()
}

// DefaultLogger creates a logger that only reports warnings and errors
func DefaultLogger() interfaces.Logger {
	return loggerInfra.NewLogger(loggerInfra.Options{Level: "warn"})
}

// QuietLogger creates a logger that discards all output
func QuietLogger() interfaces.Logger {
	return &quietLogger{}
}

// quietLogger is a logger that discards all output
type quietLogger struct{}

func (q *quietLogger) Debug(msg string, fields map[string]interface{}) {}
func (q *quietLogger) Info(msg string, fields map[string]interface{})  {}
func (q *quietLogger) Warn(msg string, fields map[string]interface{})  {}
func (q *quietLogger) Error(msg string, fields map[string]interface{}) {}

// WithQuietMode configures the client to suppress all log output
func WithQuietMode() Option {
	return func(c *Config) error {
		c.Logger = QuietLogger()
		return nil
	}
}

// WithVerboseLogging logs at debug level, including every upstream request
func WithVerboseLogging() Option {
	return func(c *Config) error {
		logger := loggerInfra.NewLogger(loggerInfra.Options{Level: "debug"})
		c.Logger = logger
		c.HTTPClient = httpInfra.NewLoggingHTTPClient(c.Timeout, logger)
		return nil
	}
}

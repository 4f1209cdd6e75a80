// ABOUTME: Configuration options for the cocktails library client
// ABOUTME: Provides functional options pattern for flexible client configuration

package cocktails

import (
	"net/url"
	"time"

	"cocktails-app-api/core/cocktaildb"
	"cocktails-app-api/core/interfaces"
)

// Option is a functional option for configuring the client
type Option func(*Config) error

// WithCache sets a custom cache implementation
func WithCache(cache interfaces.Cache) Option {
	return func(c *Config) error {
		c.Cache = cache
		return nil
	}
}

// WithHTTPClient sets a custom HTTP client
func WithHTTPClient(client interfaces.HTTPClient) Option {
	return func(c *Config) error {
		c.HTTPClient = client
		return nil
	}
}

// WithLogger sets a custom logger
func WithLogger(logger interfaces.Logger) Option {
	return func(c *Config) error {
		c.Logger = logger
		return nil
	}
}

// WithView sets the view notified of table changes
func WithView(view interfaces.View) Option {
	return func(c *Config) error {
		c.View = view
		return nil
	}
}

// WithBaseURL points the client at a different API root
func WithBaseURL(baseURL string) Option {
	return func(c *Config) error {
		u, err := url.Parse(baseURL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return NewError(ErrorTypeConfiguration, "invalid base URL").
				WithContext("base_url", baseURL)
		}
		c.BaseURL = baseURL
		return nil
	}
}

// WithCacheTTL sets the TTL for list lookups
func WithCacheTTL(ttl time.Duration) Option {
	return func(c *Config) error {
		c.CacheTTL = ttl
		return nil
	}
}

// WithTimeout sets the per-request timeout of the default HTTP client
func WithTimeout(timeout time.Duration) Option {
	return func(c *Config) error {
		if timeout <= 0 {
			return NewError(ErrorTypeConfiguration, "timeout must be positive")
		}
		c.Timeout = timeout
		return nil
	}
}

// WithoutCache disables list caching
func WithoutCache() Option {
	return func(c *Config) error {
		c.Cache = nil
		c.CacheTTL = 0
		return nil
	}
}

// defaultConfig returns the default client configuration
func defaultConfig() Config {
	return Config{
		Cache:    DefaultMemoryCache(),
		Logger:   DefaultLogger(),
		BaseURL:  cocktaildb.DefaultBaseURL,
		CacheTTL: time.Hour,
		Timeout:  10 * time.Second,
	}
}

// ABOUTME: Main client for the cocktails library providing lookups and a filterable table
// ABOUTME: Offers a clean API for using core functionality without HTTP server dependencies

package cocktails

import (
	"context"
	"time"

	"cocktails-app-api/core/cocktaildb"
	"cocktails-app-api/core/domain"
	"cocktails-app-api/core/filter"
	"cocktails-app-api/core/interfaces"
	"cocktails-app-api/core/present"
	"cocktails-app-api/core/results"
)

// Cocktail is a drink as returned by the upstream API
type Cocktail = domain.Cocktail

// Row is the flat display projection of a cocktail
type Row = present.Row

// Field names one filterable table column
type Field = filter.Field

// Filterable columns
const (
	FieldID           = filter.FieldID
	FieldCategory     = filter.FieldCategory
	FieldIngredients  = filter.FieldIngredients
	FieldInstructions = filter.FieldInstructions
)

// View receives the rows a table should display
type View = interfaces.View

// Client is the main entry point for the cocktails library
type Client struct {
	service *cocktaildb.Client
	table   *results.Store
	deps    interfaces.Dependencies
	config  Config
}

// Config holds the configuration for the client
type Config struct {
	// Cache backs ingredient and category list lookups; nil disables caching
	Cache interfaces.Cache

	// HTTPClient performs upstream requests
	HTTPClient interfaces.HTTPClient

	// Logger receives structured logs
	Logger interfaces.Logger

	// View is notified whenever the table's displayed rows change
	View interfaces.View

	// BaseURL overrides the upstream API root
	BaseURL string

	// CacheTTL is how long list lookups stay cached; zero disables caching
	CacheTTL time.Duration

	// Timeout bounds each upstream request when the default HTTP client is used
	Timeout time.Duration
}

// NewClient creates a new cocktails client with the given options
func NewClient(options ...Option) (*Client, error) {
	config := defaultConfig()

	for _, opt := range options {
		if err := opt(&config); err != nil {
			return nil, err
		}
	}

	if config.HTTPClient == nil {
		config.HTTPClient = DefaultHTTPClient(config.Timeout)
	}

	if err := validateConfig(&config); err != nil {
		return nil, err
	}

	deps := interfaces.Dependencies{
		HTTPClient: config.HTTPClient,
		Cache:      config.Cache,
		Logger:     config.Logger,
	}

	return &Client{
		service: cocktaildb.NewClient(deps, cocktaildb.Config{
			BaseURL:  config.BaseURL,
			CacheTTL: config.CacheTTL,
		}),
		table:  results.NewStore(config.View, config.Logger),
		deps:   deps,
		config: config,
	}, nil
}

// ListIngredients returns every ingredient name
func (c *Client) ListIngredients(ctx context.Context) ([]string, error) {
	return c.service.ListIngredients(ctx)
}

// ListCategories returns every drink category
func (c *Client) ListCategories(ctx context.Context) ([]string, error) {
	return c.service.ListCategories(ctx)
}

// FilterByIngredient returns drinks containing the first ingredient
func (c *Client) FilterByIngredient(ctx context.Context, ingredients ...string) ([]Cocktail, error) {
	return c.service.FilterByIngredient(ctx, ingredients)
}

// FirstByIngredient returns the first drink containing the first ingredient
func (c *Client) FirstByIngredient(ctx context.Context, ingredients ...string) (*Cocktail, error) {
	return c.service.FirstByIngredient(ctx, ingredients)
}

// LookupByID returns one drink by its upstream id
func (c *Client) LookupByID(ctx context.Context, id string) (*Cocktail, error) {
	return c.service.LookupByID(ctx, id)
}

// SearchByName returns drinks whose name matches name
func (c *Client) SearchByName(ctx context.Context, name string) ([]Cocktail, error) {
	return c.service.SearchByName(ctx, name)
}

// FilterByAlcoholic returns drinks with the given alcoholic classification
func (c *Client) FilterByAlcoholic(ctx context.Context, alcoholic string) ([]Cocktail, error) {
	return c.service.FilterByAlcoholic(ctx, alcoholic)
}

// Service exposes the underlying lookup service
func (c *Client) Service() interfaces.CocktailService {
	return c.service
}

// Table returns the client's result store
func (c *Client) Table() *results.Store {
	return c.table
}

// LoadTable replaces the table contents with a name search
func (c *Client) LoadTable(ctx context.Context, name string) error {
	return c.table.Load(ctx, func(ctx context.Context) ([]domain.Cocktail, error) {
		return c.service.SearchByName(ctx, name)
	})
}

// Filter sets one table filter by column name, e.g. "category"
func (c *Client) Filter(column, value string) error {
	field, err := filter.ParseField(column)
	if err != nil {
		return err
	}
	c.table.SetField(field, value)
	return nil
}

// Rows returns the displayed table rows
func (c *Client) Rows() []Row {
	return present.ToRows(c.table.Displayed())
}

// validateConfig validates the client configuration
func validateConfig(config *Config) error {
	if config.HTTPClient == nil {
		return NewError(ErrorTypeConfiguration, "HTTP client is required")
	}

	if config.Logger == nil {
		return NewError(ErrorTypeConfiguration, "logger is required")
	}

	if config.CacheTTL < 0 {
		return NewError(ErrorTypeConfiguration, "cache TTL cannot be negative")
	}

	return nil
}

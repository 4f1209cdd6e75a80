// ABOUTME: TheCocktailDB client wrapping the read-only lookup endpoints
// ABOUTME: Normalizes every upstream failure into a single transport error

package cocktaildb

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"strings"
	"time"

	"cocktails-app-api/core/domain"
	"cocktails-app-api/core/errors"
	"cocktails-app-api/core/interfaces"
)

// DefaultBaseURL is the public v1 endpoint with the shared test key.
const DefaultBaseURL = "https://www.thecocktaildb.com/api/json/v1/1"

// Config holds client settings
type Config struct {
	// BaseURL is the API root; sub-paths such as search.php are appended to it
	BaseURL string

	// CacheTTL is how long ingredient and category lists are cached.
	// Zero disables caching.
	CacheTTL time.Duration
}

// Client implements interfaces.CocktailService against TheCocktailDB
type Client struct {
	deps    interfaces.Dependencies
	baseURL string
	ttl     time.Duration
}

// NewClient creates a new cocktail API client
func NewClient(deps interfaces.Dependencies, cfg Config) *Client {
	base := strings.TrimRight(cfg.BaseURL, "/")
	if base == "" {
		base = DefaultBaseURL
	}
	return &Client{
		deps:    deps,
		baseURL: base,
		ttl:     cfg.CacheTTL,
	}
}

// ListIngredients returns every ingredient name known to the API
func (c *Client) ListIngredients(ctx context.Context) ([]string, error) {
	return c.listNames(ctx, "list_ingredients", "i", "strIngredient1")
}

// ListCategories returns every drink category name
func (c *Client) ListCategories(ctx context.Context) ([]string, error) {
	return c.listNames(ctx, "list_categories", "c", "strCategory")
}

// FilterByIngredient returns the drinks containing the first given ingredient
func (c *Client) FilterByIngredient(ctx context.Context, ingredients []string) ([]domain.Cocktail, error) {
	ingredient, err := firstIngredient(ingredients)
	if err != nil {
		return nil, err
	}
	return c.drinks(ctx, "filter_by_ingredient", "filter.php", url.Values{"i": {ingredient}})
}

// LookupByID returns the full record of one drink
func (c *Client) LookupByID(ctx context.Context, id string) (*domain.Cocktail, error) {
	if strings.TrimSpace(id) == "" {
		return nil, &errors.ValidationError{Field: "id", Message: "cannot be empty"}
	}
	list, err := c.drinks(ctx, "lookup_by_id", "lookup.php", url.Values{"i": {id}})
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, &errors.NotFoundError{Resource: "cocktail", ID: id}
	}
	return &list[0], nil
}

// FirstByIngredient returns the first drink containing the first given ingredient
func (c *Client) FirstByIngredient(ctx context.Context, ingredients []string) (*domain.Cocktail, error) {
	list, err := c.FilterByIngredient(ctx, ingredients)
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, &errors.NotFoundError{Resource: "cocktail with ingredient", ID: ingredients[0]}
	}
	return &list[0], nil
}

// SearchByName returns the drinks whose name contains name
func (c *Client) SearchByName(ctx context.Context, name string) ([]domain.Cocktail, error) {
	if strings.TrimSpace(name) == "" {
		return nil, &errors.ValidationError{Field: "name", Message: "cannot be empty"}
	}
	return c.drinks(ctx, "search_by_name", "search.php", url.Values{"s": {name}})
}

// FilterByAlcoholic returns the drinks of an alcoholic type, e.g. "Non_Alcoholic"
func (c *Client) FilterByAlcoholic(ctx context.Context, alcoholic string) ([]domain.Cocktail, error) {
	if strings.TrimSpace(alcoholic) == "" {
		return nil, &errors.ValidationError{Field: "alcoholic", Message: "cannot be empty"}
	}
	return c.drinks(ctx, "filter_by_alcoholic", "filter.php", url.Values{"a": {alcoholic}})
}

func firstIngredient(ingredients []string) (string, error) {
	if len(ingredients) == 0 || strings.TrimSpace(ingredients[0]) == "" {
		return "", &errors.ValidationError{Field: "ingredients", Message: "at least one ingredient is required"}
	}
	return ingredients[0], nil
}

// listNames resolves a list.php lookup, checking the cache first
func (c *Client) listNames(ctx context.Context, operation, param, key string) ([]string, error) {
	cacheKey := fmt.Sprintf("cocktaildb:list:%s", param)
	if names, ok := c.cachedNames(ctx, cacheKey); ok {
		upstreamCacheHits.WithLabelValues(operation).Inc()
		return names, nil
	}

	records, err := c.fetch(ctx, operation, "list.php", url.Values{param: {"list"}})
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(records))
	for _, r := range records {
		if name := r.str(key); name != "" {
			names = append(names, name)
		}
	}

	if c.deps.Cache != nil && c.ttl > 0 && len(names) > 0 {
		if data, err := json.Marshal(names); err == nil {
			_ = c.deps.Cache.Set(ctx, cacheKey, data, c.ttl)
		}
	}

	return names, nil
}

func (c *Client) cachedNames(ctx context.Context, key string) ([]string, bool) {
	if c.deps.Cache == nil || c.ttl <= 0 {
		return nil, false
	}
	data, err := c.deps.Cache.Get(ctx, key)
	if err != nil || data == nil {
		return nil, false
	}
	var names []string
	if err := json.Unmarshal(data, &names); err != nil {
		return nil, false
	}
	return names, true
}

func (c *Client) drinks(ctx context.Context, operation, endpoint string, params url.Values) ([]domain.Cocktail, error) {
	records, err := c.fetch(ctx, operation, endpoint, params)
	if err != nil {
		return nil, err
	}
	cocktails := make([]domain.Cocktail, 0, len(records))
	for _, r := range records {
		cocktails = append(cocktails, r.toCocktail())
	}
	return cocktails, nil
}

// fetch issues one GET and decodes the drinks array. Every failure is logged
// with its cause and returned as a TransportError.
func (c *Client) fetch(ctx context.Context, operation, endpoint string, params url.Values) ([]record, error) {
	start := time.Now()
	defer func() {
		upstreamDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
	}()

	if c.deps.HTTPClient == nil {
		return nil, c.fail(operation, endpoint, fmt.Errorf("HTTP client not configured"))
	}

	requestURL := fmt.Sprintf("%s/%s?%s", c.baseURL, endpoint, params.Encode())

	resp, err := c.deps.HTTPClient.Get(ctx, requestURL)
	if err != nil {
		return nil, c.fail(operation, endpoint, err)
	}
	defer resp.Body().Close()

	if resp.StatusCode() < 200 || resp.StatusCode() > 299 {
		return nil, c.fail(operation, endpoint, fmt.Errorf("upstream returned status %d", resp.StatusCode()))
	}

	body, err := io.ReadAll(resp.Body())
	if err != nil {
		return nil, c.fail(operation, endpoint, fmt.Errorf("failed to read response: %w", err))
	}

	records, err := decodeDrinks(body)
	if err != nil {
		return nil, c.fail(operation, endpoint, err)
	}

	upstreamRequests.WithLabelValues(operation, "success").Inc()
	if c.deps.Logger != nil {
		c.deps.Logger.Debug("CocktailDB request completed", map[string]interface{}{
			"operation": operation,
			"endpoint":  endpoint,
			"results":   len(records),
		})
	}
	return records, nil
}

func (c *Client) fail(operation, endpoint string, cause error) error {
	upstreamRequests.WithLabelValues(operation, "error").Inc()
	if c.deps.Logger != nil {
		c.deps.Logger.Error("CocktailDB request failed", map[string]interface{}{
			"operation": operation,
			"endpoint":  endpoint,
			"error":     cause.Error(),
		})
	}
	return &errors.TransportError{Operation: operation}
}

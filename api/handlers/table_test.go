package handlers

import (
	"context"
	"encoding/json"
	"testing"

	"cocktails-app-api/api/dto/responses"
	"cocktails-app-api/core/domain"
	"cocktails-app-api/core/errors"
	"cocktails-app-api/core/results"
	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTableAPI(t *testing.T, svc *mockCocktailService) (humatest.TestAPI, *results.Store) {
	view := NewTableView()
	store := results.NewStore(view, nil)
	_, api := humatest.New(t)
	NewTableHandler(svc, store, view).RegisterRoutes(api)
	return api, store
}

func decodeTable(t *testing.T, body []byte) responses.TableResponse {
	t.Helper()
	var table responses.TableResponse
	require.NoError(t, json.Unmarshal(body, &table))
	return table
}

func rowIDs(table responses.TableResponse) []string {
	ids := make([]string, 0, len(table.Rows))
	for _, r := range table.Rows {
		ids = append(ids, r.ID)
	}
	return ids
}

func TestTableHandler_GetBeforeLoad(t *testing.T) {
	api, _ := newTableAPI(t, &mockCocktailService{})

	resp := api.Get("/table")

	require.Equal(t, 200, resp.Code)
	table := decodeTable(t, resp.Body.Bytes())
	assert.False(t, table.Loaded)
	assert.Empty(t, table.Rows)
	assert.Equal(t, 0, table.Total)
}

func TestTableHandler_LoadDefaultsToA(t *testing.T) {
	var gotName string
	api, _ := newTableAPI(t, &mockCocktailService{
		searchByNameFunc: func(ctx context.Context, name string) ([]domain.Cocktail, error) {
			gotName = name
			return sampleDrinks(), nil
		},
	})

	resp := api.Post("/table/load", map[string]any{})

	require.Equal(t, 200, resp.Code)
	assert.Equal(t, "a", gotName)
	table := decodeTable(t, resp.Body.Bytes())
	assert.True(t, table.Loaded)
	assert.Equal(t, 5, table.Total)
	assert.Equal(t, 5, table.Displayed)
}

func TestTableHandler_FilterNarrowsAndClearRestores(t *testing.T) {
	api, _ := newTableAPI(t, &mockCocktailService{
		searchByNameFunc: func(ctx context.Context, name string) ([]domain.Cocktail, error) {
			return sampleDrinks(), nil
		},
	})
	require.Equal(t, 200, api.Post("/table/load", map[string]any{"name": "a"}).Code)

	resp := api.Put("/table/filters/category", map[string]any{"value": "VODKA"})
	require.Equal(t, 200, resp.Code)
	assert.Equal(t, []string{"1", "2"}, rowIDs(decodeTable(t, resp.Body.Bytes())))

	resp = api.Put("/table/filters/instructions", map[string]any{"value": "shake"})
	require.Equal(t, 200, resp.Code)
	table := decodeTable(t, resp.Body.Bytes())
	assert.Equal(t, []string{"1"}, rowIDs(table))
	assert.Equal(t, "VODKA", table.Filters.Category)
	assert.Equal(t, "shake", table.Filters.Instructions)

	resp = api.Delete("/table/filters")
	require.Equal(t, 200, resp.Code)
	table = decodeTable(t, resp.Body.Bytes())
	assert.Equal(t, []string{"1", "2", "3", "4", "5"}, rowIDs(table))
	assert.Equal(t, responses.FiltersResponse{}, table.Filters)
}

func TestTableHandler_IngredientsFilter(t *testing.T) {
	api, _ := newTableAPI(t, &mockCocktailService{
		searchByNameFunc: func(ctx context.Context, name string) ([]domain.Cocktail, error) {
			return sampleDrinks(), nil
		},
	})
	api.Post("/table/load", map[string]any{})

	resp := api.Put("/table/filters/ingredients", map[string]any{"value": "rum, mint"})

	require.Equal(t, 200, resp.Code)
	assert.Equal(t, []string{"3"}, rowIDs(decodeTable(t, resp.Body.Bytes())))
}

func TestTableHandler_UnknownFilterField(t *testing.T) {
	api, store := newTableAPI(t, &mockCocktailService{})

	resp := api.Put("/table/filters/glass", map[string]any{"value": "highball"})

	assert.Equal(t, 400, resp.Code)
	assert.True(t, store.Query().IsEmpty())
}

func TestTableHandler_LoadFailureKeepsRows(t *testing.T) {
	fail := false
	api, _ := newTableAPI(t, &mockCocktailService{
		searchByNameFunc: func(ctx context.Context, name string) ([]domain.Cocktail, error) {
			if fail {
				return nil, &errors.TransportError{Operation: "search_by_name"}
			}
			return sampleDrinks(), nil
		},
	})
	require.Equal(t, 200, api.Post("/table/load", map[string]any{}).Code)

	fail = true
	resp := api.Post("/table/load", map[string]any{"name": "m"})
	assert.Equal(t, 503, resp.Code)
	assert.Contains(t, resp.Body.String(), errors.TransportMessage)

	table := decodeTable(t, api.Get("/table").Body.Bytes())
	assert.Equal(t, 5, table.Total)
	assert.Equal(t, errors.TransportMessage, table.Error)

	fail = false
	table = decodeTable(t, api.Post("/table/load", map[string]any{}).Body.Bytes())
	assert.Empty(t, table.Error)
}

func TestTableHandler_FailedInitialLoadLeavesTableEmpty(t *testing.T) {
	api, _ := newTableAPI(t, &mockCocktailService{
		searchByNameFunc: func(ctx context.Context, name string) ([]domain.Cocktail, error) {
			return nil, &errors.TransportError{Operation: "search_by_name"}
		},
	})

	assert.Equal(t, 503, api.Post("/table/load", map[string]any{}).Code)

	table := decodeTable(t, api.Get("/table").Body.Bytes())
	assert.False(t, table.Loaded)
	assert.Empty(t, table.Rows)
	assert.Equal(t, errors.TransportMessage, table.Error)
}

func TestTableHandler_FiltersSurviveReload(t *testing.T) {
	api, _ := newTableAPI(t, &mockCocktailService{
		searchByNameFunc: func(ctx context.Context, name string) ([]domain.Cocktail, error) {
			return sampleDrinks(), nil
		},
	})
	api.Put("/table/filters/category", map[string]any{"value": "rum"})

	table := decodeTable(t, api.Post("/table/load", map[string]any{}).Body.Bytes())

	assert.Equal(t, []string{"3", "4", "5"}, rowIDs(table))
}

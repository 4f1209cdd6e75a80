// ABOUTME: Result table handlers for the Huma API
// ABOUTME: Loads drinks into the shared store and narrows them with filters

package handlers

import (
	"context"
	"net/http"
	"sync"

	"cocktails-app-api/api/dto/mappers"
	"cocktails-app-api/api/dto/requests"
	"cocktails-app-api/api/dto/responses"
	"cocktails-app-api/core/domain"
	"cocktails-app-api/core/filter"
	"cocktails-app-api/core/interfaces"
	"cocktails-app-api/core/results"
	"github.com/danielgtaylor/huma/v2"
)

// TableView remembers the last load error for clients polling the table.
// Rows are always read from the store snapshot.
type TableView struct {
	mu        sync.RWMutex
	lastError string
}

// NewTableView creates an empty view
func NewTableView() *TableView {
	return &TableView{}
}

// ReplaceRows clears any previous load error
func (v *TableView) ReplaceRows(rows []domain.Cocktail) {
	v.clearError()
}

// ShowError records message as the last load error
func (v *TableView) ShowError(message string) {
	v.mu.Lock()
	v.lastError = message
	v.mu.Unlock()
}

func (v *TableView) clearError() {
	v.mu.Lock()
	v.lastError = ""
	v.mu.Unlock()
}

// LastError returns the most recent load error, if any
func (v *TableView) LastError() string {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.lastError
}

// TableHandler handles the result table endpoints
type TableHandler struct {
	service interfaces.CocktailService
	store   *results.Store
	view    *TableView
}

// NewTableHandler creates a table handler. store must have been created with view.
func NewTableHandler(service interfaces.CocktailService, store *results.Store, view *TableView) *TableHandler {
	return &TableHandler{
		service: service,
		store:   store,
		view:    view,
	}
}

// RegisterRoutes registers all table routes
func (h *TableHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "loadTable",
		Method:      http.MethodPost,
		Path:        "/table/load",
		Summary:     "Load drinks into the table",
		Description: "Replaces the table contents with the results of a name search. Active filters are kept and reapplied.",
		Tags:        []string{"Table"},
	}, h.Load)

	huma.Register(api, huma.Operation{
		OperationID: "getTable",
		Method:      http.MethodGet,
		Path:        "/table",
		Summary:     "Get the displayed rows",
		Tags:        []string{"Table"},
	}, h.Get)

	huma.Register(api, huma.Operation{
		OperationID: "setTableFilter",
		Method:      http.MethodPut,
		Path:        "/table/filters/{field}",
		Summary:     "Set one filter field",
		Description: "field is one of id, category, ingredients, instructions. An empty value clears the field.",
		Tags:        []string{"Table"},
	}, h.SetFilter)

	huma.Register(api, huma.Operation{
		OperationID: "clearTableFilters",
		Method:      http.MethodDelete,
		Path:        "/table/filters",
		Summary:     "Clear all filters",
		Tags:        []string{"Table"},
	}, h.ClearFilters)
}

// TableOutput wraps the table state
type TableOutput struct {
	Body responses.TableResponse
}

func (h *TableHandler) output() *TableOutput {
	return &TableOutput{Body: mappers.ToTableResponse(h.store.Snapshot(), h.view.LastError())}
}

// LoadInput defines the input for Load
type LoadInput struct {
	Body requests.LoadTableRequest `required:"false"`
}

// Load handles POST /table/load
func (h *TableHandler) Load(ctx context.Context, input *LoadInput) (*TableOutput, error) {
	input.Body.ApplyDefaults()
	name := input.Body.Name

	err := h.store.Load(ctx, func(ctx context.Context) ([]domain.Cocktail, error) {
		return h.service.SearchByName(ctx, name)
	})
	if err != nil {
		return nil, toHumaError(err)
	}
	// An empty result after an empty table never reaches the view
	h.view.clearError()
	return h.output(), nil
}

// Get handles GET /table
func (h *TableHandler) Get(ctx context.Context, input *struct{}) (*TableOutput, error) {
	return h.output(), nil
}

// SetFilterInput defines the input for SetFilter
type SetFilterInput struct {
	Field string `path:"field" doc:"id, category, ingredients or instructions"`
	Body  requests.SetFilterRequest
}

// SetFilter handles PUT /table/filters/{field}
func (h *TableHandler) SetFilter(ctx context.Context, input *SetFilterInput) (*TableOutput, error) {
	field, err := filter.ParseField(input.Field)
	if err != nil {
		return nil, toHumaError(err)
	}
	h.store.SetField(field, input.Body.Value)
	return h.output(), nil
}

// ClearFilters handles DELETE /table/filters
func (h *TableHandler) ClearFilters(ctx context.Context, input *struct{}) (*TableOutput, error) {
	h.store.Clear()
	return h.output(), nil
}

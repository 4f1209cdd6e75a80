// ABOUTME: Lookup handlers for the Huma API
// ABOUTME: Exposes the upstream cocktail queries as stateless endpoints

package handlers

import (
	"context"
	"net/http"

	"cocktails-app-api/api/dto/mappers"
	"cocktails-app-api/api/dto/responses"
	"cocktails-app-api/core/interfaces"
	"github.com/danielgtaylor/huma/v2"
)

// DrinksHandler handles the stateless lookup endpoints
type DrinksHandler struct {
	service interfaces.CocktailService
}

// NewDrinksHandler creates a new drinks handler
func NewDrinksHandler(service interfaces.CocktailService) *DrinksHandler {
	return &DrinksHandler{service: service}
}

// RegisterRoutes registers all lookup routes
func (h *DrinksHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "listIngredients",
		Method:      http.MethodGet,
		Path:        "/ingredients",
		Summary:     "List ingredient names",
		Tags:        []string{"Lists"},
	}, h.ListIngredients)

	huma.Register(api, huma.Operation{
		OperationID: "listCategories",
		Method:      http.MethodGet,
		Path:        "/categories",
		Summary:     "List drink categories",
		Tags:        []string{"Lists"},
	}, h.ListCategories)

	huma.Register(api, huma.Operation{
		OperationID: "searchDrinks",
		Method:      http.MethodGet,
		Path:        "/drinks/search",
		Summary:     "Search drinks by name",
		Tags:        []string{"Drinks"},
	}, h.SearchByName)

	huma.Register(api, huma.Operation{
		OperationID: "drinksByIngredient",
		Method:      http.MethodGet,
		Path:        "/drinks/by-ingredient",
		Summary:     "Filter drinks by ingredient",
		Description: "Only the first ingredient is sent upstream. With first=true the first matching drink is returned on its own.",
		Tags:        []string{"Drinks"},
	}, h.FilterByIngredient)

	huma.Register(api, huma.Operation{
		OperationID: "drinksByAlcoholic",
		Method:      http.MethodGet,
		Path:        "/drinks/by-alcoholic",
		Summary:     "Filter drinks by alcoholic classification",
		Tags:        []string{"Drinks"},
	}, h.FilterByAlcoholic)

	huma.Register(api, huma.Operation{
		OperationID: "lookupDrink",
		Method:      http.MethodGet,
		Path:        "/drinks/lookup/{id}",
		Summary:     "Look up a drink by id",
		Tags:        []string{"Drinks"},
	}, h.LookupByID)
}

// NamesOutput wraps a names list
type NamesOutput struct {
	Body responses.NamesResponse
}

// DrinkListOutput wraps a drink list
type DrinkListOutput struct {
	Body responses.CocktailListResponse
}

// ListIngredients handles GET /ingredients
func (h *DrinksHandler) ListIngredients(ctx context.Context, input *struct{}) (*NamesOutput, error) {
	names, err := h.service.ListIngredients(ctx)
	if err != nil {
		return nil, toHumaError(err)
	}
	return &NamesOutput{Body: mappers.ToNamesResponse(names)}, nil
}

// ListCategories handles GET /categories
func (h *DrinksHandler) ListCategories(ctx context.Context, input *struct{}) (*NamesOutput, error) {
	names, err := h.service.ListCategories(ctx)
	if err != nil {
		return nil, toHumaError(err)
	}
	return &NamesOutput{Body: mappers.ToNamesResponse(names)}, nil
}

// SearchInput defines the input for SearchByName
type SearchInput struct {
	Name string `query:"name" doc:"Drink name or prefix"`
}

// SearchByName handles GET /drinks/search
func (h *DrinksHandler) SearchByName(ctx context.Context, input *SearchInput) (*DrinkListOutput, error) {
	drinks, err := h.service.SearchByName(ctx, input.Name)
	if err != nil {
		return nil, toHumaError(err)
	}
	return &DrinkListOutput{Body: mappers.ToCocktailListResponse(drinks)}, nil
}

// ByIngredientInput defines the input for FilterByIngredient
type ByIngredientInput struct {
	Ingredient []string `query:"ingredient" doc:"Ingredient names; only the first is used"`
	First      bool     `query:"first" doc:"Return only the first matching drink"`
}

// ByIngredientOutput holds either the list or, with first=true, a single drink
type ByIngredientOutput struct {
	Body responses.ByIngredientResponse
}

// FilterByIngredient handles GET /drinks/by-ingredient
func (h *DrinksHandler) FilterByIngredient(ctx context.Context, input *ByIngredientInput) (*ByIngredientOutput, error) {
	out := &ByIngredientOutput{}

	if input.First {
		drink, err := h.service.FirstByIngredient(ctx, input.Ingredient)
		if err != nil {
			return nil, toHumaError(err)
		}
		first := mappers.ToCocktailResponse(drink)
		out.Body = responses.ByIngredientResponse{
			Drinks: []responses.CocktailResponse{*first},
			Count:  1,
			First:  first,
		}
		return out, nil
	}

	drinks, err := h.service.FilterByIngredient(ctx, input.Ingredient)
	if err != nil {
		return nil, toHumaError(err)
	}
	list := mappers.ToCocktailListResponse(drinks)
	out.Body = responses.ByIngredientResponse{Drinks: list.Drinks, Count: list.Count}
	return out, nil
}

// ByAlcoholicInput defines the input for FilterByAlcoholic
type ByAlcoholicInput struct {
	Alcoholic string `query:"alcoholic" doc:"Alcoholic classification, e.g. Alcoholic or Non_Alcoholic"`
}

// FilterByAlcoholic handles GET /drinks/by-alcoholic
func (h *DrinksHandler) FilterByAlcoholic(ctx context.Context, input *ByAlcoholicInput) (*DrinkListOutput, error) {
	drinks, err := h.service.FilterByAlcoholic(ctx, input.Alcoholic)
	if err != nil {
		return nil, toHumaError(err)
	}
	return &DrinkListOutput{Body: mappers.ToCocktailListResponse(drinks)}, nil
}

// LookupInput defines the input for LookupByID
type LookupInput struct {
	ID string `path:"id" doc:"Upstream drink id"`
}

// DrinkOutput wraps a single drink
type DrinkOutput struct {
	Body responses.CocktailResponse
}

// LookupByID handles GET /drinks/lookup/{id}
func (h *DrinksHandler) LookupByID(ctx context.Context, input *LookupInput) (*DrinkOutput, error) {
	drink, err := h.service.LookupByID(ctx, input.ID)
	if err != nil {
		return nil, toHumaError(err)
	}
	return &DrinkOutput{Body: *mappers.ToCocktailResponse(drink)}, nil
}

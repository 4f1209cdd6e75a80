// ABOUTME: Mappers for converting between domain models and API DTOs
// ABOUTME: Provides clean separation between business logic and API layer

package mappers

import (
	"cocktails-app-api/api/dto/responses"
	"cocktails-app-api/core/domain"
	"cocktails-app-api/core/filter"
	"cocktails-app-api/core/present"
	"cocktails-app-api/core/results"
)

// ToCocktailResponse converts a domain Cocktail to a CocktailResponse DTO
func ToCocktailResponse(c *domain.Cocktail) *responses.CocktailResponse {
	if c == nil {
		return nil
	}

	ingredients := make([]responses.IngredientResponse, 0, domain.MaxIngredientSlots)
	for i, name := range c.Ingredients {
		if name == "" {
			continue
		}
		ingredients = append(ingredients, responses.IngredientResponse{
			Slot:    i + 1,
			Name:    name,
			Measure: c.Measures[i],
		})
	}

	return &responses.CocktailResponse{
		ID:              c.ID,
		Name:            c.Name,
		Category:        c.Category,
		Alcoholic:       c.Alcoholic,
		Glass:           c.Glass,
		Instructions:    c.Instructions,
		Thumbnail:       c.Thumbnail,
		Ingredients:     ingredients,
		IngredientsText: present.ConcatIngredients(*c),
	}
}

// ToCocktailListResponse converts domain Cocktails to a list DTO
func ToCocktailListResponse(cocktails []domain.Cocktail) responses.CocktailListResponse {
	drinks := make([]responses.CocktailResponse, 0, len(cocktails))
	for i := range cocktails {
		drinks = append(drinks, *ToCocktailResponse(&cocktails[i]))
	}
	return responses.CocktailListResponse{Drinks: drinks, Count: len(drinks)}
}

// ToNamesResponse wraps names, never returning a nil slice
func ToNamesResponse(names []string) responses.NamesResponse {
	if names == nil {
		names = []string{}
	}
	return responses.NamesResponse{Names: names, Count: len(names)}
}

// ToRowResponses projects cocktails into table rows
func ToRowResponses(cocktails []domain.Cocktail) []responses.RowResponse {
	rows := make([]responses.RowResponse, 0, len(cocktails))
	for _, r := range present.ToRows(cocktails) {
		rows = append(rows, responses.RowResponse(r))
	}
	return rows
}

// ToFiltersResponse converts a filter query
func ToFiltersResponse(q filter.Query) responses.FiltersResponse {
	return responses.FiltersResponse(q)
}

// ToTableResponse converts a store snapshot plus the last load error message
func ToTableResponse(s results.Snapshot, lastError string) responses.TableResponse {
	rows := ToRowResponses(s.Rows)
	return responses.TableResponse{
		Rows:      rows,
		Displayed: len(rows),
		Total:     s.Total,
		Loaded:    s.Loaded,
		Filters:   ToFiltersResponse(s.Query),
		Error:     lastError,
	}
}

package mappers

import (
	"testing"

	"cocktails-app-api/core/domain"
	"cocktails-app-api/core/filter"
	"cocktails-app-api/core/results"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func margarita() domain.Cocktail {
	c := domain.Cocktail{
		ID:           "11007",
		Name:         "Margarita",
		Category:     "Ordinary Drink",
		Alcoholic:    "Alcoholic",
		Glass:        "Cocktail glass",
		Instructions: "Rub the rim of the glass with the lime slice.",
	}
	c.SetIngredient(1, "Tequila", "1 1/2 oz ")
	c.SetIngredient(3, "Lime juice", "1 oz ")
	return c
}

func TestToCocktailResponse_Nil(t *testing.T) {
	assert.Nil(t, ToCocktailResponse(nil))
}

func TestToCocktailResponse_SkipsEmptySlots(t *testing.T) {
	c := margarita()

	resp := ToCocktailResponse(&c)

	require.NotNil(t, resp)
	assert.Equal(t, "11007", resp.ID)
	require.Len(t, resp.Ingredients, 2)
	assert.Equal(t, 1, resp.Ingredients[0].Slot)
	assert.Equal(t, 3, resp.Ingredients[1].Slot)
	assert.Equal(t, "Lime juice", resp.Ingredients[1].Name)
	assert.Equal(t, "Tequila, Lime juice", resp.IngredientsText)
}

func TestToCocktailListResponse_Empty(t *testing.T) {
	resp := ToCocktailListResponse(nil)

	assert.NotNil(t, resp.Drinks)
	assert.Equal(t, 0, resp.Count)
}

func TestToNamesResponse_NilBecomesEmpty(t *testing.T) {
	resp := ToNamesResponse(nil)

	assert.Equal(t, []string{}, resp.Names)
	assert.Equal(t, 0, resp.Count)
}

func TestToTableResponse(t *testing.T) {
	snap := results.Snapshot{
		Rows:   []domain.Cocktail{margarita()},
		Query:  filter.Query{Category: "ordinary"},
		Total:  4,
		Loaded: true,
	}

	resp := ToTableResponse(snap, "")

	assert.Equal(t, 1, resp.Displayed)
	assert.Equal(t, 4, resp.Total)
	assert.True(t, resp.Loaded)
	assert.Equal(t, "ordinary", resp.Filters.Category)
	assert.Equal(t, "Tequila, Lime juice", resp.Rows[0].Ingredients)
	assert.Empty(t, resp.Error)
}

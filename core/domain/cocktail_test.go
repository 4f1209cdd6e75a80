package domain

import (
	"testing"
)

func TestCocktail_IngredientList_SkipsEmptySlots(t *testing.T) {
	c := Cocktail{ID: "11007", Name: "Margarita"}
	c.SetIngredient(1, "Tequila", "1 1/2 oz")
	c.SetIngredient(3, "Lime juice", "1 oz")
	c.SetIngredient(15, "Salt", "")

	got := c.IngredientList()
	want := []string{"Tequila", "Lime juice", "Salt"}

	if len(got) != len(want) {
		t.Fatalf("IngredientList() len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("IngredientList()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestCocktail_IngredientList_Empty(t *testing.T) {
	c := Cocktail{}

	if got := c.IngredientList(); len(got) != 0 {
		t.Errorf("IngredientList() = %v, want empty", got)
	}
}

func TestCocktail_SetIngredient_OutOfRange(t *testing.T) {
	c := Cocktail{}
	c.SetIngredient(0, "Gin", "")
	c.SetIngredient(16, "Vodka", "")

	if got := c.IngredientList(); len(got) != 0 {
		t.Errorf("out of range slots should be ignored, got %v", got)
	}
}

func TestCocktail_SetIngredient_StoresMeasure(t *testing.T) {
	c := Cocktail{}
	c.SetIngredient(2, "Triple sec", "1/2 oz")

	if c.Ingredients[1] != "Triple sec" {
		t.Errorf("Ingredients[1] = %q, want %q", c.Ingredients[1], "Triple sec")
	}
	if c.Measures[1] != "1/2 oz" {
		t.Errorf("Measures[1] = %q, want %q", c.Measures[1], "1/2 oz")
	}
}

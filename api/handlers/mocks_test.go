package handlers

import (
	"context"

	"cocktails-app-api/core/domain"
)

// mockCocktailService is a mock implementation of the cocktail service
type mockCocktailService struct {
	listIngredientsFunc    func(ctx context.Context) ([]string, error)
	listCategoriesFunc     func(ctx context.Context) ([]string, error)
	filterByIngredientFunc func(ctx context.Context, ingredients []string) ([]domain.Cocktail, error)
	lookupByIDFunc         func(ctx context.Context, id string) (*domain.Cocktail, error)
	firstByIngredientFunc  func(ctx context.Context, ingredients []string) (*domain.Cocktail, error)
	searchByNameFunc       func(ctx context.Context, name string) ([]domain.Cocktail, error)
	filterByAlcoholicFunc  func(ctx context.Context, alcoholic string) ([]domain.Cocktail, error)
}

func (m *mockCocktailService) ListIngredients(ctx context.Context) ([]string, error) {
	if m.listIngredientsFunc != nil {
		return m.listIngredientsFunc(ctx)
	}
	return nil, nil
}

func (m *mockCocktailService) ListCategories(ctx context.Context) ([]string, error) {
	if m.listCategoriesFunc != nil {
		return m.listCategoriesFunc(ctx)
	}
	return nil, nil
}

func (m *mockCocktailService) FilterByIngredient(ctx context.Context, ingredients []string) ([]domain.Cocktail, error) {
	if m.filterByIngredientFunc != nil {
		return m.filterByIngredientFunc(ctx, ingredients)
	}
	return nil, nil
}

func (m *mockCocktailService) LookupByID(ctx context.Context, id string) (*domain.Cocktail, error) {
	if m.lookupByIDFunc != nil {
		return m.lookupByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockCocktailService) FirstByIngredient(ctx context.Context, ingredients []string) (*domain.Cocktail, error) {
	if m.firstByIngredientFunc != nil {
		return m.firstByIngredientFunc(ctx, ingredients)
	}
	return nil, nil
}

func (m *mockCocktailService) SearchByName(ctx context.Context, name string) ([]domain.Cocktail, error) {
	if m.searchByNameFunc != nil {
		return m.searchByNameFunc(ctx, name)
	}
	return nil, nil
}

func (m *mockCocktailService) FilterByAlcoholic(ctx context.Context, alcoholic string) ([]domain.Cocktail, error) {
	if m.filterByAlcoholicFunc != nil {
		return m.filterByAlcoholicFunc(ctx, alcoholic)
	}
	return nil, nil
}

func drink(id, name, category, instructions string, ingredients ...string) domain.Cocktail {
	c := domain.Cocktail{ID: id, Name: name, Category: category, Instructions: instructions}
	for i, ing := range ingredients {
		c.SetIngredient(i+1, ing, "")
	}
	return c
}

func sampleDrinks() []domain.Cocktail {
	return []domain.Cocktail{
		drink("1", "Vodka Martini", "Vodka Cocktail", "Shake with ice.", "Vodka", "Vermouth"),
		drink("2", "Screwdriver", "Vodka Cocktail", "Stir gently.", "Vodka", "Orange juice"),
		drink("3", "Mojito", "Rum Cocktail", "Muddle mint.", "Light rum", "Mint"),
		drink("4", "Daiquiri", "Rum Cocktail", "Shake with ice.", "Light rum", "Lime"),
		drink("5", "Cuba Libre", "Rum Cocktail", "Build over ice.", "Rum", "Cola"),
	}
}

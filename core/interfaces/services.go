// ABOUTME: Service interfaces for the core business logic
// ABOUTME: Defines contracts for services used throughout the application

package interfaces

import (
	"context"

	"cocktails-app-api/core/domain"
)

// CocktailService is the read-only query surface of the cocktail API.
type CocktailService interface {
	ListIngredients(ctx context.Context) ([]string, error)
	ListCategories(ctx context.Context) ([]string, error)
	FilterByIngredient(ctx context.Context, ingredients []string) ([]domain.Cocktail, error)
	LookupByID(ctx context.Context, id string) (*domain.Cocktail, error)
	FirstByIngredient(ctx context.Context, ingredients []string) (*domain.Cocktail, error)
	SearchByName(ctx context.Context, name string) ([]domain.Cocktail, error)
	FilterByAlcoholic(ctx context.Context, alcoholic string) ([]domain.Cocktail, error)
}

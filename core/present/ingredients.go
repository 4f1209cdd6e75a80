// ABOUTME: Presentation helpers that turn cocktails into table rows
// ABOUTME: Concatenates the sparse ingredient slots into a single display string

package present

import (
	"strings"

	"cocktails-app-api/core/domain"
)

// IngredientSeparator joins ingredient names in the display string.
const IngredientSeparator = ", "

// ConcatIngredients joins the populated ingredient slots 1..15 in order.
// A cocktail without ingredients yields an empty string.
func ConcatIngredients(c domain.Cocktail) string {
	var b strings.Builder
	for _, ingredient := range c.Ingredients {
		if ingredient == "" {
			continue
		}
		b.WriteString(ingredient)
		b.WriteString(IngredientSeparator)
	}
	return strings.TrimSuffix(b.String(), IngredientSeparator)
}

// Row is the flat projection of a cocktail rendered by a table view.
type Row struct {
	ID           string
	Name         string
	Category     string
	Alcoholic    string
	Glass        string
	Ingredients  string
	Instructions string
	Thumbnail    string
}

// ToRow projects a cocktail into a display row.
func ToRow(c domain.Cocktail) Row {
	return Row{
		ID:           c.ID,
		Name:         c.Name,
		Category:     c.Category,
		Alcoholic:    c.Alcoholic,
		Glass:        c.Glass,
		Ingredients:  ConcatIngredients(c),
		Instructions: c.Instructions,
		Thumbnail:    c.Thumbnail,
	}
}

// ToRows projects a list of cocktails, preserving order.
func ToRows(cocktails []domain.Cocktail) []Row {
	rows := make([]Row, 0, len(cocktails))
	for _, c := range cocktails {
		rows = append(rows, ToRow(c))
	}
	return rows
}

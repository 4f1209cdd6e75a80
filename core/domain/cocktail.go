// ABOUTME: Cocktail domain model mapped from TheCocktailDB drink records
// ABOUTME: Holds the fixed 15 ingredient and measure slots in upstream order

package domain

// MaxIngredientSlots is the number of ingredient slots a drink record carries.
const MaxIngredientSlots = 15

// Cocktail represents a single drink entry.
type Cocktail struct {
	// ID is the upstream drink identifier (idDrink)
	ID string

	// Name is the display name of the drink
	Name string

	// Category is the drink category, e.g. "Ordinary Drink"
	Category string

	// Alcoholic is the alcoholic-type marker, e.g. "Alcoholic" or "Non alcoholic"
	Alcoholic string

	// Glass is the serving glass
	Glass string

	// Instructions is the free-text preparation text
	Instructions string

	// Thumbnail is the image URL of the drink
	Thumbnail string

	// Ingredients holds slots 1..15; an empty string marks an absent slot
	Ingredients [MaxIngredientSlots]string

	// Measures holds the measure for the ingredient in the same slot
	Measures [MaxIngredientSlots]string
}

// IngredientList returns the populated ingredient slots in slot order.
func (c *Cocktail) IngredientList() []string {
	list := make([]string, 0, MaxIngredientSlots)
	for _, ingredient := range c.Ingredients {
		if ingredient != "" {
			list = append(list, ingredient)
		}
	}
	return list
}

// SetIngredient stores an ingredient in a 1-based slot. Out of range slots are ignored.
func (c *Cocktail) SetIngredient(slot int, name, measure string) {
	if slot < 1 || slot > MaxIngredientSlots {
		return
	}
	c.Ingredients[slot-1] = name
	c.Measures[slot-1] = measure
}

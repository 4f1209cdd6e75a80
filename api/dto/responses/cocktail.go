// ABOUTME: Response DTOs for cocktail and table endpoints
// ABOUTME: Provides structured responses with JSON serialization

package responses

// IngredientResponse is one populated ingredient slot
type IngredientResponse struct {
	Slot    int    `json:"slot" doc:"1-based slot position"`
	Name    string `json:"name" doc:"Ingredient name"`
	Measure string `json:"measure,omitempty" doc:"Measure for this ingredient"`
}

// CocktailResponse represents a drink in API responses
type CocktailResponse struct {
	ID              string               `json:"id" doc:"Upstream drink id"`
	Name            string               `json:"name,omitempty" doc:"Drink name"`
	Category        string               `json:"category,omitempty" doc:"Drink category"`
	Alcoholic       string               `json:"alcoholic,omitempty" doc:"Alcoholic classification"`
	Glass           string               `json:"glass,omitempty" doc:"Serving glass"`
	Instructions    string               `json:"instructions,omitempty" doc:"Preparation instructions"`
	Thumbnail       string               `json:"thumbnail,omitempty" doc:"Thumbnail image URL"`
	Ingredients     []IngredientResponse `json:"ingredients" doc:"Populated ingredient slots in order"`
	IngredientsText string               `json:"ingredients_text" doc:"Ingredient names joined for display"`
}

// CocktailListResponse wraps a list of drinks
type CocktailListResponse struct {
	Drinks []CocktailResponse `json:"drinks" doc:"Matching drinks"`
	Count  int                `json:"count" doc:"Number of drinks"`
}

// ByIngredientResponse is a drink list that may also carry the first match
type ByIngredientResponse struct {
	Drinks []CocktailResponse `json:"drinks" doc:"Matching drinks"`
	Count  int                `json:"count" doc:"Number of drinks"`
	First  *CocktailResponse  `json:"first,omitempty" doc:"First match when first=true"`
}

// NamesResponse wraps a list of ingredient or category names
type NamesResponse struct {
	Names []string `json:"names" doc:"Names in upstream order"`
	Count int      `json:"count" doc:"Number of names"`
}

// RowResponse is one displayed table row
type RowResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Category     string `json:"category"`
	Alcoholic    string `json:"alcoholic"`
	Glass        string `json:"glass"`
	Ingredients  string `json:"ingredients"`
	Instructions string `json:"instructions"`
	Thumbnail    string `json:"thumbnail"`
}

// FiltersResponse echoes the active filter constraints
type FiltersResponse struct {
	ID           string `json:"id"`
	Category     string `json:"category"`
	Ingredients  string `json:"ingredients"`
	Instructions string `json:"instructions"`
}

// TableResponse is the table state a client renders
type TableResponse struct {
	Rows      []RowResponse   `json:"rows" doc:"Displayed rows after filtering"`
	Displayed int             `json:"displayed" doc:"Number of displayed rows"`
	Total     int             `json:"total" doc:"Number of rows in the loaded result set"`
	Loaded    bool            `json:"loaded" doc:"Whether any load has succeeded"`
	Filters   FiltersResponse `json:"filters" doc:"Active filter constraints"`
	Error     string          `json:"error,omitempty" doc:"Message from the most recent failed load"`
}

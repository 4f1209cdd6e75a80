package cocktaildb

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"cocktails-app-api/core/domain"
)

// record is one raw entry of the upstream drinks array. Every populated
// attribute is a string; missing slots are null or absent.
type record map[string]interface{}

func (r record) str(key string) string {
	if s, ok := r[key].(string); ok {
		return s
	}
	return ""
}

func (r record) toCocktail() domain.Cocktail {
	c := domain.Cocktail{
		ID:           r.str("idDrink"),
		Name:         r.str("strDrink"),
		Category:     r.str("strCategory"),
		Alcoholic:    r.str("strAlcoholic"),
		Glass:        r.str("strGlass"),
		Instructions: r.str("strInstructions"),
		Thumbnail:    r.str("strDrinkThumb"),
	}
	for slot := 1; slot <= domain.MaxIngredientSlots; slot++ {
		n := strconv.Itoa(slot)
		c.SetIngredient(slot, r.str("strIngredient"+n), r.str("strMeasure"+n))
	}
	return c
}

// envelope is the single-field response body of every endpoint
type envelope struct {
	Drinks json.RawMessage `json:"drinks"`
}

// decodeDrinks extracts the drinks array. A null or absent array, and the
// string placeholder the filter endpoint sends on no match, decode as empty.
func decodeDrinks(body []byte) ([]record, error) {
	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	raw := bytes.TrimSpace(env.Drinks)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) || raw[0] == '"' {
		return []record{}, nil
	}

	var records []record
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("failed to parse drinks: %w", err)
	}
	return records, nil
}

// ABOUTME: Filter query model with one substring constraint per filterable field
// ABOUTME: Field names are a closed enum so no untyped key can enter a query

package filter

import (
	"strings"

	"cocktails-app-api/core/errors"
)

// Field identifies a filterable cocktail attribute.
type Field string

const (
	// FieldID filters on the drink identifier
	FieldID Field = "id"

	// FieldCategory filters on the drink category
	FieldCategory Field = "category"

	// FieldIngredients filters on the concatenated ingredient list
	FieldIngredients Field = "ingredients"

	// FieldInstructions filters on the preparation text
	FieldInstructions Field = "instructions"
)

// Fields lists every filterable field in display order.
var Fields = []Field{FieldID, FieldCategory, FieldIngredients, FieldInstructions}

// upstream attribute names accepted as aliases
var fieldAliases = map[string]Field{
	"iddrink":         FieldID,
	"strcategory":     FieldCategory,
	"strinstructions": FieldInstructions,
}

// ParseField resolves a field name, case-insensitively.
func ParseField(name string) (Field, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for _, f := range Fields {
		if string(f) == key {
			return f, nil
		}
	}
	if f, ok := fieldAliases[key]; ok {
		return f, nil
	}
	return "", &errors.ValidationError{
		Field:   "field",
		Message: "unknown filter field " + name,
	}
}

// Query holds the active substring constraints. An empty string means
// the field is unconstrained.
type Query struct {
	ID           string `json:"id"`
	Category     string `json:"category"`
	Ingredients  string `json:"ingredients"`
	Instructions string `json:"instructions"`
}

// Get returns the constraint for a field.
func (q Query) Get(field Field) string {
	switch field {
	case FieldID:
		return q.ID
	case FieldCategory:
		return q.Category
	case FieldIngredients:
		return q.Ingredients
	case FieldInstructions:
		return q.Instructions
	}
	return ""
}

// With returns a copy of the query with one field replaced.
func (q Query) With(field Field, value string) Query {
	switch field {
	case FieldID:
		q.ID = value
	case FieldCategory:
		q.Category = value
	case FieldIngredients:
		q.Ingredients = value
	case FieldInstructions:
		q.Instructions = value
	}
	return q
}

// IsEmpty reports whether no field is constrained.
func (q Query) IsEmpty() bool {
	return q == Query{}
}

// Active returns the constrained fields in display order.
func (q Query) Active() []Field {
	active := make([]Field, 0, len(Fields))
	for _, f := range Fields {
		if q.Get(f) != "" {
			active = append(active, f)
		}
	}
	return active
}

// ABOUTME: Conjunctive case-insensitive substring filtering over cocktails
// ABOUTME: Always derives the visible subset from the full unfiltered set

package filter

import (
	"strings"

	"cocktails-app-api/core/domain"
	"cocktails-app-api/core/present"
	"golang.org/x/text/cases"
)

// value returns the text a field is matched against and whether the record has one.
func value(c domain.Cocktail, field Field) (string, bool) {
	var v string
	switch field {
	case FieldID:
		v = c.ID
	case FieldCategory:
		v = c.Category
	case FieldIngredients:
		v = present.ConcatIngredients(c)
	case FieldInstructions:
		v = c.Instructions
	}
	return v, v != ""
}

// matcher holds the case-folded constraints of one query. Not safe for concurrent use.
type matcher struct {
	fold   cases.Caser
	fields []Field
	needle map[Field]string
}

func newMatcher(q Query) *matcher {
	m := &matcher{
		fold:   cases.Fold(),
		fields: q.Active(),
		needle: make(map[Field]string, len(Fields)),
	}
	for _, f := range m.fields {
		m.needle[f] = m.fold.String(q.Get(f))
	}
	return m
}

func (m *matcher) match(c domain.Cocktail) bool {
	for _, f := range m.fields {
		v, ok := value(c, f)
		if !ok {
			return false
		}
		if !strings.Contains(m.fold.String(v), m.needle[f]) {
			return false
		}
	}
	return true
}

// Matches reports whether a cocktail satisfies every constrained field of q.
func Matches(c domain.Cocktail, q Query) bool {
	return newMatcher(q).match(c)
}

// Apply returns the cocktails of all that satisfy q, in their original order.
// The result never aliases all, so callers may keep both.
func Apply(all []domain.Cocktail, q Query) []domain.Cocktail {
	out := make([]domain.Cocktail, 0, len(all))
	if q.IsEmpty() {
		return append(out, all...)
	}
	m := newMatcher(q)
	for _, c := range all {
		if m.match(c) {
			out = append(out, c)
		}
	}
	return out
}

package present

import (
	"testing"

	"cocktails-app-api/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestConcatIngredients(t *testing.T) {
	tests := []struct {
		name  string
		slots map[int]string
		want  string
	}{
		{
			name:  "no populated slots",
			slots: map[int]string{},
			want:  "",
		},
		{
			name:  "slots 1, 3 and 5",
			slots: map[int]string{1: "Gin", 3: "Lemon", 5: "Sugar"},
			want:  "Gin, Lemon, Sugar",
		},
		{
			name:  "single slot",
			slots: map[int]string{7: "Rum"},
			want:  "Rum",
		},
		{
			name:  "last slot only",
			slots: map[int]string{15: "Ice"},
			want:  "Ice",
		},
		{
			name: "all slots",
			slots: map[int]string{
				1: "a", 2: "b", 3: "c", 4: "d", 5: "e", 6: "f", 7: "g", 8: "h",
				9: "i", 10: "j", 11: "k", 12: "l", 13: "m", 14: "n", 15: "o",
			},
			want: "a, b, c, d, e, f, g, h, i, j, k, l, m, n, o",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var c domain.Cocktail
			for slot, name := range tt.slots {
				c.SetIngredient(slot, name, "")
			}

			assert.Equal(t, tt.want, ConcatIngredients(c))
		})
	}
}

func TestConcatIngredients_SlotOrder(t *testing.T) {
	var c domain.Cocktail
	c.SetIngredient(5, "Sugar", "")
	c.SetIngredient(1, "Gin", "")
	c.SetIngredient(3, "Lemon", "")

	assert.Equal(t, "Gin, Lemon, Sugar", ConcatIngredients(c))
}

func TestToRows(t *testing.T) {
	a := domain.Cocktail{ID: "1", Name: "Mojito", Category: "Cocktail", Instructions: "Muddle mint."}
	a.SetIngredient(1, "Light rum", "2-3 oz")
	a.SetIngredient(2, "Lime", "Juice of 1")
	b := domain.Cocktail{ID: "2", Name: "Water"}

	rows := ToRows([]domain.Cocktail{a, b})

	assert.Len(t, rows, 2)
	assert.Equal(t, "1", rows[0].ID)
	assert.Equal(t, "Light rum, Lime", rows[0].Ingredients)
	assert.Equal(t, "Muddle mint.", rows[0].Instructions)
	assert.Equal(t, "", rows[1].Ingredients)
}

package explorer

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DefaultIngredient is searched once at startup.
const DefaultIngredient = "chicken"

var ingredients = []string{
	"chicken",
	"beef",
	"onion",
	"fish",
	"egg",
	"potato",
	"cheese",
	"mushroom",
	"rice",
}

// Ingredients returns the ingredients offered in the ingredient bar, in
// display order.
func Ingredients() []string {
	out := make([]string, len(ingredients))
	copy(out, ingredients)
	return out
}

// IsKnownIngredient reports whether name is one of Ingredients, ignoring
// case and surrounding space.
func IsKnownIngredient(name string) bool {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, ing := range ingredients {
		if ing == name {
			return true
		}
	}
	return false
}

// IngredientLabel returns the display form of an ingredient ("chicken" ->
// "Chicken").
func IngredientLabel(name string) string {
	return cases.Title(language.English).String(strings.TrimSpace(name))
}

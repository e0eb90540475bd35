package mealdb

import (
	"encoding/json"
	"strconv"
	"strings"
)

// MaxIngredients is the number of numbered ingredient/measure pairs in a
// lookup record (strIngredient1..20, strMeasure1..20).
const MaxIngredients = 20

// RecipeSummary is one entry of a filter.php result.
type RecipeSummary struct {
	ID        string
	Name      string
	Thumbnail string
}

// IngredientLine pairs an ingredient with its measure, e.g. ("Chicken", "1 kg").
type IngredientLine struct {
	Name    string
	Measure string
}

// RecipeDetail is the full record returned by lookup.php.
type RecipeDetail struct {
	ID           string
	Name         string
	Thumbnail    string
	Instructions string
	Category     string
	Area         string
	Tags         []string
	YouTube      string
	Source       string
	// Ingredients holds the non-blank pairs in their original 1..20 order.
	Ingredients []IngredientLine
}

// Clone returns a deep copy.
func (d RecipeDetail) Clone() RecipeDetail {
	out := d
	if d.Tags != nil {
		out.Tags = append([]string(nil), d.Tags...)
	}
	if d.Ingredients != nil {
		out.Ingredients = append([]IngredientLine(nil), d.Ingredients...)
	}
	return out
}

// filterResponse mirrors /filter.php. Meals is nil when the API reports
// "meals": null.
type filterResponse struct {
	Meals []summaryRecord `json:"meals"`
}

type summaryRecord struct {
	ID    string `json:"idMeal"`
	Name  string `json:"strMeal"`
	Thumb string `json:"strMealThumb"`
}

func (r summaryRecord) summary() RecipeSummary {
	return RecipeSummary{ID: r.ID, Name: r.Name, Thumbnail: r.Thumb}
}

// lookupResponse mirrors /lookup.php.
type lookupResponse struct {
	Meals []mealRecord `json:"meals"`
}

// mealRecord keeps the raw fields of a lookup record. Most values are
// strings but any of them may be null, so fields are decoded lazily.
type mealRecord map[string]json.RawMessage

func (r mealRecord) str(key string) string {
	raw, ok := r[key]
	if !ok {
		return ""
	}
	var s *string
	if err := json.Unmarshal(raw, &s); err != nil || s == nil {
		return ""
	}
	return *s
}

func (r mealRecord) detail() RecipeDetail {
	d := RecipeDetail{
		ID:           r.str("idMeal"),
		Name:         r.str("strMeal"),
		Thumbnail:    r.str("strMealThumb"),
		Instructions: r.str("strInstructions"),
		Category:     r.str("strCategory"),
		Area:         r.str("strArea"),
		Tags:         splitTags(r.str("strTags")),
		YouTube:      r.str("strYoutube"),
		Source:       r.str("strSource"),
		Ingredients:  r.ingredientLines(),
	}
	return d
}

func (r mealRecord) ingredientLines() []IngredientLine {
	lines := make([]IngredientLine, 0, MaxIngredients)
	for i := 1; i <= MaxIngredients; i++ {
		n := strconv.Itoa(i)
		name := strings.TrimSpace(r.str("strIngredient" + n))
		if name == "" {
			continue
		}
		lines = append(lines, IngredientLine{
			Name:    name,
			Measure: strings.TrimSpace(r.str("strMeasure" + n)),
		})
	}
	return lines
}

func splitTags(raw string) []string {
	var tags []string
	for _, part := range strings.Split(raw, ",") {
		if tag := strings.TrimSpace(part); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

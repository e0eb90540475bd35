package mealdb

import (
	"encoding/json"
	"fmt"
	"testing"
)

func decodeRecord(t *testing.T, raw string) mealRecord {
	t.Helper()
	var rec mealRecord
	if err := json.Unmarshal([]byte(raw), &rec); err != nil {
		t.Fatalf("unmarshal record: %v", err)
	}
	return rec
}

func TestIngredientLines_SkipsBlankAndKeepsOrder(t *testing.T) {
	fields := map[string]any{}
	for i := 1; i <= MaxIngredients; i++ {
		fields[fmt.Sprintf("strIngredient%d", i)] = ""
		fields[fmt.Sprintf("strMeasure%d", i)] = ""
	}
	fields["strIngredient1"] = "Soy Sauce"
	fields["strMeasure1"] = "3/4 cup"
	fields["strIngredient3"] = "   "
	fields["strIngredient4"] = nil
	fields["strIngredient7"] = " Garlic "
	fields["strMeasure7"] = nil
	fields["strIngredient20"] = "Salt"
	fields["strMeasure20"] = "pinch "

	raw, err := json.Marshal(fields)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	lines := decodeRecord(t, string(raw)).ingredientLines()

	want := []IngredientLine{
		{Name: "Soy Sauce", Measure: "3/4 cup"},
		{Name: "Garlic", Measure: ""},
		{Name: "Salt", Measure: "pinch"},
	}
	if len(lines) != len(want) {
		t.Fatalf("lines = %#v, want %#v", lines, want)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Fatalf("line %d = %#v, want %#v", i, lines[i], want[i])
		}
	}
}

func TestMealRecordStr_IgnoresNonStrings(t *testing.T) {
	rec := decodeRecord(t, `{"idMeal":"1","strMeal":null,"count":3}`)
	if rec.str("idMeal") != "1" {
		t.Fatalf("str(idMeal) = %q, want 1", rec.str("idMeal"))
	}
	if rec.str("strMeal") != "" || rec.str("count") != "" || rec.str("missing") != "" {
		t.Fatalf("expected empty strings for null, non-string and missing fields")
	}
}

func TestSplitTags(t *testing.T) {
	if got := splitTags(""); got != nil {
		t.Fatalf("splitTags empty = %#v, want nil", got)
	}
	got := splitTags("Curry, ,Spicy,")
	if len(got) != 2 || got[0] != "Curry" || got[1] != "Spicy" {
		t.Fatalf("splitTags = %#v, want [Curry Spicy]", got)
	}
}

func TestRecipeDetailClone(t *testing.T) {
	orig := RecipeDetail{
		ID:          "1",
		Tags:        []string{"a"},
		Ingredients: []IngredientLine{{Name: "Egg", Measure: "2"}},
	}
	dup := orig.Clone()
	dup.Tags[0] = "b"
	dup.Ingredients[0].Name = "Milk"
	if orig.Tags[0] != "a" || orig.Ingredients[0].Name != "Egg" {
		t.Fatalf("Clone shares backing arrays with the original")
	}
}

package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/five82/forager/internal/mealdb"
	"github.com/five82/forager/internal/state"
)

type recipeSummaryJSON struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Thumbnail string `json:"thumbnail,omitempty"`
}

type searchResultJSON struct {
	Ingredient string              `json:"ingredient"`
	Phase      string              `json:"phase"`
	Message    string              `json:"message,omitempty"`
	Recipes    []recipeSummaryJSON `json:"recipes"`
}

type ingredientLineJSON struct {
	Name    string `json:"name"`
	Measure string `json:"measure,omitempty"`
}

type recipeDetailJSON struct {
	ID           string               `json:"id"`
	Name         string               `json:"name"`
	Category     string               `json:"category,omitempty"`
	Area         string               `json:"area,omitempty"`
	Tags         []string             `json:"tags,omitempty"`
	Thumbnail    string               `json:"thumbnail,omitempty"`
	YouTube      string               `json:"youtube,omitempty"`
	Source       string               `json:"source,omitempty"`
	Ingredients  []ingredientLineJSON `json:"ingredients"`
	Instructions string               `json:"instructions"`
}

func searchJSON(snap state.Snapshot) searchResultJSON {
	out := searchResultJSON{
		Ingredient: snap.Ingredient,
		Phase:      snap.Phase.String(),
		Message:    snap.Message,
		Recipes:    make([]recipeSummaryJSON, 0, len(snap.Results)),
	}
	for _, r := range snap.Results {
		out.Recipes = append(out.Recipes, recipeSummaryJSON{ID: r.ID, Name: r.Name, Thumbnail: r.Thumbnail})
	}
	return out
}

func detailJSON(d mealdb.RecipeDetail) recipeDetailJSON {
	out := recipeDetailJSON{
		ID:           d.ID,
		Name:         d.Name,
		Category:     d.Category,
		Area:         d.Area,
		Tags:         d.Tags,
		Thumbnail:    d.Thumbnail,
		YouTube:      d.YouTube,
		Source:       d.Source,
		Ingredients:  make([]ingredientLineJSON, 0, len(d.Ingredients)),
		Instructions: d.Instructions,
	}
	for _, line := range d.Ingredients {
		out.Ingredients = append(out.Ingredients, ingredientLineJSON{Name: line.Name, Measure: line.Measure})
	}
	return out
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}

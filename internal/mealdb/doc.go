// Package mealdb provides an HTTP client for TheMealDB recipe API.
//
// # Overview
//
// The client wraps the two read-only endpoints forager needs and maps their
// JSON into typed records:
//
//   - GET filter.php?i=<ingredient>: recipes that use an ingredient
//   - GET lookup.php?i=<id>: the full record for one recipe
//
// # Client Usage
//
//	client, err := mealdb.NewClient("") // DefaultBaseURL
//	if err != nil {
//		return err
//	}
//
//	meals, err := client.SearchByIngredient(ctx, "chicken")
//	detail, err := client.LookupByID(ctx, "52772")
//
// # No Matches
//
// TheMealDB signals "no matches" with "meals": null and a 200 status. For
// SearchByIngredient that is an empty result, not an error. For LookupByID it
// is ErrNotFound.
//
// # Error Handling
//
// Every other failure wraps ErrNetworkOrParse and keeps the underlying cause,
// so both checks work:
//
//	errors.Is(err, mealdb.ErrNetworkOrParse)
//	errors.Is(err, context.DeadlineExceeded)
//
// Failures include transport errors, statuses outside 2xx and bodies that do
// not decode. The client never retries and holds no state between calls, so
// every call is safe to repeat.
//
// # Ingredient Lines
//
// Lookup records carry strIngredient1..20 and strMeasure1..20. They are
// flattened once at decode time into RecipeDetail.Ingredients, skipping
// blank or null ingredient names and keeping the numbered order.
package mealdb

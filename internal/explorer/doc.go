// Package explorer coordinates recipe searches and detail lookups.
//
// A Coordinator sits between the UI and the mealdb client. Every user action
// becomes one call:
//
//	coord.Init(ctx)                 // startup search for the default ingredient
//	coord.Search(ctx, "beef")       // Loading, then Loaded / Empty / Failed
//	coord.SelectDetail(ctx, "52772") // fills the detail slot on success
//	coord.DismissDetail()
//
// Event loops that must render Loading before the request resolves use the
// split form, StartSearch followed by CompleteSearch on another goroutine.
// A completion for a search that is no longer the latest one started is
// dropped, so a slow response cannot overwrite newer results.
//
// Detail lookups follow the same rule: only the newest SelectDetail may fill
// the slot, and DismissDetail or a new search cancels any that are pending.
// Lookup failures are logged and returned to the caller but never change the
// state store.
package explorer

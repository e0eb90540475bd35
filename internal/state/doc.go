// Package state holds the search state and selected recipe for forager.
//
// # Overview
//
// Store is the single owner of SearchState (phase, active ingredient,
// results, user message) and of the selected-detail slot. The explorer
// coordinator writes to it; the UI and CLI read copies through Snapshot.
//
// # Phases
//
//	PhaseIdle ──BeginSearch──> PhaseLoading ──FinishSearch──> PhaseLoaded
//	                                                      ├──> PhaseEmpty
//	                                                      └──> PhaseFailed
//
// BeginSearch may be called from any phase, including PhaseLoading. There is
// no terminal phase.
//
// # Sequence Numbers
//
// Every BeginSearch increments Snapshot.Seq and returns it. FinishSearch
// applies an outcome only when its sequence is still the latest issued:
//
//	a := store.BeginSearch("beef")    // a == 1
//	b := store.BeginSearch("fish")    // b == 2
//	store.FinishSearch(b, fish, nil)  // applied
//	store.FinishSearch(a, beef, nil)  // dropped, returns false
//
// Overlapping searches therefore resolve to the last one issued, never to
// whichever response arrived last.
//
// # Detail Slot
//
// SetDetail and ClearDetail touch only the slot. Search transitions never
// clear it, and a failed lookup never reaches the store.
//
// Lookups are sequenced like searches: BeginDetail hands out a number and
// SetDetail only accepts the newest one. ClearDetail also advances the
// sequence, so a reply that lands after the overlay was closed is dropped.
// BeginSearch advances it too: a lookup started for the old results never
// opens over the new ones.
//
// # Concurrency Model
//
// The Store uses a readers-writer lock. Writers hold it only while copying
// values in; Snapshot holds the read lock while cloning the results slice and
// the selected detail, so callers may mutate what they receive.
//
// The zero value is ready to use:
//
//	store := &state.Store{}
package state

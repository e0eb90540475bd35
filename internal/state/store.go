package state

import (
	"sync"
	"time"

	"github.com/five82/forager/internal/mealdb"
)

// Phase is the search lifecycle state.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseLoading
	PhaseLoaded
	PhaseEmpty
	PhaseFailed
)

// String returns a short label for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseLoading:
		return "loading"
	case PhaseLoaded:
		return "loaded"
	case PhaseEmpty:
		return "empty"
	case PhaseFailed:
		return "failed"
	default:
		return "idle"
	}
}

// User-facing messages for the terminal phases.
const (
	MessageEmpty  = "No recipes found."
	MessageFailed = "Could not load recipes. Please try again."
)

// Snapshot represents the latest data available to the UI.
type Snapshot struct {
	Phase       Phase
	Ingredient  string
	Results     []mealdb.RecipeSummary
	Message     string
	Selected    *mealdb.RecipeDetail
	Seq         uint64 // sequence of the latest issued search
	LastUpdated time.Time
	LastError   error // cause behind PhaseFailed, for diagnostics only
}

// Loading reports whether a search is in flight.
func (s Snapshot) Loading() bool {
	return s.Phase == PhaseLoading
}

// Store owns the search state and the selected-detail slot.
type Store struct {
	mu        sync.RWMutex
	snapshot  Snapshot
	detailSeq uint64
}

// BeginSearch records the active ingredient, moves to PhaseLoading and
// clears previous results and message. It returns the sequence number the
// matching FinishSearch must present. Detail lookups still in flight are
// invalidated; the detail slot itself is kept.
func (s *Store) BeginSearch(ingredient string) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.detailSeq++
	s.snapshot.Seq++
	s.snapshot.Ingredient = ingredient
	s.snapshot.Phase = PhaseLoading
	s.snapshot.Results = nil
	s.snapshot.Message = ""
	s.snapshot.LastError = nil
	s.snapshot.LastUpdated = time.Now()
	return s.snapshot.Seq
}

// FinishSearch applies the outcome of search seq. Outcomes of superseded
// searches are dropped and FinishSearch returns false.
func (s *Store) FinishSearch(seq uint64, results []mealdb.RecipeSummary, err error) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if seq != s.snapshot.Seq {
		return false
	}

	s.snapshot.LastUpdated = time.Now()
	switch {
	case err != nil:
		s.snapshot.Phase = PhaseFailed
		s.snapshot.Results = nil
		s.snapshot.Message = MessageFailed
		s.snapshot.LastError = err
	case len(results) == 0:
		s.snapshot.Phase = PhaseEmpty
		s.snapshot.Results = nil
		s.snapshot.Message = MessageEmpty
		s.snapshot.LastError = nil
	default:
		s.snapshot.Phase = PhaseLoaded
		s.snapshot.Results = cloneResults(results)
		s.snapshot.Message = ""
		s.snapshot.LastError = nil
	}
	return true
}

// BeginDetail starts a detail lookup and returns the sequence number the
// matching SetDetail must present.
func (s *Store) BeginDetail() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.detailSeq++
	return s.detailSeq
}

// SetDetail fills the selected-detail slot with the outcome of lookup seq.
// It returns false and leaves the slot alone when a newer lookup was started
// or the slot was cleared after seq began.
func (s *Store) SetDetail(seq uint64, detail mealdb.RecipeDetail) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if seq != s.detailSeq {
		return false
	}
	dup := detail.Clone()
	s.snapshot.Selected = &dup
	return true
}

// ClearDetail empties the selected-detail slot and invalidates lookups that
// are still in flight.
func (s *Store) ClearDetail() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.detailSeq++
	s.snapshot.Selected = nil
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	snap.Results = cloneResults(s.snapshot.Results)
	if s.snapshot.Selected != nil {
		dup := s.snapshot.Selected.Clone()
		snap.Selected = &dup
	}
	return snap
}

func cloneResults(items []mealdb.RecipeSummary) []mealdb.RecipeSummary {
	if len(items) == 0 {
		return nil
	}
	dup := make([]mealdb.RecipeSummary, len(items))
	copy(dup, items)
	return dup
}

package explorer

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/five82/forager/internal/mealdb"
	"github.com/five82/forager/internal/state"
)

// Options configure a Coordinator.
type Options struct {
	Fetcher           mealdb.RecipeFetcher
	Store             *state.Store // nil allocates a new store
	Logger            *slog.Logger // nil discards
	DefaultIngredient string       // empty uses DefaultIngredient
}

// Coordinator drives the recipe client and records every outcome in the
// state store. It is the only writer of that store.
type Coordinator struct {
	fetcher           mealdb.RecipeFetcher
	store             *state.Store
	log               *slog.Logger
	defaultIngredient string

	initOnce sync.Once
	lookups  singleflight.Group
}

// New builds a Coordinator.
func New(opts Options) (*Coordinator, error) {
	if opts.Fetcher == nil {
		return nil, fmt.Errorf("explorer requires a recipe fetcher")
	}
	store := opts.Store
	if store == nil {
		store = &state.Store{}
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	def := strings.ToLower(strings.TrimSpace(opts.DefaultIngredient))
	if def == "" {
		def = DefaultIngredient
	}
	return &Coordinator{
		fetcher:           opts.Fetcher,
		store:             store,
		log:               logger.With("component", "explorer"),
		defaultIngredient: def,
	}, nil
}

// DefaultIngredient returns the ingredient searched at startup.
func (c *Coordinator) DefaultIngredient() string {
	return c.defaultIngredient
}

// Snapshot returns a copy of the current state.
func (c *Coordinator) Snapshot() state.Snapshot {
	return c.store.Snapshot()
}

// Init runs the startup search for the default ingredient. Only the first
// call searches; later calls return the current state.
func (c *Coordinator) Init(ctx context.Context) state.Snapshot {
	if seq, ingredient, ok := c.StartInit(); ok {
		return c.CompleteSearch(ctx, seq, ingredient)
	}
	return c.store.Snapshot()
}

// StartInit is the first half of Init. ok is false when the startup search
// was already started.
func (c *Coordinator) StartInit() (seq uint64, ingredient string, ok bool) {
	c.initOnce.Do(func() {
		ingredient = c.defaultIngredient
		seq = c.StartSearch(ingredient)
		ok = true
	})
	return seq, ingredient, ok
}

// Search runs a full search: Loading first, then Loaded, Empty or Failed.
func (c *Coordinator) Search(ctx context.Context, ingredient string) state.Snapshot {
	seq := c.StartSearch(ingredient)
	return c.CompleteSearch(ctx, seq, ingredient)
}

// StartSearch moves the state to Loading for ingredient and returns the
// sequence number to hand to CompleteSearch.
func (c *Coordinator) StartSearch(ingredient string) uint64 {
	seq := c.store.BeginSearch(ingredient)
	c.log.Debug("search started", "ingredient", ingredient, "seq", seq)
	return seq
}

// CompleteSearch performs the request for a search started with StartSearch
// and applies its outcome unless a newer search has been started since.
func (c *Coordinator) CompleteSearch(ctx context.Context, seq uint64, ingredient string) state.Snapshot {
	var (
		results []mealdb.RecipeSummary
		err     error
	)
	if strings.TrimSpace(ingredient) != "" {
		results, err = c.fetcher.SearchByIngredient(ctx, ingredient)
	}

	if !c.store.FinishSearch(seq, results, err) {
		c.log.Debug("stale search dropped", "ingredient", ingredient, "seq", seq)
		return c.store.Snapshot()
	}
	if err != nil {
		c.log.Warn("search failed", "ingredient", ingredient, "seq", seq, "error", err)
	} else {
		c.log.Debug("search finished", "ingredient", ingredient, "seq", seq, "results", len(results))
	}
	return c.store.Snapshot()
}

// SelectDetail looks up a recipe and fills the selected-detail slot. A
// failed lookup is logged and returned but leaves all state untouched.
//
// Concurrent calls for the same id share one request. The shared request is
// detached from each caller's cancellation; a caller whose ctx ends stops
// waiting and gets ctx.Err(). A reply for a lookup superseded by a newer
// SelectDetail, a DismissDetail or a new search is dropped without error.
func (c *Coordinator) SelectDetail(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	seq := c.store.BeginDetail()

	ch := c.lookups.DoChan(id, func() (any, error) {
		return c.fetcher.LookupByID(context.WithoutCancel(ctx), id)
	})
	var res singleflight.Result
	select {
	case res = <-ch:
	case <-ctx.Done():
		c.log.Debug("recipe lookup abandoned", "id", id, "seq", seq, "error", ctx.Err())
		return ctx.Err()
	}

	if res.Err != nil {
		c.log.Warn("recipe lookup failed", "id", id, "error", res.Err)
		return res.Err
	}
	detail, _ := res.Val.(*mealdb.RecipeDetail)
	if detail == nil {
		err := fmt.Errorf("%w: recipe %q", mealdb.ErrNotFound, id)
		c.log.Warn("recipe lookup failed", "id", id, "error", err)
		return err
	}
	if !c.store.SetDetail(seq, *detail) {
		c.log.Debug("stale recipe dropped", "id", id, "seq", seq)
		return nil
	}
	c.log.Debug("recipe selected", "id", id, "seq", seq, "shared", res.Shared, "ingredients", len(detail.Ingredients))
	return nil
}

// DismissDetail clears the selected-detail slot and drops any lookup still
// in flight.
func (c *Coordinator) DismissDetail() {
	c.store.ClearDetail()
}

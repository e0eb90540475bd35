package ui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/forager/internal/explorer"
	"github.com/five82/forager/internal/mealdb"
	"github.com/five82/forager/internal/prefs"
	"github.com/five82/forager/internal/state"
)

type stubFetcher struct {
	mu       sync.Mutex
	meals    map[string][]mealdb.RecipeSummary
	details  map[string]mealdb.RecipeDetail
	failWith error
	searches []string
}

func (s *stubFetcher) SearchByIngredient(_ context.Context, ingredient string) ([]mealdb.RecipeSummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.searches = append(s.searches, ingredient)
	if s.failWith != nil {
		return nil, s.failWith
	}
	return append([]mealdb.RecipeSummary(nil), s.meals[ingredient]...), nil
}

func (s *stubFetcher) LookupByID(_ context.Context, id string) (*mealdb.RecipeDetail, error) {
	d, ok := s.details[id]
	if !ok {
		return nil, fmt.Errorf("%w: recipe %q", mealdb.ErrNotFound, id)
	}
	dup := d.Clone()
	return &dup, nil
}

func (s *stubFetcher) searched() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.searches...)
}

func newStub() *stubFetcher {
	return &stubFetcher{
		meals: map[string][]mealdb.RecipeSummary{
			"chicken": {
				{ID: "52772", Name: "Teriyaki Chicken Casserole"},
				{ID: "52795", Name: "Chicken Handi"},
			},
			"beef": {{ID: "52874", Name: "Beef and Mustard Pie"}},
		},
		details: map[string]mealdb.RecipeDetail{
			"52772": {
				ID:           "52772",
				Name:         "Teriyaki Chicken Casserole",
				Category:     "Chicken",
				Area:         "Japanese",
				Instructions: "Preheat oven to 350.\r\nBake.",
				Thumbnail:    "https://www.themealdb.com/images/media/meals/wvpsxx1468256321.jpg",
				Ingredients:  []mealdb.IngredientLine{{Name: "Chicken", Measure: "1 kg"}},
			},
		},
	}
}

func newTestModel(t *testing.T, f *stubFetcher) Model {
	t.Helper()
	coord, err := explorer.New(explorer.Options{Fetcher: f})
	require.NoError(t, err)
	m := New(Options{
		Coordinator: coord,
		PrefsPath:   filepath.Join(t.TempDir(), "prefs.toml"),
		LogPath:     filepath.Join(t.TempDir(), "forager.log"),
	})
	return update(t, m, tea.WindowSizeMsg{Width: 120, Height: 30})
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	model, ok := next.(Model)
	require.True(t, ok)
	return model
}

// run executes cmd and feeds the resulting messages back into the model.
// Spinner ticks are not fed so the test does not wait on the animation.
func run(t *testing.T, m Model, cmd tea.Cmd) Model {
	t.Helper()
	if cmd == nil {
		return m
	}
	switch msg := cmd().(type) {
	case tea.BatchMsg:
		for _, c := range msg {
			m = run(t, m, c)
		}
		return m
	case spinner.TickMsg, tea.QuitMsg, nil:
		return m
	default:
		next, follow := m.Update(msg)
		model, ok := next.(Model)
		require.True(t, ok)
		return run(t, model, follow)
	}
}

func press(t *testing.T, m Model, k tea.KeyMsg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(k)
	model, ok := next.(Model)
	require.True(t, ok)
	return model, cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestInit_ShowsLoadingBeforeResults(t *testing.T) {
	f := newStub()
	m := newTestModel(t, f)

	cmd := m.Init()
	m = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 30})
	assert.Equal(t, state.PhaseLoading, m.snapshot.Phase)
	assert.Contains(t, m.View(), "Loading chicken recipes")

	m = run(t, m, cmd)
	m = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 30})
	assert.Equal(t, state.PhaseLoaded, m.snapshot.Phase)
	view := m.View()
	assert.Contains(t, view, "Teriyaki Chicken Casserole")
	assert.Contains(t, view, "Chicken Handi")
	assert.Equal(t, []string{"chicken"}, f.searched())
}

func TestInit_SecondCallDoesNotSearchAgain(t *testing.T) {
	f := newStub()
	m := newTestModel(t, f)
	m = run(t, m, m.Init())
	m = run(t, m, m.Init())
	assert.Equal(t, []string{"chicken"}, f.searched())
}

func TestDigitKey_SearchesIngredient(t *testing.T) {
	f := newStub()
	m := newTestModel(t, f)
	m = run(t, m, m.Init())

	m, cmd := press(t, m, runes("2"))
	assert.Equal(t, state.PhaseLoading, m.snapshot.Phase)
	assert.Equal(t, "beef", m.snapshot.Ingredient)
	assert.Equal(t, 1, m.cursor)

	m = run(t, m, cmd)
	m = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 30})
	require.Len(t, m.snapshot.Results, 1)
	assert.Equal(t, "Beef and Mustard Pie", m.snapshot.Results[0].Name)
}

func TestArrowKeys_MoveCursorWithoutSearching(t *testing.T) {
	f := newStub()
	m := newTestModel(t, f)
	m = run(t, m, m.Init())

	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyRight})
	assert.Nil(t, cmd)
	assert.Equal(t, 1, m.cursor)
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, len(explorer.Ingredients())-1, m.cursor)
	assert.Equal(t, []string{"chicken"}, f.searched())

	m, cmd = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = run(t, m, cmd)
	assert.Equal(t, []string{"chicken", "rice"}, f.searched())
}

func TestEmptyAndFailedBanners(t *testing.T) {
	f := newStub()
	m := newTestModel(t, f)
	m = run(t, m, m.Init())

	m, cmd := press(t, m, runes("3"))
	m = run(t, m, cmd)
	m = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 30})
	assert.Equal(t, state.PhaseEmpty, m.snapshot.Phase)
	assert.Contains(t, m.View(), state.MessageEmpty)

	f.failWith = fmt.Errorf("%w: boom", mealdb.ErrNetworkOrParse)
	m, cmd = press(t, m, runes("r"))
	m = run(t, m, cmd)
	m = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 30})
	assert.Equal(t, state.PhaseFailed, m.snapshot.Phase)
	assert.Empty(t, m.snapshot.Results)
	assert.Contains(t, m.View(), state.MessageFailed)
	assert.Equal(t, []string{"chicken", "onion", "onion"}, f.searched())
}

func TestEnterOpensDetailAndEscDismisses(t *testing.T) {
	f := newStub()
	m := newTestModel(t, f)
	m = run(t, m, m.Init())

	m, _ = press(t, m, runes("j"))
	m, _ = press(t, m, runes("k"))
	assert.Equal(t, PaneResults, m.focus)
	assert.Equal(t, 0, m.selectedRow)

	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	m = run(t, m, cmd)
	require.NotNil(t, m.snapshot.Selected)
	assert.Equal(t, "52772", m.snapshot.Selected.ID)

	view := m.View()
	assert.Contains(t, view, "Japanese")
	assert.Contains(t, view, "1 kg")
	assert.Contains(t, view, "wvpsxx1468256321.jpg")

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Nil(t, m.snapshot.Selected)
	assert.Contains(t, m.View(), "Chicken Handi")
}

func TestDetailLookupFailure_LeavesStateAlone(t *testing.T) {
	f := newStub()
	m := newTestModel(t, f)
	m = run(t, m, m.Init())

	m, _ = press(t, m, runes("G"))
	assert.Equal(t, 1, m.selectedRow)
	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = run(t, m, cmd)

	assert.Nil(t, m.snapshot.Selected)
	assert.Equal(t, state.PhaseLoaded, m.snapshot.Phase)
	assert.Len(t, m.snapshot.Results, 2)
	assert.Empty(t, m.pendingDetail)
}

func TestThemeCycle_PersistsPrefs(t *testing.T) {
	m := newTestModel(t, newStub())
	start := m.theme.Name

	m, _ = press(t, m, runes("T"))
	assert.Equal(t, NextTheme(start), m.theme.Name)

	saved := prefs.Load(m.prefsPath)
	assert.Equal(t, m.theme.Name, saved.Theme)
}

func TestToggleLinks_HidesURLsAndPersists(t *testing.T) {
	m := newTestModel(t, newStub())
	m = run(t, m, m.Init())
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = run(t, m, cmd)
	require.NotNil(t, m.snapshot.Selected)

	m, _ = press(t, m, runes("u"))
	assert.False(t, m.prefs.ShowLinks)
	assert.NotContains(t, m.View(), "wvpsxx1468256321.jpg")
	assert.False(t, prefs.Load(m.prefsPath).ShowLinks)
}

func TestHelpOverlay_AnyKeyCloses(t *testing.T) {
	m := newTestModel(t, newStub())
	m, _ = press(t, m, runes("?"))
	assert.True(t, m.showHelp)
	assert.Contains(t, m.View(), "Keyboard Shortcuts")

	m, cmd := press(t, m, runes("q"))
	assert.Nil(t, cmd)
	assert.False(t, m.showHelp)
}

func TestLogsOverlay_ShowsLogTail(t *testing.T) {
	m := newTestModel(t, newStub())
	content := strings.Join([]string{
		`ts=2026-01-02T03:04:05Z level=info msg="search finished" ingredient=chicken`,
		`ts=2026-01-02T03:04:06Z level=warn msg="recipe lookup failed" id=1`,
	}, "\n") + "\n"
	require.NoError(t, os.WriteFile(m.logPath, []byte(content), 0o644))

	m, cmd := press(t, m, runes("L"))
	assert.True(t, m.showLogs)
	m = run(t, m, cmd)
	require.Len(t, m.logLines, 2)
	assert.Contains(t, m.View(), "recipe lookup failed")

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.showLogs)
}

func TestQuit(t *testing.T) {
	m := newTestModel(t, newStub())
	_, cmd := press(t, m, runes("q"))
	require.NotNil(t, cmd)
	_, ok := cmd().(tea.QuitMsg)
	assert.True(t, ok)
}

func TestModel_NoCoordinator(t *testing.T) {
	m := New(Options{
		PrefsPath: filepath.Join(t.TempDir(), "prefs.toml"),
		LogPath:   filepath.Join(t.TempDir(), "forager.log"),
	})

	var cmd tea.Cmd
	require.NotPanics(t, func() { cmd = m.Init() })
	require.NotNil(t, cmd)
	m = run(t, m, cmd)

	m = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 30})
	assert.Equal(t, state.PhaseIdle, m.snapshot.Phase)
	assert.NotEmpty(t, m.View())

	m, cmd = press(t, m, runes("2"))
	assert.Nil(t, cmd)
	m, cmd = press(t, m, runes("r"))
	assert.Nil(t, cmd)
	assert.Equal(t, state.PhaseIdle, m.snapshot.Phase)
}

func TestRun_RequiresCoordinator(t *testing.T) {
	err := Run(Options{})
	require.Error(t, err)
	assert.False(t, errors.Is(err, tea.ErrProgramKilled))
}

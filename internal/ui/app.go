package ui

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/forager/internal/explorer"
	"github.com/five82/forager/internal/prefs"
	"github.com/five82/forager/internal/state"
)

// Pane is the focused part of the main screen.
type Pane int

const (
	PaneIngredients Pane = iota
	PaneResults
)

// Options configures the UI.
type Options struct {
	Context     context.Context
	Coordinator *explorer.Coordinator
	Logger      *slog.Logger
	LogPath     string // tailed by the diagnostics overlay
	Prefs       prefs.Prefs
	PrefsPath   string
}

// Model is the root application state for Bubble Tea.
type Model struct {
	ctx       context.Context
	coord     *explorer.Coordinator
	log       *slog.Logger
	keys      keyMap
	logPath   string
	prefs     prefs.Prefs
	prefsPath string

	theme  Theme
	width  int
	height int
	ready  bool
	focus  Pane

	// snapshot mirrors the coordinator's store; refreshed on every message.
	snapshot    state.Snapshot
	ingredients []string
	cursor      int // ingredient bar position
	selectedRow int

	spinner spinner.Model

	detailViewport viewport.Model
	detailID       string // recipe rendered into detailViewport
	pendingDetail  string // lookup in flight

	showHelp    bool
	showLogs    bool
	logViewport viewport.Model
	logLines    []string
	logErr      error
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	p := opts.Prefs
	if strings.TrimSpace(p.Theme) == "" {
		p = prefs.Default()
	}
	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	ingredients := explorer.Ingredients()
	cursor := 0
	if opts.Coordinator != nil {
		for i, ing := range ingredients {
			if ing == opts.Coordinator.DefaultIngredient() {
				cursor = i
				break
			}
		}
	}

	theme := GetTheme(p.Theme)
	sp := spinner.New(spinner.WithSpinner(spinner.Dot))
	sp.Style = theme.Styles().AccentText

	return Model{
		ctx:         ctx,
		coord:       opts.Coordinator,
		log:         logger.With("component", "ui"),
		keys:        DefaultKeyMap(),
		logPath:     opts.LogPath,
		prefs:       p,
		prefsPath:   prefsPath,
		theme:       theme,
		focus:       PaneIngredients,
		ingredients: ingredients,
		cursor:      cursor,
		spinner:     sp,
	}
}

// Init implements tea.Model. It starts the spinner and the startup search.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.spinner.Tick}
	if m.coord == nil {
		return tea.Batch(cmds...)
	}
	if seq, ingredient, ok := m.coord.StartInit(); ok {
		cmds = append(cmds, searchCmd(m.ctx, m.coord, seq, ingredient))
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	m.sync()

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.detailViewport = viewport.New(0, 0)
			m.logViewport = viewport.New(0, 0)
		}
		m.ready = true
		m.resizeOverlays()
		m.updateDetailViewport(true)
		m.updateLogViewport()
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case searchDoneMsg:
		// State already landed in the store; sync picked it up.
		return m, nil

	case detailDoneMsg:
		if m.pendingDetail == msg.id {
			m.pendingDetail = ""
		}
		m.updateDetailViewport(true)
		return m, nil

	case logsMsg:
		m.logLines = msg.lines
		m.logErr = msg.err
		m.updateLogViewport()
		return m, nil
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	switch {
	case m.showHelp:
		return m.renderHelp()
	case m.showLogs:
		return m.renderLogs()
	case m.snapshot.Selected != nil:
		return m.renderDetail()
	}
	return m.renderMain()
}

// sync pulls the latest state from the coordinator and keeps the result
// cursor inside the list.
func (m *Model) sync() {
	if m.coord == nil {
		return
	}
	m.snapshot = m.coord.Snapshot()
	m.selectedRow = clamp(m.selectedRow, 0, len(m.snapshot.Results)-1)
	if m.snapshot.Selected == nil {
		m.detailID = ""
	}
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}
	if m.showLogs {
		return m.handleLogsKey(msg)
	}
	if m.snapshot.Selected != nil {
		return m.handleDetailKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil
	case key.Matches(msg, m.keys.CycleTheme):
		m.cycleTheme()
		return m, nil
	case key.Matches(msg, m.keys.Logs):
		m.showLogs = true
		return m, logsCmd(m.logPath)
	case key.Matches(msg, m.keys.Focus):
		if m.focus == PaneIngredients {
			m.focus = PaneResults
		} else {
			m.focus = PaneIngredients
		}
		return m, nil
	case key.Matches(msg, m.keys.Left):
		m.focus = PaneIngredients
		m.cursor = (m.cursor + len(m.ingredients) - 1) % len(m.ingredients)
		return m, nil
	case key.Matches(msg, m.keys.Right):
		m.focus = PaneIngredients
		m.cursor = (m.cursor + 1) % len(m.ingredients)
		return m, nil
	case key.Matches(msg, m.keys.Pick):
		idx := int(msg.String()[0] - '1')
		if idx < 0 || idx >= len(m.ingredients) {
			return m, nil
		}
		m.cursor = idx
		m.focus = PaneIngredients
		return m, m.startSearch(m.ingredients[idx])
	case key.Matches(msg, m.keys.Retry):
		ingredient := m.snapshot.Ingredient
		if ingredient == "" {
			ingredient = m.ingredients[m.cursor]
		}
		return m, m.startSearch(ingredient)
	case key.Matches(msg, m.keys.Up):
		m.focus = PaneResults
		if m.selectedRow > 0 {
			m.selectedRow--
		}
		return m, nil
	case key.Matches(msg, m.keys.Down):
		m.focus = PaneResults
		if m.selectedRow < len(m.snapshot.Results)-1 {
			m.selectedRow++
		}
		return m, nil
	case key.Matches(msg, m.keys.Top):
		m.focus = PaneResults
		m.selectedRow = 0
		return m, nil
	case key.Matches(msg, m.keys.Bottom):
		m.focus = PaneResults
		m.selectedRow = max(len(m.snapshot.Results)-1, 0)
		return m, nil
	case key.Matches(msg, m.keys.Confirm):
		if m.focus == PaneIngredients {
			return m, m.startSearch(m.ingredients[m.cursor])
		}
		return m, m.openSelected()
	}
	return m, nil
}

func (m Model) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Dismiss):
		m.coord.DismissDetail()
		m.sync()
		return m, nil
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil
	case key.Matches(msg, m.keys.ToggleLinks):
		m.prefs.ShowLinks = !m.prefs.ShowLinks
		m.savePrefs()
		m.updateDetailViewport(false)
		return m, nil
	case key.Matches(msg, m.keys.CycleTheme):
		m.cycleTheme()
		m.updateDetailViewport(false)
		return m, nil
	}
	var cmd tea.Cmd
	m.detailViewport, cmd = m.detailViewport.Update(msg)
	return m, cmd
}

func (m Model) handleLogsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Dismiss), key.Matches(msg, m.keys.Logs):
		m.showLogs = false
		return m, nil
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Retry):
		return m, logsCmd(m.logPath)
	case key.Matches(msg, m.keys.Top):
		m.logViewport.GotoTop()
		return m, nil
	case key.Matches(msg, m.keys.Bottom):
		m.logViewport.GotoBottom()
		return m, nil
	}
	var cmd tea.Cmd
	m.logViewport, cmd = m.logViewport.Update(msg)
	return m, cmd
}

// startSearch moves the store to Loading before returning, so the next
// render shows the loading indicator while the request runs.
func (m *Model) startSearch(ingredient string) tea.Cmd {
	if m.coord == nil {
		return nil
	}
	seq := m.coord.StartSearch(ingredient)
	m.selectedRow = 0
	m.sync()
	return searchCmd(m.ctx, m.coord, seq, ingredient)
}

func (m *Model) openSelected() tea.Cmd {
	if m.snapshot.Phase != state.PhaseLoaded || len(m.snapshot.Results) == 0 {
		return nil
	}
	id := m.snapshot.Results[m.selectedRow].ID
	if m.pendingDetail == id {
		return nil
	}
	m.pendingDetail = id
	return detailCmd(m.ctx, m.coord, id)
}

func (m *Model) cycleTheme() {
	m.theme = GetTheme(NextTheme(m.theme.Name))
	m.spinner.Style = m.theme.Styles().AccentText
	m.prefs.Theme = m.theme.Name
	m.savePrefs()
}

func (m *Model) savePrefs() {
	if m.prefsPath == "" {
		return
	}
	if err := prefs.Save(m.prefsPath, m.prefs); err != nil {
		m.log.Warn("save preferences failed", "path", m.prefsPath, "error", err)
	}
}

// Messages

type searchDoneMsg struct {
	seq        uint64
	ingredient string
}

type detailDoneMsg struct {
	id  string
	err error
}

type logsMsg struct {
	lines []string
	err   error
}

// Commands

func searchCmd(ctx context.Context, coord *explorer.Coordinator, seq uint64, ingredient string) tea.Cmd {
	return func() tea.Msg {
		coord.CompleteSearch(ctx, seq, ingredient)
		return searchDoneMsg{seq: seq, ingredient: ingredient}
	}
}

func detailCmd(ctx context.Context, coord *explorer.Coordinator, id string) tea.Cmd {
	return func() tea.Msg {
		return detailDoneMsg{id: id, err: coord.SelectDetail(ctx, id)}
	}
}

// Run starts the Bubble Tea program and blocks until the user quits or ctx
// is cancelled.
func Run(opts Options) error {
	if opts.Coordinator == nil {
		return errors.New("ui requires a coordinator")
	}
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	p := tea.NewProgram(New(opts), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}

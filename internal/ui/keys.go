package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the application.
type keyMap struct {
	// Global
	Quit       key.Binding
	Help       key.Binding
	CycleTheme key.Binding
	Logs       key.Binding
	Focus      key.Binding

	// Ingredient bar
	Left  key.Binding
	Right key.Binding
	Pick  key.Binding
	Retry key.Binding

	// Result list
	Up     key.Binding
	Down   key.Binding
	Top    key.Binding
	Bottom key.Binding

	// Shared by bar and list
	Confirm key.Binding

	// Overlays
	Dismiss     key.Binding
	ToggleLinks key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", "Quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("h", "?"),
			key.WithHelp("h/?", "Toggle help"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "Cycle theme"),
		),
		Logs: key.NewBinding(
			key.WithKeys("L"),
			key.WithHelp("L", "Diagnostics log"),
		),
		Focus: key.NewBinding(
			key.WithKeys("tab", "shift+tab"),
			key.WithHelp("tab", "Switch bar/list"),
		),

		Left: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "Previous ingredient"),
		),
		Right: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "Next ingredient"),
		),
		Pick: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("1-9", "Search ingredient"),
		),
		Retry: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "Search again"),
		),

		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/up", "Move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/down", "Move down"),
		),
		Top: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "Go to top"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "Go to bottom"),
		),

		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "Search / open recipe"),
		),

		Dismiss: key.NewBinding(
			key.WithKeys("esc", "x"),
			key.WithHelp("esc/x", "Close overlay"),
		),
		ToggleLinks: key.NewBinding(
			key.WithKeys("u"),
			key.WithHelp("u", "Toggle recipe links"),
		),
	}
}

// helpSections groups bindings for the help overlay.
func (k keyMap) helpSections() []helpSection {
	return []helpSection{
		{title: "Ingredients", bindings: []key.Binding{k.Left, k.Right, k.Pick, k.Confirm, k.Retry}},
		{title: "Recipes", bindings: []key.Binding{k.Up, k.Down, k.Top, k.Bottom, k.Focus}},
		{title: "Recipe detail", bindings: []key.Binding{k.Dismiss, k.ToggleLinks}},
		{title: "General", bindings: []key.Binding{k.Logs, k.CycleTheme, k.Help, k.Quit}},
	}
}

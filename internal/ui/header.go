package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/forager/internal/explorer"
	"github.com/five82/forager/internal/state"
)

// renderHeader renders the status line: logo, phase, ingredient, count.
func (m Model) renderHeader() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)
	compact := m.width < LayoutCompactWidth

	snap := m.snapshot
	parts := []string{
		bg.Render("forager", styles.Logo),
		styles.PhaseStyle(snap.Phase).Render(strings.ToUpper(snap.Phase.String())),
	}

	if snap.Ingredient != "" {
		parts = append(parts,
			bg.Render("Ingredient:", styles.MutedText)+bg.Spaces(1)+
				bg.Render(explorer.IngredientLabel(snap.Ingredient), styles.Text))
	}

	switch snap.Phase {
	case state.PhaseLoaded:
		parts = append(parts,
			bg.Render("Recipes:", styles.MutedText)+bg.Spaces(1)+
				bg.Render(fmt.Sprintf("%d", len(snap.Results)), styles.Text))
	case state.PhaseFailed:
		parts = append(parts, bg.Render("Request failed", styles.DangerText))
	}

	if m.pendingDetail != "" {
		parts = append(parts, bg.Render("Opening #"+m.pendingDetail+"...", styles.WarningText))
	}

	if !compact && !snap.LastUpdated.IsZero() {
		parts = append(parts,
			bg.Render("Updated", styles.FaintText)+bg.Spaces(1)+
				bg.Render(snap.LastUpdated.Format("15:04:05"), styles.MutedText))
	}

	return styles.Header.Width(m.width).Render(bg.Join(parts, "  "))
}

// renderIngredientBar renders the nine ingredients with the cursor and the
// active search highlighted.
func (m Model) renderIngredientBar() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)
	compact := m.width < LayoutCompactWidth
	focused := m.focus == PaneIngredients

	chips := make([]string, 0, len(m.ingredients))
	for i, ing := range m.ingredients {
		label := explorer.IngredientLabel(ing)
		if !compact {
			label = fmt.Sprintf("%d %s", i+1, label)
		}
		style := styles.MutedText
		if ing == m.snapshot.Ingredient {
			style = styles.AccentText.Bold(true)
		}
		if i == m.cursor && focused {
			chips = append(chips, styles.Selected.Padding(0, 1).Render(label))
			continue
		}
		if i == m.cursor {
			style = style.Underline(true)
		}
		chips = append(chips, bg.Spaces(1)+bg.Render(label, style)+bg.Spaces(1))
	}
	return bg.FillLine(bg.Join(chips, " "), m.width)
}

// renderFooter renders the command hints for the focused pane.
func (m Model) renderFooter() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	var hints [][2]string
	if m.focus == PaneIngredients {
		hints = [][2]string{{"←/→", "ingredient"}, {"enter", "search"}, {"1-9", "quick search"}}
	} else {
		hints = [][2]string{{"j/k", "move"}, {"enter", "open"}, {"g/G", "top/bottom"}}
	}
	hints = append(hints, [2]string{"tab", "focus"})
	if m.snapshot.Phase == state.PhaseFailed {
		hints = append(hints, [2]string{"r", "retry"})
	}
	hints = append(hints, [2]string{"L", "logs"}, [2]string{"h", "help"}, [2]string{"q", "quit"})

	parts := make([]string, 0, len(hints))
	for _, h := range hints {
		parts = append(parts, bg.Render(h[0], styles.WarningText)+bg.Spaces(1)+bg.Render(h[1], styles.MutedText))
	}
	return lipgloss.NewStyle().
		Background(lipgloss.Color(m.theme.Surface)).
		Width(m.width).
		Padding(0, 1).
		Render(bg.Join(parts, "  "))
}

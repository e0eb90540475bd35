package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/forager/internal/explorer"
	"github.com/five82/forager/internal/state"
)

// renderMain renders header, ingredient bar, result box and footer.
func (m Model) renderMain() string {
	boxHeight := max(m.height-3, 3)
	title := "Recipes"
	if m.snapshot.Ingredient != "" {
		title = "Recipes with " + explorer.IngredientLabel(m.snapshot.Ingredient)
	}
	box := m.renderTitledBox(title, m.renderResults(m.width-2, boxHeight-2), m.width, boxHeight, m.focus == PaneResults)

	return strings.Join([]string{
		m.renderHeader(),
		m.renderIngredientBar(),
		box,
		m.renderFooter(),
	}, "\n")
}

// renderResults renders the body of the result box for the current phase.
func (m Model) renderResults(width, height int) string {
	styles := m.theme.Styles()
	snap := m.snapshot

	switch snap.Phase {
	case state.PhaseIdle:
		return m.centered(styles.MutedText.Render("Pick an ingredient to search."), width, height)
	case state.PhaseLoading:
		label := "Loading recipes..."
		if snap.Ingredient != "" {
			label = fmt.Sprintf("Loading %s recipes...", strings.ToLower(explorer.IngredientLabel(snap.Ingredient)))
		}
		return m.centered(m.spinner.View()+" "+styles.Text.Render(label), width, height)
	case state.PhaseEmpty:
		return m.centered(styles.WarningText.Render(snap.Message), width, height)
	case state.PhaseFailed:
		body := styles.DangerText.Render(snap.Message) + "\n" + styles.FaintText.Render("press r to retry")
		return m.centered(body, width, height)
	}
	return m.renderResultRows(width, height)
}

// renderResultRows renders one row per summary, scrolled so the selected row
// stays visible.
func (m Model) renderResultRows(width, height int) string {
	results := m.snapshot.Results
	bgColor := m.theme.SurfaceAlt
	if m.focus == PaneResults {
		bgColor = m.theme.FocusBg
	}
	bg := NewBgStyle(bgColor)
	styles := m.theme.Styles()

	start := 0
	if height > 0 && m.selectedRow >= height {
		start = m.selectedRow - height + 1
	}
	end := min(len(results), start+max(height, 1))

	idWidth := 0
	for _, r := range results {
		idWidth = max(idWidth, len(r.ID)+1)
	}

	lines := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		r := results[i]
		id := fmt.Sprintf("%-*s", idWidth, "#"+r.ID)
		name := truncate(r.Name, max(width-idWidth-3, 10))
		if i == m.selectedRow {
			sel := NewBgStyle(m.theme.SelectionBg)
			text := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.SelectionText))
			lines = append(lines, sel.FillLine(sel.Spaces(1)+sel.Render(id, text)+sel.Spaces(2)+sel.Render(name, text.Bold(true)), width))
			continue
		}
		lines = append(lines, bg.FillLine(bg.Spaces(1)+bg.Render(id, styles.MutedText)+bg.Spaces(2)+bg.Render(name, styles.Text), width))
	}
	return strings.Join(lines, "\n")
}

func (m Model) centered(content string, width, height int) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

// renderTitledBox renders content in a box with the title embedded in the
// top border: ┌─── Title ───┐. Focused boxes use the focus palette.
func (m Model) renderTitledBox(title, content string, width, height int, focused bool) string {
	borderColor, bgColor := m.theme.Border, m.theme.SurfaceAlt
	if focused {
		borderColor, bgColor = m.theme.BorderFocus, m.theme.FocusBg
	}
	bg := NewBgStyle(bgColor)
	borderStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(borderColor))
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(m.theme.Text))

	innerWidth := max(width-2, 0)
	title = truncate(title, max(innerWidth-4, 0))
	titleLen := lipgloss.Width(title)
	leftPad := max((innerWidth-titleLen-2)/2, 0)
	rightPad := max(innerWidth-titleLen-2-leftPad, 0)

	top := bg.Render("┌"+strings.Repeat("─", leftPad), borderStyle) +
		bg.Render(" "+title+" ", titleStyle) +
		bg.Render(strings.Repeat("─", rightPad)+"┐", borderStyle)
	bottom := bg.Render("└"+strings.Repeat("─", innerWidth)+"┘", borderStyle)

	contentStyle := lipgloss.NewStyle().Width(innerWidth).MaxWidth(innerWidth).Background(lipgloss.Color(bgColor))
	contentLines := strings.Split(content, "\n")
	rows := make([]string, 0, height)
	rows = append(rows, top)
	for i := 0; i < max(height-2, 0); i++ {
		var line string
		if i < len(contentLines) {
			line = contentLines[i]
		}
		rows = append(rows, bg.Render("│", borderStyle)+contentStyle.Render(line)+bg.Render("│", borderStyle))
	}
	rows = append(rows, bottom)
	return strings.Join(rows, "\n")
}

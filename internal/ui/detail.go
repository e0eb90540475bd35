package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/forager/internal/mealdb"
)

// resizeOverlays fits both overlay viewports to the terminal.
func (m *Model) resizeOverlays() {
	w, h := m.overlaySize()
	m.detailViewport.Width = max(w-4, 1)
	m.detailViewport.Height = max(h-2, 1)
	m.logViewport.Width = max(m.width-4, 1)
	m.logViewport.Height = max(m.height-4, 1)
}

func (m Model) overlaySize() (int, int) {
	return min(m.width-4, DetailMaxWidth), max(m.height-2, 3)
}

// updateDetailViewport re-renders the selected recipe. reset scrolls to the
// top when a different recipe was opened.
func (m *Model) updateDetailViewport(reset bool) {
	d := m.snapshot.Selected
	if d == nil || !m.ready {
		return
	}
	m.detailViewport.Style = lipgloss.NewStyle().Background(lipgloss.Color(m.theme.FocusBg))
	m.detailViewport.SetContent(m.renderDetailContent(*d, m.detailViewport.Width))
	if reset && m.detailID != d.ID {
		m.detailViewport.GotoTop()
	}
	m.detailID = d.ID
}

// renderDetail renders the recipe overlay centered over the screen.
func (m Model) renderDetail() string {
	d := m.snapshot.Selected
	w, h := m.overlaySize()
	title := d.Name
	if pct := m.detailViewport.ScrollPercent(); m.detailViewport.TotalLineCount() > m.detailViewport.Height {
		title = fmt.Sprintf("%s  %3.0f%%", d.Name, pct*100)
	}
	box := m.renderTitledBox(title, m.detailViewport.View(), w, h, true)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box,
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceBackground(lipgloss.Color(m.theme.Background)))
}

// renderDetailContent lays out one recipe: heading, links, ingredient
// lines in order, then instructions wrapped to width.
func (m Model) renderDetailContent(d mealdb.RecipeDetail, width int) string {
	styles := m.theme.Styles()
	var b strings.Builder

	b.WriteString(styles.AccentText.Bold(true).Render(d.Name))
	b.WriteString("\n")
	if meta := joinNonEmpty(" · ", d.Category, d.Area); meta != "" {
		b.WriteString(styles.MutedText.Render(meta))
		b.WriteString("\n")
	}
	if len(d.Tags) > 0 {
		b.WriteString(styles.FaintText.Render("Tags: " + strings.Join(d.Tags, ", ")))
		b.WriteString("\n")
	}

	if m.prefs.ShowLinks {
		links := [][2]string{{"Image", d.Thumbnail}, {"Video", d.YouTube}, {"Source", d.Source}}
		wrote := false
		for _, l := range links {
			if strings.TrimSpace(l[1]) == "" {
				continue
			}
			if !wrote {
				b.WriteString("\n")
				wrote = true
			}
			b.WriteString(styles.MutedText.Render(fmt.Sprintf("%-7s", l[0])))
			b.WriteString(styles.InfoText.Render(truncate(l[1], max(width-8, 10))))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(styles.Text.Bold(true).Render(fmt.Sprintf("Ingredients (%d)", len(d.Ingredients))))
	b.WriteString("\n")
	measureWidth := 0
	for _, line := range d.Ingredients {
		measureWidth = max(measureWidth, lipgloss.Width(line.Measure))
	}
	for _, line := range d.Ingredients {
		measure := line.Measure + strings.Repeat(" ", measureWidth-lipgloss.Width(line.Measure))
		b.WriteString("  ")
		b.WriteString(styles.WarningText.Render(measure))
		if measureWidth > 0 {
			b.WriteString("  ")
		}
		b.WriteString(styles.Text.Render(line.Name))
		b.WriteString("\n")
	}

	if instructions := strings.TrimSpace(d.Instructions); instructions != "" {
		b.WriteString("\n")
		b.WriteString(styles.Text.Bold(true).Render("Instructions"))
		b.WriteString("\n")
		wrap := lipgloss.NewStyle().Width(max(width, 10)).Foreground(lipgloss.Color(m.theme.Text))
		b.WriteString(wrap.Render(normalizeInstructions(instructions)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render("esc close · u links · j/k scroll"))
	return b.String()
}

// normalizeInstructions collapses the CRLF line breaks the API returns and
// drops runs of blank lines.
func normalizeInstructions(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	lines := strings.Split(s, "\n")
	out := make([]string, 0, len(lines))
	blank := false
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			if !blank && len(out) > 0 {
				out = append(out, "")
			}
			blank = true
			continue
		}
		blank = false
		out = append(out, line)
	}
	return strings.TrimSpace(strings.Join(out, "\n"))
}

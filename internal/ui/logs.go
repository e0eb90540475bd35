package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/forager/internal/logtail"
)

func logsCmd(path string) tea.Cmd {
	return func() tea.Msg {
		lines, err := logtail.Read(path, LogTailLines)
		return logsMsg{lines: lines, err: err}
	}
}

// updateLogViewport re-renders the tailed lines and follows the newest one.
func (m *Model) updateLogViewport() {
	if !m.ready {
		return
	}
	m.logViewport.Style = lipgloss.NewStyle().Background(lipgloss.Color(m.theme.FocusBg))
	m.logViewport.SetContent(m.renderLogContent())
	m.logViewport.GotoBottom()
}

func (m Model) renderLogContent() string {
	styles := m.theme.Styles()
	switch {
	case m.logErr != nil:
		return styles.DangerText.Render(fmt.Sprintf("Cannot read log: %v", m.logErr))
	case strings.TrimSpace(m.logPath) == "":
		return styles.MutedText.Render("Logging to a terminal stream; nothing to show here.")
	case len(m.logLines) == 0:
		return styles.MutedText.Render("Log is empty.")
	}

	width := max(m.logViewport.Width, 10)
	lines := make([]string, 0, len(m.logLines))
	for _, line := range m.logLines {
		lines = append(lines, m.levelStyle(logtail.Level(line)).Render(truncate(line, width)))
	}
	return strings.Join(lines, "\n")
}

func (m Model) levelStyle(level string) lipgloss.Style {
	styles := m.theme.Styles()
	switch level {
	case "error":
		return styles.DangerText
	case "warn":
		return styles.WarningText
	case "debug":
		return styles.FaintText
	case "info":
		return styles.Text
	default:
		return styles.MutedText
	}
}

// renderLogs renders the diagnostics overlay over the full screen.
func (m Model) renderLogs() string {
	title := "Diagnostics"
	if m.logPath != "" {
		title = "Diagnostics · " + m.logPath
	}
	box := m.renderTitledBox(title, m.logViewport.View(), m.width, m.height-1, true)

	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)
	status := bg.Join([]string{
		bg.Render(fmt.Sprintf("%d lines", len(m.logLines)), styles.MutedText),
		bg.Render("r", styles.WarningText) + bg.Spaces(1) + bg.Render("reload", styles.MutedText),
		bg.Render("esc", styles.WarningText) + bg.Spaces(1) + bg.Render("close", styles.MutedText),
	}, "  ")
	return box + "\n" + bg.FillLine(status, m.width)
}

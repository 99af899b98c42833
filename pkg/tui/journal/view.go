package journal

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/muesli/reflow/ansi"
	"github.com/muesli/reflow/wrap"
)

const confirmPrompt = "Delete today's note? (y/N)"

// View implements tea.Model. The body always shows the last lines of the
// note and the cursor sits after the last rune while focused.
func (m *Model) View() (string, *tea.Cursor) {
	width, height := m.width, m.height
	if width <= 0 {
		width = 80
	}
	if height <= 0 {
		height = 24
	}

	var header, footer []string
	if !m.fullscreen {
		header = append(header, m.renderHeader(width), "")
		footer = append(footer, "", m.renderFooter(width))
	}
	bodyRows := height - len(header) - len(footer)
	if bodyRows < 1 {
		bodyRows = 1
	}

	lines := bodyLines(m.Value(), width-1)
	if len(lines) > bodyRows {
		lines = lines[len(lines)-bodyRows:]
	}
	last := len(lines) - 1
	col := ansi.PrintableRuneWidth(lines[last])

	style := m.theme.Editor.Blurred
	if m.focused {
		style = m.theme.Editor.Focused
	}
	rows := make([]string, 0, height)
	rows = append(rows, header...)
	for _, line := range lines {
		rows = append(rows, style.Render(line))
	}
	for len(rows) < len(header)+bodyRows {
		rows = append(rows, "")
	}
	rows = append(rows, footer...)

	var cursor *tea.Cursor
	if m.focused && !m.confirming {
		cursor = &tea.Cursor{}
		cursor.X = col
		cursor.Y = len(header) + last
	}
	return strings.Join(rows, "\n"), cursor
}

// bodyLines hard-wraps the raw value to width, keeping blank lines and
// trailing spaces so the caret column matches the text.
func bodyLines(raw string, width int) []string {
	if width < 1 {
		width = 1
	}
	w := wrap.NewWriter(width)
	w.PreserveSpace = true
	w.KeepNewlines = true
	_, _ = w.Write([]byte(raw))
	return strings.Split(w.String(), "\n")
}

func (m *Model) renderHeader(width int) string {
	date := m.theme.Header.Date.Render(m.key.Label())
	music := m.theme.Header.Paused.Render("♪ off")
	if m.playback.Playing() {
		music = m.theme.Header.Playing.Render("♪ on")
	}
	gap := width - lipgloss.Width(date) - lipgloss.Width(music)
	if gap < 1 {
		gap = 1
	}
	return date + strings.Repeat(" ", gap) + music
}

func (m *Model) renderFooter(width int) string {
	if m.confirming {
		return m.theme.Footer.Confirm.Render(confirmPrompt)
	}
	parts := make([]string, 0, len(m.keys.helpLine()))
	for _, b := range m.keys.helpLine() {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	help := m.theme.Footer.Help.Render(strings.Join(parts, " · "))
	if m.status == "" {
		return help
	}
	status := m.theme.Footer.Status.Render(m.status)
	gap := width - lipgloss.Width(help) - lipgloss.Width(status)
	if gap < 1 {
		return status
	}
	return help + strings.Repeat(" ", gap) + status
}

// Package panel renders the framed format display shown under the calendar.
package panel

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/datestamp/pkg/settings"
	"tableflip.dev/datestamp/pkg/tui/theme"
)

// Model renders a titled panel with body lines.
type Model struct {
	title      string
	lines      []string
	width      int
	frameStyle lipgloss.Style
	titleStyle lipgloss.Style
	bodyStyle  lipgloss.Style
	errStyle   lipgloss.Style
}

// New returns a panel model styled by th.
func New(th theme.PanelTheme) Model {
	return Model{
		frameStyle: th.Frame,
		titleStyle: th.Title,
		bodyStyle:  th.Body,
		errStyle:   th.Error,
	}
}

// SetContent updates the panel title and body lines.
func (m *Model) SetContent(title string, lines []string) {
	m.title = title
	m.lines = lines
}

// SetWidth fixes the outer width; zero lets the content decide.
func (m *Model) SetWidth(width int) {
	m.width = width
}

// SetSettings shows the effective format, bold flag and a preview for now.
func (m *Model) SetSettings(s settings.Settings, now time.Time) {
	preview := s.Preview(now)
	if preview == "Invalid format" {
		preview = m.errStyle.Render(preview)
	}
	m.SetContent("", []string{
		"Format: " + s.EffectivePattern(),
		s.BoldLabel(),
		preview,
	})
}

// Reset clears panel content.
func (m *Model) Reset() {
	m.title = ""
	m.lines = nil
}

// Lines returns the unstyled body lines.
func (m Model) Lines() []string {
	return m.lines
}

// View returns the rendered panel string and its total height in lines.
func (m Model) View() (string, int) {
	var content []string
	if m.title != "" {
		content = append(content, m.titleStyle.Render(m.title))
	}
	for _, line := range m.lines {
		content = append(content, m.bodyStyle.Render(line))
	}
	frame := m.frameStyle
	if m.width > 0 {
		frame = frame.Width(m.width)
	}
	view := frame.Render(strings.Join(content, "\n"))
	height := strings.Count(view, "\n") + 1
	return view, height
}

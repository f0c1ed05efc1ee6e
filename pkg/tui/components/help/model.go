// Package help is the "?" overlay of the calendar panel.
package help

import (
	_ "embed"
	"regexp"
	"strings"

	"github.com/charmbracelet/bubbles/v2/viewport"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss/v2"
)

//go:embed help.md
var helpMarkdown string

const (
	minWidth  = 32
	minHeight = 8
)

// Model renders the key and format help as Glamour markdown inside a
// scrolling viewport.
type Model struct {
	viewport viewport.Model
	frame    lipgloss.Style
	width    int
	height   int
	content  string
	err      error
}

// New builds the overlay for the given bounds.
func New(width, height int) *Model {
	m := &Model{
		viewport: viewport.New(viewport.WithWidth(1), viewport.WithHeight(1)),
		frame:    lipgloss.NewStyle().Border(lipgloss.RoundedBorder()),
	}
	m.viewport.MouseWheelEnabled = true
	m.SetSize(width, height)
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd { return nil }

// Update forwards scrolling to the viewport.
func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View renders the overlay.
func (m *Model) View() (string, *tea.Cursor) {
	body := m.viewport.View()
	if m.err != nil {
		body = "help unavailable: " + m.err.Error()
	}
	return m.frame.Width(m.width).Height(m.height).Render(body), nil
}

// Content is the rendered help text without styling.
func (m *Model) Content() string { return m.content }

// SetSize resizes the overlay and re-renders the markdown to the new width.
func (m *Model) SetSize(width, height int) {
	width = max(width, minWidth)
	height = max(height, minHeight)
	if m.width == width && m.height == height {
		return
	}
	m.width, m.height = width, height

	inner := max(width-m.frame.GetHorizontalFrameSize(), 1)
	m.viewport.SetWidth(inner)
	m.viewport.SetHeight(max(height-m.frame.GetVerticalFrameSize(), 1))
	m.render(inner)
}

func (m *Model) render(wrap int) {
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(max(wrap, 10)),
	)
	if err == nil {
		m.content, err = r.Render(strings.TrimSpace(helpMarkdown))
	}
	if err != nil {
		m.err = err
		m.content = ""
		return
	}
	// The panel styles with lipgloss; drop glamour's colours.
	m.content = ansi.ReplaceAllString(m.content, "")
	m.err = nil
	m.viewport.SetContent(m.content)
	m.viewport.SetYOffset(0)
}

var ansi = regexp.MustCompile(`\x1b\[[0-9;:]*[A-Za-z~]`)

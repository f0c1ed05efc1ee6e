// Package calendar provides the Bubble Tea calendar panel.
package calendar

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss/v2"

	cal "tableflip.dev/datestamp/pkg/calendar"
)

// Options controls calendar styling.
type Options struct {
	HeaderStyle   lipgloss.Style
	DayStyle      lipgloss.Style
	DimmedStyle   lipgloss.Style
	TodayStyle    lipgloss.Style
	SelectedStyle lipgloss.Style
	ShowHeader    bool
}

// DefaultOptions returns the styling used for calendar rendering.
func DefaultOptions() Options {
	return Options{
		HeaderStyle:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Bold(true),
		DayStyle:      lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
		DimmedStyle:   lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		TodayStyle:    lipgloss.NewStyle().Underline(true).Bold(true),
		SelectedStyle: lipgloss.NewStyle().Reverse(true),
		ShowHeader:    true,
	}
}

// Render produces a multi-line grid for cells, one row per week, marking
// the cell on selected.
func Render(cells []cal.Cell, weekStart time.Weekday, selected time.Time, opts Options) string {
	var lines []string
	if opts.ShowHeader {
		lines = append(lines, opts.HeaderStyle.Render(cal.WeekdayHeader(weekStart)))
	}
	for _, week := range cal.Weeks(cells) {
		parts := make([]string, 0, len(week))
		for _, c := range week {
			parts = append(parts, renderDay(c, cal.SameDay(c.Date, selected), opts))
		}
		lines = append(lines, strings.Join(parts, " "))
	}
	return strings.Join(lines, "\n")
}

func renderDay(c cal.Cell, selected bool, opts Options) string {
	text := fmt.Sprintf("%2d", c.Day())

	style := opts.DayStyle
	if c.Dimmed {
		style = opts.DimmedStyle
	}
	if c.Today {
		style = style.Inherit(opts.TodayStyle)
	}
	if selected {
		style = style.Inherit(opts.SelectedStyle)
	}
	return style.Render(text)
}

package theme

import "github.com/charmbracelet/lipgloss/v2"

// Theme centralizes Lip Gloss styles for the Bubble Tea UI.
type Theme struct {
	Footer FooterTheme
	Panel  PanelTheme
	Picker PickerTheme
	Panes  PanesTheme
}

// FooterTheme groups styles used by the bottom status line.
type FooterTheme struct {
	Help    lipgloss.Style
	Status  lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
}

// PanelTheme styles framed panels and headings.
type PanelTheme struct {
	Frame lipgloss.Style
	Title lipgloss.Style
	Body  lipgloss.Style
	Error lipgloss.Style
}

// PickerTheme styles the calendar panel chrome.
type PickerTheme struct {
	Frame  lipgloss.Style
	Title  lipgloss.Style
	Nav    lipgloss.Style
	Action lipgloss.Style
}

// PanesTheme styles the open pane list.
type PanesTheme struct {
	Frame    lipgloss.Style
	Title    lipgloss.Style
	Item     lipgloss.Style
	Active   lipgloss.Style
	Calendar lipgloss.Style
}

// Default returns the built-in theme used across the UI.
func Default() Theme {
	warning := lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	errStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true)

	return Theme{
		Footer: FooterTheme{
			Help:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			Status:  lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
			Warning: warning,
			Error:   errStyle,
		},
		Panel: PanelTheme{
			Frame: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				Padding(0, 1),
			Title: lipgloss.NewStyle().Bold(true),
			Body:  lipgloss.NewStyle(),
			Error: errStyle,
		},
		Picker: PickerTheme{
			Frame: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				Padding(1, 2),
			Title:  lipgloss.NewStyle().Bold(true),
			Nav:    lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
			Action: lipgloss.NewStyle().Foreground(lipgloss.Color("63")).Underline(true),
		},
		Panes: PanesTheme{
			Frame: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				Padding(1, 2),
			Title:    lipgloss.NewStyle().Bold(true),
			Item:     lipgloss.NewStyle(),
			Active:   lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
			Calendar: lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Italic(true),
		},
	}
}

package calendar

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/v2/help"
	"github.com/charmbracelet/bubbles/v2/key"
	tea "github.com/charmbracelet/bubbletea/v2"

	cal "tableflip.dev/datestamp/pkg/calendar"
	"tableflip.dev/datestamp/pkg/settings"
	"tableflip.dev/datestamp/pkg/tui/components/panel"
	"tableflip.dev/datestamp/pkg/tui/theme"
)

// SelectedMsg is emitted when the user picks a day.
type SelectedMsg struct {
	Date time.Time
}

// KeyMap lists the picker bindings.
type KeyMap struct {
	Left      key.Binding
	Right     key.Binding
	Up        key.Binding
	Down      key.Binding
	PrevMonth key.Binding
	NextMonth key.Binding
	Select    key.Binding
	Today     key.Binding
}

// DefaultKeyMap returns vim style and arrow bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left:      key.NewBinding(key.WithKeys("h", "left"), key.WithHelp("h/l", "day")),
		Right:     key.NewBinding(key.WithKeys("l", "right")),
		Up:        key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("j/k", "week")),
		Down:      key.NewBinding(key.WithKeys("j", "down")),
		PrevMonth: key.NewBinding(key.WithKeys("[", "p", "pgup"), key.WithHelp("[/]", "month")),
		NextMonth: key.NewBinding(key.WithKeys("]", "n", "pgdown")),
		Select:    key.NewBinding(key.WithKeys("enter", "space"), key.WithHelp("enter", "insert")),
		Today:     key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "today")),
	}
}

// ShortHelp returns the bindings shown in the help line.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Up, k.PrevMonth, k.Select, k.Today}
}

// Model is one calendar view. It owns its Picker; a new Model starts at the
// current month again.
type Model struct {
	picker   *cal.Picker
	cursor   time.Time
	settings settings.Settings

	keys    KeyMap
	help    help.Model
	format  panel.Model
	opts    Options
	th      theme.PickerTheme
	focused bool
}

// New builds a calendar view showing the current month with the day cursor
// on today.
func New(p *cal.Picker, cur settings.Settings, th theme.Theme) Model {
	if p == nil {
		p = cal.NewPicker()
	}
	m := Model{
		picker:  p,
		cursor:  p.Today(),
		keys:    DefaultKeyMap(),
		help:    help.New(),
		format:  panel.New(th.Panel),
		opts:    DefaultOptions(),
		th:      th.Picker,
		focused: true,
	}
	m.SetSettings(cur)
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd { return nil }

// SetSettings refreshes the format display.
func (m *Model) SetSettings(cur settings.Settings) {
	m.settings = cur
	m.format.SetSettings(cur, m.picker.Now())
}

// Settings returns the settings currently displayed.
func (m Model) Settings() settings.Settings { return m.settings }

// Focus toggles key handling.
func (m *Model) Focus(on bool) { m.focused = on }

// Focused reports whether keys are handled.
func (m Model) Focused() bool { return m.focused }

// Anchor returns the displayed month.
func (m Model) Anchor() time.Time { return m.picker.Anchor() }

// Cursor returns the highlighted day.
func (m Model) Cursor() time.Time { return m.cursor }

// Update handles key presses.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	kp, ok := msg.(tea.KeyPressMsg)
	if !ok || !m.focused {
		return m, nil
	}
	switch {
	case key.Matches(kp, m.keys.Left):
		m.moveCursor(-1)
	case key.Matches(kp, m.keys.Right):
		m.moveCursor(1)
	case key.Matches(kp, m.keys.Up):
		m.moveCursor(-7)
	case key.Matches(kp, m.keys.Down):
		m.moveCursor(7)
	case key.Matches(kp, m.keys.PrevMonth):
		m.picker.PrevMonth()
		m.cursor = m.sameDayIn(m.picker.Anchor())
	case key.Matches(kp, m.keys.NextMonth):
		m.picker.NextMonth()
		m.cursor = m.sameDayIn(m.picker.Anchor())
	case key.Matches(kp, m.keys.Select):
		return m, selectCmd(m.picker.SelectDay(m.cursor))
	case key.Matches(kp, m.keys.Today):
		today := m.picker.Today()
		if m.visible(today) {
			m.cursor = today
		}
		return m, selectCmd(today)
	}
	return m, nil
}

func selectCmd(day time.Time) tea.Cmd {
	return func() tea.Msg { return SelectedMsg{Date: day} }
}

// moveCursor shifts the day cursor. Leaving the visible grid moves the
// anchor to the cursor's month.
func (m *Model) moveCursor(days int) {
	m.cursor = m.cursor.AddDate(0, 0, days)
	if !m.visible(m.cursor) {
		m.picker.SetAnchor(m.cursor)
	}
}

func (m Model) visible(day time.Time) bool {
	for _, c := range m.picker.Grid() {
		if cal.SameDay(c.Date, day) {
			return true
		}
	}
	return false
}

// sameDayIn keeps the cursor's day of month inside month, clamped to its
// length.
func (m Model) sameDayIn(month time.Time) time.Time {
	d := m.cursor.Day()
	if n := cal.DaysIn(month); d > n {
		d = n
	}
	return time.Date(month.Year(), month.Month(), d, 0, 0, 0, 0, month.Location())
}

// View renders the panel.
func (m Model) View() (string, *tea.Cursor) {
	var b strings.Builder
	b.WriteString(m.th.Title.Render("Select Date"))
	b.WriteString("\n\n")
	b.WriteString(m.th.Nav.Render("‹ " + m.picker.Title() + " ›"))
	b.WriteString("\n")
	b.WriteString(Render(m.picker.Grid(), m.picker.WeekStart(), m.cursor, m.opts))
	b.WriteString("\n\n")
	b.WriteString(m.th.Action.Render("Today"))
	b.WriteString("\n")
	formatView, _ := m.format.View()
	b.WriteString(formatView)
	b.WriteString("\n")
	b.WriteString(m.help.ShortHelpView(m.keys.ShortHelp()))
	return m.th.Frame.Render(b.String()), nil
}

// Package teaui is the Bubble Tea program hosting the calendar panel next to
// the session's open panes.
package teaui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/datestamp/pkg/app"
	cal "tableflip.dev/datestamp/pkg/calendar"
	"tableflip.dev/datestamp/pkg/dateformat"
	"tableflip.dev/datestamp/pkg/notice"
	"tableflip.dev/datestamp/pkg/session"
	"tableflip.dev/datestamp/pkg/settings"
	"tableflip.dev/datestamp/pkg/tui/components/calendar"
	"tableflip.dev/datestamp/pkg/tui/components/help"
	"tableflip.dev/datestamp/pkg/tui/theme"
)

// SettingsStore is the part of settings.Store the UI needs.
type SettingsStore interface {
	Get() settings.Settings
	Update(func(*settings.Settings)) error
	Subscribe(func(settings.Settings)) func()
}

type focusArea int

const (
	focusCalendar focusArea = iota
	focusPanes
)

// Model is the root Bubble Tea model.
type Model struct {
	ctx     context.Context
	svc     *app.Service
	sess    *session.Session
	store   SettingsStore
	theme   theme.Theme
	showAll bool

	calendar calendar.Model
	help     *help.Model
	panes    []session.Pane
	state    session.State
	selected int
	focus    focusArea

	status   notice.Notice
	statusID int

	watchCh     <-chan session.Event
	watchCancel context.CancelFunc

	settingsCh     chan settings.Settings
	settingsCancel func()

	width  int
	height int
	err    error
}

type panesLoadedMsg struct {
	panes []session.Pane
	state session.State
}

type errMsg struct{ err error }

type watchStartedMsg struct {
	ch     <-chan session.Event
	cancel context.CancelFunc
	err    error
}

type watchEventMsg struct {
	event session.Event
}

type watchStoppedMsg struct{}

type settingsChangedMsg struct {
	settings settings.Settings
}

type dismissMsg struct{ id int }

// Option configures the model.
type Option func(*Model)

// WithPanes shows the pane list next to the calendar.
func WithPanes(show bool) Option {
	return func(m *Model) { m.showAll = show }
}

// WithPicker replaces the picker, mostly for a fixed clock in tests.
func WithPicker(p *cal.Picker) Option {
	return func(m *Model) {
		m.calendar = calendar.New(p, m.store.Get(), m.theme)
	}
}

// New constructs the model. svc.Host is expected to be sess.
func New(ctx context.Context, svc *app.Service, sess *session.Session, store SettingsStore, opts ...Option) *Model {
	if ctx == nil {
		ctx = context.Background()
	}
	th := theme.Default()
	m := &Model{
		ctx:   ctx,
		svc:   svc,
		sess:  sess,
		store: store,
		theme: th,
	}
	m.calendar = calendar.New(nil, store.Get(), th)
	for _, opt := range opts {
		opt(m)
	}

	m.settingsCh = make(chan settings.Settings, 1)
	m.settingsCancel = store.Subscribe(func(cur settings.Settings) {
		// Keep only the newest value.
		select {
		case <-m.settingsCh:
		default:
		}
		select {
		case m.settingsCh <- cur:
		default:
		}
	})
	return m
}

// Init loads the panes and starts watching.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.waitForSettings()}
	if m.sess != nil {
		cmds = append(cmds, m.loadPanes(), startWatchCmd(m.ctx, m.svc))
	}
	return tea.Batch(cmds...)
}

func (m *Model) loadPanes() tea.Cmd {
	sess := m.sess
	return func() tea.Msg {
		return panesLoadedMsg{panes: sess.Panes(), state: sess.State()}
	}
}

func startWatchCmd(parent context.Context, svc *app.Service) tea.Cmd {
	if svc == nil {
		return nil
	}
	return func() tea.Msg {
		ctx, cancel := context.WithCancel(parent)
		ch, err := svc.Watch(ctx)
		if err != nil {
			cancel()
			return watchStartedMsg{err: err}
		}
		return watchStartedMsg{ch: ch, cancel: cancel}
	}
}

func (m *Model) waitForWatch() tea.Cmd {
	ch := m.watchCh
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		if ev, ok := <-ch; ok {
			return watchEventMsg{event: ev}
		}
		return watchStoppedMsg{}
	}
}

func (m *Model) stopWatch() {
	if m.watchCancel != nil {
		m.watchCancel()
		m.watchCancel = nil
	}
	m.watchCh = nil
}

func (m *Model) waitForSettings() tea.Cmd {
	ch := m.settingsCh
	ctx := m.ctx
	return func() tea.Msg {
		select {
		case cur := <-ch:
			return settingsChangedMsg{settings: cur}
		case <-ctx.Done():
			return nil
		}
	}
}

// Close releases subscriptions.
func (m *Model) Close() {
	m.stopWatch()
	if m.settingsCancel != nil {
		m.settingsCancel()
		m.settingsCancel = nil
	}
}

// Update routes messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		if m.help != nil {
			m.help.SetSize(msg.Width, msg.Height-1)
		}
	case panesLoadedMsg:
		m.panes = msg.panes
		m.state = msg.state
		if m.selected >= len(m.panes) {
			m.selected = max(len(m.panes)-1, 0)
		}
	case errMsg:
		m.err = msg.err
	case watchStartedMsg:
		if msg.err != nil {
			m.err = msg.err
			break
		}
		m.stopWatch()
		m.watchCh = msg.ch
		m.watchCancel = msg.cancel
		cmds = append(cmds, m.waitForWatch())
	case watchEventMsg:
		cmds = append(cmds, m.loadPanes(), m.waitForWatch())
	case watchStoppedMsg:
		m.stopWatch()
		if m.ctx.Err() == nil {
			cmds = append(cmds, startWatchCmd(m.ctx, m.svc))
		}
	case settingsChangedMsg:
		m.calendar.SetSettings(msg.settings)
		cmds = append(cmds, m.waitForSettings())
	case calendar.SelectedMsg:
		cmds = append(cmds, m.insert(msg.Date))
	case dismissMsg:
		if msg.id == m.statusID {
			m.status = notice.Notice{}
		}
	case tea.KeyPressMsg:
		if cmd, handled := m.handleKey(msg); handled {
			return m, cmd
		}
		var cmd tea.Cmd
		m.calendar, cmd = m.calendar.Update(msg)
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

func (m *Model) handleKey(msg tea.KeyPressMsg) (tea.Cmd, bool) {
	if m.help != nil {
		switch msg.String() {
		case "?", "esc", "q":
			m.help = nil
			return nil, true
		case "ctrl+c":
		default:
			var cmd tea.Cmd
			m.help, cmd = m.help.Update(msg)
			return cmd, true
		}
	}
	switch msg.String() {
	case "?":
		m.help = help.New(m.width, m.height-1)
		return nil, true
	case "ctrl+c", "q", "esc":
		m.Close()
		return tea.Quit, true
	case "tab":
		if m.showAll {
			m.setFocus((m.focus + 1) % 2)
		}
		return nil, true
	case "b":
		return m.updateSettings(func(cur *settings.Settings) {
			cur.UseBoldFormatting = !cur.UseBoldFormatting
		}), true
	case "f":
		return m.updateSettings(func(cur *settings.Settings) {
			cur.DateFormat = nextChoice(cur.DateFormat)
		}), true
	}
	if m.focus != focusPanes {
		return nil, false
	}
	switch msg.String() {
	case "j", "down":
		if m.selected < len(m.panes)-1 {
			m.selected++
		}
	case "k", "up":
		if m.selected > 0 {
			m.selected--
		}
	case "enter":
		if m.selected < len(m.panes) && m.sess != nil {
			if _, err := m.sess.Focus(m.panes[m.selected].ID); err != nil {
				return m.show(notice.Notice{Level: notice.Error, Message: err.Error()}), true
			}
			return m.loadPanes(), true
		}
	}
	return nil, true
}

func (m *Model) setFocus(f focusArea) {
	m.focus = f
	m.calendar.Focus(f == focusCalendar)
}

func (m *Model) updateSettings(fn func(*settings.Settings)) tea.Cmd {
	if err := m.store.Update(fn); err != nil {
		return m.show(notice.Notice{Level: notice.Error, Message: err.Error()})
	}
	return nil
}

// insert runs the pipeline on the UI goroutine and shows its notice.
func (m *Model) insert(date time.Time) tea.Cmd {
	if m.svc == nil {
		return nil
	}
	rec := &notice.Recorder{}
	svc := *m.svc
	svc.Notifier = notice.Func(func(n notice.Notice) {
		rec.Notify(n)
		if m.svc.Notifier != nil {
			m.svc.Notifier.Notify(n)
		}
	})
	if _, err := svc.InsertDate(m.ctx, date); err != nil && !app.Handled(err) {
		rec.Notify(notice.Notice{Level: notice.Error, Message: err.Error()})
	}

	var cmds []tea.Cmd
	if got := rec.Notices(); len(got) > 0 {
		cmds = append(cmds, m.show(got[len(got)-1]))
	}
	if m.sess != nil {
		cmds = append(cmds, m.loadPanes())
	}
	return tea.Batch(cmds...)
}

// show replaces the status line and schedules its dismissal.
func (m *Model) show(n notice.Notice) tea.Cmd {
	m.statusID++
	m.status = n
	id := m.statusID
	return tea.Tick(notice.Timeout, func(time.Time) tea.Msg {
		return dismissMsg{id: id}
	})
}

// Status returns the visible notice.
func (m *Model) Status() notice.Notice { return m.status }

// View renders the UI.
func (m *Model) View() string {
	calView, _ := m.calendar.View()
	body := calView
	switch {
	case m.help != nil:
		body, _ = m.help.View()
	case m.showAll:
		body = lipgloss.JoinHorizontal(lipgloss.Top, calView, " ", m.panesView())
	}

	var footer string
	switch {
	case m.status.Message != "":
		style := m.theme.Footer.Status
		switch m.status.Level {
		case notice.Warning:
			style = m.theme.Footer.Warning
		case notice.Error:
			style = m.theme.Footer.Error
		}
		footer = style.Render(m.status.Message)
	case m.err != nil:
		footer = m.theme.Footer.Error.Render(m.err.Error())
	default:
		footer = m.theme.Footer.Help.Render("b bold • f format • tab panes • ? help • q quit")
	}
	return body + "\n" + footer
}

func (m *Model) panesView() string {
	th := m.theme.Panes
	lines := []string{th.Title.Render("Panes")}
	if len(m.panes) == 0 {
		lines = append(lines, th.Calendar.Render("no open notes"))
	}
	for i, p := range m.panes {
		label := p.ID
		if p.Kind == session.KindNote {
			label = fmt.Sprintf("%s %s %s", p.ID, filepath.Base(p.File), p.Cursor)
		}
		marker := "  "
		if m.focus == focusPanes && i == m.selected {
			marker = "> "
		}
		style := th.Item
		switch {
		case p.ID == m.state.Active:
			style = th.Active
		case p.Kind == session.KindCalendar:
			style = th.Calendar
		}
		lines = append(lines, marker+style.Render(label))
	}
	return th.Frame.Render(strings.Join(lines, "\n"))
}

func nextChoice(current string) string {
	presets := dateformat.Presets()
	for i, p := range presets {
		if p.Pattern == current {
			return presets[(i+1)%len(presets)].Pattern
		}
	}
	return presets[0].Pattern
}

// Run starts the program. The calendar pane is registered with the session
// for the lifetime of the program and removed when it exits.
func Run(ctx context.Context, svc *app.Service, sess *session.Session, store SettingsStore, opts ...Option) error {
	if sess != nil {
		pane, err := sess.OpenCalendar()
		if err != nil {
			return err
		}
		defer func() {
			if err := sess.Close(pane.ID); err != nil {
				fmt.Fprintf(os.Stderr, "datestamp: close calendar pane: %v\n", err)
			}
		}()
	}

	m := New(ctx, svc, sess, store, opts...)
	defer m.Close()
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}

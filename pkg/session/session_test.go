package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/spf13/afero"

	"tableflip.dev/datestamp/pkg/insert"
	"tableflip.dev/datestamp/pkg/target"
	"tableflip.dev/datestamp/pkg/workspace"
)

func newTestSession(t *testing.T) (*Session, afero.Fs) {
	t.Helper()
	fs := afero.NewMemMapFs()
	base := time.Date(2025, time.January, 25, 9, 0, 0, 0, time.UTC)
	tick := 0
	clock := func() time.Time {
		tick++
		return base.Add(time.Duration(tick) * time.Second)
	}
	s, err := Load(Dir(t.TempDir()), WithFs(fs), WithClock(clock))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	return s, fs
}

func writeNote(t *testing.T, fs afero.Fs, path, content string) {
	t.Helper()
	if err := afero.WriteFile(fs, path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestOpenCreatesAndReusesPane(t *testing.T) {
	s, fs := newTestSession(t)

	first, err := s.Open("/notes/today.md")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if ok, _ := afero.Exists(fs, "/notes/today.md"); !ok {
		t.Fatalf("expected note to be created")
	}
	again, err := s.Open("/notes/today.md")
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	if first.ID != again.ID {
		t.Fatalf("expected pane reuse, got %s and %s", first.ID, again.ID)
	}
	if n := len(s.Panes()); n != 1 {
		t.Fatalf("expected 1 pane, got %d", n)
	}
	st := s.State()
	if st.Active != first.ID || st.ActiveFile != "/notes/today.md" {
		t.Fatalf("unexpected state %+v", st)
	}
}

func TestOpenCalendarKeepsFocus(t *testing.T) {
	s, _ := newTestSession(t)

	note, err := s.Open("/notes/a.md")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	cal, err := s.OpenCalendar()
	if err != nil {
		t.Fatalf("calendar: %v", err)
	}
	again, err := s.OpenCalendar()
	if err != nil {
		t.Fatalf("calendar again: %v", err)
	}
	if cal.ID != again.ID {
		t.Fatalf("expected calendar pane reuse")
	}
	if s.State().Active != note.ID {
		t.Fatalf("calendar stole focus")
	}

	if _, err := s.Focus(cal.ID); err != nil {
		t.Fatalf("focus calendar: %v", err)
	}
	st := s.State()
	if st.Active != cal.ID || st.ActiveFile != "/notes/a.md" {
		t.Fatalf("unexpected state after calendar focus %+v", st)
	}
	if active := s.Active(); active == nil || workspace.IsEditable(active) {
		t.Fatalf("calendar pane must not be editable")
	}
}

func TestLastFocusedIsMostRecentNote(t *testing.T) {
	s, _ := newTestSession(t)

	a, _ := s.Open("/notes/a.md")
	b, _ := s.Open("/notes/b.md")
	if _, err := s.Focus(a.ID); err != nil {
		t.Fatalf("focus: %v", err)
	}
	cal, _ := s.OpenCalendar()
	if _, err := s.Focus(cal.ID); err != nil {
		t.Fatalf("focus: %v", err)
	}

	last := s.LastFocused()
	if last == nil || last.ID() != a.ID {
		t.Fatalf("expected %s as last focused, got %v", a.ID, last)
	}
	if b.ID == a.ID {
		t.Fatalf("expected distinct panes")
	}
}

func TestInsertThroughSession(t *testing.T) {
	s, fs := newTestSession(t)
	writeNote(t, fs, "/notes/a.md", "# Log\nmet with team\n")

	pane, err := s.Open("/notes/a.md")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if _, err := s.MoveCursor(pane.ID, workspace.Position{Line: 1, Column: 4}); err != nil {
		t.Fatalf("move: %v", err)
	}
	cal, _ := s.OpenCalendar()
	if _, err := s.Focus(cal.ID); err != nil {
		t.Fatalf("focus: %v", err)
	}

	res, err := target.Resolve(s)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if res.Surface.ID() != pane.ID || res.Rule != target.RuleLastFocused {
		t.Fatalf("unexpected target %s via %s", res.Surface.ID(), res.Rule)
	}

	next, err := insert.Insert(res.Surface, "**2025-01-25** ")
	if err != nil {
		t.Fatalf("insert: %v", err)
	}
	if next != (workspace.Position{Line: 1, Column: 19}) {
		t.Fatalf("unexpected cursor %s", next)
	}

	content, err := s.Content(pane.ID)
	if err != nil {
		t.Fatalf("content: %v", err)
	}
	if content != "# Log\nmet **2025-01-25** with team\n" {
		t.Fatalf("unexpected content %q", content)
	}
	got, _ := s.Pane(pane.ID)
	if got.Cursor != next {
		t.Fatalf("cursor not stored, got %s", got.Cursor)
	}
	if s.State().Active != pane.ID {
		t.Fatalf("expected note to be focused after insert")
	}
}

func TestClosedPaneReportsSurfaceClosed(t *testing.T) {
	s, _ := newTestSession(t)

	pane, _ := s.Open("/notes/a.md")
	surface := s.Active()
	if surface == nil {
		t.Fatalf("expected active surface")
	}
	if err := s.Close(pane.ID); err != nil {
		t.Fatalf("close: %v", err)
	}
	if s.State().Active != "" {
		t.Fatalf("expected active cleared")
	}
	if _, err := surface.Cursor(); !errors.Is(err, workspace.ErrSurfaceClosed) {
		t.Fatalf("expected ErrSurfaceClosed, got %v", err)
	}
	if _, err := insert.Insert(surface, "x"); !errors.Is(err, insert.ErrTargetUnavailable) {
		t.Fatalf("expected ErrTargetUnavailable, got %v", err)
	}
	if err := s.Close(pane.ID); !errors.Is(err, ErrPaneNotFound) {
		t.Fatalf("expected ErrPaneNotFound, got %v", err)
	}
}

func TestMoveCursorClamps(t *testing.T) {
	s, fs := newTestSession(t)
	writeNote(t, fs, "/notes/a.md", "héllo\nab")

	pane, _ := s.Open("/notes/a.md")
	got, err := s.MoveCursor(pane.ID, workspace.Position{Line: 0, Column: 40})
	if err != nil {
		t.Fatalf("move: %v", err)
	}
	if got.Cursor != (workspace.Position{Line: 0, Column: 5}) {
		t.Fatalf("expected rune clamp, got %s", got.Cursor)
	}
	got, _ = s.MoveCursor(pane.ID, workspace.Position{Line: 9, Column: 0})
	if got.Cursor != (workspace.Position{Line: 1, Column: 2}) {
		t.Fatalf("expected end of document, got %s", got.Cursor)
	}

	cal, _ := s.OpenCalendar()
	if _, err := s.MoveCursor(cal.ID, workspace.Position{}); err == nil {
		t.Fatalf("expected error moving calendar cursor")
	}
}

func TestInsertAtEndOfCRLFLine(t *testing.T) {
	s, fs := newTestSession(t)
	writeNote(t, fs, "/notes/win.md", "due:\r\nnext\r\n")

	pane, _ := s.Open("/notes/win.md")
	got, err := s.MoveCursor(pane.ID, workspace.Position{Line: 0, Column: 999})
	if err != nil {
		t.Fatalf("move: %v", err)
	}
	if got.Cursor != (workspace.Position{Line: 0, Column: 4}) {
		t.Fatalf("expected clamp before \\r, got %s", got.Cursor)
	}

	if _, err := insert.Insert(s.Active(), " 2025-01-25"); err != nil {
		t.Fatalf("insert: %v", err)
	}
	content, _ := s.Content(pane.ID)
	if content != "due: 2025-01-25\r\nnext\r\n" {
		t.Fatalf("unexpected content %q", content)
	}
}

func TestNoEditablePanes(t *testing.T) {
	s, _ := newTestSession(t)
	if _, err := s.OpenCalendar(); err != nil {
		t.Fatalf("calendar: %v", err)
	}
	if _, err := target.Resolve(s); !errors.Is(err, target.ErrNoTarget) {
		t.Fatalf("expected ErrNoTarget, got %v", err)
	}
}

func TestWatchReportsFocusChanges(t *testing.T) {
	s, _ := newTestSession(t)
	pane, _ := s.Open("/notes/a.md")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	events, err := s.Watch(ctx)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}

	if _, err := s.Focus(pane.ID); err != nil {
		t.Fatalf("focus: %v", err)
	}

	timeout := time.After(2 * time.Second)
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				t.Fatalf("events closed early")
			}
			if ev.Type == EventFocusChanged {
				return
			}
		case <-timeout:
			t.Fatalf("timed out waiting for focus event")
		}
	}
}

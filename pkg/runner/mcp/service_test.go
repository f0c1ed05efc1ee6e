package mcp

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/spf13/afero"

	"tableflip.dev/datestamp/pkg/app"
	"tableflip.dev/datestamp/pkg/notice"
	"tableflip.dev/datestamp/pkg/session"
	"tableflip.dev/datestamp/pkg/settings"
	"tableflip.dev/datestamp/pkg/workspace"
	"tableflip.dev/datestamp/pkg/workspace/workspacetest"
)

var now = time.Date(2025, time.January, 25, 15, 0, 0, 0, time.UTC)

type memoryWorkspace struct {
	panes []session.Pane
	state session.State
}

func (m *memoryWorkspace) Panes() []session.Pane { return m.panes }
func (m *memoryWorkspace) State() session.State  { return m.state }

func newService(t *testing.T, h workspace.Host) (*Service, *settings.Store) {
	t.Helper()
	store, err := settings.Open(afero.NewMemMapFs(), "/cfg/datestamp.yaml")
	if err != nil {
		t.Fatalf("settings: %v", err)
	}
	svc := &app.Service{Settings: store, Host: h, Now: func() time.Time { return now }}
	return NewService(svc, &memoryWorkspace{}, store), store
}

func TestServiceFormatDateDefaults(t *testing.T) {
	svc, _ := newService(t, workspacetest.New())

	res, err := svc.FormatDate("", "", nil)
	if err != nil {
		t.Fatalf("format: %v", err)
	}
	if res.Text != "**2025-01-25**" || res.Date != "2025-01-25" || !res.Bold {
		t.Fatalf("unexpected result %+v", res)
	}

	off := false
	res, err = svc.FormatDate("tomorrow", "DD/MM/YYYY", &off)
	if err != nil {
		t.Fatalf("format: %v", err)
	}
	if res.Text != "26/01/2025" {
		t.Fatalf("unexpected text %q", res.Text)
	}
}

func TestServiceFormatDateFallback(t *testing.T) {
	svc, _ := newService(t, workspacetest.New())
	res, err := svc.FormatDate("2025-01-25", "[broken", nil)
	if err != nil {
		t.Fatalf("format: %v", err)
	}
	if !res.Fallback || res.Text != "**2025-01-25**" {
		t.Fatalf("expected fallback, got %+v", res)
	}
	if _, err := svc.FormatDate("someday", "", nil); err == nil {
		t.Fatalf("expected error for unknown day")
	}
}

func TestServiceInsertDate(t *testing.T) {
	doc := &workspacetest.Doc{ID: "a", Path: "/notes/a.md", Lines: []string{"due "}, Pos: workspace.Position{Column: 4}}
	h := workspacetest.New(doc)
	h.ActiveID = "a"
	svc, _ := newService(t, h)

	res, err := svc.InsertDate(context.Background(), "2025-02-01")
	if err != nil {
		t.Fatalf("insert: %v", err)
	}
	if doc.Lines[0] != "due **2025-02-01**" || res.Cursor.Column != 18 {
		t.Fatalf("unexpected document %q cursor %s", doc.Lines[0], res.Cursor)
	}
}

func TestServiceInsertDateNoNote(t *testing.T) {
	svc, _ := newService(t, workspacetest.New())
	_, err := svc.InsertDate(context.Background(), "")
	if err == nil || err.Error() != notice.NoActiveNote {
		t.Fatalf("expected notice text as error, got %v", err)
	}
}

func TestServiceSettingsRoundTrip(t *testing.T) {
	svc, store := newService(t, workspacetest.New())

	custom := "custom"
	pattern := "DD.MM.YYYY"
	bold := false
	dto, err := svc.UpdateSettings(context.Background(), SettingsPatch{
		DateFormat:        &custom,
		CustomFormat:      &pattern,
		UseBoldFormatting: &bold,
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if dto.EffectivePattern != "DD.MM.YYYY" || dto.Preview != "Preview: 25.01.2025" {
		t.Fatalf("unexpected dto %+v", dto)
	}
	if store.Get().CustomFormat != "DD.MM.YYYY" {
		t.Fatalf("store not updated")
	}

	bad := "YYYY"
	if _, err := svc.UpdateSettings(context.Background(), SettingsPatch{DateFormat: &bad}); err == nil {
		t.Fatalf("expected unknown format error")
	}
}

func TestServiceListPanes(t *testing.T) {
	svc, _ := newService(t, workspacetest.New())
	svc.Workspace = &memoryWorkspace{
		panes: []session.Pane{
			{ID: "a", Kind: session.KindNote, File: "/notes/a.md", Cursor: workspace.Position{Line: 2, Column: 3}},
			{ID: "calendar", Kind: session.KindCalendar},
		},
		state: session.State{Active: "a"},
	}

	panes, err := svc.ListPanes(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(panes) != 2 || !panes[0].Active || panes[1].Active {
		t.Fatalf("unexpected panes %+v", panes)
	}
	if panes[0].Line != 2 || panes[0].Column != 3 || panes[1].Kind != "calendar" {
		t.Fatalf("unexpected pane fields %+v", panes)
	}
}

func TestServiceMonth(t *testing.T) {
	svc, _ := newService(t, workspacetest.New())

	dto, err := svc.Month(context.Background(), "2025-01")
	if err != nil {
		t.Fatalf("month: %v", err)
	}
	if dto.Month != "January 2025" || len(dto.Weeks) != 5 {
		t.Fatalf("unexpected month %s with %d weeks", dto.Month, len(dto.Weeks))
	}
	first := dto.Weeks[0][0]
	if first.Date != "2024-12-29" || !first.Dimmed {
		t.Fatalf("unexpected first cell %+v", first)
	}
	var today int
	for _, week := range dto.Weeks {
		for _, c := range week {
			if c.Today {
				today++
				if !strings.HasSuffix(c.Date, "-25") {
					t.Fatalf("wrong today %s", c.Date)
				}
			}
		}
	}
	if today != 1 {
		t.Fatalf("expected one today cell, got %d", today)
	}

	if dto, err := svc.Month(context.Background(), "February 2025"); err != nil || dto.Month != "February 2025" {
		t.Fatalf("unexpected %v %v", dto.Month, err)
	}
	if _, err := svc.Month(context.Background(), "Smarch"); err == nil {
		t.Fatalf("expected invalid month error")
	}
}

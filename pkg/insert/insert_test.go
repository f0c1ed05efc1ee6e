package insert

import (
	"errors"
	"testing"

	"tableflip.dev/datestamp/pkg/workspace"
	"tableflip.dev/datestamp/pkg/workspace/workspacetest"
)

func surfaceFor(t *testing.T, h *workspacetest.Memory, id string) workspace.Surface {
	t.Helper()
	for _, s := range h.Surfaces() {
		if s.ID() == id {
			return s
		}
	}
	t.Fatalf("surface %s not found", id)
	return nil
}

func TestInsertAtCursor(t *testing.T) {
	doc := &workspacetest.Doc{
		ID:    "a",
		Lines: []string{"# Notes", "", "", "", "tail"},
		Pos:   workspace.Position{Line: 3, Column: 0},
	}
	h := workspacetest.New(doc)

	pos, err := Insert(surfaceFor(t, h, "a"), "**2025-01-25**")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pos != (workspace.Position{Line: 3, Column: 14}) {
		t.Fatalf("expected 3:14, got %s", pos)
	}
	if doc.Lines[3] != "**2025-01-25**" {
		t.Fatalf("unexpected line %q", doc.Lines[3])
	}
	if doc.Pos != pos {
		t.Fatalf("cursor not moved, got %s", doc.Pos)
	}
	if doc.Focused != 1 || h.ActiveID != "a" {
		t.Fatalf("expected surface focused")
	}
}

func TestInsertColumnArithmetic(t *testing.T) {
	lines := []string{"", "abc", "héllo wörld", "0123456789"}
	for line, content := range lines {
		for col := 0; col <= len([]rune(content)); col++ {
			for _, text := range []string{"", "x", "25/01/2025", "January 25, 2025", "ü"} {
				doc := &workspacetest.Doc{ID: "a", Lines: append([]string(nil), lines...), Pos: workspace.Position{Line: line, Column: col}}
				h := workspacetest.New(doc)
				pos, err := Insert(surfaceFor(t, h, "a"), text)
				if err != nil {
					t.Fatalf("line %d col %d %q: %v", line, col, text, err)
				}
				want := workspace.Position{Line: line, Column: col + len([]rune(text))}
				if pos != want {
					t.Fatalf("line %d col %d %q: expected %s, got %s", line, col, text, want, pos)
				}
				got := []rune(doc.Lines[line])
				if string(got[col:col+len([]rune(text))]) != text {
					t.Fatalf("text not at cursor: %q", doc.Lines[line])
				}
			}
		}
	}
}

func TestInsertClosedSurface(t *testing.T) {
	doc := &workspacetest.Doc{ID: "a", Lines: []string{"x"}}
	h := workspacetest.New(doc)
	s := surfaceFor(t, h, "a")
	doc.Closed = true

	if _, err := Insert(s, "2025-01-25"); !errors.Is(err, ErrTargetUnavailable) {
		t.Fatalf("expected ErrTargetUnavailable, got %v", err)
	}
	if doc.Writes != 0 || doc.Lines[0] != "x" {
		t.Fatalf("expected no mutation")
	}
}

func TestInsertRollsBackWhenCursorFails(t *testing.T) {
	doc := &workspacetest.Doc{ID: "a", Lines: []string{"start"}, Pos: workspace.Position{Column: 5}}
	h := workspacetest.New(doc)
	doc.SetCursorErr = workspace.ErrSurfaceClosed

	if _, err := Insert(surfaceFor(t, h, "a"), " 2025"); !errors.Is(err, ErrTargetUnavailable) {
		t.Fatalf("expected ErrTargetUnavailable, got %v", err)
	}
	if doc.Lines[0] != "start" {
		t.Fatalf("expected text rolled back, got %q", doc.Lines[0])
	}
}

func TestInsertRejectsMultiline(t *testing.T) {
	doc := &workspacetest.Doc{ID: "a", Lines: []string{""}}
	h := workspacetest.New(doc)
	if _, err := Insert(surfaceFor(t, h, "a"), "a\nb"); !errors.Is(err, ErrMultiline) {
		t.Fatalf("expected ErrMultiline, got %v", err)
	}
	if h.Mutations != 0 {
		t.Fatalf("expected no mutation")
	}
}

func TestInsertNilSurface(t *testing.T) {
	if _, err := Insert(nil, "x"); !errors.Is(err, ErrTargetUnavailable) {
		t.Fatalf("expected ErrTargetUnavailable, got %v", err)
	}
}

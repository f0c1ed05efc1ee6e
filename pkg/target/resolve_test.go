package target

import (
	"errors"
	"testing"

	"tableflip.dev/datestamp/pkg/workspace"
	"tableflip.dev/datestamp/pkg/workspace/workspacetest"
)

func TestResolvePrefersActive(t *testing.T) {
	h := workspacetest.New(
		&workspacetest.Doc{ID: "a", Path: "a.md"},
		&workspacetest.Doc{ID: "b", Path: "b.md"},
	)
	h.ActiveID = "b"
	h.LastFocusedID = "a"

	got, err := Resolve(h)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Surface.ID() != "b" || got.Rule != RuleActive {
		t.Fatalf("expected active surface b, got %s via %s", got.Surface.ID(), got.Rule)
	}
}

func TestResolveSkipsNonEditableActive(t *testing.T) {
	h := workspacetest.New(
		&workspacetest.Doc{ID: "calendar", ReadOnly: true},
		&workspacetest.Doc{ID: "a", Path: "a.md"},
		&workspacetest.Doc{ID: "b", Path: "b.md"},
	)
	h.ActiveID = "calendar"
	h.LastFocusedID = "b"

	got, err := Resolve(h)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Surface.ID() != "b" || got.Rule != RuleLastFocused {
		t.Fatalf("expected last focused b, got %s via %s", got.Surface.ID(), got.Rule)
	}
}

func TestResolveActiveFile(t *testing.T) {
	h := workspacetest.New(
		&workspacetest.Doc{ID: "calendar", ReadOnly: true},
		&workspacetest.Doc{ID: "a", Path: "a.md"},
		&workspacetest.Doc{ID: "b", Path: "b.md"},
	)
	h.ActiveID = "calendar"
	h.ActiveFileRef = "b.md"

	got, err := Resolve(h)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Surface.ID() != "b" || got.Rule != RuleActiveFile {
		t.Fatalf("expected b via active file, got %s via %s", got.Surface.ID(), got.Rule)
	}
}

func TestResolvePrefersLiveCursor(t *testing.T) {
	h := workspacetest.New(
		&workspacetest.Doc{ID: "a", Path: "a.md", CursorErr: errors.New("detached")},
		&workspacetest.Doc{ID: "b", Path: "b.md"},
	)
	h.ActiveFileRef = "missing.md"

	got, err := Resolve(h)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Surface.ID() != "b" || got.Rule != RuleLive {
		t.Fatalf("expected live b, got %s via %s", got.Surface.ID(), got.Rule)
	}
}

func TestResolveFirstWhenNoneLive(t *testing.T) {
	detached := errors.New("detached")
	h := workspacetest.New(
		&workspacetest.Doc{ID: "a", CursorErr: detached},
		&workspacetest.Doc{ID: "b", CursorErr: detached},
	)

	got, err := Resolve(h)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Surface.ID() != "a" || got.Rule != RuleFirst {
		t.Fatalf("expected first a, got %s via %s", got.Surface.ID(), got.Rule)
	}
}

func TestResolveNoneIffNoEditable(t *testing.T) {
	cases := []struct {
		name string
		docs []*workspacetest.Doc
		none bool
	}{
		{name: "empty", none: true},
		{name: "read only", docs: []*workspacetest.Doc{{ID: "calendar", ReadOnly: true}}, none: true},
		{name: "closed", docs: []*workspacetest.Doc{{ID: "a", Closed: true}}, none: true},
		{name: "one", docs: []*workspacetest.Doc{{ID: "calendar", ReadOnly: true}, {ID: "a"}}},
	}
	for _, tc := range cases {
		_, err := Resolve(workspacetest.New(tc.docs...))
		if tc.none && !errors.Is(err, ErrNoTarget) {
			t.Fatalf("%s: expected ErrNoTarget, got %v", tc.name, err)
		}
		if !tc.none && err != nil {
			t.Fatalf("%s: unexpected error: %v", tc.name, err)
		}
	}
}

func TestResolveDeterministicAndReadOnly(t *testing.T) {
	h := workspacetest.New(
		&workspacetest.Doc{ID: "a", Path: "a.md", Pos: workspace.Position{Line: 1}},
		&workspacetest.Doc{ID: "b", Path: "b.md"},
		&workspacetest.Doc{ID: "c", Path: "c.md"},
	)
	h.ActiveFileRef = "c.md"

	first, err := Resolve(h)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := Resolve(h)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first.Surface.ID() != second.Surface.ID() || first.Rule != second.Rule {
		t.Fatalf("expected identical results, got %s/%s and %s/%s",
			first.Surface.ID(), first.Rule, second.Surface.ID(), second.Rule)
	}
	if h.Mutations != 0 || h.ActiveID != "" || h.LastFocusedID != "" {
		t.Fatalf("resolve mutated host state")
	}
}

func TestResolveNilHost(t *testing.T) {
	if _, err := Resolve(nil); !errors.Is(err, ErrNoTarget) {
		t.Fatalf("expected ErrNoTarget, got %v", err)
	}
}

// Package workspacetest provides an in-memory workspace.Host for tests.
package workspacetest

import (
	"errors"
	"fmt"
	"strings"

	"tableflip.dev/datestamp/pkg/workspace"
)

// Doc is one open surface in a Memory host.
type Doc struct {
	ID       string
	Path     string
	Lines    []string
	Pos      workspace.Position
	ReadOnly bool
	Closed   bool

	// CursorErr, when set, is returned from Cursor queries.
	CursorErr error
	// SetCursorErr, when set, is returned from SetCursor.
	SetCursorErr error

	Focused int
	Writes  int
}

// Text returns the document content joined with newlines.
func (d *Doc) Text() string {
	return strings.Join(d.Lines, "\n")
}

// Memory is a workspace.Host backed by plain structs. Calls are counted so
// tests can assert that a read-only operation did not mutate anything.
type Memory struct {
	Docs          []*Doc
	ActiveID      string
	LastFocusedID string
	ActiveFileRef string

	Mutations int
}

// New returns a host holding docs in the given order.
func New(docs ...*Doc) *Memory {
	return &Memory{Docs: docs}
}

// Doc returns the document with id, or nil.
func (m *Memory) Doc(id string) *Doc {
	for _, d := range m.Docs {
		if d.ID == id {
			return d
		}
	}
	return nil
}

func (m *Memory) Surfaces() []workspace.Surface {
	out := make([]workspace.Surface, 0, len(m.Docs))
	for _, d := range m.Docs {
		if d.Closed {
			continue
		}
		out = append(out, &surface{host: m, doc: d})
	}
	return out
}

func (m *Memory) Active() workspace.Surface {
	return m.lookup(m.ActiveID)
}

func (m *Memory) LastFocused() workspace.Surface {
	return m.lookup(m.LastFocusedID)
}

func (m *Memory) ActiveFile() string {
	return m.ActiveFileRef
}

func (m *Memory) lookup(id string) workspace.Surface {
	if id == "" {
		return nil
	}
	d := m.Doc(id)
	if d == nil || d.Closed {
		return nil
	}
	return &surface{host: m, doc: d}
}

type surface struct {
	host *Memory
	doc  *Doc
}

func (s *surface) ID() string     { return s.doc.ID }
func (s *surface) File() string   { return s.doc.Path }
func (s *surface) Editable() bool { return !s.doc.ReadOnly }

func (s *surface) Cursor() (workspace.Position, error) {
	if s.doc.Closed {
		return workspace.Position{}, workspace.ErrSurfaceClosed
	}
	if s.doc.CursorErr != nil {
		return workspace.Position{}, s.doc.CursorErr
	}
	return s.doc.Pos, nil
}

func (s *surface) SetCursor(p workspace.Position) error {
	if s.doc.Closed {
		return workspace.ErrSurfaceClosed
	}
	if s.doc.SetCursorErr != nil {
		return s.doc.SetCursorErr
	}
	if !p.Valid() {
		return fmt.Errorf("workspacetest: invalid position %s", p)
	}
	s.host.Mutations++
	s.doc.Pos = p
	return nil
}

func (s *surface) ReplaceRange(text string, from, to workspace.Position) error {
	if s.doc.Closed {
		return workspace.ErrSurfaceClosed
	}
	if s.doc.ReadOnly {
		return errors.New("workspacetest: read only")
	}
	content := []rune(s.doc.Text())
	start, err := offset(s.doc.Lines, from)
	if err != nil {
		return err
	}
	end, err := offset(s.doc.Lines, to)
	if err != nil {
		return err
	}
	if end < start {
		return fmt.Errorf("workspacetest: range %s-%s reversed", from, to)
	}
	next := string(content[:start]) + text + string(content[end:])
	s.doc.Lines = strings.Split(next, "\n")
	s.doc.Writes++
	s.host.Mutations++
	return nil
}

func (s *surface) Focus() error {
	if s.doc.Closed {
		return workspace.ErrSurfaceClosed
	}
	s.doc.Focused++
	s.host.ActiveID = s.doc.ID
	s.host.LastFocusedID = s.doc.ID
	s.host.ActiveFileRef = s.doc.Path
	return nil
}

func offset(lines []string, p workspace.Position) (int, error) {
	if !p.Valid() || p.Line >= max(len(lines), 1) {
		return 0, fmt.Errorf("workspacetest: position %s out of range", p)
	}
	n := 0
	for i := 0; i < p.Line; i++ {
		n += len([]rune(lines[i])) + 1
	}
	line := ""
	if p.Line < len(lines) {
		line = lines[p.Line]
	}
	if p.Column > len([]rune(line)) {
		return 0, fmt.Errorf("workspacetest: position %s out of range", p)
	}
	return n + p.Column, nil
}

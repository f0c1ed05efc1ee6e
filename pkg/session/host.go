package session

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/afero"

	"tableflip.dev/datestamp/pkg/workspace"
)

var _ workspace.Host = (*Session)(nil)

// Surfaces returns a surface per open pane, in opening order.
func (s *Session) Surfaces() []workspace.Surface {
	panes := s.Panes()
	out := make([]workspace.Surface, 0, len(panes))
	for _, p := range panes {
		out = append(out, &surface{s: s, id: p.ID, kind: p.Kind, file: p.File})
	}
	return out
}

// Active returns the active pane, or nil.
func (s *Session) Active() workspace.Surface {
	st := s.State()
	if st.Active == "" {
		return nil
	}
	return s.surfaceFor(st.Active)
}

// LastFocused returns the most recently focused note pane, or nil.
func (s *Session) LastFocused() workspace.Surface {
	var best *Pane
	for _, p := range s.Panes() {
		if p.Kind != KindNote || p.FocusedAt.IsZero() {
			continue
		}
		if best == nil || p.FocusedAt.After(best.FocusedAt) {
			pp := p
			best = &pp
		}
	}
	if best == nil {
		return nil
	}
	return &surface{s: s, id: best.ID, kind: best.Kind, file: best.File}
}

// ActiveFile returns the file of the last focused note, even when the
// calendar pane is the active one.
func (s *Session) ActiveFile() string {
	return s.State().ActiveFile
}

func (s *Session) surfaceFor(id string) workspace.Surface {
	p, err := s.Pane(id)
	if err != nil {
		return nil
	}
	return &surface{s: s, id: p.ID, kind: p.Kind, file: p.File}
}

// surface is a transient handle on a pane. Every call re-reads the pane so a
// pane closed after the handle was taken reports workspace.ErrSurfaceClosed.
type surface struct {
	s    *Session
	id   string
	kind Kind
	file string
}

func (h *surface) ID() string     { return h.id }
func (h *surface) File() string   { return h.file }
func (h *surface) Editable() bool { return h.kind == KindNote }

func (h *surface) pane() (*Pane, error) {
	p, err := h.s.readPane(paneKey(h.id))
	if err != nil {
		if errors.Is(err, ErrPaneNotFound) {
			return nil, fmt.Errorf("%w: %s", workspace.ErrSurfaceClosed, h.id)
		}
		return nil, err
	}
	if p.Kind != KindNote {
		return nil, fmt.Errorf("session: pane %s is not editable", h.id)
	}
	return p, nil
}

func (h *surface) lines(p *Pane) ([]string, error) {
	lines, err := h.s.readLines(p.File)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", workspace.ErrSurfaceClosed, p.File)
		}
		return nil, err
	}
	return lines, nil
}

func (h *surface) Cursor() (workspace.Position, error) {
	p, err := h.pane()
	if err != nil {
		return workspace.Position{}, err
	}
	lines, err := h.lines(p)
	if err != nil {
		return workspace.Position{}, err
	}
	return clamp(lines, p.Cursor), nil
}

func (h *surface) SetCursor(pos workspace.Position) error {
	p, err := h.pane()
	if err != nil {
		return err
	}
	if !pos.Valid() {
		return fmt.Errorf("session: invalid position %s", pos)
	}
	p.Cursor = pos
	return h.s.writePane(p)
}

func (h *surface) ReplaceRange(text string, from, to workspace.Position) error {
	p, err := h.pane()
	if err != nil {
		return err
	}
	lines, err := h.lines(p)
	if err != nil {
		return err
	}
	next, err := replace(lines, text, from, to)
	if err != nil {
		return err
	}
	return afero.WriteFile(h.s.fs, p.File, []byte(next), 0o644)
}

// Edit replaces the range and moves the cursor together. If the cursor
// cannot be stored the file is restored.
func (h *surface) Edit(text string, from, to, cursor workspace.Position) error {
	p, err := h.pane()
	if err != nil {
		return err
	}
	original, err := afero.ReadFile(h.s.fs, p.File)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%w: %s", workspace.ErrSurfaceClosed, p.File)
		}
		return err
	}
	next, err := replace(strings.Split(string(original), "\n"), text, from, to)
	if err != nil {
		return err
	}
	if err := afero.WriteFile(h.s.fs, p.File, []byte(next), 0o644); err != nil {
		return err
	}
	p.Cursor = cursor
	if err := h.s.writePane(p); err != nil {
		if rerr := afero.WriteFile(h.s.fs, p.File, original, 0o644); rerr != nil {
			fmt.Fprintf(os.Stderr, "session: restore %s: %v\n", p.File, rerr)
		}
		return err
	}
	return nil
}

func (h *surface) Focus() error {
	_, err := h.s.Focus(h.id)
	if errors.Is(err, ErrPaneNotFound) {
		return fmt.Errorf("%w: %s", workspace.ErrSurfaceClosed, h.id)
	}
	return err
}

// lineLen is the rune length of a line without the \r of a CRLF ending.
func lineLen(line string) int {
	return len([]rune(strings.TrimSuffix(line, "\r")))
}

// clamp keeps pos inside the document. Columns count runes.
func clamp(lines []string, pos workspace.Position) workspace.Position {
	if len(lines) == 0 {
		return workspace.Position{}
	}
	if pos.Line < 0 {
		pos.Line = 0
	}
	if pos.Line >= len(lines) {
		pos.Line = len(lines) - 1
		pos.Column = lineLen(lines[pos.Line])
	}
	if pos.Column < 0 {
		pos.Column = 0
	}
	if n := lineLen(lines[pos.Line]); pos.Column > n {
		pos.Column = n
	}
	return pos
}

func replace(lines []string, text string, from, to workspace.Position) (string, error) {
	start, err := offset(lines, from)
	if err != nil {
		return "", err
	}
	end, err := offset(lines, to)
	if err != nil {
		return "", err
	}
	if end < start {
		return "", fmt.Errorf("session: range %s-%s reversed", from, to)
	}
	content := []rune(strings.Join(lines, "\n"))
	return string(content[:start]) + text + string(content[end:]), nil
}

func offset(lines []string, pos workspace.Position) (int, error) {
	if !pos.Valid() || pos.Line >= len(lines) || pos.Column > lineLen(lines[pos.Line]) {
		return 0, fmt.Errorf("session: position %s outside document", pos)
	}
	n := 0
	for _, line := range lines[:pos.Line] {
		n += len([]rune(line)) + 1
	}
	return n + pos.Column, nil
}

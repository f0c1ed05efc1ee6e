// Package workspace defines the host capabilities the date inserter relies on:
// a set of open document surfaces and the cursor/text operations on each.
package workspace

import (
	"errors"
	"fmt"
)

// ErrSurfaceClosed is returned by Surface operations once the host has closed
// the surface or lost its backing document.
var ErrSurfaceClosed = errors.New("workspace: surface closed")

// Position is a zero-indexed line/column location inside a document.
type Position struct {
	Line   int `json:"line"`
	Column int `json:"column"`
}

// String renders the position as "line:column".
func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Valid reports whether both coordinates are non-negative.
func (p Position) Valid() bool {
	return p.Line >= 0 && p.Column >= 0
}

// Surface is one open view onto a document. Surfaces are created and destroyed
// by the host; callers only hold them for the duration of a single operation.
type Surface interface {
	// ID is the host identifier of the surface.
	ID() string
	// File is the path of the bound document, or "" when unbound.
	File() string
	// Editable reports whether the surface accepts cursor queries and text
	// mutations. Non-editable surfaces (for example a calendar panel) are
	// never insertion targets.
	Editable() bool

	Cursor() (Position, error)
	SetCursor(Position) error
	// ReplaceRange replaces the text between from and to with text. A
	// zero-length range inserts.
	ReplaceRange(text string, from, to Position) error
	// Focus asks the host to make the surface the active one.
	Focus() error
}

// Editor is implemented by surfaces that can replace a range and move the
// cursor as one operation.
type Editor interface {
	Edit(text string, from, to, cursor Position) error
}

// Host is the read side of the editor workspace.
type Host interface {
	// Surfaces enumerates open surfaces in a stable host order.
	Surfaces() []Surface
	// Active returns the surface the host currently reports as active, or nil.
	Active() Surface
	// LastFocused returns the most recently focused surface, or nil when the
	// host does not track it.
	LastFocused() Surface
	// ActiveFile returns the path of the active file regardless of which
	// pane shows it, or "".
	ActiveFile() string
}

// IsEditable reports whether s is a non-nil editable surface.
func IsEditable(s Surface) bool {
	return s != nil && s.Editable()
}

// Editable filters surfaces down to the editable ones, preserving order.
func Editable(surfaces []Surface) []Surface {
	out := make([]Surface, 0, len(surfaces))
	for _, s := range surfaces {
		if IsEditable(s) {
			out = append(out, s)
		}
	}
	return out
}

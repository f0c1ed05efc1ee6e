// Package insert writes text at the cursor of a workspace surface.
package insert

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"tableflip.dev/datestamp/pkg/workspace"
)

var (
	// ErrTargetUnavailable means the surface went away between resolution
	// and insertion. Nothing has been applied when it is returned.
	ErrTargetUnavailable = errors.New("insert: target unavailable")

	// ErrMultiline rejects text the cursor arithmetic cannot place.
	ErrMultiline = errors.New("insert: text spans lines")
)

// Insert places text at the cursor of s and moves the cursor to the end of
// the inserted text on the same line, then asks the host to focus s. The new
// cursor position is returned.
func Insert(s workspace.Surface, text string) (workspace.Position, error) {
	if strings.ContainsAny(text, "\r\n") {
		return workspace.Position{}, ErrMultiline
	}
	if s == nil {
		return workspace.Position{}, ErrTargetUnavailable
	}

	at, err := s.Cursor()
	if err != nil {
		return workspace.Position{}, unavailable("read cursor", err)
	}
	next := Advance(at, text)

	if e, ok := s.(workspace.Editor); ok {
		if err := e.Edit(text, at, at, next); err != nil {
			return workspace.Position{}, unavailable("edit", err)
		}
	} else {
		if err := s.ReplaceRange(text, at, at); err != nil {
			return workspace.Position{}, unavailable("replace range", err)
		}
		if err := s.SetCursor(next); err != nil {
			// Undo the text so the attempt leaves nothing behind.
			_ = s.ReplaceRange("", at, next)
			return workspace.Position{}, unavailable("set cursor", err)
		}
	}
	// Focus is a request; the edit already landed.
	_ = s.Focus()
	return next, nil
}

// Advance returns the position after writing text at p on a single line.
func Advance(p workspace.Position, text string) workspace.Position {
	return workspace.Position{Line: p.Line, Column: p.Column + utf8.RuneCountInString(text)}
}

func unavailable(step string, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrTargetUnavailable, step, err)
}

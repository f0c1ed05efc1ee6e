// Package target decides which open surface receives an inserted date.
package target

import (
	"errors"

	"tableflip.dev/datestamp/pkg/workspace"
)

// ErrNoTarget is returned when the host has no editable surface open.
var ErrNoTarget = errors.New("target: no editable surface open")

// Rule names the step of the resolution policy that produced a target.
type Rule string

const (
	RuleActive      Rule = "active"
	RuleLastFocused Rule = "last-focused"
	RuleActiveFile  Rule = "active-file"
	RuleLive        Rule = "live-cursor"
	RuleFirst       Rule = "first-open"
)

// Resolved is the outcome of a resolution. It is computed per insertion and
// never cached: the active surface can change between renders and a click.
type Resolved struct {
	Surface workspace.Surface
	Rule    Rule
}

// Resolve picks the insertion target from the host state, in order:
// the active surface, the most recently focused surface, a surface bound to
// the active file, the first surface with a queryable cursor, and finally
// the first editable surface. Only read-only host calls are made.
func Resolve(h workspace.Host) (Resolved, error) {
	if h == nil {
		return Resolved{}, ErrNoTarget
	}
	if s := h.Active(); workspace.IsEditable(s) {
		return Resolved{Surface: s, Rule: RuleActive}, nil
	}
	if s := h.LastFocused(); workspace.IsEditable(s) {
		return Resolved{Surface: s, Rule: RuleLastFocused}, nil
	}

	editable := workspace.Editable(h.Surfaces())
	if len(editable) == 0 {
		return Resolved{}, ErrNoTarget
	}

	if file := h.ActiveFile(); file != "" {
		for _, s := range editable {
			if s.File() == file {
				return Resolved{Surface: s, Rule: RuleActiveFile}, nil
			}
		}
	}

	for _, s := range editable {
		if _, err := s.Cursor(); err == nil {
			return Resolved{Surface: s, Rule: RuleLive}, nil
		}
	}
	return Resolved{Surface: editable[0], Rule: RuleFirst}, nil
}

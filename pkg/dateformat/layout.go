package dateformat

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/nleeper/goment"
)

// ErrInvalidPattern is returned when a pattern cannot be used for insertion.
var ErrInvalidPattern = errors.New("dateformat: invalid pattern")

// Layout is a checked moment.js pattern. Rendering is done by goment.
type Layout struct {
	pattern string
}

// Pattern returns the source pattern.
func (l *Layout) Pattern() string { return l.pattern }

// Format renders t.
func (l *Layout) Format(t time.Time) (string, error) {
	g, err := goment.New(t)
	if err != nil {
		return "", fmt.Errorf("dateformat: %w", err)
	}
	return g.Format(l.pattern), nil
}

// Compile checks a moment.js pattern such as "DD/MM/YYYY" or
// "dddd, MMMM Do [at] HH:mm". A pattern is rejected when it is blank, holds
// a control character (the text goes on one line) or leaves a [ escape open.
func Compile(pattern string) (*Layout, error) {
	if strings.TrimSpace(pattern) == "" {
		return nil, fmt.Errorf("%w: pattern is empty", ErrInvalidPattern)
	}
	open := false
	for _, r := range pattern {
		if unicode.IsControl(r) {
			return nil, fmt.Errorf("%w: control character %q in %q", ErrInvalidPattern, r, pattern)
		}
		switch {
		case r == '[' && !open:
			open = true
		case r == ']' && open:
			open = false
		}
	}
	if open {
		return nil, fmt.Errorf("%w: unterminated [ in %q", ErrInvalidPattern, pattern)
	}
	return &Layout{pattern: pattern}, nil
}

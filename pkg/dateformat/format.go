// Package dateformat turns dates into the strings inserted into notes.
package dateformat

import (
	"time"
)

const (
	// DefaultPattern is applied when a configured pattern is unusable.
	DefaultPattern = "YYYY-MM-DD"

	// Custom is the format choice that defers to a user supplied pattern.
	Custom = "custom"

	// defaultLayout is DefaultPattern in Go layout form.
	defaultLayout = "2006-01-02"
)

// Bold wraps text in markdown bold markup.
func Bold(text string) string {
	return "**" + text + "**"
}

// Format renders t with pattern, wrapping the result in bold markup when
// bold is set. It fails with ErrInvalidPattern when pattern is unusable.
func Format(t time.Time, pattern string, bold bool) (string, error) {
	l, err := Compile(pattern)
	if err != nil {
		return "", err
	}
	out, err := l.Format(t)
	if err != nil {
		return "", err
	}
	if bold {
		out = Bold(out)
	}
	return out, nil
}

// FormatOrDefault always produces a string. When pattern is invalid it formats
// t with DefaultPattern instead and returns the error it recovered from so the
// caller can log the fallback.
func FormatOrDefault(t time.Time, pattern string, bold bool) (string, error) {
	out, err := Format(t, pattern, false)
	if err != nil {
		out = t.Format(defaultLayout)
	}
	if bold {
		out = Bold(out)
	}
	return out, err
}

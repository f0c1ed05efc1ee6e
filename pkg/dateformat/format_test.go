package dateformat

import (
	"errors"
	"strings"
	"testing"
	"time"
)

var day = time.Date(2025, time.January, 25, 14, 5, 9, 0, time.UTC)

func TestFormatPresets(t *testing.T) {
	want := map[string]string{
		"YYYY-MM-DD":    "2025-01-25",
		"DD-MM-YYYY":    "25-01-2025",
		"DD/MM/YYYY":    "25/01/2025",
		"MM/DD/YYYY":    "01/25/2025",
		"MMMM DD, YYYY": "January 25, 2025",
		"DD MMMM YYYY":  "25 January 2025",
	}
	for pattern, expected := range want {
		got, err := Format(day, pattern, false)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", pattern, err)
		}
		if got != expected {
			t.Fatalf("%s: expected %q, got %q", pattern, expected, got)
		}
	}
}

func TestFormatTokens(t *testing.T) {
	got, err := Format(day, "dddd, MMM Do YY [week] W Q HH:mm:ss h A", false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "Saturday, Jan 25th 25 week 4 1 14:05:09 2 PM"
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestFormatBoldWrapsPlain(t *testing.T) {
	for _, p := range Presets() {
		if p.Pattern == Custom {
			continue
		}
		plain, err := Format(day, p.Pattern, false)
		if err != nil {
			t.Fatalf("%s: %v", p.Pattern, err)
		}
		bold, err := Format(day, p.Pattern, true)
		if err != nil {
			t.Fatalf("%s: %v", p.Pattern, err)
		}
		if bold != "**"+plain+"**" {
			t.Fatalf("%s: expected bold of %q, got %q", p.Pattern, plain, bold)
		}
	}
}

func TestFormatMomentTokens(t *testing.T) {
	at := time.Date(2025, time.January, 25, 14, 5, 9, 123000000, time.UTC)
	want := map[string]string{
		"YYYY-MM-DDTHH:mm:ssZ": "2025-01-25T14:05:09+00:00",
		"Mo [month]":           "1st month",
		"HH:mm:ss.SSS":         "14:05:09.123",
		"[Week] w, YYYY":       "Week 4, 2025",
		"[Today]":              "Today",
	}
	for pattern, expected := range want {
		got, err := FormatOrDefault(at, pattern, false)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", pattern, err)
		}
		if got != expected {
			t.Fatalf("%s: expected %q, got %q", pattern, expected, got)
		}
	}
}

func TestFormatInvalidPatterns(t *testing.T) {
	for _, pattern := range []string{"", "   ", "[YYYY", "DD [at", "YYYY\nMM", "\tDD"} {
		if _, err := Format(day, pattern, false); !errors.Is(err, ErrInvalidPattern) {
			t.Fatalf("%q: expected ErrInvalidPattern, got %v", pattern, err)
		}
	}
}

func TestFormatOrDefaultFallsBack(t *testing.T) {
	got, err := FormatOrDefault(day, "[oops", false)
	if !errors.Is(err, ErrInvalidPattern) {
		t.Fatalf("expected recovered ErrInvalidPattern, got %v", err)
	}
	if got != "2025-01-25" {
		t.Fatalf("expected default pattern output, got %q", got)
	}

	got, _ = FormatOrDefault(day, "", true)
	if got != "**2025-01-25**" {
		t.Fatalf("expected bold applied after fallback, got %q", got)
	}
}

func TestFormatOrDefaultValid(t *testing.T) {
	got, err := FormatOrDefault(day, "DD/MM/YYYY", false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "25/01/2025" {
		t.Fatalf("expected 25/01/2025, got %q", got)
	}
}

func TestPresetsLabels(t *testing.T) {
	presets := Presets()
	if len(presets) != 7 {
		t.Fatalf("expected 7 choices, got %d", len(presets))
	}
	if presets[0].Label != "YYYY-MM-DD (e.g., 2025-01-25)" {
		t.Fatalf("unexpected label %q", presets[0].Label)
	}
	if last := presets[len(presets)-1]; last.Pattern != Custom {
		t.Fatalf("expected custom last, got %q", last.Pattern)
	}
	if !IsChoice("MMMM DD, YYYY") || !IsChoice(Custom) || IsChoice("YYYY") {
		t.Fatalf("IsChoice mismatch")
	}
	if !strings.Contains(presets[4].Label, "January 25, 2025") {
		t.Fatalf("unexpected label %q", presets[4].Label)
	}
}

package timeutil

import (
	"testing"
	"time"
)

var ref = time.Date(2025, time.January, 25, 15, 4, 5, 0, time.UTC)

func TestParseDayDefault(t *testing.T) {
	got, err := ParseDay("", ref)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := time.Date(2025, time.January, 25, 0, 0, 0, 0, time.UTC); !got.Equal(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestParseDayForms(t *testing.T) {
	cases := map[string]string{
		"today":        "2025-01-25",
		"Tomorrow":     "2025-01-26",
		"yesterday":    "2025-01-24",
		"+3d":          "2025-01-28",
		"-1w":          "2025-01-18",
		"+ 2 weeks":    "2025-02-08",
		"2024-02-29":   "2024-02-29",
		"2024/12/31":   "2024-12-31",
		"1/2":          "2025-01-02",
		"Mar 4":        "2025-03-04",
		"March 4 2026": "2026-03-04",
		"Jan 9, 2023":  "2023-01-09",
	}
	for input, want := range cases {
		got, err := ParseDay(input, ref)
		if err != nil {
			t.Fatalf("%q: unexpected error: %v", input, err)
		}
		if FormatDay(got) != want {
			t.Fatalf("%q: expected %s, got %s", input, want, FormatDay(got))
		}
		if got.Hour() != 0 || got.Minute() != 0 {
			t.Fatalf("%q: expected midnight, got %v", input, got)
		}
	}
}

func TestParseDayInvalid(t *testing.T) {
	for _, input := range []string{"noop", "+3y", "2025-13-01", "32/1"} {
		if _, err := ParseDay(input, ref); err == nil {
			t.Fatalf("expected error for %q", input)
		}
	}
}

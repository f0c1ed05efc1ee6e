package timeutil

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	offsetPattern = regexp.MustCompile(`^([+-])\s*(\d+)\s*([a-z]+)$`)
	unitDays      = map[string]int{
		"d":     1,
		"day":   1,
		"days":  1,
		"w":     7,
		"wk":    7,
		"wks":   7,
		"week":  7,
		"weeks": 7,
	}
	dayLayouts = []string{
		"2006-01-02",
		"2006/01/02",
		"January 2 2006",
		"Jan 2 2006",
		"January 2, 2006",
		"Jan 2, 2006",
	}
	// layouts without a year take the year of the reference day.
	shortLayouts = []string{
		"1/2",
		"01/02",
		"January 2",
		"Jan 2",
	}
)

// ParseDay turns a human friendly day description into midnight of that day in
// now's location. It accepts "today", "tomorrow", "yesterday", offsets such as
// "+3d" or "-1w", ISO dates and month/day forms like "1/25" or "Jan 25".
// Empty input means today.
func ParseDay(input string, now time.Time) (time.Time, error) {
	today := Midnight(now)
	trimmed := strings.ToLower(strings.TrimSpace(input))

	switch trimmed {
	case "", "today", "now":
		return today, nil
	case "tomorrow":
		return today.AddDate(0, 0, 1), nil
	case "yesterday":
		return today.AddDate(0, 0, -1), nil
	}

	if matches := offsetPattern.FindStringSubmatch(trimmed); len(matches) == 4 {
		value, err := strconv.Atoi(matches[2])
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid day offset %q: %w", matches[2], err)
		}
		per, ok := unitDays[matches[3]]
		if !ok {
			return time.Time{}, fmt.Errorf("unsupported day unit %q", matches[3])
		}
		if matches[1] == "-" {
			value = -value
		}
		return today.AddDate(0, 0, value*per), nil
	}

	original := strings.TrimSpace(input)
	for _, layout := range dayLayouts {
		if t, err := time.ParseInLocation(layout, original, now.Location()); err == nil {
			return Midnight(t), nil
		}
	}
	for _, layout := range shortLayouts {
		if t, err := time.ParseInLocation(layout, original, now.Location()); err == nil {
			return time.Date(now.Year(), t.Month(), t.Day(), 0, 0, 0, 0, now.Location()), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognised day %q", original)
}

// Midnight truncates t to the start of its day in t's location.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// FormatDay renders a day in ISO form.
func FormatDay(t time.Time) string {
	return t.Format("2006-01-02")
}

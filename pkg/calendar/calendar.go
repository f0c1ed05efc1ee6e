// Package calendar holds the month picker state and its day grid.
package calendar

import (
	"strings"
	"time"
)

// Cell is one day in the visible grid.
type Cell struct {
	Date time.Time
	// Dimmed marks days that belong to the month before or after the anchor.
	Dimmed bool
	Today  bool
}

// Day returns the day of month of the cell.
func (c Cell) Day() int { return c.Date.Day() }

// MonthStart returns midnight on the first day of t's month.
func MonthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// DaysIn returns the number of days in a month.
func DaysIn(month time.Time) int {
	return MonthStart(month).AddDate(0, 1, -1).Day()
}

// SameDay reports whether a and b fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// Grid lays out anchor's month as whole weeks: from the start of the week
// holding the first day through the end of the week holding the last day.
// The result always has a multiple of 7 cells.
func Grid(anchor time.Time, weekStart time.Weekday, now time.Time) []Cell {
	first := MonthStart(anchor)
	last := first.AddDate(0, 0, DaysIn(anchor)-1)

	lead := (int(first.Weekday()) - int(weekStart) + 7) % 7
	trail := (int(weekStart) + 6 - int(last.Weekday()) + 7) % 7
	start := first.AddDate(0, 0, -lead)
	total := lead + DaysIn(anchor) + trail

	cells := make([]Cell, 0, total)
	for i := 0; i < total; i++ {
		d := start.AddDate(0, 0, i)
		cells = append(cells, Cell{
			Date:   d,
			Dimmed: d.Month() != first.Month() || d.Year() != first.Year(),
			Today:  SameDay(d, now),
		})
	}
	return cells
}

// Weeks splits cells into rows of seven.
func Weeks(cells []Cell) [][]Cell {
	rows := make([][]Cell, 0, len(cells)/7)
	for i := 0; i+7 <= len(cells); i += 7 {
		rows = append(rows, cells[i:i+7])
	}
	return rows
}

// WeekdayHeader returns two-letter weekday names starting at weekStart.
func WeekdayHeader(weekStart time.Weekday) string {
	names := make([]string, 0, 7)
	for i := 0; i < 7; i++ {
		names = append(names, time.Weekday((int(weekStart)+i)%7).String()[:2])
	}
	return strings.Join(names, " ")
}

// ParseMonth attempts to parse "January 2006" names.
func ParseMonth(name string) (time.Time, bool) {
	if strings.TrimSpace(name) == "" {
		return time.Time{}, false
	}
	t, err := time.Parse("January 2006", name)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

package calendar

import (
	"context"
	"time"

	"tableflip.dev/datestamp/pkg/calendar"
	"tableflip.dev/datestamp/pkg/printers"
)

// Calendar prints month grids without starting the interactive panel.
type Calendar struct {
	Month     time.Time
	Months    int
	WeekStart time.Weekday
	Now       time.Time
}

func (n *Calendar) Do(ctx context.Context) error {
	now := n.Now
	if now.IsZero() {
		now = time.Now()
	}
	month := n.Month
	if month.IsZero() {
		month = now
	}
	count := n.Months
	if count < 1 {
		count = 1
	}

	pp := printers.PrettyPrint{}
	anchor := calendar.MonthStart(month)
	for i := 0; i < count; i++ {
		pp.Month(anchor, n.WeekStart, now, time.Time{})
		anchor = anchor.AddDate(0, 1, 0)
	}
	return nil
}

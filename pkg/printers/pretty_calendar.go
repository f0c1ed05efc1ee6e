package printers

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/datestamp/pkg/calendar"
)

const width = len("11 12 13 14 15 16 17") // an example week

// Month prints the grid for anchor: adjacent month days faint, today bold and
// underlined, selected reversed.
func (pp *PrettyPrint) Month(anchor time.Time, weekStart time.Weekday, now, selected time.Time) {
	tf := color.New(color.FgWhite, color.Italic)

	m := anchor.Format("January 2006")
	mid := (width - len(m)) / 2
	if mid < 0 {
		mid = 0
	}
	_, _ = tf.Fprintf(pp.out(), "%s%s\n", strings.Repeat(" ", mid), m)
	_, _ = color.New(color.Faint).Fprintln(pp.out(), calendar.WeekdayHeader(weekStart))

	l1 := color.New(color.Faint, color.FgWhite)
	l2 := color.New(color.FgHiWhite)
	today := color.New(color.Bold, color.Underline, color.FgHiWhite)
	sel := color.New(color.ReverseVideo)

	for _, week := range calendar.Weeks(calendar.Grid(anchor, weekStart, now)) {
		for i, c := range week {
			printer := l2
			switch {
			case !selected.IsZero() && calendar.SameDay(c.Date, selected):
				printer = sel
			case c.Today:
				printer = today
			case c.Dimmed:
				printer = l1
			}
			_, _ = printer.Fprintf(pp.out(), "%2d", c.Day())
			if i < len(week)-1 {
				_, _ = fmt.Fprint(pp.out(), " ")
			}
		}
		_, _ = fmt.Fprint(pp.out(), "\n")
	}
	_, _ = fmt.Fprint(pp.out(), "\n")
}

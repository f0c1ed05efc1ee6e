package calendar

import "time"

// Picker is the month navigation state of one calendar view. Each view owns
// its own Picker; nothing survives the view being closed.
type Picker struct {
	anchor    time.Time
	weekStart time.Weekday
	now       func() time.Time
}

// Option configures a Picker.
type Option func(*Picker)

// WithClock overrides the clock used for today and the initial anchor.
func WithClock(now func() time.Time) Option {
	return func(p *Picker) { p.now = now }
}

// WithWeekStart changes the first column of the grid. Sunday by default.
func WithWeekStart(d time.Weekday) Option {
	return func(p *Picker) { p.weekStart = d }
}

// NewPicker starts displaying the current month.
func NewPicker(opts ...Option) *Picker {
	p := &Picker{weekStart: time.Sunday, now: time.Now}
	for _, opt := range opts {
		opt(p)
	}
	p.anchor = MonthStart(p.now())
	return p
}

// Anchor returns the first day of the displayed month.
func (p *Picker) Anchor() time.Time { return p.anchor }

// WeekStart returns the first weekday of each grid row.
func (p *Picker) WeekStart() time.Weekday { return p.weekStart }

// Now returns the picker's notion of the current time.
func (p *Picker) Now() time.Time { return p.now() }

// PrevMonth moves the anchor back one month.
func (p *Picker) PrevMonth() { p.anchor = p.anchor.AddDate(0, -1, 0) }

// NextMonth moves the anchor forward one month.
func (p *Picker) NextMonth() { p.anchor = p.anchor.AddDate(0, 1, 0) }

// SetAnchor jumps to the month holding t.
func (p *Picker) SetAnchor(t time.Time) { p.anchor = MonthStart(t) }

// SelectDay returns the date to insert. The anchor does not move, even when
// date is a dimmed day of a neighbouring month.
func (p *Picker) SelectDay(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
}

// Today selects the current date.
func (p *Picker) Today() time.Time {
	return p.SelectDay(p.now())
}

// Grid returns the visible cells for the anchor month.
func (p *Picker) Grid() []Cell {
	return Grid(p.anchor, p.weekStart, p.now())
}

// Title renders the anchor as "January 2025".
func (p *Picker) Title() string {
	return p.anchor.Format("January 2006")
}

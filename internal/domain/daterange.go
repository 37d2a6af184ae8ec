package domain

import (
	"math"
	"time"
)

// DateLayout renders dates as "Jan 02, 2006".
const DateLayout = "Jan 02, 2006"

// DateRange is a check-in/check-out pair. To may be nil for a single-day
// selection; both nil means cleared.
type DateRange struct {
	From *time.Time `json:"from,omitempty"`
	To   *time.Time `json:"to,omitempty"`
}

// NewDateRange builds a complete range from two calendar days.
func NewDateRange(from, to time.Time) DateRange {
	f, t := Day(from), Day(to)
	return DateRange{From: &f, To: &t}
}

// Day truncates t to midnight in its own location.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func (r DateRange) Empty() bool    { return r.From == nil && r.To == nil }
func (r DateRange) Complete() bool { return r.From != nil && r.To != nil }

// Nights is ceil((to − from) in days); ok only when both ends are set.
// Both ends are compared on their wall clocks so a DST shift between them
// does not add or drop a night.
func (r DateRange) Nights() (n int, ok bool) {
	if !r.Complete() {
		return 0, false
	}
	return int(math.Ceil(wallUTC(*r.To).Sub(wallUTC(*r.From)).Hours() / 24)), true
}

func wallUTC(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC)
}

// Normalize swaps a reversed range and moves a lone To into From.
func (r DateRange) Normalize() DateRange {
	out := r.Clone()
	if out.From == nil && out.To != nil {
		out.From, out.To = out.To, nil
	}
	if out.Complete() && out.To.Before(*out.From) {
		out.From, out.To = out.To, out.From
	}
	return out
}

// Format renders both dates, the single date, or placeholder.
func (r DateRange) Format(placeholder string) string {
	switch {
	case r.From == nil:
		return placeholder
	case r.To == nil:
		return r.From.Format(DateLayout)
	}
	return r.From.Format(DateLayout) + " - " + r.To.Format(DateLayout)
}

func (r DateRange) Clone() DateRange {
	var out DateRange
	if r.From != nil {
		f := *r.From
		out.From = &f
	}
	if r.To != nil {
		t := *r.To
		out.To = &t
	}
	return out
}

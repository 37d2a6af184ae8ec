package app

import (
	"time"

	"staybook/internal/domain"
)

const (
	DatePlaceholder = "Select check-in and check-out dates"
	defaultStayDays = 7
)

// DateRangeSelector holds the check-in/check-out pair behind a date picker.
type DateRangeSelector struct {
	Range       domain.DateRange `json:"range"`
	Placeholder string           `json:"placeholder,omitempty"`

	onChange func(domain.DateRange)
}

// NewDateRangeSelector starts from initial, or today..today+7 when initial is nil.
// A non-nil empty initial range stays empty.
func NewDateRangeSelector(initial *domain.DateRange, now time.Time, onChange func(domain.DateRange)) *DateRangeSelector {
	s := &DateRangeSelector{Placeholder: DatePlaceholder, onChange: onChange}
	if initial != nil {
		s.Range = initial.Normalize()
	} else {
		s.Range = domain.NewDateRange(now, now.AddDate(0, 0, defaultStayDays))
	}
	return s
}

func (s *DateRangeSelector) OnChange(fn func(domain.DateRange)) { s.onChange = fn }

// Select stores r (reversed ranges are swapped) and emits it.
func (s *DateRangeSelector) Select(r domain.DateRange) {
	s.Range = r.Normalize()
	s.emit()
}

// Reset clears both ends and emits the empty range.
func (s *DateRangeSelector) Reset() {
	s.Range = domain.DateRange{}
	s.emit()
}

func (s *DateRangeSelector) Display() string {
	p := s.Placeholder
	if p == "" {
		p = DatePlaceholder
	}
	return s.Range.Format(p)
}

func (s *DateRangeSelector) Nights() (int, bool) { return s.Range.Nights() }

func (s *DateRangeSelector) emit() {
	if s.onChange != nil {
		s.onChange(s.Range.Clone())
	}
}

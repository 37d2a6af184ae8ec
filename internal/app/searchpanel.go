package app

import (
	"fmt"
	"strings"

	"staybook/internal/domain"
)

// PopularFilters are the quick-pick chips under the search panel.
var PopularFilters = []string{
	"Free cancellation",
	"Breakfast included",
	"Pool",
	"Pet friendly",
	"Free WiFi",
	"Spa",
}

// SearchPanel collects destination, dates, price and guests. Field changes are
// silent; only Search emits.
type SearchPanel struct {
	Params domain.SearchSnapshot `json:"params"`

	onSearch func(domain.SearchSnapshot)
}

func NewSearchPanel(onSearch func(domain.SearchSnapshot)) *SearchPanel {
	return &SearchPanel{Params: domain.DefaultSearch(), onSearch: onSearch}
}

func (p *SearchPanel) OnSearch(fn func(domain.SearchSnapshot)) { p.onSearch = fn }

func (p *SearchPanel) SetLocation(loc string) { p.Params.Location = strings.TrimSpace(loc) }

func (p *SearchPanel) SetDateRange(r domain.DateRange) { p.Params.DateRange = r.Normalize() }

// DateSelector returns a picker bound to the panel's date range.
func (p *SearchPanel) DateSelector() *DateRangeSelector {
	r := p.Params.DateRange
	s := &DateRangeSelector{Range: r, Placeholder: DatePlaceholder}
	s.OnChange(p.SetDateRange)
	return s
}

func (p *SearchPanel) SetPriceRange(low, high int) {
	p.Params.PriceRange = domain.PriceRange{low, high}.Clamp()
}

func (p *SearchPanel) SetGuests(n int) error {
	if n < domain.MinGuests || n > domain.MaxGuests {
		return fmt.Errorf("guests %d: %w", n, domain.ErrInvalidGuests)
	}
	p.Params.Guests = n
	return nil
}

// Search emits the current snapshot and returns it.
func (p *SearchPanel) Search() domain.SearchSnapshot {
	snap := p.Params.Clone()
	if p.onSearch != nil {
		p.onSearch(snap.Clone())
	}
	return snap
}

// GuestOptions lists the selectable guest counts.
func GuestOptions(max int) []int {
	out := make([]int, 0, max)
	for n := domain.MinGuests; n <= max; n++ {
		out = append(out, n)
	}
	return out
}

// GuestLabel renders "1 Guest" / "n Guests".
func GuestLabel(n int) string {
	if n == 1 {
		return "1 Guest"
	}
	return fmt.Sprintf("%d Guests", n)
}

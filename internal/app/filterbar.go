package app

import (
	"fmt"

	"staybook/internal/domain"
)

// Names reported in the active-filter list.
const (
	FilterPrice    = "price"
	FilterRating   = "rating"
	FilterLocation = "location"
)

// FilterBar is the price/rating/location filter strip above the grid.
// Every mutation emits the full snapshot.
type FilterBar struct {
	Filters domain.FilterSnapshot `json:"filters"`
	Active  []string              `json:"active"`

	onChange func(domain.FilterSnapshot)
}

func NewFilterBar(onChange func(domain.FilterSnapshot)) *FilterBar {
	return &FilterBar{Filters: domain.DefaultFilters(), Active: []string{}, onChange: onChange}
}

func (b *FilterBar) OnChange(fn func(domain.FilterSnapshot)) { b.onChange = fn }

// SetPriceRange clamps to the slider bounds; a reversed pair is swapped.
func (b *FilterBar) SetPriceRange(low, high int) {
	b.Filters.PriceRange = domain.PriceRange{low, high}.Clamp()
	b.markActive(FilterPrice, b.Filters.PriceRange != domain.DefaultPriceRange)
	b.emit()
}

func (b *FilterBar) SetRating(r domain.Rating) error {
	if !r.Valid() {
		return fmt.Errorf("rating %q: %w", r, domain.ErrInvalidFilter)
	}
	b.Filters.Rating = r
	b.markActive(FilterRating, r != domain.RatingAny)
	b.emit()
	return nil
}

func (b *FilterBar) SetLocation(l domain.LocationCategory) error {
	if !l.Valid() {
		return fmt.Errorf("location %q: %w", l, domain.ErrInvalidFilter)
	}
	b.Filters.Location = l
	b.markActive(FilterLocation, l != domain.LocationAny)
	b.emit()
	return nil
}

// ClearAll restores every default and emits once.
func (b *FilterBar) ClearAll() {
	b.Filters = domain.DefaultFilters()
	b.Active = []string{}
	b.emit()
}

func (b *FilterBar) Snapshot() domain.FilterSnapshot { return b.Filters.Clone() }

func (b *FilterBar) ActiveFilters() []string { return append([]string{}, b.Active...) }

func (b *FilterBar) markActive(name string, active bool) {
	idx := -1
	for i, f := range b.Active {
		if f == name {
			idx = i
			break
		}
	}
	switch {
	case active && idx < 0:
		b.Active = append(b.Active, name)
	case !active && idx >= 0:
		b.Active = append(b.Active[:idx:idx], b.Active[idx+1:]...)
	}
}

func (b *FilterBar) emit() {
	if b.onChange != nil {
		b.onChange(b.Snapshot())
	}
}

package app

import (
	"strings"

	"staybook/internal/catalog"
	"staybook/internal/domain"
)

// SkeletonSlots is the number of placeholder cards shown while loading.
const SkeletonSlots = 6

const (
	EmptyTitle = "No hotels found"
	EmptyHint  = "Try adjusting your search or filter criteria"
)

// HotelGrid owns the displayed hotel list, the free-text query box and the
// collapsible filter bar. Search and filter events are forwarded to the
// parent; the list itself is only narrowed when ApplyFilters is set.
type HotelGrid struct {
	ShowFilters bool       `json:"showFilters"`
	Query       string     `json:"query"`
	Bar         *FilterBar `json:"filterBar"`

	ApplyFilters bool `json:"-"`

	hotels         []domain.Hotel
	onSearch       func(string)
	onFilterChange func(domain.FilterSnapshot)
}

func NewHotelGrid(initial []domain.Hotel) *HotelGrid {
	g := &HotelGrid{Bar: NewFilterBar(nil)}
	g.SetInitial(initial)
	return g
}

// SetInitial replaces the list; nil falls back to the built-in samples.
func (g *HotelGrid) SetInitial(hotels []domain.Hotel) {
	if hotels == nil {
		g.hotels = catalog.SampleHotels()
		return
	}
	g.hotels = append([]domain.Hotel(nil), hotels...)
}

func (g *HotelGrid) Hotels() []domain.Hotel { return append([]domain.Hotel(nil), g.hotels...) }

func (g *HotelGrid) OnSearch(fn func(string)) { g.onSearch = fn }

func (g *HotelGrid) OnFilterChange(fn func(domain.FilterSnapshot)) {
	g.onFilterChange = fn
	g.Filters().OnChange(g.forwardFilters)
}

// Filters returns the grid's filter bar, creating it after a session restore.
func (g *HotelGrid) Filters() *FilterBar {
	if g.Bar == nil {
		g.Bar = NewFilterBar(nil)
	}
	if g.Bar.Active == nil {
		g.Bar.Active = []string{}
	}
	g.Bar.OnChange(g.forwardFilters)
	return g.Bar
}

func (g *HotelGrid) forwardFilters(f domain.FilterSnapshot) {
	if g.onFilterChange != nil {
		g.onFilterChange(f)
	}
}

// Search records the query and forwards it unmodified.
func (g *HotelGrid) Search(query string) {
	g.Query = strings.TrimSpace(query)
	if g.onSearch != nil {
		g.onSearch(g.Query)
	}
}

func (g *HotelGrid) ToggleFilters() bool {
	g.ShowFilters = !g.ShowFilters
	return g.ShowFilters
}

type HotelCard struct {
	domain.Hotel
	HasDiscount   bool   `json:"hasDiscount"`
	OriginalPrice int    `json:"originalPrice,omitempty"`
	DetailURL     string `json:"detailUrl"`
}

func NewHotelCard(h domain.Hotel) HotelCard {
	c := HotelCard{Hotel: h, DetailURL: "/view-details/" + h.ID}
	if p, ok := h.OriginalPrice(); ok {
		c.HasDiscount, c.OriginalPrice = true, p
	}
	return c
}

type GridView struct {
	Loading       bool                  `json:"loading"`
	Skeletons     int                   `json:"skeletons"`
	Cards         []HotelCard           `json:"cards"`
	Empty         bool                  `json:"empty"`
	ShowFilters   bool                  `json:"showFilters"`
	Query         string                `json:"query"`
	Filters       domain.FilterSnapshot `json:"filters"`
	ActiveFilters []string              `json:"activeFilters"`
	Filtered      bool                  `json:"filtered"`
}

// View renders the grid: skeletons while loading, otherwise one card per
// record, otherwise the empty state.
func (g *HotelGrid) View(loading bool) GridView {
	bar := g.Filters()
	v := GridView{
		Loading:       loading,
		ShowFilters:   g.ShowFilters,
		Query:         g.Query,
		Filters:       bar.Snapshot(),
		ActiveFilters: bar.ActiveFilters(),
		Cards:         []HotelCard{},
		Filtered:      g.ApplyFilters,
	}
	if loading {
		v.Skeletons = SkeletonSlots
		return v
	}
	for _, h := range g.hotels {
		if g.ApplyFilters && !MatchHotel(h, v.Filters, g.Query) {
			continue
		}
		v.Cards = append(v.Cards, NewHotelCard(h))
	}
	v.Empty = len(v.Cards) == 0
	return v
}

// MatchHotel reports whether h satisfies the filter snapshot and the free-text
// query (case-insensitive match on name or location).
func MatchHotel(h domain.Hotel, f domain.FilterSnapshot, query string) bool {
	if !f.PriceRange.Contains(h.Price) {
		return false
	}
	if min, ok := f.Rating.Threshold(); ok && h.Rating < min {
		return false
	}
	if f.Location != "" && f.Location != domain.LocationAny && h.Category != f.Location {
		return false
	}
	for _, want := range f.Amenities {
		if !hasAmenity(h, want) {
			return false
		}
	}
	if q := strings.ToLower(strings.TrimSpace(query)); q != "" {
		if !strings.Contains(strings.ToLower(h.Name), q) && !strings.Contains(strings.ToLower(h.Location), q) {
			return false
		}
	}
	return true
}

func hasAmenity(h domain.Hotel, label string) bool {
	for _, a := range h.Amenities {
		if strings.EqualFold(a.Label, label) {
			return true
		}
	}
	return false
}

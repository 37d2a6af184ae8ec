package domain

import "fmt"

// Price slider bounds shared by the filter bar and the search panel.
const (
	PriceFloor   = 0
	PriceCeiling = 1000
	PriceStep    = 10
)

// PriceRange is a [low, high] pair; it encodes as a two-element JSON array.
type PriceRange [2]int

var DefaultPriceRange = PriceRange{50, 500}

func (p PriceRange) Low() int  { return p[0] }
func (p PriceRange) High() int { return p[1] }

// Clamp pins both bounds to the slider range and swaps a reversed pair.
func (p PriceRange) Clamp() PriceRange {
	lo, hi := clampInt(p[0], PriceFloor, PriceCeiling), clampInt(p[1], PriceFloor, PriceCeiling)
	if lo > hi {
		lo, hi = hi, lo
	}
	return PriceRange{lo, hi}
}

func (p PriceRange) Contains(price float64) bool {
	return price >= float64(p[0]) && price <= float64(p[1])
}

func (p PriceRange) String() string { return fmt.Sprintf("$%d - $%d", p[0], p[1]) }

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Rating is the minimum-stars filter.
type Rating string

const (
	RatingAny   Rating = "any"
	RatingThree Rating = "3"
	RatingFour  Rating = "4"
	RatingFive  Rating = "5"
)

var Ratings = []Rating{RatingAny, RatingFive, RatingFour, RatingThree}

func (r Rating) Valid() bool {
	switch r {
	case RatingAny, RatingThree, RatingFour, RatingFive:
		return true
	}
	return false
}

// Threshold returns the minimum star value; ok is false for "any".
func (r Rating) Threshold() (min float64, ok bool) {
	switch r {
	case RatingThree:
		return 3, true
	case RatingFour:
		return 4, true
	case RatingFive:
		return 5, true
	}
	return 0, false
}

func (r Rating) Label() string {
	switch r {
	case RatingFive:
		return "5 Stars"
	case RatingFour:
		return "4+ Stars"
	case RatingThree:
		return "3+ Stars"
	}
	return "Any Rating"
}

type LocationCategory string

const (
	LocationAny        LocationCategory = "any"
	LocationDowntown   LocationCategory = "downtown"
	LocationBeachfront LocationCategory = "beachfront"
	LocationSuburban   LocationCategory = "suburban"
	LocationMountain   LocationCategory = "mountain"
)

var LocationCategories = []LocationCategory{
	LocationAny, LocationDowntown, LocationBeachfront, LocationSuburban, LocationMountain,
}

func (l LocationCategory) Valid() bool {
	for _, c := range LocationCategories {
		if c == l {
			return true
		}
	}
	return false
}

func (l LocationCategory) Label() string {
	switch l {
	case LocationDowntown:
		return "Downtown"
	case LocationBeachfront:
		return "Beachfront"
	case LocationSuburban:
		return "Suburban"
	case LocationMountain:
		return "Mountain"
	}
	return "Any Location"
}

// FilterSnapshot is the full filter bar state at one instant.
type FilterSnapshot struct {
	PriceRange PriceRange       `json:"priceRange"`
	Rating     Rating           `json:"rating"`
	Amenities  []string         `json:"amenities"`
	Location   LocationCategory `json:"location"`
}

func DefaultFilters() FilterSnapshot {
	return FilterSnapshot{
		PriceRange: DefaultPriceRange,
		Rating:     RatingAny,
		Amenities:  []string{},
		Location:   LocationAny,
	}
}

// Clone copies the amenity slice so the snapshot can be handed out safely.
func (f FilterSnapshot) Clone() FilterSnapshot {
	out := f
	out.Amenities = append([]string{}, f.Amenities...)
	return out
}

// Guest-count bounds of the search panel select.
const (
	MinGuests     = 1
	MaxGuests     = 8
	DefaultGuests = 2
)

// SearchSnapshot is what the search panel emits on submit.
type SearchSnapshot struct {
	Location   string     `json:"location"`
	DateRange  DateRange  `json:"dateRange"`
	PriceRange PriceRange `json:"priceRange"`
	Guests     int        `json:"guests"`
}

func DefaultSearch() SearchSnapshot {
	return SearchSnapshot{PriceRange: DefaultPriceRange, Guests: DefaultGuests}
}

func (s SearchSnapshot) Clone() SearchSnapshot {
	out := s
	out.DateRange = s.DateRange.Clone()
	return out
}

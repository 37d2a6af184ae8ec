package domain

type Amenity struct {
	Icon  string `json:"icon"` // icon key, e.g. wifi|coffee|pool
	Label string `json:"label"`
}

// Hotel is a listing card record.
type Hotel struct {
	ID        string           `json:"id"`
	Name      string           `json:"name"`
	Image     string           `json:"image"`
	Location  string           `json:"location"`
	Category  LocationCategory `json:"category"`
	Price     float64          `json:"price"`  // nightly
	Rating    float64          `json:"rating"` // 0..5
	Amenities []Amenity        `json:"amenities"`
	Discount  *int             `json:"discount,omitempty"` // percent
}

// DiscountPercent returns the discount or 0 when the record has none.
func (h Hotel) DiscountPercent() int {
	if h.Discount == nil {
		return 0
	}
	return *h.Discount
}

// OriginalPrice is the pre-discount price shown struck through on cards.
// ok is false when the hotel carries no discount.
func (h Hotel) OriginalPrice() (price int, ok bool) {
	d := h.DiscountPercent()
	if d <= 0 {
		return 0, false
	}
	return OriginalPrice(h.Price, d), true
}

type HotelDetail struct {
	Hotel
	ReviewCount int      `json:"reviewCount"`
	Description string   `json:"description"`
	Images      []string `json:"images"`
	Rooms       []Room   `json:"rooms"`
	Reviews     []Review `json:"reviews"`
}

// Gallery returns the photo list, falling back to the card image.
func (d HotelDetail) Gallery() []string {
	if len(d.Images) > 0 {
		return d.Images
	}
	if d.Image != "" {
		return []string{d.Image}
	}
	return nil
}

type Room struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Price    float64  `json:"price"`
	Discount int      `json:"discount"`
	Image    string   `json:"image"`
	Capacity int      `json:"capacity"`
	Beds     string   `json:"beds"`
	Size     string   `json:"size"`
	Features []string `json:"features"`
}

// NightlyPrice is the price after discount, rounded to whole units.
func (r Room) NightlyPrice() int {
	return DiscountedPrice(r.Price, r.Discount)
}

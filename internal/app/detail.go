package app

import (
	"fmt"
	"math"
	"time"

	"staybook/internal/catalog"
	"staybook/internal/domain"
)

const (
	// BookingNights is the fixed stay length used by the booking summary.
	BookingNights   = 5
	DetailMaxGuests = 6
	detailStayDays  = 5
)

// DetailPage is the per-visitor state of the hotel detail/booking view.
type DetailPage struct {
	HotelID     string           `json:"hotelId"`
	ActivePhoto int              `json:"activePhoto"`
	Dates       domain.DateRange `json:"dates"`
	Guests      int              `json:"guests"`
}

func NewDetailPage(hotelID string, now time.Time) *DetailPage {
	return &DetailPage{
		HotelID: hotelID,
		Dates:   domain.NewDateRange(now, now.AddDate(0, 0, detailStayDays)),
		Guests:  domain.DefaultGuests,
	}
}

// NextPhoto advances the gallery, wrapping to 0 after the last photo.
func (p *DetailPage) NextPhoto(count int) int {
	if count <= 0 {
		p.ActivePhoto = 0
		return 0
	}
	p.ActivePhoto = (p.clampPhoto(count) + 1) % count
	return p.ActivePhoto
}

// PrevPhoto steps back, wrapping from 0 to the last photo.
func (p *DetailPage) PrevPhoto(count int) int {
	if count <= 0 {
		p.ActivePhoto = 0
		return 0
	}
	p.ActivePhoto = (p.clampPhoto(count) - 1 + count) % count
	return p.ActivePhoto
}

func (p *DetailPage) clampPhoto(count int) int {
	if p.ActivePhoto < 0 || p.ActivePhoto >= count {
		return 0
	}
	return p.ActivePhoto
}

func (p *DetailPage) SetDates(r domain.DateRange) { p.Dates = r.Normalize() }

// DateSelector returns a picker bound to the booking dates.
func (p *DetailPage) DateSelector() *DateRangeSelector {
	s := &DateRangeSelector{Range: p.Dates, Placeholder: DatePlaceholder}
	s.OnChange(p.SetDates)
	return s
}

func (p *DetailPage) SetGuests(n int) error {
	if n < domain.MinGuests || n > DetailMaxGuests {
		return fmt.Errorf("guests %d: %w", n, domain.ErrInvalidGuests)
	}
	p.Guests = n
	return nil
}

// BookingSummary mirrors the booking widget lines. Each line is rounded on its
// own, so Subtotal − Discount + Taxes may differ from Total; Reconciles says
// whether it does.
type BookingSummary struct {
	NightlyRate     float64 `json:"nightlyRate"`
	Nights          int     `json:"nights"`
	DiscountPercent int     `json:"discountPercent"`
	Subtotal        int     `json:"subtotal"`
	Discount        int     `json:"discount"`
	Taxes           int     `json:"taxes"`
	Total           int     `json:"total"`
	Reconciles      bool    `json:"reconciles"`
}

func Summarize(h domain.Hotel) BookingSummary {
	price := h.Price
	d := float64(h.DiscountPercent())
	n := float64(BookingNights)

	s := BookingSummary{
		NightlyRate:     price,
		Nights:          BookingNights,
		DiscountPercent: h.DiscountPercent(),
		Subtotal:        int(math.Round(price * n)),
		Discount:        int(math.Round(price*d/100)) * BookingNights,
		Taxes:           int(math.Round(price*domain.TaxRate)) * BookingNights,
		Total:           int(math.Round(price*(1-d/100)*n + price*domain.TaxRate*n)),
	}
	s.Reconciles = s.Subtotal-s.Discount+s.Taxes == s.Total
	return s
}

type RoomView struct {
	domain.Room
	NightlyPrice int  `json:"nightlyPrice"`
	HasDiscount  bool `json:"hasDiscount"`
}

type DetailView struct {
	Hotel         domain.HotelDetail `json:"hotel"`
	ActivePhoto   int                `json:"activePhoto"`
	Photo         string             `json:"photo"`
	Thumbnails    []string           `json:"thumbnails"`
	OriginalPrice int                `json:"originalPrice,omitempty"`
	Rooms         []RoomView         `json:"rooms"`
	DatesLabel    string             `json:"datesLabel"`
	Nights        int                `json:"nights,omitempty"`
	Guests        int                `json:"guests"`
	GuestOptions  []int              `json:"guestOptions"`
	Summary       BookingSummary     `json:"summary"`
	AmenityGroups []AmenityGroup     `json:"amenityGroups"`
}

type AmenityGroup struct {
	Title string   `json:"title"`
	Items []string `json:"items"`
}

func (p *DetailPage) View(h domain.HotelDetail) DetailView {
	gallery := h.Gallery()
	v := DetailView{
		Hotel:        h,
		Rooms:        make([]RoomView, 0, len(h.Rooms)),
		DatesLabel:   p.Dates.Format(DatePlaceholder),
		Guests:       p.Guests,
		GuestOptions: GuestOptions(DetailMaxGuests),
		Summary:      Summarize(h.Hotel),
	}
	if len(gallery) > 0 {
		v.ActivePhoto = p.clampPhoto(len(gallery))
		v.Photo = gallery[v.ActivePhoto]
		// up to three thumbnails after the lead photo
		end := len(gallery)
		if end > 4 {
			end = 4
		}
		v.Thumbnails = append([]string{}, gallery[1:end]...)
	}
	if op, ok := h.OriginalPrice(); ok {
		v.OriginalPrice = op
	}
	if n, ok := p.Dates.Nights(); ok {
		v.Nights = n
	}
	for _, r := range h.Rooms {
		v.Rooms = append(v.Rooms, RoomView{Room: r, NightlyPrice: r.NightlyPrice(), HasDiscount: r.Discount > 0})
	}
	for _, g := range catalog.AmenityGroups {
		v.AmenityGroups = append(v.AmenityGroups, AmenityGroup{Title: g.Title, Items: append([]string{}, g.Items...)})
	}
	return v
}

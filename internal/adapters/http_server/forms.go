package httpserver

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"staybook/internal/app"
	"staybook/internal/domain"
)

const formDateLayout = "2006-01-02"

var errInvalidInput = errors.New("invalid input")

var validate = validator.New()

// check runs struct validation and flattens the failures into one error.
func check(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", errInvalidInput, err)
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		if fe.Param() != "" {
			parts = append(parts, fmt.Sprintf("%s must satisfy %s=%s", strings.ToLower(fe.Field()), fe.Tag(), fe.Param()))
		} else {
			parts = append(parts, fmt.Sprintf("%s must satisfy %s", strings.ToLower(fe.Field()), fe.Tag()))
		}
	}
	return fmt.Errorf("%w: %s", errInvalidInput, strings.Join(parts, "; "))
}

func optInt(vals url.Values, key string) (*int, error) {
	s := strings.TrimSpace(vals.Get(key))
	if s == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %s must be an integer", errInvalidInput, key)
	}
	return &n, nil
}

func parseDay(s string, loc *time.Location) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.ParseInLocation(formDateLayout, s, loc)
	if err != nil {
		return nil, fmt.Errorf("date %q: %w", s, domain.ErrInvalidDate)
	}
	return &t, nil
}

func dateRange(from, to string, loc *time.Location) (domain.DateRange, error) {
	f, err := parseDay(from, loc)
	if err != nil {
		return domain.DateRange{}, err
	}
	t, err := parseDay(to, loc)
	if err != nil {
		return domain.DateRange{}, err
	}
	return domain.DateRange{From: f, To: t}, nil
}

// formDate renders a date for an <input type="date"> value.
func formDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(formDateLayout)
}

// ---- search panel ----

type searchForm struct {
	Location string `json:"location" validate:"max=120"`
	From     string `json:"from" validate:"omitempty,datetime=2006-01-02"`
	To       string `json:"to" validate:"omitempty,datetime=2006-01-02"`
	MinPrice *int   `json:"minPrice" validate:"omitempty,gte=0,lte=1000"`
	MaxPrice *int   `json:"maxPrice" validate:"omitempty,gte=0,lte=1000"`
	Guests   int    `json:"guests" validate:"omitempty,min=1,max=8"`
}

func (f *searchForm) decode(r *http.Request) error {
	if err := r.ParseForm(); err != nil {
		return fmt.Errorf("%w: %v", errInvalidInput, err)
	}
	f.Location = r.PostForm.Get("location")
	f.From = r.PostForm.Get("from")
	f.To = r.PostForm.Get("to")
	var err error
	if f.MinPrice, err = optInt(r.PostForm, "min_price"); err != nil {
		return err
	}
	if f.MaxPrice, err = optInt(r.PostForm, "max_price"); err != nil {
		return err
	}
	g, err := optInt(r.PostForm, "guests")
	if err != nil {
		return err
	}
	if g != nil {
		f.Guests = *g
	}
	return nil
}

// apply copies the form into p and submits it. Nothing is emitted when the
// form is invalid.
func (f *searchForm) apply(p *app.SearchPanel, now time.Time) (domain.SearchSnapshot, error) {
	if err := check(f); err != nil {
		return domain.SearchSnapshot{}, err
	}
	dr, err := dateRange(f.From, f.To, now.Location())
	if err != nil {
		return domain.SearchSnapshot{}, err
	}
	if f.Guests != 0 {
		if err := p.SetGuests(f.Guests); err != nil {
			return domain.SearchSnapshot{}, err
		}
	}
	p.SetLocation(f.Location)
	p.SetDateRange(dr)
	if f.MinPrice != nil || f.MaxPrice != nil {
		low, high := p.Params.PriceRange.Low(), p.Params.PriceRange.High()
		if f.MinPrice != nil {
			low = *f.MinPrice
		}
		if f.MaxPrice != nil {
			high = *f.MaxPrice
		}
		p.SetPriceRange(low, high)
	}
	return p.Search(), nil
}

// ---- grid ----

type gridQuery struct {
	Query    string `validate:"max=120"`
	MinPrice *int   `validate:"omitempty,gte=0,lte=1000"`
	MaxPrice *int   `validate:"omitempty,gte=0,lte=1000"`
	Rating   string `validate:"max=8"`
	Location string `validate:"max=32"`
	Loading  bool
}

func (q *gridQuery) decode(r *http.Request) error {
	vals := r.URL.Query()
	q.Query = strings.TrimSpace(vals.Get("q"))
	q.Rating = vals.Get("rating")
	q.Location = vals.Get("location")
	var err error
	if q.MinPrice, err = optInt(vals, "min"); err != nil {
		return err
	}
	if q.MaxPrice, err = optInt(vals, "max"); err != nil {
		return err
	}
	if s := vals.Get("loading"); s != "" {
		if q.Loading, err = strconv.ParseBool(s); err != nil {
			return fmt.Errorf("%w: loading must be a boolean", errInvalidInput)
		}
	}
	return check(q)
}

func (q gridQuery) narrows() bool {
	return q.Query != "" || q.MinPrice != nil || q.MaxPrice != nil || q.Rating != "" || q.Location != ""
}

// ---- filter bar ----

type filterForm struct {
	Field    string `validate:"required,oneof=price rating location"`
	Value    string `validate:"max=32"`
	MinPrice *int   `validate:"omitempty,gte=0,lte=1000"`
	MaxPrice *int   `validate:"omitempty,gte=0,lte=1000"`
}

func (f *filterForm) decode(r *http.Request) error {
	if err := r.ParseForm(); err != nil {
		return fmt.Errorf("%w: %v", errInvalidInput, err)
	}
	f.Field = r.PostForm.Get("field")
	f.Value = r.PostForm.Get("value")
	var err error
	if f.MinPrice, err = optInt(r.PostForm, "min_price"); err != nil {
		return err
	}
	if f.MaxPrice, err = optInt(r.PostForm, "max_price"); err != nil {
		return err
	}
	return check(f)
}

func (f *filterForm) apply(b *app.FilterBar) error {
	switch f.Field {
	case app.FilterPrice:
		low, high := b.Filters.PriceRange.Low(), b.Filters.PriceRange.High()
		if f.MinPrice != nil {
			low = *f.MinPrice
		}
		if f.MaxPrice != nil {
			high = *f.MaxPrice
		}
		b.SetPriceRange(low, high)
		return nil
	case app.FilterRating:
		return b.SetRating(domain.Rating(f.Value))
	case app.FilterLocation:
		return b.SetLocation(domain.LocationCategory(f.Value))
	}
	return fmt.Errorf("field %q: %w", f.Field, domain.ErrInvalidFilter)
}

// ---- detail page ----

type photoForm struct {
	Dir string `validate:"required,oneof=next prev"`
}

type bookingForm struct {
	From   string `validate:"omitempty,datetime=2006-01-02"`
	To     string `validate:"omitempty,datetime=2006-01-02"`
	Guests int    `validate:"omitempty,min=1,max=6"`
}

func (f *bookingForm) decode(r *http.Request) error {
	if err := r.ParseForm(); err != nil {
		return fmt.Errorf("%w: %v", errInvalidInput, err)
	}
	f.From = r.PostForm.Get("from")
	f.To = r.PostForm.Get("to")
	g, err := optInt(r.PostForm, "guests")
	if err != nil {
		return err
	}
	if g != nil {
		f.Guests = *g
	}
	return check(f)
}

func (f *bookingForm) apply(p *app.DetailPage, now time.Time) error {
	dr, err := dateRange(f.From, f.To, now.Location())
	if err != nil {
		return err
	}
	if f.Guests != 0 {
		if err := p.SetGuests(f.Guests); err != nil {
			return err
		}
	}
	if !dr.Empty() {
		p.DateSelector().Select(dr)
	}
	return nil
}

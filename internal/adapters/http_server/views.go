package httpserver

import (
	"html/template"

	"staybook/internal/app"
	"staybook/internal/domain"
	"staybook/internal/theme"
)

type navLink struct {
	Label string
	Href  string
}

var navLinks = []navLink{
	{Label: "Home", Href: "/"},
	{Label: "Hotels", Href: "/#hotels"},
	{Label: "Flights", Href: "#"},
	{Label: "Packages", Href: "#"},
	{Label: "Deals", Href: "#"},
}

type option struct {
	Value    string
	Label    string
	Selected bool
}

// pageData is what the layout template renders around a page body.
type pageData struct {
	Title    string
	ThemeCSS template.CSS
	Nav      []navLink
	Hero     bool
	Body     any
}

func newPageData(t theme.Theme, title string, hero bool, body any) pageData {
	return pageData{
		Title:    title,
		ThemeCSS: template.CSS(t.CSS()),
		Nav:      navLinks,
		Hero:     hero,
		Body:     body,
	}
}

type dateRangeView struct {
	Label       string
	From        string
	To          string
	Nights      int
	HasNights   bool
	ResetAction string
}

func newDateRangeView(s *app.DateRangeSelector, resetAction string) dateRangeView {
	v := dateRangeView{
		Label:       s.Display(),
		From:        formDate(s.Range.From),
		To:          formDate(s.Range.To),
		ResetAction: resetAction,
	}
	v.Nights, v.HasNights = s.Nights()
	return v
}

type filterBarView struct {
	Filters      domain.FilterSnapshot
	Active       []string
	PriceLabel   string
	PriceFloor   int
	PriceCeiling int
	PriceStep    int
	Ratings      []option
	Locations    []option
}

func newFilterBarView(b *app.FilterBar) filterBarView {
	f := b.Snapshot()
	v := filterBarView{
		Filters:      f,
		Active:       b.ActiveFilters(),
		PriceLabel:   f.PriceRange.String(),
		PriceFloor:   domain.PriceFloor,
		PriceCeiling: domain.PriceCeiling,
		PriceStep:    domain.PriceStep,
	}
	for _, r := range domain.Ratings {
		v.Ratings = append(v.Ratings, option{Value: string(r), Label: r.Label(), Selected: r == f.Rating})
	}
	for _, l := range domain.LocationCategories {
		v.Locations = append(v.Locations, option{Value: string(l), Label: l.Label(), Selected: l == f.Location})
	}
	return v
}

type searchPanelView struct {
	Location       string
	Dates          dateRangeView
	Price          domain.PriceRange
	PriceLabel     string
	Guests         int
	GuestOptions   []option
	PopularFilters []string
	LastSearch     *domain.SearchSnapshot
}

func newSearchPanelView(p *app.SearchPanel, last *domain.SearchSnapshot) searchPanelView {
	return searchPanelView{
		Location:       p.Params.Location,
		Dates:          newDateRangeView(p.DateSelector(), "/search/dates/reset"),
		Price:          p.Params.PriceRange,
		PriceLabel:     p.Params.PriceRange.String(),
		Guests:         p.Params.Guests,
		GuestOptions:   guestOptions(domain.MaxGuests, p.Params.Guests),
		PopularFilters: app.PopularFilters,
		LastSearch:     last,
	}
}

func guestOptions(max, selected int) []option {
	var out []option
	for _, n := range app.GuestOptions(max) {
		out = append(out, option{Value: itoa(n), Label: app.GuestLabel(n), Selected: n == selected})
	}
	return out
}

type gridView struct {
	app.GridView
	Bar        filterBarView
	Slots      []int
	EmptyTitle string
	EmptyHint  string
}

func newGridView(g *app.HotelGrid, loading bool) gridView {
	v := gridView{
		GridView:   g.View(loading),
		Bar:        newFilterBarView(g.Filters()),
		EmptyTitle: app.EmptyTitle,
		EmptyHint:  app.EmptyHint,
	}
	for i := 0; i < v.Skeletons; i++ {
		v.Slots = append(v.Slots, i)
	}
	return v
}

type homeView struct {
	Search searchPanelView
	Grid   gridView
}

type detailPageView struct {
	app.DetailView
	Dates        dateRangeView
	GuestChoices []option
	PhotoCount   int
	BaseURL      string
}

func newDetailPageView(p *app.DetailPage, hd domain.HotelDetail) detailPageView {
	v := detailPageView{
		DetailView:   p.View(hd),
		Dates:        newDateRangeView(p.DateSelector(), ""),
		GuestChoices: guestOptions(app.DetailMaxGuests, p.Guests),
		PhotoCount:   len(hd.Gallery()),
		BaseURL:      "/view-details/" + hd.ID,
	}
	return v
}

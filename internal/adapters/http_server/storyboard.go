package httpserver

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"staybook/internal/app"
	"staybook/internal/catalog"
	"staybook/internal/domain"
)

type storyboardEntry struct {
	Slug  string
	Title string
}

var storyboardEntries = []storyboardEntry{
	{Slug: "layout", Title: "Layout shell"},
	{Slug: "date-range", Title: "Date range selector"},
	{Slug: "filter-bar", Title: "Filter bar"},
	{Slug: "search-panel", Title: "Search panel"},
	{Slug: "hotel-grid", Title: "Hotel grid"},
	{Slug: "hotel-grid-loading", Title: "Hotel grid (loading)"},
	{Slug: "hotel-grid-empty", Title: "Hotel grid (empty)"},
	{Slug: "hotel-detail", Title: "Hotel detail"},
}

type storyboardView struct {
	Components []storyboardEntry
	Title      string
	Layout     bool
	DateRange  *dateRangeView
	FilterBar  *filterBarView
	Search     *searchPanelView
	Grid       *gridView
	Detail     *detailPageView
}

// MountStoryboard adds the component gallery. Each component renders from its
// default state; nothing is read from or written to the session.
func (s *Server) MountStoryboard(p *Pages) {
	s.mux.Get("/storyboard/", p.storyboardIndex)
	s.mux.Get("/storyboard/{component}", p.storyboard)
}

func (p *Pages) storyboardIndex(w http.ResponseWriter, r *http.Request) {
	p.r.render(w, http.StatusOK, "storyboard",
		newPageData(p.theme, "Storyboard", false, storyboardView{Components: storyboardEntries}))
}

func (p *Pages) storyboard(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "component")
	v := storyboardView{Components: storyboardEntries}
	for _, e := range storyboardEntries {
		if e.Slug == slug {
			v.Title = e.Title
		}
	}
	if v.Title == "" {
		writeProblem(w, http.StatusNotFound, "Not Found", "unknown component "+slug)
		return
	}

	now := p.sessions.Now()
	hero := false
	switch slug {
	case "layout":
		v.Layout, hero = true, true
	case "date-range":
		dv := newDateRangeView(app.NewDateRangeSelector(nil, now, nil), "")
		v.DateRange = &dv
	case "filter-bar":
		fv := newFilterBarView(app.NewFilterBar(nil))
		v.FilterBar = &fv
	case "search-panel":
		sv := newSearchPanelView(app.NewSearchPanel(nil), nil)
		v.Search = &sv
	case "hotel-grid", "hotel-grid-loading":
		g := app.NewHotelGrid(nil)
		g.ShowFilters = true
		gv := newGridView(g, slug == "hotel-grid-loading")
		v.Grid = &gv
	case "hotel-grid-empty":
		gv := newGridView(app.NewHotelGrid([]domain.Hotel{}), false)
		v.Grid = &gv
	case "hotel-detail":
		hd, err := p.q.GetHotel(r.Context(), catalog.FeaturedID)
		if err != nil {
			writeError(w, err)
			return
		}
		dv := newDetailPageView(app.NewDetailPage(hd.ID, now), hd)
		v.Detail = &dv
	}
	p.r.render(w, http.StatusOK, "storyboard", newPageData(p.theme, v.Title, hero, v))
}

package httpserver

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"staybook/internal/adapters/observability"
	"staybook/internal/app"
	"staybook/internal/domain"
	"staybook/internal/theme"
)

const sessionCookie = "sid"

// Pages serves the HTML site. Each request loads the visitor's session,
// wires the component callbacks, applies one mutation and saves it back.
type Pages struct {
	q            *app.QueryService
	sessions     *app.SessionService
	theme        theme.Theme
	applyFilters bool
	secureCookie bool
	r            *renderer
}

type PagesConfig struct {
	Queries      *app.QueryService
	Sessions     *app.SessionService
	Theme        theme.Theme
	ApplyFilters bool
	SecureCookie bool
}

func NewPages(c PagesConfig) (*Pages, error) {
	rd, err := newRenderer()
	if err != nil {
		return nil, err
	}
	return &Pages{
		q:            c.Queries,
		sessions:     c.Sessions,
		theme:        c.Theme,
		applyFilters: c.ApplyFilters,
		secureCookie: c.SecureCookie,
		r:            rd,
	}, nil
}

func (s *Server) MountPages(p *Pages) {
	s.mux.Get("/", p.home)
	s.mux.Get("/hotels/{id}", p.detail)
	s.mux.Get("/view-details/{id}", p.detail)

	s.mux.Post("/search", p.submitSearch)
	s.mux.Post("/search/dates/reset", p.resetSearchDates)
	s.mux.Post("/grid/search", p.gridSearch)
	s.mux.Post("/filters", p.setFilter)
	s.mux.Post("/filters/clear", p.clearFilters)
	s.mux.Post("/filters/toggle", p.toggleFilters)
	s.mux.Post("/view-details/{id}/photo", p.movePhoto)
	s.mux.Post("/view-details/{id}/booking", p.updateBooking)
}

// ---- session plumbing ----

func (p *Pages) session(w http.ResponseWriter, r *http.Request) *app.Session {
	var id string
	if c, err := r.Cookie(sessionCookie); err == nil {
		if _, err := uuid.Parse(c.Value); err == nil {
			id = c.Value
		}
	}
	if id == "" {
		id = uuid.NewString()
		http.SetCookie(w, &http.Cookie{
			Name:     sessionCookie,
			Value:    id,
			Path:     "/",
			HttpOnly: true,
			Secure:   p.secureCookie,
			SameSite: http.SameSiteLaxMode,
		})
	}
	sess := p.sessions.Load(r.Context(), id)
	p.wire(sess)
	return sess
}

// wire connects the component callbacks to this handler, the parent that
// receives their events.
func (p *Pages) wire(sess *app.Session) {
	sess.Grid.ApplyFilters = p.applyFilters
	sess.Search.OnSearch(func(s domain.SearchSnapshot) {
		sess.LastSearch = &s
		observability.ObserveUIEvent("searchpanel", "search")
		log.Info().
			Str("session", sess.ID).
			Str("location", s.Location).
			Str("dates", s.DateRange.Format("")).
			Str("price", s.PriceRange.String()).
			Int("guests", s.Guests).
			Msg("search submitted")
	})
	sess.Grid.OnSearch(func(q string) {
		observability.ObserveUIEvent("grid", "search")
		log.Info().Str("session", sess.ID).Str("query", q).Msg("grid search")
	})
	sess.Grid.OnFilterChange(func(f domain.FilterSnapshot) {
		sess.LastFilters = &f
		observability.ObserveUIEvent("filterbar", "change")
		log.Info().
			Str("session", sess.ID).
			Str("price", f.PriceRange.String()).
			Str("rating", string(f.Rating)).
			Str("location", string(f.Location)).
			Msg("filters changed")
	})
}

func (p *Pages) save(ctx context.Context, sess *app.Session) {
	if err := p.sessions.Save(ctx, sess); err != nil {
		log.Warn().Err(err).Str("session", sess.ID).Msg("session save failed")
	}
}

func seeOther(w http.ResponseWriter, r *http.Request, to string) {
	http.Redirect(w, r, to, http.StatusSeeOther)
}

// ---- landing page ----

func (p *Pages) home(w http.ResponseWriter, r *http.Request) {
	var in gridQuery
	if err := in.decode(r); err != nil {
		writeError(w, err)
		return
	}
	ctx := r.Context()
	sess := p.session(w, r)

	hotels, err := p.q.ListHotels(ctx)
	if err != nil {
		log.Error().Err(err).Msg("list hotels failed, showing samples")
		hotels = nil
	}
	sess.Grid.SetInitial(hotels)

	view := homeView{
		Search: newSearchPanelView(sess.Search, sess.LastSearch),
		Grid:   newGridView(sess.Grid, in.Loading),
	}
	p.save(ctx, sess)
	p.r.render(w, http.StatusOK, "home", newPageData(p.theme, "Find your perfect stay", true, view))
}

func (p *Pages) submitSearch(w http.ResponseWriter, r *http.Request) {
	var in searchForm
	if err := in.decode(r); err != nil {
		writeError(w, err)
		return
	}
	sess := p.session(w, r)
	if _, err := in.apply(sess.Search, p.sessions.Now()); err != nil {
		writeError(w, err)
		return
	}
	p.save(r.Context(), sess)
	seeOther(w, r, "/#hotels")
}

func (p *Pages) resetSearchDates(w http.ResponseWriter, r *http.Request) {
	sess := p.session(w, r)
	sess.Search.DateSelector().Reset()
	observability.ObserveUIEvent("daterange", "reset")
	p.save(r.Context(), sess)
	seeOther(w, r, "/")
}

func (p *Pages) gridSearch(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeProblem(w, http.StatusBadRequest, "Bad Request", err.Error())
		return
	}
	q := r.PostForm.Get("q")
	if len(q) > 120 {
		writeProblem(w, http.StatusBadRequest, "Bad Request", "query too long")
		return
	}
	sess := p.session(w, r)
	sess.Grid.Search(q)
	p.save(r.Context(), sess)
	seeOther(w, r, "/#hotels")
}

func (p *Pages) setFilter(w http.ResponseWriter, r *http.Request) {
	var in filterForm
	if err := in.decode(r); err != nil {
		writeError(w, err)
		return
	}
	sess := p.session(w, r)
	if err := in.apply(sess.Grid.Filters()); err != nil {
		writeError(w, err)
		return
	}
	p.save(r.Context(), sess)
	seeOther(w, r, "/#hotels")
}

func (p *Pages) clearFilters(w http.ResponseWriter, r *http.Request) {
	sess := p.session(w, r)
	sess.Grid.Filters().ClearAll()
	p.save(r.Context(), sess)
	seeOther(w, r, "/#hotels")
}

func (p *Pages) toggleFilters(w http.ResponseWriter, r *http.Request) {
	sess := p.session(w, r)
	shown := sess.Grid.ToggleFilters()
	observability.ObserveUIEvent("grid", "toggle_filters")
	log.Debug().Str("session", sess.ID).Bool("shown", shown).Msg("filter bar toggled")
	p.save(r.Context(), sess)
	seeOther(w, r, "/#hotels")
}

// ---- detail page ----

func (p *Pages) detail(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	hd, err := p.q.ResolveHotel(ctx, chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	sess := p.session(w, r)
	page := sess.Detail(hd.ID, p.sessions.Now())
	view := newDetailPageView(page, hd)
	p.save(ctx, sess)
	p.r.render(w, http.StatusOK, "detail", newPageData(p.theme, hd.Name, false, view))
}

func (p *Pages) movePhoto(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeProblem(w, http.StatusBadRequest, "Bad Request", err.Error())
		return
	}
	in := photoForm{Dir: r.PostForm.Get("dir")}
	if err := check(in); err != nil {
		writeError(w, err)
		return
	}
	ctx := r.Context()
	hd, err := p.q.ResolveHotel(ctx, chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	sess := p.session(w, r)
	page := sess.Detail(hd.ID, p.sessions.Now())
	n := len(hd.Gallery())
	if in.Dir == "next" {
		page.NextPhoto(n)
	} else {
		page.PrevPhoto(n)
	}
	observability.ObserveUIEvent("detail", "photo_"+in.Dir)
	p.save(ctx, sess)
	seeOther(w, r, "/view-details/"+hd.ID)
}

func (p *Pages) updateBooking(w http.ResponseWriter, r *http.Request) {
	var in bookingForm
	if err := in.decode(r); err != nil {
		writeError(w, err)
		return
	}
	ctx := r.Context()
	hd, err := p.q.ResolveHotel(ctx, chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	sess := p.session(w, r)
	page := sess.Detail(hd.ID, p.sessions.Now())
	if err := in.apply(page, p.sessions.Now()); err != nil {
		writeError(w, err)
		return
	}
	observability.ObserveUIEvent("detail", "booking")
	p.save(ctx, sess)
	seeOther(w, r, "/view-details/"+hd.ID)
}

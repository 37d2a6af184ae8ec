package httpserver

import (
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"staybook/internal/app"
	"staybook/internal/clock"
	"staybook/internal/domain"
	"staybook/internal/theme"
)

// Handlers serves the read-only JSON API.
type Handlers struct {
	Q     *app.QueryService
	Theme theme.Theme
	Clock clock.Clock
}

type problem struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

func (s *Server) MountHandlers(h *Handlers) {
	if h.Clock == nil {
		h.Clock = clock.NewSystem()
	}
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })
	s.mux.Route("/v1", func(r chi.Router) {
		r.Use(s.cors.Handler)
		r.Get("/hotels", h.listHotels)
		r.Get("/hotels/{id}", h.getHotel)
		r.Get("/hotels/{id}/reviews", h.listReviews)
		r.Get("/hotels/{id}/summary", h.getSummary)
		r.Get("/theme", h.getTheme)
		r.Post("/search", h.search)
	})
}

func writeProblem(w http.ResponseWriter, status int, title, detail string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(problem{Type: "about:blank", Title: title, Status: status, Detail: detail}); err != nil {
		log.Error().Err(err).Msg("write JSON problem response failed")
	}
}

// writeError maps domain errors onto problem responses.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		writeProblem(w, http.StatusNotFound, "Not Found", err.Error())
	case errors.Is(err, domain.ErrInvalidFilter),
		errors.Is(err, domain.ErrInvalidGuests),
		errors.Is(err, domain.ErrInvalidPriceRange),
		errors.Is(err, domain.ErrInvalidDate),
		errors.Is(err, errInvalidInput):
		writeProblem(w, http.StatusBadRequest, "Bad Request", err.Error())
	default:
		log.Error().Err(err).Msg("request failed")
		writeProblem(w, http.StatusInternalServerError, "Internal Server Error", "")
	}
}

// calcETagAndBody marshals once and hashes once, returning both ETag and body.
func calcETagAndBody(v any) (string, []byte) {
	body, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal object for ETag/body")
		return "", nil
	}
	sum := sha1.Sum(body)
	etag := `W/"` + hex.EncodeToString(sum[:]) + `"`
	return etag, body
}

// writeJSON writes v with a weak ETag and answers 304 when the client
// already holds that version.
func writeJSON(w http.ResponseWriter, r *http.Request, v any) {
	etag, body := calcETagAndBody(v)
	if body == nil {
		writeProblem(w, http.StatusInternalServerError, "Internal Server Error", "")
		return
	}
	if inm := r.Header.Get("If-None-Match"); inm != "" && inm == etag {
		w.Header().Set("ETag", etag)
		w.WriteHeader(http.StatusNotModified)
		return
	}
	w.Header().Set("ETag", etag)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		log.Error().Err(err).Str("path", r.URL.Path).Msg("failed to write body")
	}
}

// listHotels renders the grid. Any of q/min/max/rating/location narrows the
// list; loading=true returns the skeleton view.
func (h *Handlers) listHotels(w http.ResponseWriter, r *http.Request) {
	var in gridQuery
	if err := in.decode(r); err != nil {
		writeError(w, err)
		return
	}
	hotels, err := h.Q.ListHotels(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	g := app.NewHotelGrid(hotels)
	g.ApplyFilters = in.narrows()
	bar := g.Filters()
	if in.MinPrice != nil || in.MaxPrice != nil {
		low, high := bar.Filters.PriceRange.Low(), bar.Filters.PriceRange.High()
		if in.MinPrice != nil {
			low = *in.MinPrice
		}
		if in.MaxPrice != nil {
			high = *in.MaxPrice
		}
		bar.SetPriceRange(low, high)
	}
	if in.Rating != "" {
		if err := bar.SetRating(domain.Rating(in.Rating)); err != nil {
			writeError(w, err)
			return
		}
	}
	if in.Location != "" {
		if err := bar.SetLocation(domain.LocationCategory(in.Location)); err != nil {
			writeError(w, err)
			return
		}
	}
	g.Query = in.Query

	writeJSON(w, r, g.View(in.Loading))
}

func (h *Handlers) getHotel(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	hd, err := h.Q.GetHotel(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	page := app.NewDetailPage(hd.ID, h.Clock.Now())
	writeJSON(w, r, page.View(hd))
}

func (h *Handlers) getSummary(w http.ResponseWriter, r *http.Request) {
	hd, err := h.Q.GetHotel(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, r, app.Summarize(hd.Hotel))
}

func (h *Handlers) listReviews(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	limit := 50
	if ls := r.URL.Query().Get("limit"); ls != "" {
		l, err := strconv.Atoi(ls)
		if err != nil || l <= 0 || l > 200 {
			writeProblem(w, http.StatusBadRequest, "Invalid limit", "limit must be an integer between 1 and 200")
			return
		}
		limit = l
	}

	// 404 for unknown hotels rather than an empty list
	if _, err := h.Q.GetHotel(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	out, err := h.Q.ListReviews(r.Context(), id, limit)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, r, out)
}

func (h *Handlers) getTheme(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, h.Theme)
}

// search validates a search request and echoes the snapshot the search panel
// would emit for it.
func (h *Handlers) search(w http.ResponseWriter, r *http.Request) {
	var in searchForm
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<16)).Decode(&in); err != nil {
		writeProblem(w, http.StatusBadRequest, "Bad Request", "body must be a JSON search request")
		return
	}
	snap, err := in.apply(app.NewSearchPanel(nil), h.Clock.Now())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, r, snap)
}

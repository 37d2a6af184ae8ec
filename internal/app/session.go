package app

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"staybook/internal/clock"
	"staybook/internal/domain"
)

// Session is one visitor's form state across requests.
type Session struct {
	ID          string                 `json:"id"`
	Search      *SearchPanel           `json:"search"`
	Grid        *HotelGrid             `json:"grid"`
	Details     map[string]*DetailPage `json:"details"`
	LastSearch  *domain.SearchSnapshot `json:"lastSearch,omitempty"`
	LastFilters *domain.FilterSnapshot `json:"lastFilters,omitempty"`
}

func NewSession(id string) *Session {
	return &Session{
		ID:      id,
		Search:  NewSearchPanel(nil),
		Grid:    NewHotelGrid(nil),
		Details: map[string]*DetailPage{},
	}
}

// Detail returns the detail-page state for hotelID, creating it on first visit.
func (s *Session) Detail(hotelID string, now time.Time) *DetailPage {
	if s.Details == nil {
		s.Details = map[string]*DetailPage{}
	}
	p, ok := s.Details[hotelID]
	if !ok {
		p = NewDetailPage(hotelID, now)
		s.Details[hotelID] = p
	}
	return p
}

// repair fills parts a stored payload may lack.
func (s *Session) repair() {
	if s.Search == nil {
		s.Search = NewSearchPanel(nil)
	}
	if s.Grid == nil {
		s.Grid = NewHotelGrid(nil)
	}
	// the hotel list is not persisted
	if s.Grid.hotels == nil {
		s.Grid.SetInitial(nil)
	}
	s.Grid.Filters()
	if s.Details == nil {
		s.Details = map[string]*DetailPage{}
	}
}

type SessionService struct {
	cache domain.Cache
	ttl   time.Duration
	clock clock.Clock
}

func NewSessionService(c domain.Cache, ttl time.Duration, clk clock.Clock) *SessionService {
	if clk == nil {
		clk = clock.NewSystem()
	}
	return &SessionService{cache: c, ttl: ttl, clock: clk}
}

func (s *SessionService) Now() time.Time { return s.clock.Now() }

// Load returns the stored session or a fresh one; store failures are logged
// and never fail the request.
func (s *SessionService) Load(ctx context.Context, id string) *Session {
	var sess Session
	ok, err := s.cache.Get(ctx, sessionKey(id), &sess)
	if err != nil {
		log.Warn().Err(err).Str("session", id).Msg("session load failed")
	}
	if !ok || err != nil {
		return NewSession(id)
	}
	sess.ID = id
	sess.repair()
	return &sess
}

func (s *SessionService) Save(ctx context.Context, sess *Session) error {
	return s.cache.Set(ctx, sessionKey(sess.ID), sess, int(s.ttl.Seconds()))
}

func (s *SessionService) Delete(ctx context.Context, id string) error {
	return s.cache.Del(ctx, sessionKey(id))
}

func sessionKey(id string) string { return "session:" + id }

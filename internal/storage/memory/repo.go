// Package memory serves the catalog from process memory.
package memory

import (
	"context"
	"sort"
	"sync"

	"staybook/internal/catalog"
	"staybook/internal/domain"
)

type Repo struct {
	mu     sync.RWMutex
	hotels map[string]domain.HotelDetail
	order  []string
}

// New returns an empty repository.
func New() *Repo { return &Repo{hotels: map[string]domain.HotelDetail{}} }

// NewSeeded returns a repository preloaded with the sample catalog.
func NewSeeded() *Repo {
	r := New()
	for _, h := range catalog.All() {
		_ = r.UpsertHotel(context.Background(), h)
	}
	return r
}

func (r *Repo) UpsertHotel(ctx context.Context, h domain.HotelDetail) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.hotels[h.ID]; !ok {
		r.order = append(r.order, h.ID)
	}
	r.hotels[h.ID] = cloneDetail(h)
	return nil
}

func (r *Repo) UpsertRooms(ctx context.Context, hotelID string, rooms []domain.Room) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	h, ok := r.hotels[hotelID]
	if !ok {
		return domain.ErrNotFound
	}
	byID := make(map[string]int, len(h.Rooms))
	for i, rm := range h.Rooms {
		byID[rm.ID] = i
	}
	for _, rm := range rooms {
		if i, ok := byID[rm.ID]; ok {
			h.Rooms[i] = rm
			continue
		}
		h.Rooms = append(h.Rooms, rm)
	}
	r.hotels[hotelID] = h
	return nil
}

func (r *Repo) UpsertReviews(ctx context.Context, hotelID string, rs []domain.Review) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	h, ok := r.hotels[hotelID]
	if !ok {
		return domain.ErrNotFound
	}
	byID := make(map[int64]int, len(h.Reviews))
	for i, rv := range h.Reviews {
		byID[rv.ID] = i
	}
	for _, rv := range rs {
		rv.HotelID = hotelID
		if i, ok := byID[rv.ID]; ok && rv.ID != 0 {
			h.Reviews[i] = rv
			continue
		}
		h.Reviews = append(h.Reviews, rv)
	}
	r.hotels[hotelID] = h
	return nil
}

func (r *Repo) ListHotels(ctx context.Context) ([]domain.Hotel, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Hotel, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, cloneDetail(r.hotels[id]).Hotel)
	}
	return out, nil
}

func (r *Repo) GetHotel(ctx context.Context, id string) (domain.HotelDetail, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	h, ok := r.hotels[id]
	if !ok {
		return domain.HotelDetail{}, domain.ErrNotFound
	}
	return cloneDetail(h), nil
}

// ListReviews returns newest first, at most limit entries (limit <= 0 means all).
func (r *Repo) ListReviews(ctx context.Context, hotelID string, limit int) ([]domain.Review, error) {
	r.mu.RLock()
	h, ok := r.hotels[hotelID]
	r.mu.RUnlock()
	if !ok {
		return nil, domain.ErrNotFound
	}
	out := append([]domain.Review{}, h.Reviews...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func cloneDetail(h domain.HotelDetail) domain.HotelDetail {
	out := h
	out.Amenities = append([]domain.Amenity(nil), h.Amenities...)
	if h.Discount != nil {
		d := *h.Discount
		out.Discount = &d
	}
	out.Images = append([]string(nil), h.Images...)
	out.Rooms = make([]domain.Room, len(h.Rooms))
	for i, rm := range h.Rooms {
		rm.Features = append([]string(nil), rm.Features...)
		out.Rooms[i] = rm
	}
	out.Reviews = append([]domain.Review(nil), h.Reviews...)
	return out
}

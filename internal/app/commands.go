package app

import (
	"context"
	"fmt"

	"staybook/internal/domain"
)

// SeedService writes catalog records into a repository and evicts the read
// caches that could still hold an older copy.
type SeedService struct {
	repo  domain.HotelRepository
	cache domain.Cache
}

func NewSeedService(r domain.HotelRepository, cache domain.Cache) *SeedService {
	return &SeedService{repo: r, cache: cache}
}

func (s *SeedService) SeedHotel(ctx context.Context, h domain.HotelDetail) error {
	if h.ID == "" {
		return fmt.Errorf("seed hotel: empty id")
	}
	if !domain.ValidDiscount(h.DiscountPercent()) {
		return fmt.Errorf("seed hotel %s: %w", h.ID, domain.ErrInvalidDiscount)
	}
	for _, r := range h.Rooms {
		if !domain.ValidDiscount(r.Discount) {
			return fmt.Errorf("seed room %s/%s: %w", h.ID, r.ID, domain.ErrInvalidDiscount)
		}
	}

	// Parent first so rooms/reviews satisfy the FK.
	if err := s.repo.UpsertHotel(ctx, h); err != nil {
		return fmt.Errorf("upsert hotel %s: %w", h.ID, err)
	}
	if len(h.Rooms) > 0 {
		if err := s.repo.UpsertRooms(ctx, h.ID, h.Rooms); err != nil {
			return fmt.Errorf("upsert rooms for %s: %w", h.ID, err)
		}
	}
	if len(h.Reviews) > 0 {
		if err := s.repo.UpsertReviews(ctx, h.ID, h.Reviews); err != nil {
			return fmt.Errorf("upsert reviews for %s: %w", h.ID, err)
		}
	}

	if s.cache != nil {
		s.invalidate(ctx, h.ID)
	}
	return nil
}

func (s *SeedService) invalidate(ctx context.Context, id string) {
	_ = s.cache.Del(ctx, hotelsKey)
	_ = s.cache.Del(ctx, hotelKey(id))
	_ = s.cache.Del(ctx, reviewsKey(id))
}

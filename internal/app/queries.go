package app

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog/log"

	"staybook/internal/catalog"
	"staybook/internal/domain"
)

const hotelsKey = "hotels:all"

type QueryService struct {
	repo     domain.HotelRepository
	cache    domain.Cache
	cacheTTL time.Duration
}

func NewQueryService(r domain.HotelRepository, c domain.Cache, ttl time.Duration) *QueryService {
	return &QueryService{repo: r, cache: c, cacheTTL: ttl}
}

func (s *QueryService) ListHotels(ctx context.Context) ([]domain.Hotel, error) {
	var out []domain.Hotel
	if s.cacheGet(ctx, hotelsKey, &out) {
		return out, nil
	}
	hs, err := s.repo.ListHotels(ctx)
	if err != nil {
		return nil, err
	}
	// copy so a caller mutating the slice cannot touch the cached value
	out = append([]domain.Hotel(nil), hs...)
	s.cacheSet(ctx, hotelsKey, out)
	return out, nil
}

func (s *QueryService) GetHotel(ctx context.Context, id string) (domain.HotelDetail, error) {
	key := hotelKey(id)
	var hd domain.HotelDetail
	if s.cacheGet(ctx, key, &hd) {
		return hd, nil
	}
	hd, err := s.repo.GetHotel(ctx, id)
	if err != nil {
		return domain.HotelDetail{}, err
	}
	s.cacheSet(ctx, key, hd)
	return hd, nil
}

// ResolveHotel is GetHotel for the page routes: an unknown id renders the
// featured hotel instead of a 404.
func (s *QueryService) ResolveHotel(ctx context.Context, id string) (domain.HotelDetail, error) {
	hd, err := s.GetHotel(ctx, id)
	if errors.Is(err, domain.ErrNotFound) && id != catalog.FeaturedID {
		log.Debug().Str("id", id).Msg("unknown hotel id, falling back to featured")
		return s.GetHotel(ctx, catalog.FeaturedID)
	}
	return hd, err
}

// MaxReviews caps a review page; the cache holds one list of this size per
// hotel and every smaller page is cut from it.
const MaxReviews = 200

func (s *QueryService) ListReviews(ctx context.Context, id string, limit int) ([]domain.Review, error) {
	if limit <= 0 || limit > MaxReviews {
		limit = MaxReviews
	}
	key := reviewsKey(id)
	var all []domain.Review
	if !s.cacheGet(ctx, key, &all) {
		rs, err := s.repo.ListReviews(ctx, id, MaxReviews)
		if err != nil {
			return nil, err
		}
		all = append([]domain.Review{}, rs...)
		s.cacheSet(ctx, key, all)
	}
	if len(all) > limit {
		all = all[:limit]
	}
	return all, nil
}

func (s *QueryService) cacheGet(ctx context.Context, key string, dst any) bool {
	if s.cache == nil {
		return false
	}
	ok, err := s.cache.Get(ctx, key, dst)
	if err != nil {
		log.Warn().Err(err).Str("key", key).Msg("cache get failed")
		return false
	}
	return ok
}

func (s *QueryService) cacheSet(ctx context.Context, key string, v any) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Set(ctx, key, v, int(s.cacheTTL.Seconds())); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("cache set failed")
	}
}

func hotelKey(id string) string { return "hotel:" + id }

func reviewsKey(id string) string { return "reviews:" + id }

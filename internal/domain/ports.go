package domain

import "context"

type HotelRepository interface {
	// Write paths
	UpsertHotel(ctx context.Context, h HotelDetail) error
	UpsertRooms(ctx context.Context, hotelID string, rooms []Room) error
	UpsertReviews(ctx context.Context, hotelID string, rs []Review) error

	// Read paths
	ListHotels(ctx context.Context) ([]Hotel, error)
	GetHotel(ctx context.Context, id string) (HotelDetail, error)
	ListReviews(ctx context.Context, hotelID string, limit int) ([]Review, error)
}

type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttlSec int) error
	Del(ctx context.Context, key string) error
}

package main

import (
	"context"
	"errors"
	"sync"
	"testing"

	"staybook/internal/app"
	"staybook/internal/catalog"
	"staybook/internal/domain"
	"staybook/internal/storage/memory"
)

// countingRepo wraps the memory repo and records peak concurrency.
type countingRepo struct {
	*memory.Repo
	mu       sync.Mutex
	inFlight int
	peak     int
	failID   string
}

func (r *countingRepo) UpsertHotel(ctx context.Context, h domain.HotelDetail) error {
	r.mu.Lock()
	r.inFlight++
	if r.inFlight > r.peak {
		r.peak = r.inFlight
	}
	r.mu.Unlock()
	defer func() {
		r.mu.Lock()
		r.inFlight--
		r.mu.Unlock()
	}()
	if h.ID == r.failID {
		return errors.New("boom")
	}
	return r.Repo.UpsertHotel(ctx, h)
}

func TestRun_SeedsEveryHotel(t *testing.T) {
	repo := &countingRepo{Repo: memory.New()}
	failed := run(context.Background(), app.NewSeedService(repo, nil), catalog.All(), 2)
	if failed != 0 {
		t.Fatalf("failed = %d", failed)
	}
	hs, _ := repo.ListHotels(context.Background())
	if len(hs) != 6 {
		t.Fatalf("want 6 hotels, got %d", len(hs))
	}
	if repo.peak > 2 {
		t.Fatalf("peak concurrency %d exceeds workers", repo.peak)
	}
	d, err := repo.GetHotel(context.Background(), catalog.FeaturedID)
	if err != nil || len(d.Rooms) != 3 || len(d.Reviews) != 2 {
		t.Fatalf("featured not fully seeded: %+v err=%v", d, err)
	}
}

func TestRun_CountsFailures(t *testing.T) {
	repo := &countingRepo{Repo: memory.New(), failID: "3"}
	failed := run(context.Background(), app.NewSeedService(repo, nil), catalog.All(), 3)
	if failed != 1 {
		t.Fatalf("failed = %d, want 1", failed)
	}
	if _, err := repo.GetHotel(context.Background(), "3"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("hotel 3 should be missing, got %v", err)
	}
}

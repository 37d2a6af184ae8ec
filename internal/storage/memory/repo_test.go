package memory_test

import (
	"context"
	"errors"
	"testing"

	"staybook/internal/domain"
	"staybook/internal/storage/memory"
)

func TestSeededCatalog(t *testing.T) {
	r := memory.NewSeeded()
	ctx := context.Background()

	hs, err := r.ListHotels(ctx)
	if err != nil || len(hs) != 6 {
		t.Fatalf("got %d hotels err=%v", len(hs), err)
	}
	if hs[0].ID != "1" || hs[5].ID != "6" {
		t.Fatalf("insertion order not kept: %s..%s", hs[0].ID, hs[5].ID)
	}

	h, err := r.GetHotel(ctx, "1")
	if err != nil || len(h.Rooms) != 3 {
		t.Fatalf("featured: %+v err=%v", h, err)
	}
	if _, err := r.GetHotel(ctx, "404"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestGetHotel_ReturnsCopy(t *testing.T) {
	r := memory.NewSeeded()
	ctx := context.Background()
	h, _ := r.GetHotel(ctx, "1")
	h.Rooms[0].Name = "mutated"
	*h.Discount = 99

	again, _ := r.GetHotel(ctx, "1")
	if again.Rooms[0].Name == "mutated" || *again.Discount != 15 {
		t.Fatal("caller mutation leaked into the repository")
	}
}

func TestListReviews_NewestFirstAndLimit(t *testing.T) {
	r := memory.NewSeeded()
	rs, err := r.ListReviews(context.Background(), "1", 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(rs) != 1 || rs[0].Author != "John Doe" {
		t.Fatalf("expected newest review only, got %+v", rs)
	}
}

func TestUpsertRooms_UnknownHotel(t *testing.T) {
	r := memory.New()
	if err := r.UpsertRooms(context.Background(), "x", []domain.Room{{ID: "r"}}); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

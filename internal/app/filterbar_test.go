package app_test

import (
	"errors"
	"reflect"
	"testing"

	"staybook/internal/app"
	"staybook/internal/domain"
)

func TestFilterBar_PriceRangeReportedExactly(t *testing.T) {
	var got []domain.FilterSnapshot
	b := app.NewFilterBar(func(f domain.FilterSnapshot) { got = append(got, f) })

	for a := 0; a <= 1000; a += 50 {
		for c := a; c <= 1000; c += 150 {
			b.SetPriceRange(a, c)
			last := got[len(got)-1]
			if last.PriceRange != (domain.PriceRange{a, c}) {
				t.Fatalf("set [%d,%d], snapshot %v", a, c, last.PriceRange)
			}
		}
	}
}

func TestFilterBar_PriceActiveTracksDefault(t *testing.T) {
	b := app.NewFilterBar(nil)
	b.SetPriceRange(100, 400)
	if !reflect.DeepEqual(b.ActiveFilters(), []string{"price"}) {
		t.Fatalf("active: %v", b.ActiveFilters())
	}
	b.SetPriceRange(50, 500)
	if len(b.ActiveFilters()) != 0 {
		t.Fatalf("price back at default should not be active: %v", b.ActiveFilters())
	}
}

func TestFilterBar_RatingActiveOnce(t *testing.T) {
	b := app.NewFilterBar(nil)
	for _, r := range []domain.Rating{"4", "5", "3", "4"} {
		if err := b.SetRating(r); err != nil {
			t.Fatal(err)
		}
	}
	if !reflect.DeepEqual(b.ActiveFilters(), []string{"rating"}) {
		t.Fatalf("expected rating exactly once, got %v", b.ActiveFilters())
	}
	if err := b.SetRating(domain.RatingAny); err != nil {
		t.Fatal(err)
	}
	if len(b.ActiveFilters()) != 0 {
		t.Fatalf("rating should be removed, got %v", b.ActiveFilters())
	}
}

func TestFilterBar_RejectsUnknownValues(t *testing.T) {
	calls := 0
	b := app.NewFilterBar(func(domain.FilterSnapshot) { calls++ })
	if err := b.SetRating("2"); !errors.Is(err, domain.ErrInvalidFilter) {
		t.Fatalf("expected ErrInvalidFilter, got %v", err)
	}
	if err := b.SetLocation("moon"); !errors.Is(err, domain.ErrInvalidFilter) {
		t.Fatalf("expected ErrInvalidFilter, got %v", err)
	}
	if calls != 0 {
		t.Fatalf("rejected values must not emit, got %d", calls)
	}
}

func TestFilterBar_ClearAllRestoresDefaults(t *testing.T) {
	var got []domain.FilterSnapshot
	b := app.NewFilterBar(func(f domain.FilterSnapshot) { got = append(got, f) })
	b.SetPriceRange(10, 990)
	_ = b.SetRating(domain.RatingFive)
	_ = b.SetLocation(domain.LocationMountain)

	got = nil
	b.ClearAll()

	if len(got) != 1 {
		t.Fatalf("ClearAll should emit exactly once, got %d", len(got))
	}
	if !reflect.DeepEqual(got[0], domain.DefaultFilters()) {
		t.Fatalf("emitted %+v", got[0])
	}
	if !reflect.DeepEqual(b.Snapshot(), domain.DefaultFilters()) || len(b.ActiveFilters()) != 0 {
		t.Fatalf("state not reset: %+v %v", b.Snapshot(), b.ActiveFilters())
	}
}

func TestFilterBar_SnapshotIsACopy(t *testing.T) {
	var snap domain.FilterSnapshot
	b := app.NewFilterBar(func(f domain.FilterSnapshot) { snap = f })
	_ = b.SetLocation(domain.LocationDowntown)
	snap.Amenities = append(snap.Amenities, "Spa")
	if len(b.Snapshot().Amenities) != 0 {
		t.Fatal("receiver mutated component state")
	}
}

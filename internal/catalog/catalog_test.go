package catalog_test

import (
	"testing"

	"staybook/internal/catalog"
	"staybook/internal/domain"
)

func TestSamples_Invariants(t *testing.T) {
	hs := catalog.SampleHotels()
	if len(hs) != 6 {
		t.Fatalf("want 6 samples, got %d", len(hs))
	}
	seen := map[string]bool{}
	for _, h := range hs {
		if seen[h.ID] {
			t.Fatalf("duplicate id %s", h.ID)
		}
		seen[h.ID] = true
		if h.Rating < 0 || h.Rating > 5 {
			t.Errorf("%s rating out of range: %v", h.ID, h.Rating)
		}
		if !domain.ValidDiscount(h.DiscountPercent()) {
			t.Errorf("%s discount out of range", h.ID)
		}
		if !h.Category.Valid() || h.Category == domain.LocationAny {
			t.Errorf("%s has no concrete category", h.ID)
		}
	}
}

func TestSamples_AreCopies(t *testing.T) {
	a := catalog.SampleHotels()
	a[0].Name = "changed"
	if catalog.SampleHotels()[0].Name == "changed" {
		t.Fatal("SampleHotels must return a fresh slice")
	}
}

func TestFeatured(t *testing.T) {
	f := catalog.Featured()
	if f.ID != catalog.FeaturedID || len(f.Rooms) != 3 || len(f.Reviews) != 2 || len(f.Images) != 4 {
		t.Fatalf("unexpected featured record: %+v", f)
	}
	if f.ReviewCount != 246 {
		t.Fatalf("review count %d", f.ReviewCount)
	}
	if len(catalog.All()) != 6 {
		t.Fatal("All should cover every sample")
	}
}

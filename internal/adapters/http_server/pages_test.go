package httpserver

import (
	"net/http"
	"net/url"
	"strings"
	"testing"
)

func TestHome_RendersSampleGrid(t *testing.T) {
	e := newEnv(t, envOpts{})
	code, body := e.get(t, "/")
	if code != http.StatusOK {
		t.Fatalf("status %d", code)
	}
	if n := strings.Count(body, `<article class="card">`); n != 6 {
		t.Fatalf("want 6 cards, got %d", n)
	}
	for _, want := range []string{
		"Discover Your Perfect Stay",
		"Explore Now",
		"Luxury Ocean Resort",
		"15% OFF",
		"$352",
		"Select check-in and check-out dates",
		"Free cancellation",
	} {
		if !strings.Contains(body, want) {
			t.Fatalf("home page missing %q", want)
		}
	}
	u, _ := url.Parse(e.srv.URL)
	var sid string
	for _, c := range e.c.Jar.Cookies(u) {
		if c.Name == sessionCookie {
			sid = c.Value
		}
	}
	if sid == "" {
		t.Fatal("session cookie not set")
	}
	if !e.mr.Exists("session:" + sid) {
		t.Fatal("session not stored")
	}
}

func TestHome_LoadingShowsSkeletons(t *testing.T) {
	e := newEnv(t, envOpts{})
	_, body := e.get(t, "/?loading=true")
	if n := strings.Count(body, `data-role="skeleton"`); n != 6 {
		t.Fatalf("want 6 skeletons, got %d", n)
	}
	if strings.Contains(body, `<article class="card">`) {
		t.Fatal("cards rendered while loading")
	}
}

func TestHome_RejectsBadLoadingFlag(t *testing.T) {
	e := newEnv(t, envOpts{})
	code, body := e.get(t, "/?loading=maybe")
	if code != http.StatusBadRequest || !strings.Contains(body, "loading must be a boolean") {
		t.Fatalf("got %d %q", code, body)
	}
}

func TestFilters_ActiveListAndClear(t *testing.T) {
	e := newEnv(t, envOpts{})
	_, body := e.post(t, "/filters/toggle", nil)
	if !strings.Contains(body, `class="filterbar" data-active=""`) {
		t.Fatal("filter bar should be shown with no active filters")
	}

	_, body = e.post(t, "/filters", url.Values{"field": {"rating"}, "value": {"4"}})
	if !strings.Contains(body, `data-active="rating"`) {
		t.Fatal("rating should be active")
	}
	_, body = e.post(t, "/filters", url.Values{"field": {"rating"}, "value": {"5"}})
	if !strings.Contains(body, `data-active="rating"`) {
		t.Fatal("rating should be listed once")
	}
	_, body = e.post(t, "/filters", url.Values{"field": {"price"}, "min_price": {"100"}, "max_price": {"300"}})
	if !strings.Contains(body, `data-active="rating,price"`) || !strings.Contains(body, "$100 - $300") {
		t.Fatal("price should be active with the submitted range")
	}
	_, body = e.post(t, "/filters", url.Values{"field": {"rating"}, "value": {"any"}})
	if !strings.Contains(body, `data-active="price"`) {
		t.Fatal("rating any should drop rating from the active list")
	}

	_, body = e.post(t, "/filters/clear", nil)
	if !strings.Contains(body, `data-active=""`) || !strings.Contains(body, "$50 - $500") {
		t.Fatal("clear all should restore defaults")
	}
	// the grid itself is not narrowed unless the flag is on
	if n := strings.Count(body, `<article class="card">`); n != 6 {
		t.Fatalf("want 6 cards, got %d", n)
	}
}

func TestFilters_RejectsUnknownValues(t *testing.T) {
	e := newEnv(t, envOpts{})
	code, _ := e.post(t, "/filters", url.Values{"field": {"rating"}, "value": {"6"}})
	if code != http.StatusBadRequest {
		t.Fatalf("unknown rating: status %d", code)
	}
	code, _ = e.post(t, "/filters", url.Values{"field": {"stars"}})
	if code != http.StatusBadRequest {
		t.Fatalf("unknown field: status %d", code)
	}
	code, _ = e.post(t, "/filters", url.Values{"field": {"price"}, "min_price": {"abc"}})
	if code != http.StatusBadRequest {
		t.Fatalf("bad price: status %d", code)
	}
}

func TestFilters_ApplyFiltersFlagNarrowsGrid(t *testing.T) {
	e := newEnv(t, envOpts{applyFilters: true})
	_, body := e.post(t, "/filters", url.Values{"field": {"location"}, "value": {"mountain"}})
	if n := strings.Count(body, `<article class="card">`); n != 2 {
		t.Fatalf("want 2 mountain hotels, got %d", n)
	}
	_, body = e.post(t, "/grid/search", url.Values{"q": {"no such place"}})
	if !strings.Contains(body, "No hotels found") || !strings.Contains(body, "Try adjusting your search or filter criteria") {
		t.Fatal("expected the empty state")
	}
}

func TestSearch_SubmitKeepsPanelState(t *testing.T) {
	e := newEnv(t, envOpts{})
	code, body := e.post(t, "/search", url.Values{
		"location":  {"  Miami "},
		"from":      {"2024-03-10"},
		"to":        {"2024-03-05"},
		"min_price": {"80"},
		"max_price": {"400"},
		"guests":    {"3"},
	})
	if code != http.StatusOK {
		t.Fatalf("status %d", code)
	}
	for _, want := range []string{
		`name="location" value="Miami"`,
		"Mar 05, 2024 - Mar 10, 2024",
		`<option value="3" selected>3 Guests</option>`,
		"$80 - $400",
	} {
		if !strings.Contains(body, want) {
			t.Fatalf("search panel missing %q", want)
		}
	}

	_, body = e.post(t, "/search/dates/reset", nil)
	if !strings.Contains(body, "Select check-in and check-out dates") {
		t.Fatal("date reset should show the placeholder")
	}
	if !strings.Contains(body, `name="location" value="Miami"`) {
		t.Fatal("date reset must not touch the location")
	}
}

func TestSearch_RejectsBadInput(t *testing.T) {
	e := newEnv(t, envOpts{})
	for name, form := range map[string]url.Values{
		"guests":   {"guests": {"9"}},
		"date":     {"from": {"10/03/2024"}},
		"price":    {"min_price": {"-5"}},
		"location": {"location": {strings.Repeat("x", 121)}},
	} {
		code, _ := e.post(t, "/search", form)
		if code != http.StatusBadRequest {
			t.Fatalf("%s: status %d", name, code)
		}
	}
}

func TestDetail_FeaturedBookingSummary(t *testing.T) {
	e := newEnv(t, envOpts{})
	code, body := e.get(t, "/view-details/1")
	if code != http.StatusOK {
		t.Fatalf("status %d", code)
	}
	for _, want := range []string{
		"Luxury Ocean Resort",
		"(246 reviews)",
		`data-role="subtotal">$1495<`,
		`data-role="discount">-$225<`,
		`data-role="taxes">$180<`,
		`data-role="total">$1450<`,
		"Mar 01, 2024 - Mar 06, 2024",
		"John Doe",
		"May 15, 2023",
		"Deluxe Ocean View",
		"$254",
		"Popular Amenities",
	} {
		if !strings.Contains(body, want) {
			t.Fatalf("detail page missing %q", want)
		}
	}
}

func TestDetail_UnknownIDFallsBackToFeatured(t *testing.T) {
	e := newEnv(t, envOpts{})
	code, body := e.get(t, "/view-details/999")
	if code != http.StatusOK || !strings.Contains(body, "Luxury Ocean Resort") {
		t.Fatalf("fallback failed: %d", code)
	}
	_, body = e.get(t, "/hotels/3")
	if !strings.Contains(body, "Urban Boutique Hotel") {
		t.Fatal("hotels route should render hotel 3")
	}
}

func TestDetail_PhotoNavigationWraps(t *testing.T) {
	e := newEnv(t, envOpts{})
	_, body := e.post(t, "/view-details/1/photo", url.Values{"dir": {"prev"}})
	if !strings.Contains(body, `data-index="3"`) {
		t.Fatal("prev from the first photo should wrap to the last")
	}
	_, body = e.post(t, "/view-details/1/photo", url.Values{"dir": {"next"}})
	if !strings.Contains(body, `data-index="0"`) {
		t.Fatal("next from the last photo should wrap to the first")
	}
	code, _ := e.post(t, "/view-details/1/photo", url.Values{"dir": {"up"}})
	if code != http.StatusBadRequest {
		t.Fatalf("bad dir: status %d", code)
	}
}

func TestDetail_BookingUpdatesDatesAndGuests(t *testing.T) {
	e := newEnv(t, envOpts{})
	_, body := e.post(t, "/view-details/1/booking", url.Values{
		"from":   {"2024-04-01"},
		"to":     {"2024-04-04"},
		"guests": {"4"},
	})
	if !strings.Contains(body, "Apr 01, 2024 - Apr 04, 2024") {
		t.Fatal("booking dates not updated")
	}
	if !strings.Contains(body, `<option value="4" selected>4 Guests</option>`) {
		t.Fatal("guest count not updated")
	}
	// the summary stays on the fixed five-night stay
	if !strings.Contains(body, `data-role="total">$1450<`) {
		t.Fatal("summary total changed")
	}

	code, _ := e.post(t, "/view-details/1/booking", url.Values{"guests": {"7"}})
	if code != http.StatusBadRequest {
		t.Fatalf("7 guests: status %d", code)
	}
}

func TestStoryboard_MountedOnlyWithFlag(t *testing.T) {
	off := newEnv(t, envOpts{})
	if code, _ := off.get(t, "/storyboard/"); code != http.StatusNotFound {
		t.Fatalf("storyboard without flag: status %d", code)
	}

	on := newEnv(t, envOpts{storyboard: true})
	code, body := on.get(t, "/storyboard/")
	if code != http.StatusOK || !strings.Contains(body, "/storyboard/hotel-grid-loading") {
		t.Fatalf("storyboard index: %d", code)
	}
	_, body = on.get(t, "/storyboard/hotel-grid-loading")
	if n := strings.Count(body, `data-role="skeleton"`); n != 6 {
		t.Fatalf("want 6 skeletons, got %d", n)
	}
	_, body = on.get(t, "/storyboard/hotel-grid-empty")
	if !strings.Contains(body, "No hotels found") {
		t.Fatal("empty grid story should show the empty state")
	}
	_, body = on.get(t, "/storyboard/date-range")
	if !strings.Contains(body, "Mar 01, 2024 - Mar 08, 2024") {
		t.Fatal("date range story should default to a week from today")
	}
	if code, _ := on.get(t, "/storyboard/nope"); code != http.StatusNotFound {
		t.Fatalf("unknown component: status %d", code)
	}
}

package httpserver

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	redisad "staybook/internal/adapters/redis"
	"staybook/internal/app"
	"staybook/internal/clock"
	"staybook/internal/storage/memory"
	"staybook/internal/theme"
)

var testNow = time.Date(2024, 3, 1, 15, 30, 0, 0, time.UTC)

type testEnv struct {
	srv *httptest.Server
	mr  *miniredis.Miniredis
	c   *http.Client
}

type envOpts struct {
	applyFilters bool
	storyboard   bool
}

func newEnv(t *testing.T, o envOpts) *testEnv {
	t.Helper()
	mr := miniredis.RunT(t)
	cache := redisad.NewWithClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	t.Cleanup(func() { _ = cache.Close() })

	clk := clock.NewFixed(testNow)
	q := app.NewQueryService(memory.NewSeeded(), cache, time.Minute)
	sessions := app.NewSessionService(cache, time.Hour, clk)

	s := New(Options{})
	s.MountHandlers(&Handlers{Q: q, Theme: theme.Default(), Clock: clk})
	pages, err := NewPages(PagesConfig{
		Queries:      q,
		Sessions:     sessions,
		Theme:        theme.Default(),
		ApplyFilters: o.applyFilters,
	})
	if err != nil {
		t.Fatalf("NewPages: %v", err)
	}
	s.MountPages(pages)
	if o.storyboard {
		s.MountStoryboard(pages)
	}

	ts := httptest.NewServer(s.Mux())
	t.Cleanup(ts.Close)
	jar, _ := cookiejar.New(nil)
	return &testEnv{srv: ts, mr: mr, c: &http.Client{Jar: jar}}
}

func (e *testEnv) get(t *testing.T, path string) (int, string) {
	t.Helper()
	resp, err := e.c.Get(e.srv.URL + path)
	if err != nil {
		t.Fatalf("GET %s: %v", path, err)
	}
	defer resp.Body.Close()
	b, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, string(b)
}

// post submits a form and follows the redirect back to the page.
func (e *testEnv) post(t *testing.T, path string, form url.Values) (int, string) {
	t.Helper()
	resp, err := e.c.PostForm(e.srv.URL+path, form)
	if err != nil {
		t.Fatalf("POST %s: %v", path, err)
	}
	defer resp.Body.Close()
	b, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, string(b)
}

func TestHealthz(t *testing.T) {
	e := newEnv(t, envOpts{})
	code, body := e.get(t, "/healthz")
	if code != http.StatusOK || body != "ok" {
		t.Fatalf("healthz = %d %q", code, body)
	}
}

func TestIPLimiter_RejectsAfterBurst(t *testing.T) {
	l := NewIPLimiter(0.001, 2)
	h := RateLimit(l)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, req)
		codes = append(codes, rr.Code)
	}
	if codes[0] != 204 || codes[1] != 204 || codes[2] != http.StatusTooManyRequests {
		t.Fatalf("codes = %v", codes)
	}

	// another client has its own bucket
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.2:1234"
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	if rr.Code != 204 {
		t.Fatalf("second client got %d", rr.Code)
	}
}

func TestRateLimit_IgnoresForwardedHeadersFromPeer(t *testing.T) {
	l := NewIPLimiter(0.001, 2)
	h := RateLimit(l)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	limited := 0
	for i := 0; i < 50; i++ {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		req.Header.Set("X-Forwarded-For", fmt.Sprintf("203.0.113.%d", i))
		req.Header.Set("X-Real-IP", fmt.Sprintf("198.51.100.%d", i))
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, req)
		if rr.Code == http.StatusTooManyRequests {
			limited++
		}
	}
	if limited != 48 {
		t.Fatalf("limited = %d, want 48", limited)
	}
	if n := l.Clients(); n != 1 {
		t.Fatalf("buckets = %d, want 1", n)
	}
}

func TestServer_TrustProxyHonoursRealIP(t *testing.T) {
	hit := func(s *Server, realIP string) int {
		req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
		req.RemoteAddr = "10.0.0.9:5555"
		req.Header.Set("X-Real-IP", realIP)
		rr := httptest.NewRecorder()
		s.Mux().ServeHTTP(rr, req)
		return rr.Code
	}

	direct := New(Options{RateLimitRPS: 0.001, RateBurst: 1})
	direct.MountHandlers(&Handlers{Theme: theme.Default()})
	if hit(direct, "192.0.2.1") != http.StatusOK || hit(direct, "192.0.2.2") != http.StatusTooManyRequests {
		t.Fatal("without a trusted proxy one peer must share a bucket")
	}

	proxied := New(Options{RateLimitRPS: 0.001, RateBurst: 1, TrustProxy: true})
	proxied.MountHandlers(&Handlers{Theme: theme.Default()})
	if hit(proxied, "192.0.2.1") != http.StatusOK || hit(proxied, "192.0.2.2") != http.StatusOK {
		t.Fatal("behind a trusted proxy each forwarded client gets a bucket")
	}
	if hit(proxied, "192.0.2.1") != http.StatusTooManyRequests {
		t.Fatal("forwarded client should still be limited")
	}
}

func TestProblemJSON(t *testing.T) {
	rr := httptest.NewRecorder()
	writeProblem(rr, http.StatusNotFound, "Not Found", "hotel not found")
	if ct := rr.Header().Get("Content-Type"); ct != "application/problem+json" {
		t.Fatalf("content type = %q", ct)
	}
	var p problem
	if err := json.NewDecoder(rr.Body).Decode(&p); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if p.Status != 404 || p.Detail != "hotel not found" {
		t.Fatalf("problem = %+v", p)
	}
}

func TestCalcETag_StableAndWeak(t *testing.T) {
	a, _ := calcETagAndBody(map[string]int{"a": 1})
	b, _ := calcETagAndBody(map[string]int{"a": 1})
	if a != b || !strings.HasPrefix(a, `W/"`) {
		t.Fatalf("etags %q %q", a, b)
	}
}

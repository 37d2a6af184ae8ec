package shared

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"APP_ENV", "CATALOG_SOURCE", "CACHE_TTL_SECONDS", "CORS_ORIGINS", "STORYBOARD_ROUTES", "GRID_APPLY_FILTERS", "SEED_WORKERS", "TRUST_PROXY"} {
		t.Setenv(k, "")
	}
	c := Load()
	if c.AppEnv != "prod" || c.HTTPAddr != ":8080" {
		t.Fatalf("unexpected defaults: %+v", c)
	}
	if c.CatalogSource != CatalogMemory {
		t.Fatalf("catalog source = %q", c.CatalogSource)
	}
	if c.CacheTTL != 900*time.Second || c.SessionTTL != 24*time.Hour {
		t.Fatalf("ttls = %v / %v", c.CacheTTL, c.SessionTTL)
	}
	if c.StoryboardRoutes || c.GridApplyFilters || c.TrustProxy {
		t.Fatal("flags should default off")
	}
	if len(c.CORSOrigins) != 1 || c.CORSOrigins[0] != "*" {
		t.Fatalf("cors = %v", c.CORSOrigins)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("CATALOG_SOURCE", "MySQL")
	t.Setenv("STORYBOARD_ROUTES", "true")
	t.Setenv("GRID_APPLY_FILTERS", "1")
	t.Setenv("CORS_ORIGINS", "https://a.example, ,https://b.example")
	t.Setenv("RATE_LIMIT_RPS", "2.5")
	t.Setenv("SEED_WORKERS", "0")
	t.Setenv("TRUST_PROXY", "true")

	c := Load()
	if c.CatalogSource != CatalogMySQL {
		t.Fatalf("catalog source = %q", c.CatalogSource)
	}
	if !c.StoryboardRoutes || !c.GridApplyFilters || !c.TrustProxy {
		t.Fatal("flags should be on")
	}
	if len(c.CORSOrigins) != 2 || c.CORSOrigins[1] != "https://b.example" {
		t.Fatalf("cors = %v", c.CORSOrigins)
	}
	if c.RateLimitRPS != 2.5 {
		t.Fatalf("rps = %v", c.RateLimitRPS)
	}
	if c.SeedWorkers != 1 {
		t.Fatalf("seed workers = %d", c.SeedWorkers)
	}
}

func TestLoad_UnknownCatalogFallsBack(t *testing.T) {
	t.Setenv("CATALOG_SOURCE", "postgres")
	if c := Load(); c.CatalogSource != CatalogMemory {
		t.Fatalf("catalog source = %q", c.CatalogSource)
	}
}

package shared

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

const (
	CatalogMemory = "memory"
	CatalogMySQL  = "mysql"
)

type Config struct {
	AppEnv      string
	LogLevel    string
	HTTPAddr    string
	MetricsAddr string

	CatalogSource string // memory|mysql
	MySQLDSN      string

	RedisAddr string
	RedisDB   int
	RedisPass string

	CacheTTL   time.Duration
	SessionTTL time.Duration

	CORSOrigins  []string
	RateLimitRPS float64
	RateBurst    int
	TrustProxy   bool
	ThemeFile    string

	StoryboardRoutes bool
	GridApplyFilters bool
	SeedWorkers      int
}

// Load reads configuration from the environment. A .env file in the working
// directory is loaded first; real environment variables win over it.
func Load() Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Warn().Err(err).Msg("could not read .env")
	}

	c := Config{
		AppEnv:      env("APP_ENV", "prod"),
		LogLevel:    env("LOG_LEVEL", "info"),
		HTTPAddr:    env("HTTP_ADDR", ":8080"),
		MetricsAddr: env("METRICS_ADDR", ""),

		CatalogSource: strings.ToLower(env("CATALOG_SOURCE", CatalogMemory)),
		MySQLDSN:      env("MYSQL_DSN", "root:root@tcp(localhost:3306)/staybook?parseTime=true&charset=utf8mb4&loc=UTC"),

		RedisAddr: env("REDIS_ADDR", "localhost:6379"),
		RedisPass: env("REDIS_PASSWORD", ""),
		RedisDB:   atoi("REDIS_DB", 0),

		CacheTTL:   time.Duration(atoi("CACHE_TTL_SECONDS", 900)) * time.Second,
		SessionTTL: time.Duration(atoi("SESSION_TTL_SECONDS", 86400)) * time.Second,

		CORSOrigins:  list("CORS_ORIGINS", []string{"*"}),
		RateLimitRPS: atof("RATE_LIMIT_RPS", 20),
		RateBurst:    atoi("RATE_LIMIT_BURST", 40),
		TrustProxy:   flag("TRUST_PROXY", false),
		ThemeFile:    env("THEME_FILE", ""),

		StoryboardRoutes: flag("STORYBOARD_ROUTES", false),
		GridApplyFilters: flag("GRID_APPLY_FILTERS", false),
		SeedWorkers:      atoi("SEED_WORKERS", 4),
	}
	if c.CatalogSource != CatalogMemory && c.CatalogSource != CatalogMySQL {
		log.Warn().Str("catalog_source", c.CatalogSource).Msg("unknown CATALOG_SOURCE, using memory")
		c.CatalogSource = CatalogMemory
	}
	if c.SeedWorkers < 1 {
		c.SeedWorkers = 1
	}
	return c
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func atoi(k string, def int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func atof(k string, def float64) float64 {
	if v := os.Getenv(k); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}

func flag(k string, def bool) bool {
	if v := os.Getenv(k); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

func list(k string, def []string) []string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	var out []string
	for _, p := range strings.Split(v, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}

package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"

	server "staybook/internal/adapters/http_server"
	"staybook/internal/adapters/observability"
	redisad "staybook/internal/adapters/redis"
	"staybook/internal/app"
	"staybook/internal/clock"
	"staybook/internal/domain"
	"staybook/internal/shared"
	"staybook/internal/storage/memory"
	mysqlrepo "staybook/internal/storage/mysql"
	"staybook/internal/theme"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv, cfg.LogLevel)

	reg := observability.InitRegistry()
	observability.Serve(cfg.MetricsAddr, reg)

	repo, closeRepo := openCatalog(ctx, cfg)
	defer closeRepo()

	cache := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	defer cache.Close()
	if err := cache.Ping(ctx); err != nil {
		log.Warn().Err(err).Str("addr", cfg.RedisAddr).Msg("redis unreachable; sessions and cache degrade to per-request state")
	}

	th, err := theme.Load(cfg.ThemeFile)
	if err != nil {
		log.Warn().Err(err).Str("file", cfg.ThemeFile).Msg("theme override ignored")
	}

	clk := clock.NewSystem()
	q := app.NewQueryService(repo, cache, cfg.CacheTTL)
	sessions := app.NewSessionService(cache, cfg.SessionTTL, clk)

	// http
	srv := server.New(server.Options{
		CORSOrigins:  cfg.CORSOrigins,
		RateLimitRPS: cfg.RateLimitRPS,
		RateBurst:    cfg.RateBurst,
		TrustProxy:   cfg.TrustProxy,
	})
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountHandlers(&server.Handlers{Q: q, Theme: th, Clock: clk})

	pages, err := server.NewPages(server.PagesConfig{
		Queries:      q,
		Sessions:     sessions,
		Theme:        th,
		ApplyFilters: cfg.GridApplyFilters,
		SecureCookie: cfg.AppEnv != "dev" && cfg.AppEnv != "development",
	})
	if err != nil {
		log.Fatal().Err(err).Msg("templates failed to load")
	}
	srv.MountPages(pages)
	if cfg.StoryboardRoutes {
		srv.MountStoryboard(pages)
		log.Info().Msg("storyboard routes enabled")
	}

	httpSrv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           srv.Mux(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpSrv.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("http shutdown failed")
		}
	}()

	log.Info().
		Str("addr", cfg.HTTPAddr).
		Str("catalog", cfg.CatalogSource).
		Bool("grid_apply_filters", cfg.GridApplyFilters).
		Msg("site listening")
	if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Err(err).Msg("http server failed")
	}
	log.Info().Msg("site stopped")
}

// openCatalog picks the hotel repository. The memory catalog needs no
// infrastructure; the MySQL one is migrated on start.
func openCatalog(ctx context.Context, cfg shared.Config) (domain.HotelRepository, func()) {
	if cfg.CatalogSource != shared.CatalogMySQL {
		log.Info().Msg("serving the built-in sample catalog")
		return memory.NewSeeded(), func() {}
	}

	db, err := sql.Open("mysql", cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("sql.Open failed")
	}
	if err := db.PingContext(ctx); err != nil {
		log.Fatal().Err(err).Msg("db.Ping failed")
	}
	log.Info().Msg("database connection ok")
	if err := mysqlrepo.Migrate(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("migrations failed")
	}
	return mysqlrepo.New(db), func() { _ = db.Close() }
}

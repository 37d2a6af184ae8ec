package main

import (
	"context"
	"database/sql"
	"sync"
	"sync/atomic"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"

	"staybook/internal/adapters/observability"
	redisad "staybook/internal/adapters/redis"
	"staybook/internal/app"
	"staybook/internal/catalog"
	"staybook/internal/domain"
	"staybook/internal/shared"
	mysqlrepo "staybook/internal/storage/mysql"
)

// seeder mirrors the built-in catalog into MySQL so the site can run with
// CATALOG_SOURCE=mysql.
func main() {
	ctx := context.Background()
	cfg := shared.Load()

	// 1) initialize global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv, cfg.LogLevel)

	hotels := catalog.All()
	log.Info().
		Int("workers", cfg.SeedWorkers).
		Int("hotels", len(hotels)).
		Msg("seeder starting")

	db, err := sql.Open("mysql", cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("sql.Open failed")
	}
	defer db.Close()
	if err := db.PingContext(ctx); err != nil {
		log.Fatal().Err(err).Msg("db.Ping failed")
	}
	log.Info().Msg("db ping ok")

	if err := mysqlrepo.Migrate(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("migrations failed")
	}

	cache := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	defer cache.Close()

	seed := app.NewSeedService(mysqlrepo.New(db), cache)
	failed := run(ctx, seed, hotels, cfg.SeedWorkers)
	if failed > 0 {
		log.Fatal().Int64("failed", failed).Msg("seeding finished with errors")
	}
	log.Info().Msg("seeding completed")
}

// run seeds every hotel with at most workers in flight and returns the number
// of failures.
func run(ctx context.Context, seed *app.SeedService, hotels []domain.HotelDetail, workers int) int64 {
	sem := semaphore.NewWeighted(int64(workers))
	var (
		wg     sync.WaitGroup
		failed atomic.Int64
	)

	for _, h := range hotels {
		// acquire before launching the goroutine; release inside it
		if err := sem.Acquire(ctx, 1); err != nil {
			log.Error().Err(err).Msg("semaphore acquire failed")
			failed.Add(1)
			break
		}

		wg.Add(1)
		go func(h domain.HotelDetail) {
			defer wg.Done()
			defer sem.Release(1)

			if err := seed.SeedHotel(ctx, h); err != nil {
				log.Warn().Str("id", h.ID).Err(err).Msg("seed failed")
				failed.Add(1)
				return
			}
			log.Info().Str("id", h.ID).Int("rooms", len(h.Rooms)).Int("reviews", len(h.Reviews)).Msg("seed ok")
		}(h)
	}

	wg.Wait()
	return failed.Load()
}

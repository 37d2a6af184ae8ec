package redisad

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"github.com/sony/gobreaker"

	"staybook/internal/adapters/observability"
)

// Cache is a JSON cache over Redis. Calls go through a circuit breaker so a
// dead Redis costs one fast error instead of a dial timeout per request.
type Cache struct {
	c  *redis.Client
	cb *gobreaker.CircuitBreaker
}

func New(addr, pass string, db int) *Cache {
	return NewWithClient(redis.NewClient(&redis.Options{Addr: addr, Password: pass, DB: db}))
}

func NewWithClient(c *redis.Client) *Cache {
	return &Cache{c: c, cb: CircuitBreaker("redis")}
}

// CircuitBreaker trips after three consecutive failures and probes again
// after ten seconds. A cache miss is not a failure.
func CircuitBreaker(name string) *gobreaker.CircuitBreaker {
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        name,
		MaxRequests: 1,
		Timeout:     10 * time.Second,
		Interval:    0,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures > 2
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Warn().Str("breaker", name).Str("from", from.String()).Str("to", to.String()).Msg("circuit breaker state change")
			observability.ObserveBreaker(name, to.String())
		},
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, redis.Nil)
		},
	})
}

func (r *Cache) Get(ctx context.Context, key string, dst any) (bool, error) {
	res, err := r.cb.Execute(func() (interface{}, error) {
		return r.c.Get(ctx, key).Bytes()
	})
	if errors.Is(err, redis.Nil) {
		observability.ObserveCache("redis", "miss")
		return false, nil
	}
	if err != nil {
		observability.ObserveCache("redis", "error")
		return false, err
	}
	observability.ObserveCache("redis", "hit")
	return true, json.Unmarshal(res.([]byte), dst)
}

func (r *Cache) Set(ctx context.Context, key string, v any, ttlSec int) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	_, err = r.cb.Execute(func() (interface{}, error) {
		return nil, r.c.Set(ctx, key, b, time.Duration(ttlSec)*time.Second).Err()
	})
	if err != nil {
		observability.ObserveCache("redis", "error")
		return err
	}
	observability.ObserveCache("redis", "set")
	return nil
}

func (r *Cache) Del(ctx context.Context, key string) error {
	_, err := r.cb.Execute(func() (interface{}, error) {
		return nil, r.c.Del(ctx, key).Err()
	})
	if err != nil {
		observability.ObserveCache("redis", "error")
		return err
	}
	observability.ObserveCache("redis", "del")
	return nil
}

// Ping reports whether Redis answers; used by the health check.
func (r *Cache) Ping(ctx context.Context) error {
	_, err := r.cb.Execute(func() (interface{}, error) {
		return nil, r.c.Ping(ctx).Err()
	})
	return err
}

func (r *Cache) Close() error { return r.c.Close() }

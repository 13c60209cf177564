package ratelimit

import (
	"context"
	"fmt"
	"time"

	portssvc "github.com/SscSPs/relief_ledger_app/internal/core/ports/services"
	"github.com/redis/go-redis/v9"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
	sredis "github.com/ulule/limiter/v3/drivers/store/redis"
)

// Limiter adapts a ulule limiter to the RateLimiter port. The window for a key opens on
// its first hit and lasts one rate period.
type Limiter struct {
	lim *limiter.Limiter
}

var _ portssvc.RateLimiter = (*Limiter)(nil)

// NewMemoryLimiter keeps counters in process. Expired windows are swept every sweepInterval.
func NewMemoryLimiter(rate limiter.Rate, prefix string, sweepInterval time.Duration) *Limiter {
	store := memory.NewStoreWithOptions(limiter.StoreOptions{
		Prefix:          prefix,
		CleanUpInterval: sweepInterval,
	})
	return &Limiter{lim: limiter.New(store, rate)}
}

// NewRedisLimiter shares counters across instances through Redis.
func NewRedisLimiter(client *redis.Client, rate limiter.Rate, prefix string) (*Limiter, error) {
	store, err := sredis.NewStoreWithOptions(client, limiter.StoreOptions{Prefix: prefix})
	if err != nil {
		return nil, fmt.Errorf("create redis limiter store: %w", err)
	}
	return &Limiter{lim: limiter.New(store, rate)}, nil
}

// Allow counts one request for key and reports whether it is within the limit.
func (l *Limiter) Allow(ctx context.Context, key string) (bool, error) {
	lctx, err := l.lim.Get(ctx, key)
	if err != nil {
		return false, fmt.Errorf("rate limit lookup for %q: %w", key, err)
	}
	return !lctx.Reached, nil
}

package lock

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/relief_ledger_app/internal/apperrors"
	portssvc "github.com/SscSPs/relief_ledger_app/internal/core/ports/services"
	"github.com/bsm/redislock"
)

const keyNamespace = "relief:lock:"

// RedisLocker obtains short-lived distributed locks through redislock.
type RedisLocker struct {
	client *redislock.Client
	retry  redislock.RetryStrategy
}

// NewRedisLocker creates a locker that retries for roughly three seconds before giving up.
func NewRedisLocker(client redislock.RedisClient) *RedisLocker {
	return &RedisLocker{
		client: redislock.New(client),
		retry:  redislock.LimitRetry(redislock.LinearBackoff(100*time.Millisecond), 30),
	}
}

var _ portssvc.Locker = (*RedisLocker)(nil)

func (l *RedisLocker) Obtain(ctx context.Context, key string, ttl time.Duration) (func(context.Context) error, error) {
	lk, err := l.client.Obtain(ctx, keyNamespace+key, ttl, &redislock.Options{RetryStrategy: l.retry})
	if err != nil {
		if errors.Is(err, redislock.ErrNotObtained) {
			return nil, fmt.Errorf("%w: %s is being processed", apperrors.ErrConflict, key)
		}
		return nil, fmt.Errorf("obtain lock %s: %w", key, err)
	}
	return func(ctx context.Context) error {
		if err := lk.Release(ctx); err != nil && !errors.Is(err, redislock.ErrLockNotHeld) {
			return err
		}
		return nil
	}, nil
}

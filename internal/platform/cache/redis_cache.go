package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	portssvc "github.com/SscSPs/relief_ledger_app/internal/core/ports/services"
	"github.com/redis/go-redis/v9"
)

const keyNamespace = "relief:view"

type cmdable interface {
	HGet(ctx context.Context, key, field string) *redis.StringCmd
	HSet(ctx context.Context, key string, values ...any) *redis.IntCmd
	Expire(ctx context.Context, key string, expiration time.Duration) *redis.BoolCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
	Get(ctx context.Context, key string) *redis.StringCmd
	Incr(ctx context.Context, key string) *redis.IntCmd
}

// RedisViewCache keeps each view as a Redis hash so a whole view can be dropped with one DEL.
type RedisViewCache struct {
	store cmdable
	ttl   time.Duration
}

// NewRedisViewCache creates a view cache whose entries expire after ttl.
func NewRedisViewCache(client *redis.Client, ttl time.Duration) *RedisViewCache {
	return &RedisViewCache{store: client, ttl: ttl}
}

var _ portssvc.ViewCache = (*RedisViewCache)(nil)

func viewKey(view string) string {
	return keyNamespace + ":" + view
}

// generationKey lives outside the view hash so dropping the view keeps the counter.
func generationKey(view string) string {
	return keyNamespace + ":gen:" + view
}

func (c *RedisViewCache) Get(ctx context.Context, view, field string, dest any) (bool, error) {
	raw, err := c.store.HGet(ctx, viewKey(view), field).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("redis hget %s/%s: %w", view, field, err)
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return false, fmt.Errorf("decode cached %s/%s: %w", view, field, err)
	}
	return true, nil
}

func (c *RedisViewCache) Set(ctx context.Context, view, field string, value any) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %s/%s: %w", view, field, err)
	}
	key := viewKey(view)
	if err := c.store.HSet(ctx, key, field, payload).Err(); err != nil {
		return fmt.Errorf("redis hset %s/%s: %w", view, field, err)
	}
	if c.ttl > 0 {
		if err := c.store.Expire(ctx, key, c.ttl).Err(); err != nil {
			return fmt.Errorf("redis expire %s: %w", view, err)
		}
	}
	return nil
}

func (c *RedisViewCache) Generation(ctx context.Context, view string) (int64, error) {
	gen, err := c.store.Get(ctx, generationKey(view)).Int64()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, nil
		}
		return 0, fmt.Errorf("redis get generation %s: %w", view, err)
	}
	return gen, nil
}

// Invalidate bumps each view's generation, then drops its hash. The bump comes first so a
// reader that loaded before the mutation writes under a generation nobody reads any more.
func (c *RedisViewCache) Invalidate(ctx context.Context, views ...string) error {
	if len(views) == 0 {
		return nil
	}
	keys := make([]string, len(views))
	var incrErr error
	for i, v := range views {
		if err := c.store.Incr(ctx, generationKey(v)).Err(); err != nil && incrErr == nil {
			incrErr = fmt.Errorf("redis incr generation %s: %w", v, err)
		}
		keys[i] = viewKey(v)
	}
	if err := c.store.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("redis del views: %w", err)
	}
	return incrErr
}

package services

import (
	"context"
	"time"
)

// ViewCache stores rendered read views. Each view is a namespace of fields that is
// dropped as a whole by Invalidate.
type ViewCache interface {
	// Get decodes a cached field into dest and reports whether it was present.
	Get(ctx context.Context, view, field string, dest any) (bool, error)
	Set(ctx context.Context, view, field string, value any) error
	// Generation returns the view's invalidation counter. Invalidate bumps it before
	// dropping the view, so fields keyed by the generation read before loading are never
	// served after a later invalidation.
	Generation(ctx context.Context, view string) (int64, error)
	Invalidate(ctx context.Context, views ...string) error
}

// RateLimiter decides whether one more request for key fits in its window.
type RateLimiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

// Locker hands out short exclusive locks keyed by string.
type Locker interface {
	// Obtain blocks briefly for the lock and returns a release func.
	// It returns apperrors.ErrConflict when the lock stays held by someone else.
	Obtain(ctx context.Context, key string, ttl time.Duration) (release func(context.Context) error, err error)
}

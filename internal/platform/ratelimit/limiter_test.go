package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ulule/limiter/v3"
)

func TestMemoryLimiter_SixthRequestRejected(t *testing.T) {
	ctx := context.Background()
	l := NewMemoryLimiter(limiter.Rate{Period: 60 * time.Second, Limit: 5}, "verify-test", time.Minute)

	for i := 1; i <= 5; i++ {
		allowed, err := l.Allow(ctx, "203.0.113.7")
		require.NoError(t, err)
		assert.True(t, allowed, "request %d should be allowed", i)
	}

	allowed, err := l.Allow(ctx, "203.0.113.7")
	require.NoError(t, err)
	assert.False(t, allowed, "6th request within the window must be rejected")

	// Other clients have their own window.
	allowed, err = l.Allow(ctx, "198.51.100.2")
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestMemoryLimiter_WindowExpires(t *testing.T) {
	ctx := context.Background()
	l := NewMemoryLimiter(limiter.Rate{Period: 50 * time.Millisecond, Limit: 1}, "expiry-test", 10*time.Millisecond)

	allowed, err := l.Allow(ctx, "client")
	require.NoError(t, err)
	assert.True(t, allowed)

	allowed, err = l.Allow(ctx, "client")
	require.NoError(t, err)
	assert.False(t, allowed)

	time.Sleep(120 * time.Millisecond)

	allowed, err = l.Allow(ctx, "client")
	require.NoError(t, err)
	assert.True(t, allowed)
}

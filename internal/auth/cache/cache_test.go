package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/aussiebroadwan/pahiram/internal/auth/cache"
	"github.com/stretchr/testify/require"
)

func TestMemory(t *testing.T) {
	ctx := context.Background()
	c := cache.NewMemory("pahiram", time.Minute)
	t.Cleanup(func() { _ = c.Close() })

	_, err := c.Get(ctx, "role:1")
	require.ErrorIs(t, err, cache.ErrNotFound)

	require.NoError(t, c.Set(ctx, "role:1", "BORROWER", 0))
	v, err := c.Get(ctx, "role:1")
	require.NoError(t, err)
	require.Equal(t, "BORROWER", v)

	require.NoError(t, c.Delete(ctx, "role:1"))
	_, err = c.Get(ctx, "role:1")
	require.ErrorIs(t, err, cache.ErrNotFound)

	require.NoError(t, c.Ping(ctx))
}

func TestMemoryExpiry(t *testing.T) {
	ctx := context.Background()
	c := cache.NewMemory("", time.Minute)

	require.NoError(t, c.Set(ctx, "k", "v", 20*time.Millisecond))
	require.Eventually(t, func() bool {
		_, err := c.Get(ctx, "k")
		return err != nil
	}, time.Second, 10*time.Millisecond)
}

func TestNewDefaultsToMemory(t *testing.T) {
	c, err := cache.New(context.Background(), cache.Config{Prefix: "x"})
	require.NoError(t, err)
	require.IsType(t, &cache.Memory{}, c)
}

func TestNewRejectsBadRedisURL(t *testing.T) {
	_, err := cache.New(context.Background(), cache.Config{RedisURL: "::not a url"})
	require.Error(t, err)
}

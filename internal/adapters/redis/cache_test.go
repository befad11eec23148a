package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/aretw0/abacus/internal/adapters/redis"
	"github.com/aretw0/abacus/pkg/ports"
	backend "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T) (*miniredis.Miniredis, *backend.Client) {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("Failed to start miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	return mr, backend.NewClient(&backend.Options{
		Addr: mr.Addr(),
	})
}

func TestRedisCache_Contract(t *testing.T) {
	_, client := newTestClient(t)
	ports.RunCacheContract(t, redis.NewFromClient(client))
}

func TestRedisCache_Prefix(t *testing.T) {
	mr, client := newTestClient(t)
	cache := redis.NewFromClient(client, redis.WithPrefix("test:"))

	ctx := context.Background()
	require.NoError(t, cache.Set(ctx, "arabic:42", "XLII"))

	got, err := mr.Get("test:arabic:42")
	require.NoError(t, err)
	assert.Equal(t, "XLII", got)
}

func TestRedisCache_TTL(t *testing.T) {
	mr, client := newTestClient(t)
	cache := redis.NewFromClient(client, redis.WithTTL(time.Minute))

	ctx := context.Background()
	require.NoError(t, cache.Set(ctx, "arabic:1", "I"))

	// Entry expires once the clock advances past the TTL.
	mr.FastForward(2 * time.Minute)

	_, err := cache.Get(ctx, "arabic:1")
	assert.ErrorIs(t, err, ports.ErrCacheMiss)
}

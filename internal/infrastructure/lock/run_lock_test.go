package lock

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalRunLock(t *testing.T) {
	ctx := context.Background()
	l := NewLocalRunLock()

	release, ok, err := l.TryAcquire(ctx)
	require.NoError(t, err)
	require.True(t, ok)

	_, ok, err = l.TryAcquire(ctx)
	require.NoError(t, err)
	assert.False(t, ok, "second acquire must fail while held")

	release()
	release()

	release2, ok, err := l.TryAcquire(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	release2()
}

// Needs a reachable Redis, e.g. REDIS_ADDR=localhost:6379.
func TestRedisRunLock(t *testing.T) {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		t.Skip("REDIS_ADDR not set")
	}
	ctx := context.Background()
	rdb := redis.NewClient(&redis.Options{Addr: addr})
	defer rdb.Close()

	key := "outreach:test:" + uuid.NewString()
	defer rdb.Del(ctx, key)

	a := NewRedisRunLock(rdb, key, time.Minute)
	b := NewRedisRunLock(rdb, key, time.Minute)

	release, ok, err := a.TryAcquire(ctx)
	require.NoError(t, err)
	require.True(t, ok)

	_, ok, err = b.TryAcquire(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	release()

	releaseB, ok, err := b.TryAcquire(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	releaseB()
}

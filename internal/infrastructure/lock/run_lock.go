// Package lock keeps two workflow runs from overlapping.
package lock

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"

	"mbg_outreach/internal/usecase/interfaces"
)

// LocalRunLock guards a single process.
type LocalRunLock struct {
	mu sync.Mutex
}

var _ interfaces.IRunLock = (*LocalRunLock)(nil)

func NewLocalRunLock() *LocalRunLock {
	return &LocalRunLock{}
}

func (l *LocalRunLock) TryAcquire(context.Context) (func(), bool, error) {
	if !l.mu.TryLock() {
		return nil, false, nil
	}
	var once sync.Once
	return func() { once.Do(l.mu.Unlock) }, true, nil
}

// releaseScript deletes the key only while it still holds our token, so an
// expired lock taken over by another run is left alone.
var releaseScript = redis.NewScript(`
if redis.call("get", KEYS[1]) == ARGV[1] then
	return redis.call("del", KEYS[1])
end
return 0
`)

// RedisRunLock guards every replica sharing a Redis instance. The key expires
// after ttl so a crashed run cannot hold it forever.
type RedisRunLock struct {
	rdb *redis.Client
	key string
	ttl time.Duration
}

var _ interfaces.IRunLock = (*RedisRunLock)(nil)

func NewRedisRunLock(rdb *redis.Client, key string, ttl time.Duration) *RedisRunLock {
	return &RedisRunLock{rdb: rdb, key: key, ttl: ttl}
}

func (l *RedisRunLock) TryAcquire(ctx context.Context) (func(), bool, error) {
	token := uuid.NewString()
	ok, err := l.rdb.SetNX(ctx, l.key, token, l.ttl).Result()
	if err != nil {
		return nil, false, fmt.Errorf("acquire run lock: %w", err)
	}
	if !ok {
		return nil, false, nil
	}

	var once sync.Once
	release := func() {
		once.Do(func() {
			// Release must work even when the run's context was cancelled.
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = releaseScript.Run(ctx, l.rdb, []string{l.key}, token).Err()
		})
	}
	return release, true, nil
}

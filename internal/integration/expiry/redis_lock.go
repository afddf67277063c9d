// Package expiry runs the scheduled expiry check in the background.
package expiry

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/expire-tracker/backend/internal/application/adapter"
)

const lockKey = "expire-tracker:expiry-check:lock"

// RedisRunLock implements adapter.RunLock with a Redis SET NX key. The token
// ties Release to the acquisition that created the key, so an instance whose
// lock expired cannot release a newer holder's lock.
type RedisRunLock struct {
	client *redis.Client
	token  string
}

// NewRedisRunLock creates a new Redis-backed run lock.
func NewRedisRunLock(client *redis.Client) *RedisRunLock {
	return &RedisRunLock{
		client: client,
		token:  uuid.NewString(),
	}
}

// Acquire attempts to take the lock for ttl. Returns false without error when
// another run already holds it.
func (l *RedisRunLock) Acquire(ctx context.Context, ttl time.Duration) (bool, error) {
	ok, err := l.client.SetNX(ctx, lockKey, l.token, ttl).Result()
	if err != nil {
		return false, fmt.Errorf("failed to acquire run lock: %w", err)
	}
	return ok, nil
}

// Release deletes the lock only if this instance still holds it.
func (l *RedisRunLock) Release(ctx context.Context) error {
	const script = `
if redis.call("get", KEYS[1]) == ARGV[1] then
	return redis.call("del", KEYS[1])
end
return 0
`
	if err := l.client.Eval(ctx, script, []string{lockKey}, l.token).Err(); err != nil {
		return fmt.Errorf("failed to release run lock: %w", err)
	}
	return nil
}

// Ensure implementation satisfies the interface.
var _ adapter.RunLock = (*RedisRunLock)(nil)

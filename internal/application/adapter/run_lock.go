// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"
)

// RunLock is an advisory lock guarding the expiry check against overlapping
// runs. Acquire returns false without error when another run holds the lock.
type RunLock interface {
	Acquire(ctx context.Context, ttl time.Duration) (bool, error)
	Release(ctx context.Context) error
}

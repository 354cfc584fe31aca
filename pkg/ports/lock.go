package ports

import (
	"context"
	"time"
)

// UnlockFunc releases a previously acquired lock.
type UnlockFunc func(ctx context.Context) error

// SessionLocker guards a session against concurrent hosts. Implementations
// block until the lock is acquired or the context is cancelled.
type SessionLocker interface {
	Lock(ctx context.Context, session string, ttl time.Duration) (UnlockFunc, error)
}

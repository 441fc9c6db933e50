// Package lock provides a Redis-backed mutual-exclusion primitive. The
// reservation service holds a per-court lock across its check-then-act
// sequence so two overlapping booking attempts on the same court cannot
// both pass the availability check.
package lock

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

var (
	ErrNotAcquired = errors.New("lock not acquired")
	ErrNotOwned    = errors.New("lock not owned")
)

// releaseScript deletes the key only when the caller still owns it, so
// an expired lock re-acquired by someone else is never released by us.
const releaseScript = `
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
else
	return 0
end
`

// Lock is one held lease. Release it when the guarded section ends; the
// TTL bounds the damage if the holder dies first.
type Lock struct {
	client *redis.Client
	key    string
	value  string
}

type Manager struct {
	client *redis.Client
}

func NewManager(client *redis.Client) *Manager {
	return &Manager{client: client}
}

// Acquire takes the named lock or fails immediately with ErrNotAcquired.
func (m *Manager) Acquire(ctx context.Context, name string, ttl time.Duration) (*Lock, error) {
	key := "lock:" + name
	value := uuid.New().String()

	ok, err := m.client.SetNX(ctx, key, value, ttl).Result()
	if err != nil {
		return nil, fmt.Errorf("acquire lock %s: %w", name, err)
	}
	if !ok {
		return nil, ErrNotAcquired
	}

	return &Lock{client: m.client, key: key, value: value}, nil
}

// AcquireWithRetry retries a contended lock with a fixed delay between
// attempts, giving up after maxRetries or when the context ends.
func (m *Manager) AcquireWithRetry(ctx context.Context, name string, ttl time.Duration, maxRetries int, retryDelay time.Duration) (*Lock, error) {
	var lastErr error
	for i := 0; i < maxRetries; i++ {
		l, err := m.Acquire(ctx, name, ttl)
		if err == nil {
			return l, nil
		}
		if !errors.Is(err, ErrNotAcquired) {
			return nil, err
		}
		lastErr = err
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(retryDelay):
		}
	}
	return nil, lastErr
}

func (l *Lock) Release(ctx context.Context) error {
	result, err := l.client.Eval(ctx, releaseScript, []string{l.key}, l.value).Int()
	if err != nil {
		return fmt.Errorf("release lock: %w", err)
	}
	if result == 0 {
		return ErrNotOwned
	}
	return nil
}

// Package locks provides best-effort distributed single-flight locks over the
// shared key-value store.
//
// A lock is a Redis key "lock:<name>" holding a random fence token with a
// safety TTL. The TTL exists only to recover from crashed holders and must
// exceed the longest legitimate task duration. Release is idempotent and never
// fails on a missing or expired lock; it deletes the key only when the fence
// token still matches.
package locks

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "lock:"

// releaseScript deletes the lock only when the stored fence token matches the
// holder's token, so a release racing safety-TTL expiry never deletes a lock
// acquired by someone else.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// Service acquires and releases named locks.
type Service struct {
	client *redis.Client
}

// NewService creates a lock service over the given Redis client.
func NewService(client *redis.Client) *Service {
	return &Service{client: client}
}

// Lock is a held lock. Release it on every exit path.
type Lock struct {
	service *Service
	name    string
	token   string
}

// Acquire attempts to take the named lock. Non-blocking: a held lock returns
// (nil, false, nil) immediately and nothing needs releasing. safetyTimeout
// must exceed the longest legitimate holder duration.
func (s *Service) Acquire(ctx context.Context, name string, safetyTimeout time.Duration) (*Lock, bool, error) {
	token, err := newToken()
	if err != nil {
		return nil, false, fmt.Errorf("failed to generate lock token: %w", err)
	}

	ok, err := s.client.SetNX(ctx, keyPrefix+name, token, safetyTimeout).Result()
	if err != nil {
		return nil, false, fmt.Errorf("failed to acquire lock %q: %w", name, err)
	}
	if !ok {
		return nil, false, nil
	}
	return &Lock{service: s, name: name, token: token}, true, nil
}

// Release drops the lock. Safe to call multiple times; a release failure is
// logged and never propagates.
func (l *Lock) Release(ctx context.Context) {
	if l == nil {
		return
	}
	if err := releaseScript.Run(ctx, l.service.client, []string{keyPrefix + l.name}, l.token).Err(); err != nil && err != redis.Nil {
		slog.Warn("Lock release failed", "lock", l.name, "error", err)
	}
}

// WithLock runs fn under the named lock. If the lock is already held the
// function is skipped and (false, nil) is returned. The lock is released on
// all exit paths, including a panic in fn.
func (s *Service) WithLock(ctx context.Context, name string, safetyTimeout time.Duration, fn func(context.Context) error) (bool, error) {
	lock, acquired, err := s.Acquire(ctx, name, safetyTimeout)
	if err != nil {
		return false, err
	}
	if !acquired {
		return false, nil
	}
	defer lock.Release(ctx)
	return true, fn(ctx)
}

func newToken() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

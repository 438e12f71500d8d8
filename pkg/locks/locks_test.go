package locks

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) (*Service, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewService(client), mr
}

func TestAcquireAndRelease(t *testing.T) {
	svc, mr := newTestService(t)
	ctx := context.Background()

	lock, acquired, err := svc.Acquire(ctx, "agent_discovery", time.Hour)
	require.NoError(t, err)
	require.True(t, acquired)
	assert.True(t, mr.Exists("lock:agent_discovery"))

	lock.Release(ctx)
	assert.False(t, mr.Exists("lock:agent_discovery"))
}

func TestAcquireHeldLockFails(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	first, acquired, err := svc.Acquire(ctx, "reconciler", time.Hour)
	require.NoError(t, err)
	require.True(t, acquired)
	defer first.Release(ctx)

	second, acquired, err := svc.Acquire(ctx, "reconciler", time.Hour)
	require.NoError(t, err)
	assert.False(t, acquired)
	assert.Nil(t, second)
}

func TestReleaseIsIdempotent(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	lock, acquired, err := svc.Acquire(ctx, "tick", time.Hour)
	require.NoError(t, err)
	require.True(t, acquired)

	lock.Release(ctx)
	assert.NotPanics(t, func() { lock.Release(ctx) })
}

func TestReleaseAfterExpiryDoesNotStealNewHolder(t *testing.T) {
	svc, mr := newTestService(t)
	ctx := context.Background()

	stale, acquired, err := svc.Acquire(ctx, "tick", time.Second)
	require.NoError(t, err)
	require.True(t, acquired)

	// Simulate safety-TTL expiry followed by a new holder.
	mr.FastForward(2 * time.Second)
	fresh, acquired, err := svc.Acquire(ctx, "tick", time.Hour)
	require.NoError(t, err)
	require.True(t, acquired)
	defer fresh.Release(ctx)

	// The stale holder's release must not delete the fresh lock.
	stale.Release(ctx)
	assert.True(t, mr.Exists("lock:tick"))
}

func TestWithLockRunsAndReleases(t *testing.T) {
	svc, mr := newTestService(t)
	ctx := context.Background()

	ran := false
	executed, err := svc.WithLock(ctx, "tick", time.Hour, func(context.Context) error {
		ran = true
		assert.True(t, mr.Exists("lock:tick"))
		return nil
	})
	require.NoError(t, err)
	assert.True(t, executed)
	assert.True(t, ran)
	assert.False(t, mr.Exists("lock:tick"))
}

func TestWithLockSkipsWhenHeld(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	lock, acquired, err := svc.Acquire(ctx, "tick", time.Hour)
	require.NoError(t, err)
	require.True(t, acquired)
	defer lock.Release(ctx)

	executed, err := svc.WithLock(ctx, "tick", time.Hour, func(context.Context) error {
		t.Fatal("must not run while lock is held")
		return nil
	})
	require.NoError(t, err)
	assert.False(t, executed)
}

func TestWithLockReleasesOnError(t *testing.T) {
	svc, mr := newTestService(t)
	ctx := context.Background()

	wantErr := errors.New("tick failed")
	executed, err := svc.WithLock(ctx, "tick", time.Hour, func(context.Context) error {
		return wantErr
	})
	assert.True(t, executed)
	assert.ErrorIs(t, err, wantErr)
	assert.False(t, mr.Exists("lock:tick"))
}

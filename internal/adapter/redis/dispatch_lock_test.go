package redis

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"croevo-console/internal/core/port"
)

func newTestLocker(t *testing.T, ttl time.Duration) (*DispatchLocker, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return NewDispatchLocker(rdb, ttl, slog.New(slog.NewTextHandler(io.Discard, nil))), mr
}

func TestDispatchLockExclusive(t *testing.T) {
	l, mr := newTestLocker(t, time.Minute)
	ctx := context.Background()

	release, err := l.AcquireDispatch(ctx, "c1")
	require.NoError(t, err)
	assert.True(t, mr.Exists(lockKey("c1")))

	_, err = l.AcquireDispatch(ctx, "c1")
	assert.ErrorIs(t, err, port.ErrDispatchInProgress)

	other, err := l.AcquireDispatch(ctx, "c2")
	require.NoError(t, err)
	other()

	release()
	assert.False(t, mr.Exists(lockKey("c1")))

	again, err := l.AcquireDispatch(ctx, "c1")
	require.NoError(t, err)
	again()
}

// A dispatch running well past the lease TTL keeps the lock.
func TestDispatchLockRenewedWhileHeld(t *testing.T) {
	const ttl = 300 * time.Millisecond
	l, mr := newTestLocker(t, ttl)
	ctx := context.Background()
	key := lockKey("c1")

	release, err := l.AcquireDispatch(ctx, "c1")
	require.NoError(t, err)

	for range 5 {
		mr.FastForward(200 * time.Millisecond)
		require.True(t, mr.Exists(key))
		require.Eventually(t, func() bool { return mr.TTL(key) > 150*time.Millisecond },
			time.Second, 5*time.Millisecond)
	}

	_, err = l.AcquireDispatch(ctx, "c1")
	assert.ErrorIs(t, err, port.ErrDispatchInProgress)

	release()
	assert.False(t, mr.Exists(key))

	after, err := l.AcquireDispatch(ctx, "c1")
	require.NoError(t, err)
	after()
}

func TestDispatchLockExpiresWithoutRenewal(t *testing.T) {
	const ttl = 300 * time.Millisecond
	l, mr := newTestLocker(t, ttl)
	key := lockKey("c1")

	release, err := l.AcquireDispatch(context.Background(), "c1")
	require.NoError(t, err)
	release()

	// Leftover from a crashed holder: nothing renews it.
	require.NoError(t, mr.Set(key, "crashed"))
	mr.SetTTL(key, ttl)
	mr.FastForward(2 * ttl)

	next, err := l.AcquireDispatch(context.Background(), "c1")
	require.NoError(t, err)
	next()
}

func TestDispatchLockReleaseKeepsForeignLease(t *testing.T) {
	l, mr := newTestLocker(t, time.Minute)
	key := lockKey("c1")

	release, err := l.AcquireDispatch(context.Background(), "c1")
	require.NoError(t, err)

	// The lease was lost and another dispatcher took the key.
	require.NoError(t, mr.Set(key, "someone-else"))

	release()
	release()

	got, err := mr.Get(key)
	require.NoError(t, err)
	assert.Equal(t, "someone-else", got)
}

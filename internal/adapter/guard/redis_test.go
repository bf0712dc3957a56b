package guard

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testLockKey = "adwatch:test-lock"

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

func newTestRedis(t *testing.T) (*Redis, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedis(client, testLockKey, time.Minute, discard), mr
}

func TestRedisExclusive(t *testing.T) {
	g, mr := newTestRedis(t)
	ctx := context.Background()

	release, ok, err := g.TryAcquire(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.True(t, mr.Exists(testLockKey))
	assert.Equal(t, time.Minute, mr.TTL(testLockKey))

	_, ok, err = g.TryAcquire(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	release()
	assert.False(t, mr.Exists(testLockKey))
	release()

	release2, ok, err := g.TryAcquire(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	release2()
}

func TestRedisStaleReleaseKeepsNewHolder(t *testing.T) {
	g, mr := newTestRedis(t)
	ctx := context.Background()

	stale, ok, err := g.TryAcquire(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	first, err := mr.Get(testLockKey)
	require.NoError(t, err)

	mr.FastForward(2 * time.Minute)
	require.False(t, mr.Exists(testLockKey))

	current, ok, err := g.TryAcquire(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	second, err := mr.Get(testLockKey)
	require.NoError(t, err)
	require.NotEqual(t, first, second)

	stale()
	got, err := mr.Get(testLockKey)
	require.NoError(t, err)
	assert.Equal(t, second, got)

	_, ok, err = g.TryAcquire(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	current()
	assert.False(t, mr.Exists(testLockKey))
}

func TestRedisAcquireError(t *testing.T) {
	g, mr := newTestRedis(t)
	mr.SetError("ERR out of service")

	release, ok, err := g.TryAcquire(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), testLockKey)
	assert.False(t, ok)
	assert.Nil(t, release)
}

package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, client
}

func TestJobLease_IsExclusive(t *testing.T) {
	_, client := setupRedis(t)
	ctx := context.Background()
	first := NewJobLease(client)
	second := NewJobLease(client)

	release, ok, err := first.TryAcquire(ctx, "lock_sweep", time.Minute)
	require.NoError(t, err)
	require.True(t, ok)

	_, ok, err = second.TryAcquire(ctx, "lock_sweep", time.Minute)
	require.NoError(t, err)
	assert.False(t, ok, "second holder must not acquire a held lease")

	_, ok, err = second.TryAcquire(ctx, "expiry_reminder", time.Minute)
	require.NoError(t, err)
	assert.True(t, ok, "leases are per job")

	require.NoError(t, release(ctx))
	_, ok, err = second.TryAcquire(ctx, "lock_sweep", time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestJobLease_ExpiresWithTTL(t *testing.T) {
	mr, client := setupRedis(t)
	ctx := context.Background()
	lease := NewJobLease(client)

	_, ok, err := lease.TryAcquire(ctx, "lock_sweep", time.Minute)
	require.NoError(t, err)
	require.True(t, ok)

	mr.FastForward(2 * time.Minute)

	_, ok, err = lease.TryAcquire(ctx, "lock_sweep", time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestJobLease_StaleReleaseKeepsNewHolder(t *testing.T) {
	mr, client := setupRedis(t)
	ctx := context.Background()
	lease := NewJobLease(client)

	staleRelease, ok, err := lease.TryAcquire(ctx, "lock_sweep", time.Minute)
	require.NoError(t, err)
	require.True(t, ok)

	mr.FastForward(2 * time.Minute)
	_, ok, err = lease.TryAcquire(ctx, "lock_sweep", time.Minute)
	require.NoError(t, err)
	require.True(t, ok)

	require.NoError(t, staleRelease(ctx))
	assert.True(t, mr.Exists(jobLeaseKeyPrefix+"lock_sweep"))
}

func TestJobLease_RedisDown(t *testing.T) {
	mr, client := setupRedis(t)
	mr.Close()

	_, ok, err := NewJobLease(client).TryAcquire(context.Background(), "lock_sweep", time.Minute)
	assert.Error(t, err)
	assert.False(t, ok)
}

func TestLocalJobLease(t *testing.T) {
	release, ok, err := LocalJobLease{}.TryAcquire(context.Background(), "lock_sweep", time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.NoError(t, release(context.Background()))
}

func TestLocalJobLease_DoesNotExcludeOtherHolders(t *testing.T) {
	lease := LocalJobLease{}
	ctx := context.Background()

	_, first, err := lease.TryAcquire(ctx, "subscription-expiry-reminders", time.Minute)
	require.NoError(t, err)
	_, second, err := lease.TryAcquire(ctx, "subscription-expiry-reminders", time.Minute)
	require.NoError(t, err)

	assert.True(t, first)
	assert.True(t, second)
}

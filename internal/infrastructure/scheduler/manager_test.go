package scheduler

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kolhub/kolhub/internal/infrastructure/cache"
	"github.com/kolhub/kolhub/internal/shared/biztime"
	"github.com/kolhub/kolhub/internal/shared/logger"
)

func TestMain(m *testing.M) {
	if err := biztime.Init("UTC"); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

type countingJob struct {
	calls int
	count int
	err   error
}

func (j *countingJob) Execute(context.Context) (int, error) {
	j.calls++
	return j.count, j.err
}

type stubLease struct {
	acquired bool
	err      error
	released int
	ttl      time.Duration
}

func (l *stubLease) TryAcquire(_ context.Context, _ string, ttl time.Duration) (func(context.Context) error, bool, error) {
	l.ttl = ttl
	if l.err != nil || !l.acquired {
		return nil, false, l.err
	}
	return func(context.Context) error {
		l.released++
		return nil
	}, true, nil
}

func newTestManager(t *testing.T, lease Lease) *SchedulerManager {
	t.Helper()
	m, err := NewSchedulerManager(lease, time.Minute, logger.NewNopLogger())
	require.NoError(t, err)
	return m
}

func TestRunOnce_ExecutesAndReleasesLease(t *testing.T) {
	lease := &stubLease{acquired: true}
	job := &countingJob{count: 3}
	m := newTestManager(t, lease)

	ran, err := m.RunOnce(t.Context(), JobLockSweep, job)

	require.NoError(t, err)
	assert.True(t, ran)
	assert.Equal(t, 1, job.calls)
	assert.Equal(t, 1, lease.released)
	assert.Equal(t, time.Minute, lease.ttl)
}

func TestRunOnce_SkipsWhenLeaseHeldElsewhere(t *testing.T) {
	job := &countingJob{}
	m := newTestManager(t, &stubLease{acquired: false})

	ran, err := m.RunOnce(t.Context(), JobLockSweep, job)
	require.NoError(t, err)
	assert.False(t, ran)
	assert.Zero(t, job.calls)
}

func TestRunOnce_SkipsWhenLeaseErrors(t *testing.T) {
	job := &countingJob{}
	m := newTestManager(t, &stubLease{err: errors.New("redis down")})

	ran, err := m.RunOnce(t.Context(), JobExpiryReminders, job)
	assert.Error(t, err)
	assert.False(t, ran)
	assert.Zero(t, job.calls)
}

func TestRunOnce_JobFailureIsReturnedAndReleasesLease(t *testing.T) {
	lease := &stubLease{acquired: true}
	dbErr := errors.New("db gone")
	job := &countingJob{err: dbErr}
	m := newTestManager(t, lease)

	ran, err := m.RunOnce(t.Context(), JobLockSweep, job)
	assert.True(t, ran)
	assert.ErrorIs(t, err, dbErr)
	assert.Equal(t, 1, lease.released)
}

func TestRunOnce_RedisLeaseAllowsOneHolder(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	lease := cache.NewJobLease(client)
	m := newTestManager(t, lease)

	// another instance holds the sweep lease
	release, ok, err := lease.TryAcquire(t.Context(), JobLockSweep, time.Minute)
	require.NoError(t, err)
	require.True(t, ok)

	job := &countingJob{}
	ran, err := m.RunOnce(t.Context(), JobLockSweep, job)
	require.NoError(t, err)
	assert.False(t, ran)
	assert.Zero(t, job.calls)

	require.NoError(t, release(t.Context()))
	ran, err = m.RunOnce(t.Context(), JobLockSweep, job)
	require.NoError(t, err)
	assert.True(t, ran)
	assert.Equal(t, 1, job.calls)
	assert.False(t, mr.Exists("kolhub:job_lease:"+JobLockSweep))
}

func TestRegisterJobs(t *testing.T) {
	m := newTestManager(t, cache.LocalJobLease{})

	require.NoError(t, m.RegisterLockSweepJob(&countingJob{}, "5 0 * * *"))
	require.NoError(t, m.RegisterReminderJob(&countingJob{}, 24*time.Hour))

	names := make([]string, 0, 2)
	for _, j := range m.Jobs() {
		names = append(names, j.Name())
	}
	assert.ElementsMatch(t, []string{JobLockSweep, JobExpiryReminders}, names)
}

func TestRegisterLockSweepJob_InvalidCron(t *testing.T) {
	m := newTestManager(t, cache.LocalJobLease{})
	assert.Error(t, m.RegisterLockSweepJob(&countingJob{}, "not a cron"))
}

func TestStartStop(t *testing.T) {
	m := newTestManager(t, cache.LocalJobLease{})
	require.NoError(t, m.RegisterLockSweepJob(&countingJob{}, "5 0 * * *"))

	assert.NoError(t, m.Stop())
	m.Start()
	m.Start()
	assert.True(t, m.IsStarted())
	assert.NoError(t, m.Stop())
	assert.False(t, m.IsStarted())
}

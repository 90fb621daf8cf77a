// Package cache holds the redis backed helpers.
package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const jobLeaseKeyPrefix = "kolhub:job_lease:"

// releaseScript deletes the key only if this holder still owns it.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// JobLease lets one instance of a multi-instance deployment run a scheduled
// job per interval. The lease expires on its own if the holder dies.
type JobLease struct {
	client *redis.Client
}

func NewJobLease(client *redis.Client) *JobLease {
	return &JobLease{client: client}
}

func (l *JobLease) key(job string) string {
	return jobLeaseKeyPrefix + job
}

// TryAcquire atomically takes the lease with SetNX. The returned release
// func is nil when the lease was not acquired.
func (l *JobLease) TryAcquire(ctx context.Context, job string, ttl time.Duration) (func(context.Context) error, bool, error) {
	token := uuid.NewString()
	key := l.key(job)

	acquired, err := l.client.SetNX(ctx, key, token, ttl).Result()
	if err != nil {
		return nil, false, fmt.Errorf("failed to acquire job lease %s: %w", job, err)
	}
	if !acquired {
		return nil, false, nil
	}

	release := func(ctx context.Context) error {
		if err := releaseScript.Run(ctx, l.client, []string{key}, token).Err(); err != nil {
			return fmt.Errorf("failed to release job lease %s: %w", job, err)
		}
		return nil
	}
	return release, true, nil
}

// LocalJobLease always grants the lease. It is used when redis is not
// configured, so it only coordinates a single instance. The lock sweep is
// idempotent, but every instance running the reminder job mails its own copy.
type LocalJobLease struct{}

func (LocalJobLease) TryAcquire(context.Context, string, time.Duration) (func(context.Context) error, bool, error) {
	return func(context.Context) error { return nil }, true, nil
}

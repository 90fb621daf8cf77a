// Package scheduler provides unified scheduler management using gocron v2.
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"

	"github.com/kolhub/kolhub/internal/shared/biztime"
	"github.com/kolhub/kolhub/internal/shared/logger"
)

const (
	JobLockSweep       = "subscription-lock-sweep"
	JobExpiryReminders = "subscription-expiry-reminders"
)

// BatchJob defines the interface for a scheduled batch processing job.
// Each Execute call processes a batch and returns the number of items processed.
type BatchJob interface {
	Execute(ctx context.Context) (int, error)
}

// Lease guards a job so that only one instance runs it at a time.
type Lease interface {
	TryAcquire(ctx context.Context, job string, ttl time.Duration) (func(context.Context) error, bool, error)
}

// SchedulerManager manages all scheduled jobs using gocron v2.
type SchedulerManager struct {
	scheduler  gocron.Scheduler
	lease      Lease
	jobTimeout time.Duration
	logger     logger.Interface

	// Track whether the scheduler has been started
	started   bool
	startedMu sync.RWMutex
}

// NewSchedulerManager creates a new SchedulerManager instance.
// It initializes gocron with the business timezone for cron expressions.
func NewSchedulerManager(lease Lease, jobTimeout time.Duration, log logger.Interface) (*SchedulerManager, error) {
	scheduler, err := gocron.NewScheduler(
		gocron.WithLocation(biztime.Location()),
	)
	if err != nil {
		return nil, err
	}

	return &SchedulerManager{
		scheduler:  scheduler,
		lease:      lease,
		jobTimeout: jobTimeout,
		logger:     log,
	}, nil
}

// ========================================
// Subscription Jobs
// ========================================

// RegisterLockSweepJob registers the daily sweep that locks brands whose
// plan has expired. cronExpr is evaluated in the business timezone.
func (m *SchedulerManager) RegisterLockSweepJob(lockExpiredJob BatchJob, cronExpr string) error {
	_, err := m.scheduler.NewJob(
		gocron.CronJob(cronExpr, false),
		gocron.NewTask(func() {
			m.runTimed(JobLockSweep, lockExpiredJob)
		}),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
		gocron.WithTags("subscription", "lock"),
		gocron.WithName(JobLockSweep),
	)
	if err != nil {
		return err
	}

	m.logger.Infow("registered subscription lock sweep", "cron", cronExpr)
	return nil
}

// RegisterReminderJob registers the expiry reminder job. It runs once at
// startup and then every interval.
func (m *SchedulerManager) RegisterReminderJob(reminderJob BatchJob, interval time.Duration) error {
	_, err := m.scheduler.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(func() {
			m.runTimed(JobExpiryReminders, reminderJob)
		}),
		gocron.WithStartAt(gocron.WithStartImmediately()),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
		gocron.WithTags("subscription", "reminder", "email"),
		gocron.WithName(JobExpiryReminders),
	)
	if err != nil {
		return err
	}

	m.logger.Infow("registered subscription reminder job", "interval", interval)
	return nil
}

func (m *SchedulerManager) runTimed(name string, job BatchJob) {
	ctx, cancel := context.WithTimeout(context.Background(), m.jobTimeout)
	defer cancel()
	// failures are already logged by RunOnce
	_, _ = m.RunOnce(ctx, name, job)
}

// RunOnce executes job if this instance wins the lease. It reports whether
// the job ran and returns the lease or job error. Scheduled runs and the
// manual sweep command both go through it.
func (m *SchedulerManager) RunOnce(ctx context.Context, name string, job BatchJob) (bool, error) {
	release, acquired, err := m.lease.TryAcquire(ctx, name, m.jobTimeout)
	if err != nil {
		m.logger.Errorw("failed to acquire job lease", "job", name, "error", err)
		return false, fmt.Errorf("failed to acquire lease for %s: %w", name, err)
	}
	if !acquired {
		m.logger.Debugw("job lease held by another instance, skipping", "job", name)
		return false, nil
	}
	defer func() {
		// ctx may already be past its deadline here
		releaseCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := release(releaseCtx); err != nil {
			m.logger.Warnw("failed to release job lease", "job", name, "error", err)
		}
	}()

	m.logger.Debugw("scheduled job started", "job", name)

	startTime := biztime.NowUTC()
	count, err := job.Execute(ctx)
	if err != nil {
		// Don't log error if context was cancelled (graceful shutdown)
		if !errors.Is(ctx.Err(), context.Canceled) {
			m.logger.Errorw("scheduled job failed",
				"job", name,
				"error", err,
				"duration", time.Since(startTime),
			)
		}
		return true, fmt.Errorf("%s failed: %w", name, err)
	}

	if count > 0 {
		m.logger.Infow("scheduled job processed items",
			"job", name,
			"count", count,
			"duration", time.Since(startTime),
		)
	} else {
		m.logger.Debugw("scheduled job found nothing to process",
			"job", name,
			"duration", time.Since(startTime),
		)
	}
	return true, nil
}

// ========================================
// Scheduler Lifecycle Methods
// ========================================

// Start starts the scheduler and all registered jobs.
func (m *SchedulerManager) Start() {
	m.startedMu.Lock()
	defer m.startedMu.Unlock()

	if m.started {
		return
	}

	m.scheduler.Start()
	m.started = true
	m.logger.Infow("scheduler manager started", "job_count", len(m.scheduler.Jobs()))
}

// Stop gracefully stops the scheduler.
// It waits for all running jobs to complete before returning.
func (m *SchedulerManager) Stop() error {
	m.startedMu.Lock()
	defer m.startedMu.Unlock()

	if !m.started {
		return nil
	}

	m.logger.Infow("stopping scheduler manager")

	err := m.scheduler.Shutdown()
	m.started = false

	if err != nil {
		m.logger.Errorw("scheduler manager shutdown with error", "error", err)
		return err
	}

	m.logger.Infow("scheduler manager stopped")
	return nil
}

// IsStarted returns whether the scheduler is running.
func (m *SchedulerManager) IsStarted() bool {
	m.startedMu.RLock()
	defer m.startedMu.RUnlock()
	return m.started
}

// Jobs returns all registered jobs for inspection.
func (m *SchedulerManager) Jobs() []gocron.Job {
	return m.scheduler.Jobs()
}

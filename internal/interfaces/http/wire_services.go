package http

import (
	"context"

	"github.com/redis/go-redis/v9"

	subscriptionUsecases "github.com/kolhub/kolhub/internal/application/subscription/usecases"
	"github.com/kolhub/kolhub/internal/infrastructure/cache"
	"github.com/kolhub/kolhub/internal/infrastructure/config"
	"github.com/kolhub/kolhub/internal/infrastructure/email"
	"github.com/kolhub/kolhub/internal/infrastructure/scheduler"
	"github.com/kolhub/kolhub/internal/shared/logger"
)

// initRedis connects to redis when configured. A failed connection is logged
// and the process continues with instance-local job leases.
func initRedis(ctx context.Context, cfg *config.Config, log logger.Interface) *redis.Client {
	if !cfg.Redis.Enabled() {
		log.Infow("redis not configured, lifecycle jobs will not be coordinated across instances")
		return nil
	}

	client, err := cache.NewRedisClient(ctx, cfg.Redis)
	if err != nil {
		log.Warnw("redis unavailable, falling back to local job leases", "error", err)
		return nil
	}

	log.Infow("redis connected", "addr", cfg.Redis.GetAddr())
	return client
}

func newJobLease(client *redis.Client) scheduler.Lease {
	if client == nil {
		return cache.LocalJobLease{}
	}
	return cache.NewJobLease(client)
}

// newReminderSender returns nil when reminders are disabled or no SMTP host
// is configured.
func newReminderSender(cfg *config.Config, log logger.Interface) subscriptionUsecases.ReminderSender {
	if !cfg.Subscription.ReminderEnabled {
		log.Infow("expiry reminder e-mails disabled")
		return nil
	}
	if cfg.Email.SMTPHost == "" {
		log.Warnw("expiry reminder e-mails enabled but no SMTP host configured")
		return nil
	}
	return email.NewSMTPReminderSender(cfg.Email, log.Named("email"))
}

// initScheduler registers the lifecycle jobs. The scheduler is not started here.
func (c *Container) initScheduler() error {
	manager, err := scheduler.NewSchedulerManager(
		newJobLease(c.redis),
		c.cfg.Subscription.JobTimeout(),
		c.log.Named("scheduler"),
	)
	if err != nil {
		return err
	}

	if err := manager.RegisterLockSweepJob(c.ucs.lockExpiredBrandsUC, c.cfg.Subscription.LockSweepCron); err != nil {
		return err
	}
	if c.ucs.sendExpiryRemindersUC != nil {
		if c.redis == nil {
			c.log.Warnw("expiry reminders scheduled without redis; run a single scheduler instance to avoid duplicate emails")
		}
		if err := manager.RegisterReminderJob(c.ucs.sendExpiryRemindersUC, c.cfg.Subscription.ReminderInterval()); err != nil {
			return err
		}
	}

	c.schedulerManager = manager
	return nil
}

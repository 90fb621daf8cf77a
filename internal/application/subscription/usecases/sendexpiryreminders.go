package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/kolhub/kolhub/internal/domain/brand"
	"github.com/kolhub/kolhub/internal/shared/biztime"
	"github.com/kolhub/kolhub/internal/shared/logger"
)

// SendExpiryRemindersUseCase e-mails brand contacts whose status says a
// reminder is due, then records it so the paid-plan throttle applies.
// A failure for one brand is logged and does not stop the batch.
type SendExpiryRemindersUseCase struct {
	brandRepo brand.Repository
	sender    ReminderSender
	marker    *MarkReminderSentUseCase
	metrics   LifecycleMetrics
	logger    logger.Interface
	now       func() time.Time
}

func NewSendExpiryRemindersUseCase(
	brandRepo brand.Repository,
	sender ReminderSender,
	marker *MarkReminderSentUseCase,
	logger logger.Interface,
) *SendExpiryRemindersUseCase {
	return &SendExpiryRemindersUseCase{
		brandRepo: brandRepo,
		sender:    sender,
		marker:    marker,
		metrics:   nopMetrics{},
		logger:    logger,
		now:       biztime.NowUTC,
	}
}

// SetMetrics sets the metrics recorder (optional).
func (uc *SendExpiryRemindersUseCase) SetMetrics(m LifecycleMetrics) {
	if m != nil {
		uc.metrics = m
	}
}

// Execute returns the number of reminders delivered.
func (uc *SendExpiryRemindersUseCase) Execute(ctx context.Context) (int, error) {
	now := uc.now()

	candidates, err := uc.brandRepo.ListReminderCandidates(ctx, now, brand.ReminderHorizonDays())
	if err != nil {
		return 0, fmt.Errorf("failed to list reminder candidates: %w", err)
	}

	sent := 0
	for _, b := range candidates {
		if ctx.Err() != nil {
			return sent, ctx.Err()
		}

		status := b.Status(now)
		if !status.ShouldShowReminder || b.ContactEmail() == "" {
			continue
		}

		msg := ReminderMessage{
			BrandName:     b.Name(),
			To:            b.ContactEmail(),
			PlanType:      b.PlanType().String(),
			DaysRemaining: *status.DaysRemaining,
			Text:          status.ReminderMessage,
			ExpiresAt:     *b.PlanExpiresAt(),
		}
		if err := uc.sender.SendExpiryReminder(ctx, msg); err != nil {
			uc.metrics.ReminderFailed()
			uc.logger.Warnw("failed to send expiry reminder", "brand_id", b.ID(), "error", err)
			continue
		}
		if err := uc.marker.Execute(ctx, b.ID()); err != nil {
			uc.logger.Warnw("reminder sent but not recorded", "brand_id", b.ID(), "error", err)
		}

		uc.metrics.ReminderSent()
		sent++
	}

	if sent > 0 {
		uc.logger.Infow("expiry reminders sent", "count", sent, "candidates", len(candidates))
	}
	return sent, nil
}

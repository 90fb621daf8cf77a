package usecases

import (
	"context"
	"time"
)

// ReminderMessage is what the reminder job hands to a ReminderSender.
type ReminderMessage struct {
	BrandName     string
	To            string
	PlanType      string
	DaysRemaining int
	Text          string
	ExpiresAt     time.Time
}

// ReminderSender delivers an expiry reminder to a brand contact.
type ReminderSender interface {
	SendExpiryReminder(ctx context.Context, msg ReminderMessage) error
}

// LifecycleMetrics records lifecycle job outcomes. Optional.
type LifecycleMetrics interface {
	BrandsLocked(n int)
	ReminderSent()
	ReminderFailed()
}

type nopMetrics struct{}

func (nopMetrics) BrandsLocked(int) {}
func (nopMetrics) ReminderSent()    {}
func (nopMetrics) ReminderFailed()  {}

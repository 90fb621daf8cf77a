package brand

import (
	"fmt"
	"math"
	"time"

	vo "github.com/kolhub/kolhub/internal/domain/brand/valueobjects"
)

// LifecycleState is derived from stored subscription fields; it is never persisted.
type LifecycleState string

const (
	StateActiveTrial   LifecycleState = "ACTIVE_TRIAL"
	StateActivePaid    LifecycleState = "ACTIVE_PAID"
	StateExpiringSoon  LifecycleState = "EXPIRING_SOON"
	StateExpiredLocked LifecycleState = "EXPIRED_LOCKED"
)

const day = 24 * time.Hour

const (
	msgExpired      = "Your subscription has expired and the account is locked. Please renew to continue."
	msgTrialFormat  = "Your trial ends in %d day(s). Upgrade to keep using KOLHub."
	msgUrgentFormat = "Your subscription expires in %d day(s). Renew now to avoid interruption."
	msgPeriodFormat = "Your subscription expires in %d days. Please plan your renewal."
)

// SubscriptionState is the stored subscription snapshot of a brand.
type SubscriptionState struct {
	PlanType       vo.PlanType
	IsPaid         bool
	IsLocked       bool
	PlanStartedAt  *time.Time
	PlanExpiresAt  *time.Time
	LastReminderAt *time.Time
}

// Status is the result of ComputeStatus.
type Status struct {
	// DaysRemaining is nil when the brand has no expiry.
	DaysRemaining      *int
	ShouldShowReminder bool
	ReminderMessage    string
}

// DaysRemaining rounds the time left up to whole days, so any partial day
// still counts as one. It returns nil when expiresAt is nil.
func DaysRemaining(expiresAt *time.Time, now time.Time) *int {
	if expiresAt == nil {
		return nil
	}
	days := int(math.Ceil(float64(expiresAt.Sub(now)) / float64(day)))
	return &days
}

// daysSince rounds elapsed time down to whole days.
func daysSince(t time.Time, now time.Time) int {
	return int(math.Floor(float64(now.Sub(t)) / float64(day)))
}

// ComputeStatus decides whether a reminder should be shown at now.
// The expired reminder is shown whenever days remaining is not positive,
// whatever the stored lock flag says.
func ComputeStatus(state SubscriptionState, now time.Time) Status {
	remaining := DaysRemaining(state.PlanExpiresAt, now)
	if remaining == nil {
		return Status{}
	}

	days := *remaining
	status := Status{DaysRemaining: remaining}
	policy := Reminders()

	switch {
	case days <= 0:
		status.ShouldShowReminder = true
		status.ReminderMessage = msgExpired
	case state.PlanType.IsTrial(state.IsPaid):
		if days <= policy.TrialWindowDays {
			status.ShouldShowReminder = true
			status.ReminderMessage = fmt.Sprintf(msgTrialFormat, days)
		}
	case days <= policy.PaidDailyWindowDays:
		status.ShouldShowReminder = true
		status.ReminderMessage = fmt.Sprintf(msgUrgentFormat, days)
	case days <= policy.PaidPeriodicWindowDays:
		if state.LastReminderAt == nil || daysSince(*state.LastReminderAt, now) >= policy.PaidPeriodicThrottleDays {
			status.ShouldShowReminder = true
			status.ReminderMessage = fmt.Sprintf(msgPeriodFormat, days)
		}
	}

	return status
}

// DeriveLifecycleState maps a snapshot to its lifecycle state at now.
func DeriveLifecycleState(state SubscriptionState, now time.Time) LifecycleState {
	trial := state.PlanType.IsTrial(state.IsPaid)
	remaining := DaysRemaining(state.PlanExpiresAt, now)

	switch {
	case remaining == nil:
	case *remaining <= 0:
		return StateExpiredLocked
	case trial && *remaining <= Reminders().TrialWindowDays:
		return StateExpiringSoon
	case !trial && *remaining <= Reminders().PaidPeriodicWindowDays:
		return StateExpiringSoon
	}

	if trial {
		return StateActiveTrial
	}
	return StateActivePaid
}

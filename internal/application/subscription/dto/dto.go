package dto

import (
	"time"

	"github.com/kolhub/kolhub/internal/domain/brand"
)

// SubscriptionStatusDTO is the subscription read model of one brand.
type SubscriptionStatusDTO struct {
	BrandID            uint       `json:"brand_id"`
	PlanType           string     `json:"plan_type"`
	IsPaid             bool       `json:"is_paid"`
	IsLocked           bool       `json:"is_locked"`
	LifecycleState     string     `json:"lifecycle_state"`
	PlanStartedAt      *time.Time `json:"plan_started_at"`
	PlanExpiresAt      *time.Time `json:"plan_expires_at"`
	DaysRemaining      *int       `json:"days_remaining"`
	ShouldShowReminder bool       `json:"should_show_reminder"`
	ReminderMessage    string     `json:"reminder_message,omitempty"`
}

type BrandDTO struct {
	ID           uint                   `json:"id"`
	UUID         string                 `json:"uuid"`
	Name         string                 `json:"name"`
	ContactEmail string                 `json:"contact_email"`
	Subscription *SubscriptionStatusDTO `json:"subscription"`
	CreatedAt    time.Time              `json:"created_at"`
}

func ToSubscriptionStatusDTO(b *brand.Brand, now time.Time) *SubscriptionStatusDTO {
	if b == nil {
		return nil
	}

	status := b.Status(now)
	return &SubscriptionStatusDTO{
		BrandID:            b.ID(),
		PlanType:           b.PlanType().String(),
		IsPaid:             b.IsPaid(),
		IsLocked:           b.IsLocked(),
		LifecycleState:     string(b.LifecycleState(now)),
		PlanStartedAt:      b.PlanStartedAt(),
		PlanExpiresAt:      b.PlanExpiresAt(),
		DaysRemaining:      status.DaysRemaining,
		ShouldShowReminder: status.ShouldShowReminder,
		ReminderMessage:    status.ReminderMessage,
	}
}

func ToBrandDTO(b *brand.Brand, now time.Time) *BrandDTO {
	if b == nil {
		return nil
	}
	return &BrandDTO{
		ID:           b.ID(),
		UUID:         b.UUID(),
		Name:         b.Name(),
		ContactEmail: b.ContactEmail(),
		Subscription: ToSubscriptionStatusDTO(b, now),
		CreatedAt:    b.CreatedAt(),
	}
}

// Package brand holds the Brand aggregate and its subscription lifecycle.
package brand

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	vo "github.com/kolhub/kolhub/internal/domain/brand/valueobjects"
)

// Brand is the tenant aggregate root. Its subscription fields are only
// changed through the lifecycle methods below.
type Brand struct {
	id             uint
	uuid           string
	name           string
	contactEmail   string
	planType       vo.PlanType
	isPaid         bool
	isLocked       bool
	lockedAt       *time.Time
	planStartedAt  *time.Time
	planExpiresAt  *time.Time
	lastReminderAt *time.Time
	createdAt      time.Time
	updatedAt      time.Time
}

// NewBrand creates an unsubscribed brand. Call InitializeSubscription before persisting.
func NewBrand(name, contactEmail string, now time.Time) (*Brand, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrInvalidName
	}

	return &Brand{
		uuid:         uuid.NewString(),
		name:         name,
		contactEmail: strings.TrimSpace(contactEmail),
		planType:     vo.PlanTypeFree,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

// ReconstructParams carries persisted brand fields.
type ReconstructParams struct {
	ID             uint
	UUID           string
	Name           string
	ContactEmail   string
	PlanType       vo.PlanType
	IsPaid         bool
	IsLocked       bool
	LockedAt       *time.Time
	PlanStartedAt  *time.Time
	PlanExpiresAt  *time.Time
	LastReminderAt *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Reconstruct rebuilds a brand from persistence
func Reconstruct(p ReconstructParams) (*Brand, error) {
	if p.ID == 0 {
		return nil, ErrZeroID
	}
	if !p.PlanType.IsValid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidPlanType, p.PlanType)
	}

	return &Brand{
		id:             p.ID,
		uuid:           p.UUID,
		name:           p.Name,
		contactEmail:   p.ContactEmail,
		planType:       p.PlanType,
		isPaid:         p.IsPaid,
		isLocked:       p.IsLocked,
		lockedAt:       p.LockedAt,
		planStartedAt:  p.PlanStartedAt,
		planExpiresAt:  p.PlanExpiresAt,
		lastReminderAt: p.LastReminderAt,
		createdAt:      p.CreatedAt,
		updatedAt:      p.UpdatedAt,
	}, nil
}

func (b *Brand) ID() uint                   { return b.id }
func (b *Brand) UUID() string               { return b.uuid }
func (b *Brand) Name() string               { return b.name }
func (b *Brand) ContactEmail() string       { return b.contactEmail }
func (b *Brand) PlanType() vo.PlanType      { return b.planType }
func (b *Brand) IsPaid() bool               { return b.isPaid }
func (b *Brand) IsLocked() bool             { return b.isLocked }
func (b *Brand) LockedAt() *time.Time       { return b.lockedAt }
func (b *Brand) PlanStartedAt() *time.Time  { return b.planStartedAt }
func (b *Brand) PlanExpiresAt() *time.Time  { return b.planExpiresAt }
func (b *Brand) LastReminderAt() *time.Time { return b.lastReminderAt }
func (b *Brand) CreatedAt() time.Time       { return b.createdAt }
func (b *Brand) UpdatedAt() time.Time       { return b.updatedAt }

// SetID sets the brand ID (only for persistence layer use)
func (b *Brand) SetID(id uint) error {
	if b.id != 0 {
		return ErrIDAlreadySet
	}
	if id == 0 {
		return ErrZeroID
	}
	b.id = id
	return nil
}

// SubscriptionState returns a snapshot for ComputeStatus.
func (b *Brand) SubscriptionState() SubscriptionState {
	return SubscriptionState{
		PlanType:       b.planType,
		IsPaid:         b.isPaid,
		IsLocked:       b.isLocked,
		PlanStartedAt:  b.planStartedAt,
		PlanExpiresAt:  b.planExpiresAt,
		LastReminderAt: b.lastReminderAt,
	}
}

// Status computes the reminder status at now.
func (b *Brand) Status(now time.Time) Status {
	return ComputeStatus(b.SubscriptionState(), now)
}

// LifecycleState returns the derived lifecycle state at now.
func (b *Brand) LifecycleState(now time.Time) LifecycleState {
	return DeriveLifecycleState(b.SubscriptionState(), now)
}

// InitializeSubscription starts a fresh plan period at now.
func (b *Brand) InitializeSubscription(planType vo.PlanType, isPaid bool, now time.Time) error {
	if !planType.IsValid() {
		return fmt.Errorf("%w: %s", ErrInvalidPlanType, planType)
	}

	start := now
	expires := now.Add(time.Duration(PlanDurationDays(planType, isPaid)) * day)

	b.planType = planType
	b.isPaid = isPaid
	b.planStartedAt = &start
	b.planExpiresAt = &expires
	b.isLocked = false
	b.lockedAt = nil
	b.lastReminderAt = nil
	b.updatedAt = now
	return nil
}

// Renew extends the plan by durationDays (DefaultRenewalDays when not
// positive). Unused time is kept when the current expiry is still after now.
func (b *Brand) Renew(planType vo.PlanType, durationDays int, now time.Time) error {
	if !planType.IsValid() {
		return fmt.Errorf("%w: %s", ErrInvalidPlanType, planType)
	}
	if durationDays <= 0 {
		durationDays = DefaultRenewalDays
	}

	base := now
	if b.planExpiresAt != nil && b.planExpiresAt.After(now) {
		base = *b.planExpiresAt
	}
	expires := base.Add(time.Duration(durationDays) * day)

	b.planType = planType
	b.planExpiresAt = &expires
	b.isPaid = true
	b.isLocked = false
	b.lockedAt = nil
	b.lastReminderAt = nil
	b.updatedAt = now
	return nil
}

// Unlock clears the lock unconditionally.
func (b *Brand) Unlock(now time.Time) {
	b.isLocked = false
	b.lockedAt = nil
	b.updatedAt = now
}

// Lock sets the sticky lock flag. Locking an already locked brand keeps
// the original lockedAt.
func (b *Brand) Lock(now time.Time) {
	if b.isLocked {
		return
	}
	locked := now
	b.isLocked = true
	b.lockedAt = &locked
	b.updatedAt = now
}

// MarkReminderSent records that a reminder was surfaced at now.
func (b *Brand) MarkReminderSent(now time.Time) {
	sent := now
	b.lastReminderAt = &sent
	b.updatedAt = now
}

package brand

import (
	"context"
	"time"
)

// Repository persists brands. GetByID returns (nil, nil) when the brand does not exist.
type Repository interface {
	Create(ctx context.Context, brand *Brand) error
	GetByID(ctx context.Context, id uint) (*Brand, error)
	Update(ctx context.Context, brand *Brand) error

	// LockExpired locks every unlocked brand whose plan expired at or before now
	// and returns the number of brands transitioned.
	LockExpired(ctx context.Context, now time.Time) (int64, error)

	// ListReminderCandidates returns unlocked brands that expire before now+windowDays,
	// including those already past expiry.
	ListReminderCandidates(ctx context.Context, now time.Time, windowDays int) ([]*Brand, error)
}

package staff

import "context"

// Repository persists staff accounts. Getters return (nil, nil) when not found.
type Repository interface {
	Create(ctx context.Context, staff *Staff) error
	GetByID(ctx context.Context, id uint) (*Staff, error)
	GetByEmail(ctx context.Context, email string) (*Staff, error)
	ListByBrandID(ctx context.Context, brandID uint) ([]*Staff, error)
	UpdatePermissions(ctx context.Context, staff *Staff) error
}

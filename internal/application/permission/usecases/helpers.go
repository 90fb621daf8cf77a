package usecases

import (
	"context"
	"fmt"

	"github.com/kolhub/kolhub/internal/domain/staff"
	"github.com/kolhub/kolhub/internal/shared/errors"
)

// getStaff loads a staff account visible to actor. Accounts of another brand
// are reported as missing.
func getStaff(ctx context.Context, repo staff.Repository, actor Actor, staffID uint) (*staff.Staff, error) {
	if staffID == 0 {
		return nil, errors.NewValidationError("staff ID is required")
	}

	member, err := repo.GetByID(ctx, staffID)
	if err != nil {
		return nil, fmt.Errorf("failed to get staff: %w", err)
	}
	if member == nil || !actor.canReach(member.BrandID()) {
		return nil, errors.NewNotFoundError("staff not found")
	}
	return member, nil
}

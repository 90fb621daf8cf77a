package usecases

import (
	"context"
	"fmt"

	"github.com/kolhub/kolhub/internal/domain/permission"
	"github.com/kolhub/kolhub/internal/domain/staff"
	"github.com/kolhub/kolhub/internal/shared/logger"
)

// CheckCapabilityUseCase answers "may this staff member do path?". An
// unknown staff member or a malformed path is a denial, not an error.
type CheckCapabilityUseCase struct {
	staffRepo staff.Repository
	logger    logger.Interface
}

func NewCheckCapabilityUseCase(staffRepo staff.Repository, logger logger.Interface) *CheckCapabilityUseCase {
	return &CheckCapabilityUseCase{staffRepo: staffRepo, logger: logger}
}

func (uc *CheckCapabilityUseCase) Execute(ctx context.Context, staffID uint, path string) (bool, error) {
	member, err := uc.staffRepo.GetByID(ctx, staffID)
	if err != nil {
		return false, fmt.Errorf("failed to get staff: %w", err)
	}
	if member == nil {
		return false, nil
	}

	allowed := permission.HasPermission(member.Permissions(), path)
	if !allowed {
		uc.logger.Debugw("capability denied", "staff_id", staffID, "path", path)
	}
	return allowed, nil
}

package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/kolhub/kolhub/internal/application/permission/dto"
	"github.com/kolhub/kolhub/internal/domain/permission"
	"github.com/kolhub/kolhub/internal/domain/staff"
	"github.com/kolhub/kolhub/internal/shared/biztime"
	"github.com/kolhub/kolhub/internal/shared/db"
	"github.com/kolhub/kolhub/internal/shared/errors"
	"github.com/kolhub/kolhub/internal/shared/logger"
)

type UpdateStaffPermissionsCommand struct {
	Actor       Actor
	StaffID     uint
	Permissions permission.Set
}

// UpdateStaffPermissionsUseCase replaces a staff member's matrix. The set is
// stored as given; a partial set is accepted and classifies as custom.
type UpdateStaffPermissionsUseCase struct {
	staffRepo staff.Repository
	txManager db.Runner
	metrics   PermissionMetrics
	logger    logger.Interface
	now       func() time.Time
}

func NewUpdateStaffPermissionsUseCase(
	staffRepo staff.Repository,
	txManager db.Runner,
	logger logger.Interface,
) *UpdateStaffPermissionsUseCase {
	return &UpdateStaffPermissionsUseCase{
		staffRepo: staffRepo,
		txManager: txManager,
		metrics:   nopMetrics{},
		logger:    logger,
		now:       biztime.NowUTC,
	}
}

// SetMetrics sets the metrics recorder (optional).
func (uc *UpdateStaffPermissionsUseCase) SetMetrics(m PermissionMetrics) {
	if m != nil {
		uc.metrics = m
	}
}

func (uc *UpdateStaffPermissionsUseCase) Execute(ctx context.Context, cmd UpdateStaffPermissionsCommand) (*dto.StaffPermissionsDTO, error) {
	if cmd.Permissions == nil {
		return nil, errors.NewValidationError("permissions are required")
	}

	var updated *staff.Staff
	err := uc.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		member, err := getStaff(ctx, uc.staffRepo, cmd.Actor, cmd.StaffID)
		if err != nil {
			return err
		}
		if member.Role() == staff.RoleOwner && cmd.Actor.StaffID != member.ID() && cmd.Actor.BrandID != 0 {
			return errors.NewForbiddenError("owner permissions can only be changed by the owner")
		}

		member.UpdatePermissions(cmd.Permissions, uc.now())
		if err := uc.staffRepo.UpdatePermissions(ctx, member); err != nil {
			return fmt.Errorf("failed to save permissions: %w", err)
		}
		updated = member
		return nil
	})
	if err != nil {
		if !errors.IsAppError(err) {
			uc.logger.Errorw("failed to update staff permissions", "staff_id", cmd.StaffID, "error", err)
		}
		return nil, err
	}

	result := dto.ToStaffPermissionsDTO(updated)
	uc.metrics.PermissionsUpdated(string(result.Template))
	uc.logger.Infow("staff permissions updated",
		"staff_id", cmd.StaffID,
		"actor_id", cmd.Actor.StaffID,
		"template", result.Template,
	)
	return result, nil
}

package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/kolhub/kolhub/internal/application/permission/dto"
	"github.com/kolhub/kolhub/internal/domain/brand"
	"github.com/kolhub/kolhub/internal/domain/staff"
	"github.com/kolhub/kolhub/internal/shared/biztime"
	"github.com/kolhub/kolhub/internal/shared/db"
	"github.com/kolhub/kolhub/internal/shared/errors"
	"github.com/kolhub/kolhub/internal/shared/logger"
)

type CreateStaffCommand struct {
	Actor   Actor
	BrandID uint
	Name    string
	Email   string
	Role    string
}

// CreateStaffUseCase adds a staff account with the basic template.
type CreateStaffUseCase struct {
	staffRepo staff.Repository
	brandRepo brand.Repository
	txManager db.Runner
	logger    logger.Interface
	now       func() time.Time
}

func NewCreateStaffUseCase(
	staffRepo staff.Repository,
	brandRepo brand.Repository,
	txManager db.Runner,
	logger logger.Interface,
) *CreateStaffUseCase {
	return &CreateStaffUseCase{
		staffRepo: staffRepo,
		brandRepo: brandRepo,
		txManager: txManager,
		logger:    logger,
		now:       biztime.NowUTC,
	}
}

func (uc *CreateStaffUseCase) Execute(ctx context.Context, cmd CreateStaffCommand) (*dto.StaffDTO, error) {
	if !cmd.Actor.canReach(cmd.BrandID) {
		return nil, errors.NewForbiddenError("cannot create staff for another brand")
	}

	role := staff.Role(cmd.Role)
	if cmd.Role == "" {
		role = staff.RoleStaff
	}
	if role == staff.RoleOwner && cmd.Actor.BrandID != 0 {
		return nil, errors.NewForbiddenError("only platform admins can create brand owners")
	}

	member, err := staff.NewStaff(cmd.BrandID, cmd.Name, cmd.Email, role, uc.now())
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	err = uc.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		b, err := uc.brandRepo.GetByID(ctx, cmd.BrandID)
		if err != nil {
			return fmt.Errorf("failed to get brand: %w", err)
		}
		if b == nil {
			return errors.NewNotFoundError("brand not found")
		}

		existing, err := uc.staffRepo.GetByEmail(ctx, member.Email())
		if err != nil {
			return fmt.Errorf("failed to check staff email: %w", err)
		}
		if existing != nil {
			return errors.NewConflictError("staff email already registered")
		}

		return uc.staffRepo.Create(ctx, member)
	})
	if err != nil {
		if !errors.IsAppError(err) {
			uc.logger.Errorw("failed to create staff", "brand_id", cmd.BrandID, "error", err)
		}
		return nil, err
	}

	uc.logger.Infow("staff created", "staff_id", member.ID(), "brand_id", cmd.BrandID, "role", role)
	return dto.ToStaffDTO(member), nil
}

package usecases

import (
	"context"
	"fmt"

	"github.com/kolhub/kolhub/internal/application/permission/dto"
	"github.com/kolhub/kolhub/internal/domain/staff"
	"github.com/kolhub/kolhub/internal/shared/errors"
	"github.com/kolhub/kolhub/internal/shared/logger"
	"github.com/kolhub/kolhub/internal/shared/mapper"
)

// ListStaffUseCase lists the staff accounts of one brand.
type ListStaffUseCase struct {
	staffRepo staff.Repository
	logger    logger.Interface
}

func NewListStaffUseCase(staffRepo staff.Repository, logger logger.Interface) *ListStaffUseCase {
	return &ListStaffUseCase{staffRepo: staffRepo, logger: logger}
}

func (uc *ListStaffUseCase) Execute(ctx context.Context, actor Actor, brandID uint) ([]*dto.StaffDTO, error) {
	if brandID == 0 {
		return nil, errors.NewValidationError("brand ID is required")
	}
	if !actor.canReach(brandID) {
		return nil, errors.NewForbiddenError("cannot list staff of another brand")
	}

	members, err := uc.staffRepo.ListByBrandID(ctx, brandID)
	if err != nil {
		return nil, fmt.Errorf("failed to list staff: %w", err)
	}

	result := mapper.MapSlice(members, dto.ToStaffDTO)
	if result == nil {
		result = []*dto.StaffDTO{}
	}
	return result, nil
}

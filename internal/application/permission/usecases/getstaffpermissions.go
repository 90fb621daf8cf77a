package usecases

import (
	"context"

	"github.com/kolhub/kolhub/internal/application/permission/dto"
	"github.com/kolhub/kolhub/internal/domain/staff"
	"github.com/kolhub/kolhub/internal/shared/logger"
)

type GetStaffPermissionsUseCase struct {
	staffRepo staff.Repository
	logger    logger.Interface
}

func NewGetStaffPermissionsUseCase(staffRepo staff.Repository, logger logger.Interface) *GetStaffPermissionsUseCase {
	return &GetStaffPermissionsUseCase{staffRepo: staffRepo, logger: logger}
}

func (uc *GetStaffPermissionsUseCase) Execute(ctx context.Context, actor Actor, staffID uint) (*dto.StaffPermissionsDTO, error) {
	member, err := getStaff(ctx, uc.staffRepo, actor, staffID)
	if err != nil {
		return nil, err
	}
	return dto.ToStaffPermissionsDTO(member), nil
}

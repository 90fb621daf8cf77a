package handlers

import (
	"context"

	"github.com/kolhub/kolhub/internal/application/permission/dto"
	"github.com/kolhub/kolhub/internal/application/permission/usecases"
)

// Use case interfaces for PermissionHandler

type listTemplatesUseCase interface {
	Execute(ctx context.Context) []dto.TemplateDTO
}

type getStaffPermissionsUseCase interface {
	Execute(ctx context.Context, actor usecases.Actor, staffID uint) (*dto.StaffPermissionsDTO, error)
}

type updateStaffPermissionsUseCase interface {
	Execute(ctx context.Context, cmd usecases.UpdateStaffPermissionsCommand) (*dto.StaffPermissionsDTO, error)
}

type checkCapabilityUseCase interface {
	Execute(ctx context.Context, staffID uint, path string) (bool, error)
}

type createStaffUseCase interface {
	Execute(ctx context.Context, cmd usecases.CreateStaffCommand) (*dto.StaffDTO, error)
}

type listStaffUseCase interface {
	Execute(ctx context.Context, actor usecases.Actor, brandID uint) ([]*dto.StaffDTO, error)
}

package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/kolhub/kolhub/internal/application/subscription/dto"
	"github.com/kolhub/kolhub/internal/domain/brand"
	"github.com/kolhub/kolhub/internal/domain/staff"
	"github.com/kolhub/kolhub/internal/shared/biztime"
	"github.com/kolhub/kolhub/internal/shared/errors"
	"github.com/kolhub/kolhub/internal/shared/logger"
)

// GetUserSubscriptionStatusUseCase resolves a staff account to its brand's status.
type GetUserSubscriptionStatusUseCase struct {
	staffRepo staff.Repository
	brandRepo brand.Repository
	logger    logger.Interface
	now       func() time.Time
}

func NewGetUserSubscriptionStatusUseCase(
	staffRepo staff.Repository,
	brandRepo brand.Repository,
	logger logger.Interface,
) *GetUserSubscriptionStatusUseCase {
	return &GetUserSubscriptionStatusUseCase{
		staffRepo: staffRepo,
		brandRepo: brandRepo,
		logger:    logger,
		now:       biztime.NowUTC,
	}
}

func (uc *GetUserSubscriptionStatusUseCase) Execute(ctx context.Context, staffID uint) (*dto.SubscriptionStatusDTO, error) {
	member, err := uc.staffRepo.GetByID(ctx, staffID)
	if err != nil {
		return nil, fmt.Errorf("failed to get staff: %w", err)
	}
	if member == nil {
		return nil, errors.NewNotFoundError("staff not found")
	}

	b, err := getBrand(ctx, uc.brandRepo, member.BrandID())
	if err != nil {
		return nil, err
	}
	return dto.ToSubscriptionStatusDTO(b, uc.now()), nil
}

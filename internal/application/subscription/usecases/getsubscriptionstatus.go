package usecases

import (
	"context"
	"time"

	"github.com/kolhub/kolhub/internal/application/subscription/dto"
	"github.com/kolhub/kolhub/internal/domain/brand"
	"github.com/kolhub/kolhub/internal/shared/biztime"
	"github.com/kolhub/kolhub/internal/shared/logger"
)

type GetSubscriptionStatusUseCase struct {
	brandRepo brand.Repository
	logger    logger.Interface
	now       func() time.Time
}

func NewGetSubscriptionStatusUseCase(brandRepo brand.Repository, logger logger.Interface) *GetSubscriptionStatusUseCase {
	return &GetSubscriptionStatusUseCase{
		brandRepo: brandRepo,
		logger:    logger,
		now:       biztime.NowUTC,
	}
}

func (uc *GetSubscriptionStatusUseCase) Execute(ctx context.Context, brandID uint) (*dto.SubscriptionStatusDTO, error) {
	b, err := getBrand(ctx, uc.brandRepo, brandID)
	if err != nil {
		return nil, err
	}
	return dto.ToSubscriptionStatusDTO(b, uc.now()), nil
}

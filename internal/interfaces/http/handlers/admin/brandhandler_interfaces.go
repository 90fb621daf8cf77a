package admin

import (
	"context"

	"github.com/kolhub/kolhub/internal/application/subscription/dto"
	"github.com/kolhub/kolhub/internal/application/subscription/usecases"
)

// Use case interfaces for BrandHandler

type initializeSubscriptionUseCase interface {
	Execute(ctx context.Context, cmd usecases.InitializeSubscriptionCommand) (*dto.BrandDTO, error)
}

type getSubscriptionStatusUseCase interface {
	Execute(ctx context.Context, brandID uint) (*dto.SubscriptionStatusDTO, error)
}

type renewSubscriptionUseCase interface {
	Execute(ctx context.Context, cmd usecases.RenewSubscriptionCommand) (*dto.SubscriptionStatusDTO, error)
}

type unlockBrandUseCase interface {
	Execute(ctx context.Context, brandID uint) error
}

type lockExpiredBrandsUseCase interface {
	Execute(ctx context.Context) (int, error)
}

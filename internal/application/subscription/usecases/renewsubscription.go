package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/kolhub/kolhub/internal/application/subscription/dto"
	"github.com/kolhub/kolhub/internal/domain/brand"
	vo "github.com/kolhub/kolhub/internal/domain/brand/valueobjects"
	"github.com/kolhub/kolhub/internal/shared/biztime"
	"github.com/kolhub/kolhub/internal/shared/db"
	"github.com/kolhub/kolhub/internal/shared/errors"
	"github.com/kolhub/kolhub/internal/shared/logger"
)

type RenewSubscriptionCommand struct {
	BrandID  uint
	PlanType string
	// DurationDays defaults to brand.DefaultRenewalDays when zero.
	DurationDays int
}

type RenewSubscriptionUseCase struct {
	brandRepo brand.Repository
	txManager db.Runner
	logger    logger.Interface
	now       func() time.Time
}

func NewRenewSubscriptionUseCase(
	brandRepo brand.Repository,
	txManager db.Runner,
	logger logger.Interface,
) *RenewSubscriptionUseCase {
	return &RenewSubscriptionUseCase{
		brandRepo: brandRepo,
		txManager: txManager,
		logger:    logger,
		now:       biztime.NowUTC,
	}
}

func (uc *RenewSubscriptionUseCase) Execute(ctx context.Context, cmd RenewSubscriptionCommand) (*dto.SubscriptionStatusDTO, error) {
	planType, err := vo.NewPlanType(cmd.PlanType)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if cmd.DurationDays < 0 {
		return nil, errors.NewValidationError("duration days cannot be negative")
	}

	now := uc.now()
	var renewed *brand.Brand
	err = uc.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		b, err := getBrand(ctx, uc.brandRepo, cmd.BrandID)
		if err != nil {
			return err
		}
		if err := b.Renew(planType, cmd.DurationDays, now); err != nil {
			return errors.NewValidationError(err.Error())
		}
		if err := uc.brandRepo.Update(ctx, b); err != nil {
			return fmt.Errorf("failed to update brand: %w", err)
		}
		renewed = b
		return nil
	})
	if err != nil {
		if !errors.IsAppError(err) {
			uc.logger.Errorw("failed to renew subscription", "brand_id", cmd.BrandID, "error", err)
		}
		return nil, err
	}

	uc.logger.Infow("subscription renewed successfully",
		"brand_id", cmd.BrandID,
		"plan_type", planType,
		"new_expires_at", renewed.PlanExpiresAt(),
	)
	return dto.ToSubscriptionStatusDTO(renewed, now), nil
}

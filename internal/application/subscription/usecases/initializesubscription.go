package usecases

import (
	"context"
	stderrors "errors"
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

type InitializeSubscriptionCommand struct {
	Name         string
	ContactEmail string
	PlanType     string
	IsPaid       bool
}

// InitializeSubscriptionUseCase provisions a brand and starts its first plan period.
type InitializeSubscriptionUseCase struct {
	brandRepo brand.Repository
	txManager db.Runner
	logger    logger.Interface
	now       func() time.Time
}

func NewInitializeSubscriptionUseCase(
	brandRepo brand.Repository,
	txManager db.Runner,
	logger logger.Interface,
) *InitializeSubscriptionUseCase {
	return &InitializeSubscriptionUseCase{
		brandRepo: brandRepo,
		txManager: txManager,
		logger:    logger,
		now:       biztime.NowUTC,
	}
}

func (uc *InitializeSubscriptionUseCase) Execute(ctx context.Context, cmd InitializeSubscriptionCommand) (*dto.BrandDTO, error) {
	planType, err := vo.NewPlanType(cmd.PlanType)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	now := uc.now()
	b, err := brand.NewBrand(cmd.Name, cmd.ContactEmail, now)
	if err != nil {
		if stderrors.Is(err, brand.ErrInvalidName) {
			return nil, errors.NewValidationError(err.Error())
		}
		return nil, err
	}
	if err := b.InitializeSubscription(planType, cmd.IsPaid, now); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	err = uc.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		return uc.brandRepo.Create(ctx, b)
	})
	if err != nil {
		uc.logger.Errorw("failed to provision brand", "name", cmd.Name, "error", err)
		return nil, fmt.Errorf("failed to provision brand: %w", err)
	}

	uc.logger.Infow("brand subscription initialized",
		"brand_id", b.ID(),
		"plan_type", planType,
		"is_paid", cmd.IsPaid,
		"expires_at", b.PlanExpiresAt(),
	)
	return dto.ToBrandDTO(b, now), nil
}

package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/kolhub/kolhub/internal/domain/brand"
	"github.com/kolhub/kolhub/internal/shared/biztime"
	"github.com/kolhub/kolhub/internal/shared/db"
	"github.com/kolhub/kolhub/internal/shared/errors"
	"github.com/kolhub/kolhub/internal/shared/logger"
)

// UnlockBrandUseCase clears the lock after an out-of-band payment. It does
// not check whether the brand is eligible.
type UnlockBrandUseCase struct {
	brandRepo brand.Repository
	txManager db.Runner
	logger    logger.Interface
	now       func() time.Time
}

func NewUnlockBrandUseCase(brandRepo brand.Repository, txManager db.Runner, logger logger.Interface) *UnlockBrandUseCase {
	return &UnlockBrandUseCase{
		brandRepo: brandRepo,
		txManager: txManager,
		logger:    logger,
		now:       biztime.NowUTC,
	}
}

func (uc *UnlockBrandUseCase) Execute(ctx context.Context, brandID uint) error {
	err := uc.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		b, err := getBrand(ctx, uc.brandRepo, brandID)
		if err != nil {
			return err
		}
		b.Unlock(uc.now())
		if err := uc.brandRepo.Update(ctx, b); err != nil {
			return fmt.Errorf("failed to update brand: %w", err)
		}
		return nil
	})
	if err != nil {
		if !errors.IsAppError(err) {
			uc.logger.Errorw("failed to unlock brand", "brand_id", brandID, "error", err)
		}
		return err
	}

	uc.logger.Infow("brand unlocked", "brand_id", brandID)
	return nil
}

package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/kolhub/kolhub/internal/domain/brand"
	"github.com/kolhub/kolhub/internal/shared/biztime"
	"github.com/kolhub/kolhub/internal/shared/db"
	"github.com/kolhub/kolhub/internal/shared/logger"
)

// MarkReminderSentUseCase records that a reminder was shown to the brand.
type MarkReminderSentUseCase struct {
	brandRepo brand.Repository
	txManager db.Runner
	logger    logger.Interface
	now       func() time.Time
}

func NewMarkReminderSentUseCase(brandRepo brand.Repository, txManager db.Runner, logger logger.Interface) *MarkReminderSentUseCase {
	return &MarkReminderSentUseCase{
		brandRepo: brandRepo,
		txManager: txManager,
		logger:    logger,
		now:       biztime.NowUTC,
	}
}

func (uc *MarkReminderSentUseCase) Execute(ctx context.Context, brandID uint) error {
	return uc.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		b, err := getBrand(ctx, uc.brandRepo, brandID)
		if err != nil {
			return err
		}
		b.MarkReminderSent(uc.now())
		if err := uc.brandRepo.Update(ctx, b); err != nil {
			uc.logger.Errorw("failed to mark reminder sent", "brand_id", brandID, "error", err)
			return fmt.Errorf("failed to update brand: %w", err)
		}
		return nil
	})
}

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

// LockExpiredBrandsUseCase is the only path that sets a brand's lock flag.
// It is safe to re-run: already locked brands are excluded by the update.
type LockExpiredBrandsUseCase struct {
	brandRepo brand.Repository
	txManager db.Runner
	metrics   LifecycleMetrics
	logger    logger.Interface
	now       func() time.Time
}

func NewLockExpiredBrandsUseCase(brandRepo brand.Repository, txManager db.Runner, logger logger.Interface) *LockExpiredBrandsUseCase {
	return &LockExpiredBrandsUseCase{
		brandRepo: brandRepo,
		txManager: txManager,
		metrics:   nopMetrics{},
		logger:    logger,
		now:       biztime.NowUTC,
	}
}

// SetMetrics sets the metrics recorder (optional).
func (uc *LockExpiredBrandsUseCase) SetMetrics(m LifecycleMetrics) {
	if m != nil {
		uc.metrics = m
	}
}

// Execute returns the number of brands locked by this run.
func (uc *LockExpiredBrandsUseCase) Execute(ctx context.Context) (int, error) {
	now := uc.now()

	var locked int64
	err := uc.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		var err error
		locked, err = uc.brandRepo.LockExpired(ctx, now)
		return err
	})
	if err != nil {
		return 0, fmt.Errorf("failed to lock expired brands: %w", err)
	}

	if locked > 0 {
		uc.logger.Infow("expired brands locked", "count", locked, "cutoff", now)
	}
	uc.metrics.BrandsLocked(int(locked))
	return int(locked), nil
}

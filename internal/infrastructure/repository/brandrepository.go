package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/kolhub/kolhub/internal/domain/brand"
	"github.com/kolhub/kolhub/internal/infrastructure/persistence/mappers"
	"github.com/kolhub/kolhub/internal/infrastructure/persistence/models"
	"github.com/kolhub/kolhub/internal/shared/db"
	"github.com/kolhub/kolhub/internal/shared/logger"
)

type BrandRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.BrandMapper
	logger logger.Interface
}

func NewBrandRepository(db *gorm.DB, logger logger.Interface) brand.Repository {
	return &BrandRepositoryImpl{
		db:     db,
		mapper: mappers.NewBrandMapper(),
		logger: logger,
	}
}

func (r *BrandRepositoryImpl) Create(ctx context.Context, entity *brand.Brand) error {
	model := r.mapper.ToModel(entity)

	if err := db.Conn(ctx, r.db).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create brand in database", "error", err)
		return fmt.Errorf("failed to create brand: %w", err)
	}

	if err := entity.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set brand ID: %w", err)
	}

	r.logger.Infow("brand created successfully", "id", model.ID, "plan_type", model.PlanType)
	return nil
}

func (r *BrandRepositoryImpl) GetByID(ctx context.Context, id uint) (*brand.Brand, error) {
	var model models.BrandModel

	if err := db.Conn(ctx, r.db).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get brand by ID", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get brand: %w", err)
	}

	entity, err := r.mapper.ToEntity(&model)
	if err != nil {
		r.logger.Errorw("failed to map brand model to entity", "id", id, "error", err)
		return nil, fmt.Errorf("failed to map brand: %w", err)
	}
	return entity, nil
}

// Update writes every mutable column; nil timestamps are stored as NULL.
func (r *BrandRepositoryImpl) Update(ctx context.Context, entity *brand.Brand) error {
	model := r.mapper.ToModel(entity)

	result := db.Conn(ctx, r.db).Model(&models.BrandModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]any{
			"name":             model.Name,
			"contact_email":    model.ContactEmail,
			"plan_type":        model.PlanType,
			"is_paid":          model.IsPaid,
			"is_locked":        model.IsLocked,
			"locked_at":        model.LockedAt,
			"plan_started_at":  model.PlanStartedAt,
			"plan_expires_at":  model.PlanExpiresAt,
			"last_reminder_at": model.LastReminderAt,
			"updated_at":       model.UpdatedAt,
		})
	if result.Error != nil {
		r.logger.Errorw("failed to update brand", "id", model.ID, "error", result.Error)
		return fmt.Errorf("failed to update brand: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("brand %d not found", model.ID)
	}
	return nil
}

// LockExpired is a single UPDATE; brands already locked are excluded so
// running it twice with the same cutoff locks nothing the second time.
func (r *BrandRepositoryImpl) LockExpired(ctx context.Context, now time.Time) (int64, error) {
	result := db.Conn(ctx, r.db).Model(&models.BrandModel{}).
		Where("is_locked = ? AND plan_expires_at IS NOT NULL AND plan_expires_at <= ?", false, now).
		Updates(map[string]any{
			"is_locked":  true,
			"locked_at":  now,
			"updated_at": now,
		})
	if result.Error != nil {
		r.logger.Errorw("failed to lock expired brands", "cutoff", now, "error", result.Error)
		return 0, fmt.Errorf("failed to lock expired brands: %w", result.Error)
	}
	return result.RowsAffected, nil
}

func (r *BrandRepositoryImpl) ListReminderCandidates(ctx context.Context, now time.Time, windowDays int) ([]*brand.Brand, error) {
	horizon := now.AddDate(0, 0, windowDays)

	var modelList []*models.BrandModel
	err := db.Conn(ctx, r.db).
		Where("is_locked = ? AND plan_expires_at IS NOT NULL AND plan_expires_at <= ?", false, horizon).
		Order("plan_expires_at ASC").
		Find(&modelList).Error
	if err != nil {
		r.logger.Errorw("failed to list reminder candidates", "error", err)
		return nil, fmt.Errorf("failed to list reminder candidates: %w", err)
	}

	entities, err := r.mapper.ToEntities(modelList)
	if err != nil {
		return nil, fmt.Errorf("failed to map brands: %w", err)
	}
	return entities, nil
}

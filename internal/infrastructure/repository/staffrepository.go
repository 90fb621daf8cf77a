package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/kolhub/kolhub/internal/domain/staff"
	"github.com/kolhub/kolhub/internal/infrastructure/persistence/mappers"
	"github.com/kolhub/kolhub/internal/infrastructure/persistence/models"
	"github.com/kolhub/kolhub/internal/shared/db"
	"github.com/kolhub/kolhub/internal/shared/logger"
)

type StaffRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.StaffMapper
	logger logger.Interface
}

func NewStaffRepository(db *gorm.DB, logger logger.Interface) staff.Repository {
	return &StaffRepositoryImpl{
		db:     db,
		mapper: mappers.NewStaffMapper(),
		logger: logger,
	}
}

func (r *StaffRepositoryImpl) Create(ctx context.Context, entity *staff.Staff) error {
	model, err := r.mapper.ToModel(entity)
	if err != nil {
		return fmt.Errorf("failed to map staff entity: %w", err)
	}

	if err := db.Conn(ctx, r.db).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create staff in database", "brand_id", model.BrandID, "error", err)
		return fmt.Errorf("failed to create staff: %w", err)
	}

	if err := entity.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set staff ID: %w", err)
	}

	r.logger.Infow("staff created successfully", "id", model.ID, "brand_id", model.BrandID, "role", model.Role)
	return nil
}

func (r *StaffRepositoryImpl) GetByID(ctx context.Context, id uint) (*staff.Staff, error) {
	return r.first(ctx, "id = ?", id)
}

func (r *StaffRepositoryImpl) GetByEmail(ctx context.Context, email string) (*staff.Staff, error) {
	return r.first(ctx, "email = ?", strings.ToLower(email))
}

func (r *StaffRepositoryImpl) first(ctx context.Context, query string, arg any) (*staff.Staff, error) {
	var model models.StaffModel

	if err := db.Conn(ctx, r.db).Where(query, arg).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get staff", "query", query, "error", err)
		return nil, fmt.Errorf("failed to get staff: %w", err)
	}

	entity, err := r.mapper.ToEntity(&model)
	if err != nil {
		r.logger.Errorw("failed to map staff model to entity", "id", model.ID, "error", err)
		return nil, fmt.Errorf("failed to map staff: %w", err)
	}
	return entity, nil
}

func (r *StaffRepositoryImpl) ListByBrandID(ctx context.Context, brandID uint) ([]*staff.Staff, error) {
	var modelList []*models.StaffModel
	if err := db.Conn(ctx, r.db).Where("brand_id = ?", brandID).Order("id ASC").Find(&modelList).Error; err != nil {
		r.logger.Errorw("failed to list staff", "brand_id", brandID, "error", err)
		return nil, fmt.Errorf("failed to list staff: %w", err)
	}
	return r.mapper.ToEntities(modelList)
}

// UpdatePermissions overwrites the stored matrix; concurrent writers resolve
// as last write wins.
func (r *StaffRepositoryImpl) UpdatePermissions(ctx context.Context, entity *staff.Staff) error {
	model, err := r.mapper.ToModel(entity)
	if err != nil {
		return fmt.Errorf("failed to map staff entity: %w", err)
	}

	result := db.Conn(ctx, r.db).Model(&models.StaffModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]any{
			"permissions": model.Permissions,
			"updated_at":  model.UpdatedAt,
		})
	if result.Error != nil {
		r.logger.Errorw("failed to update staff permissions", "id", model.ID, "error", result.Error)
		return fmt.Errorf("failed to update staff permissions: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("staff %d not found", model.ID)
	}
	return nil
}

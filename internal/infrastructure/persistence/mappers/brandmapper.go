package mappers

import (
	"fmt"

	"github.com/kolhub/kolhub/internal/domain/brand"
	vo "github.com/kolhub/kolhub/internal/domain/brand/valueobjects"
	"github.com/kolhub/kolhub/internal/infrastructure/persistence/models"
	"github.com/kolhub/kolhub/internal/shared/mapper"
)

type BrandMapper interface {
	ToEntity(model *models.BrandModel) (*brand.Brand, error)
	ToModel(entity *brand.Brand) *models.BrandModel
	ToEntities(models []*models.BrandModel) ([]*brand.Brand, error)
}

type BrandMapperImpl struct{}

func NewBrandMapper() BrandMapper {
	return &BrandMapperImpl{}
}

func (m *BrandMapperImpl) ToEntity(model *models.BrandModel) (*brand.Brand, error) {
	if model == nil {
		return nil, nil
	}

	planType, err := vo.NewPlanType(model.PlanType)
	if err != nil {
		return nil, err
	}

	entity, err := brand.Reconstruct(brand.ReconstructParams{
		ID:             model.ID,
		UUID:           model.UUID,
		Name:           model.Name,
		ContactEmail:   model.ContactEmail,
		PlanType:       planType,
		IsPaid:         model.IsPaid,
		IsLocked:       model.IsLocked,
		LockedAt:       model.LockedAt,
		PlanStartedAt:  model.PlanStartedAt,
		PlanExpiresAt:  model.PlanExpiresAt,
		LastReminderAt: model.LastReminderAt,
		CreatedAt:      model.CreatedAt,
		UpdatedAt:      model.UpdatedAt,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct brand entity: %w", err)
	}
	return entity, nil
}

func (m *BrandMapperImpl) ToModel(entity *brand.Brand) *models.BrandModel {
	if entity == nil {
		return nil
	}

	return &models.BrandModel{
		ID:             entity.ID(),
		UUID:           entity.UUID(),
		Name:           entity.Name(),
		ContactEmail:   entity.ContactEmail(),
		PlanType:       entity.PlanType().String(),
		IsPaid:         entity.IsPaid(),
		IsLocked:       entity.IsLocked(),
		LockedAt:       entity.LockedAt(),
		PlanStartedAt:  entity.PlanStartedAt(),
		PlanExpiresAt:  entity.PlanExpiresAt(),
		LastReminderAt: entity.LastReminderAt(),
		CreatedAt:      entity.CreatedAt(),
		UpdatedAt:      entity.UpdatedAt(),
	}
}

func (m *BrandMapperImpl) ToEntities(modelList []*models.BrandModel) ([]*brand.Brand, error) {
	return mapper.MapSlicePtrWithID(modelList, m.ToEntity, func(model *models.BrandModel) uint { return model.ID })
}

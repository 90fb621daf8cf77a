package mappers

import (
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"

	"github.com/kolhub/kolhub/internal/domain/permission"
	"github.com/kolhub/kolhub/internal/domain/staff"
	"github.com/kolhub/kolhub/internal/infrastructure/persistence/models"
	"github.com/kolhub/kolhub/internal/shared/mapper"
)

type StaffMapper interface {
	ToEntity(model *models.StaffModel) (*staff.Staff, error)
	ToModel(entity *staff.Staff) (*models.StaffModel, error)
	ToEntities(models []*models.StaffModel) ([]*staff.Staff, error)
}

type StaffMapperImpl struct{}

func NewStaffMapper() StaffMapper {
	return &StaffMapperImpl{}
}

func (m *StaffMapperImpl) ToEntity(model *models.StaffModel) (*staff.Staff, error) {
	if model == nil {
		return nil, nil
	}

	var perms permission.Set
	if len(model.Permissions) > 0 {
		parsed, err := permission.ParseSet(model.Permissions)
		if err != nil {
			return nil, fmt.Errorf("failed to unmarshal permissions: %w", err)
		}
		perms = parsed
	}

	entity, err := staff.Reconstruct(staff.ReconstructParams{
		ID:          model.ID,
		UUID:        model.UUID,
		BrandID:     model.BrandID,
		Name:        model.Name,
		Email:       model.Email,
		Role:        staff.Role(model.Role),
		Permissions: perms,
		CreatedAt:   model.CreatedAt,
		UpdatedAt:   model.UpdatedAt,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct staff entity: %w", err)
	}
	return entity, nil
}

func (m *StaffMapperImpl) ToModel(entity *staff.Staff) (*models.StaffModel, error) {
	if entity == nil {
		return nil, nil
	}

	var permsJSON datatypes.JSON
	if perms := entity.Permissions(); perms != nil {
		data, err := json.Marshal(perms)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal permissions: %w", err)
		}
		permsJSON = data
	}

	return &models.StaffModel{
		ID:          entity.ID(),
		UUID:        entity.UUID(),
		BrandID:     entity.BrandID(),
		Name:        entity.Name(),
		Email:       entity.Email(),
		Role:        string(entity.Role()),
		Permissions: permsJSON,
		CreatedAt:   entity.CreatedAt(),
		UpdatedAt:   entity.UpdatedAt(),
	}, nil
}

func (m *StaffMapperImpl) ToEntities(modelList []*models.StaffModel) ([]*staff.Staff, error) {
	return mapper.MapSlicePtrWithID(modelList, m.ToEntity, func(model *models.StaffModel) uint { return model.ID })
}

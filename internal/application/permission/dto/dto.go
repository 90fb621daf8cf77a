package dto

import (
	"time"

	"github.com/kolhub/kolhub/internal/domain/permission"
	"github.com/kolhub/kolhub/internal/domain/staff"
	"github.com/kolhub/kolhub/internal/shared/mapper"
)

// StaffPermissionsDTO is returned by both the read and the write endpoint so
// that the template label is always computed the same way.
type StaffPermissionsDTO struct {
	StaffID     uint                  `json:"staff_id"`
	Permissions permission.Set        `json:"permissions"`
	Template    permission.TemplateID `json:"template"`
}

type TemplateDTO struct {
	ID          permission.TemplateID `json:"id"`
	Name        string                `json:"name"`
	Description string                `json:"description"`
	Permissions permission.Set        `json:"permissions"`
}

type StaffDTO struct {
	ID        uint                  `json:"id"`
	UUID      string                `json:"uuid"`
	BrandID   uint                  `json:"brand_id"`
	Name      string                `json:"name"`
	Email     string                `json:"email"`
	Role      string                `json:"role"`
	Template  permission.TemplateID `json:"template"`
	CreatedAt time.Time             `json:"created_at"`
}

func ToStaffPermissionsDTO(s *staff.Staff) *StaffPermissionsDTO {
	return &StaffPermissionsDTO{
		StaffID:     s.ID(),
		Permissions: s.Permissions(),
		Template:    s.Template(),
	}
}

func ToTemplateDTOs(templates []permission.Template) []TemplateDTO {
	return mapper.MapSlice(templates, func(t permission.Template) TemplateDTO {
		return TemplateDTO{
			ID:          t.ID,
			Name:        t.Name,
			Description: t.Description,
			Permissions: t.Permissions,
		}
	})
}

func ToStaffDTO(s *staff.Staff) *StaffDTO {
	return &StaffDTO{
		ID:        s.ID(),
		UUID:      s.UUID(),
		BrandID:   s.BrandID(),
		Name:      s.Name(),
		Email:     s.Email(),
		Role:      string(s.Role()),
		Template:  s.Template(),
		CreatedAt: s.CreatedAt(),
	}
}

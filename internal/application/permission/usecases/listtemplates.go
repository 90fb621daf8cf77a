package usecases

import (
	"context"

	"github.com/kolhub/kolhub/internal/application/permission/dto"
	"github.com/kolhub/kolhub/internal/domain/permission"
)

type ListTemplatesUseCase struct{}

func NewListTemplatesUseCase() *ListTemplatesUseCase {
	return &ListTemplatesUseCase{}
}

func (uc *ListTemplatesUseCase) Execute(_ context.Context) []dto.TemplateDTO {
	return dto.ToTemplateDTOs(permission.Templates())
}

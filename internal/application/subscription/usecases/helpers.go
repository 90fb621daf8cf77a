package usecases

import (
	"context"
	"fmt"

	"github.com/kolhub/kolhub/internal/domain/brand"
	"github.com/kolhub/kolhub/internal/shared/errors"
)

func getBrand(ctx context.Context, repo brand.Repository, brandID uint) (*brand.Brand, error) {
	if brandID == 0 {
		return nil, errors.NewValidationError("brand ID is required")
	}

	b, err := repo.GetByID(ctx, brandID)
	if err != nil {
		return nil, fmt.Errorf("failed to get brand: %w", err)
	}
	if b == nil {
		return nil, errors.NewNotFoundError("brand not found")
	}
	return b, nil
}

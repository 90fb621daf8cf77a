package handlers

import (
	"context"

	"github.com/kolhub/kolhub/internal/application/subscription/dto"
)

// Use case interfaces for SubscriptionHandler

type getUserSubscriptionStatusUseCase interface {
	Execute(ctx context.Context, staffID uint) (*dto.SubscriptionStatusDTO, error)
}

type markReminderSentUseCase interface {
	Execute(ctx context.Context, brandID uint) error
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kolhub/kolhub/internal/shared/errors"
	"github.com/kolhub/kolhub/internal/shared/logger"
	"github.com/kolhub/kolhub/internal/shared/utils"
)

// SubscriptionHandler exposes the caller's own brand subscription. These
// routes stay reachable while the brand is locked.
type SubscriptionHandler struct {
	getStatusUC getUserSubscriptionStatusUseCase
	markSentUC  markReminderSentUseCase
	logger      logger.Interface
}

func NewSubscriptionHandler(
	getStatusUC getUserSubscriptionStatusUseCase,
	markSentUC markReminderSentUseCase,
	logger logger.Interface,
) *SubscriptionHandler {
	return &SubscriptionHandler{
		getStatusUC: getStatusUC,
		markSentUC:  markSentUC,
		logger:      logger,
	}
}

// GetMySubscription handles GET /subscription
func (h *SubscriptionHandler) GetMySubscription(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	result, err := h.getStatusUC.Execute(c.Request.Context(), actor.StaffID)
	if err != nil {
		if !errors.IsAppError(err) {
			h.logger.Errorw("failed to get subscription status", "error", err, "staff_id", actor.StaffID)
		}
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// AcknowledgeReminder handles POST /subscription/reminder/ack
func (h *SubscriptionHandler) AcknowledgeReminder(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	if actor.BrandID == 0 {
		utils.ErrorResponseWithError(c, errors.NewValidationError("caller is not bound to a brand"))
		return
	}

	if err := h.markSentUC.Execute(c.Request.Context(), actor.BrandID); err != nil {
		if !errors.IsAppError(err) {
			h.logger.Errorw("failed to acknowledge reminder", "error", err, "brand_id", actor.BrandID)
		}
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "reminder acknowledged", nil)
}

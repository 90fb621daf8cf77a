// Package admin provides HTTP handlers for platform administration.
package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kolhub/kolhub/internal/application/subscription/usecases"
	"github.com/kolhub/kolhub/internal/shared/errors"
	"github.com/kolhub/kolhub/internal/shared/logger"
	"github.com/kolhub/kolhub/internal/shared/utils"
)

// BrandHandler handles brand provisioning and subscription administration.
type BrandHandler struct {
	initializeUC initializeSubscriptionUseCase
	getStatusUC  getSubscriptionStatusUseCase
	renewUC      renewSubscriptionUseCase
	unlockUC     unlockBrandUseCase
	lockSweepUC  lockExpiredBrandsUseCase
	logger       logger.Interface
}

// NewBrandHandler creates a new admin brand handler
func NewBrandHandler(
	initializeUC initializeSubscriptionUseCase,
	getStatusUC getSubscriptionStatusUseCase,
	renewUC renewSubscriptionUseCase,
	unlockUC unlockBrandUseCase,
	lockSweepUC lockExpiredBrandsUseCase,
	logger logger.Interface,
) *BrandHandler {
	return &BrandHandler{
		initializeUC: initializeUC,
		getStatusUC:  getStatusUC,
		renewUC:      renewUC,
		unlockUC:     unlockUC,
		lockSweepUC:  lockSweepUC,
		logger:       logger,
	}
}

type CreateBrandRequest struct {
	Name         string `json:"name" binding:"required,max=100"`
	ContactEmail string `json:"contact_email" binding:"omitempty,email"`
	PlanType     string `json:"plan_type"`
	IsPaid       bool   `json:"is_paid"`
}

type RenewSubscriptionRequest struct {
	PlanType string `json:"plan_type"`
	// DurationDays defaults to 365 when omitted.
	DurationDays int `json:"duration_days" binding:"omitempty,min=1"`
}

type LockSweepResponse struct {
	Locked int `json:"locked"`
}

// CreateBrand handles POST /admin/brands
func (h *BrandHandler) CreateBrand(c *gin.Context) {
	var req CreateBrandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create brand", "error", err)
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	result, err := h.initializeUC.Execute(c.Request.Context(), usecases.InitializeSubscriptionCommand{
		Name:         req.Name,
		ContactEmail: req.ContactEmail,
		PlanType:     req.PlanType,
		IsPaid:       req.IsPaid,
	})
	if err != nil {
		if !errors.IsAppError(err) {
			h.logger.Errorw("failed to create brand", "error", err, "name", req.Name)
		}
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "brand created")
}

// GetSubscription handles GET /admin/brands/:id/subscription
func (h *BrandHandler) GetSubscription(c *gin.Context) {
	brandID, err := utils.ParseIDParam(c, "id", "brand")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getStatusUC.Execute(c.Request.Context(), brandID)
	if err != nil {
		if !errors.IsAppError(err) {
			h.logger.Errorw("failed to get brand subscription", "error", err, "brand_id", brandID)
		}
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// RenewSubscription handles POST /admin/brands/:id/subscription/renew
func (h *BrandHandler) RenewSubscription(c *gin.Context) {
	brandID, err := utils.ParseIDParam(c, "id", "brand")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req RenewSubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for renew subscription", "error", err, "brand_id", brandID)
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	result, err := h.renewUC.Execute(c.Request.Context(), usecases.RenewSubscriptionCommand{
		BrandID:      brandID,
		PlanType:     req.PlanType,
		DurationDays: req.DurationDays,
	})
	if err != nil {
		if !errors.IsAppError(err) {
			h.logger.Errorw("failed to renew subscription", "error", err, "brand_id", brandID)
		}
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "subscription renewed", result)
}

// UnlockBrand handles POST /admin/brands/:id/subscription/unlock
func (h *BrandHandler) UnlockBrand(c *gin.Context) {
	brandID, err := utils.ParseIDParam(c, "id", "brand")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.unlockUC.Execute(c.Request.Context(), brandID); err != nil {
		if !errors.IsAppError(err) {
			h.logger.Errorw("failed to unlock brand", "error", err, "brand_id", brandID)
		}
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "brand unlocked", nil)
}

// LockExpired handles POST /admin/subscriptions/lock-expired
func (h *BrandHandler) LockExpired(c *gin.Context) {
	locked, err := h.lockSweepUC.Execute(c.Request.Context())
	if err != nil {
		h.logger.Errorw("manual lock sweep failed", "error", err, "locked", locked)
		utils.ErrorResponseWithError(c, err)
		return
	}

	h.logger.Infow("manual lock sweep completed", "locked", locked)
	utils.SuccessResponse(c, http.StatusOK, "", LockSweepResponse{Locked: locked})
}

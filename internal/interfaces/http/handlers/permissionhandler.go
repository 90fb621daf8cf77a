package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/kolhub/kolhub/internal/application/permission/usecases"
	"github.com/kolhub/kolhub/internal/domain/permission"
	"github.com/kolhub/kolhub/internal/shared/errors"
	"github.com/kolhub/kolhub/internal/shared/logger"
	"github.com/kolhub/kolhub/internal/shared/utils"
)

// PermissionHandler serves permission templates, staff permission matrices
// and staff accounts.
type PermissionHandler struct {
	listTemplatesUC   listTemplatesUseCase
	getPermissionsUC  getStaffPermissionsUseCase
	updatePermsUC     updateStaffPermissionsUseCase
	checkCapabilityUC checkCapabilityUseCase
	createStaffUC     createStaffUseCase
	listStaffUC       listStaffUseCase
	logger            logger.Interface
}

func NewPermissionHandler(
	listTemplatesUC listTemplatesUseCase,
	getPermissionsUC getStaffPermissionsUseCase,
	updatePermsUC updateStaffPermissionsUseCase,
	checkCapabilityUC checkCapabilityUseCase,
	createStaffUC createStaffUseCase,
	listStaffUC listStaffUseCase,
	logger logger.Interface,
) *PermissionHandler {
	return &PermissionHandler{
		listTemplatesUC:   listTemplatesUC,
		getPermissionsUC:  getPermissionsUC,
		updatePermsUC:     updatePermsUC,
		checkCapabilityUC: checkCapabilityUC,
		createStaffUC:     createStaffUC,
		listStaffUC:       listStaffUC,
		logger:            logger,
	}
}

// UpdatePermissionsRequest carries the full or partial matrix to store.
type UpdatePermissionsRequest struct {
	Permissions json.RawMessage `json:"permissions" binding:"required"`
}

type CreateStaffRequest struct {
	// BrandID is only read for platform admins; brand staff always create
	// within their own brand.
	BrandID uint   `json:"brand_id"`
	Name    string `json:"name" binding:"required,max=100"`
	Email   string `json:"email" binding:"required,email"`
	Role    string `json:"role" binding:"omitempty,oneof=owner admin staff"`
}

type CapabilityResponse struct {
	Capability string `json:"capability"`
	Allowed    bool   `json:"allowed"`
}

// ListTemplates handles GET /permission-templates
func (h *PermissionHandler) ListTemplates(c *gin.Context) {
	templates := h.listTemplatesUC.Execute(c.Request.Context())
	utils.SuccessResponse(c, http.StatusOK, "", templates)
}

// GetStaffPermissions handles GET /staff/:id/permissions
func (h *PermissionHandler) GetStaffPermissions(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	staffID, err := utils.ParseIDParam(c, "id", "staff")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getPermissionsUC.Execute(c.Request.Context(), actor, staffID)
	if err != nil {
		if !errors.IsAppError(err) {
			h.logger.Errorw("failed to get staff permissions", "error", err, "staff_id", staffID)
		}
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// UpdateStaffPermissions handles PUT /staff/:id/permissions
func (h *PermissionHandler) UpdateStaffPermissions(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	staffID, err := utils.ParseIDParam(c, "id", "staff")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdatePermissionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update staff permissions", "error", err)
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	set, err := permission.ParseSet(req.Permissions)
	if err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("permissions must map categories to boolean flags", err.Error()))
		return
	}

	result, err := h.updatePermsUC.Execute(c.Request.Context(), usecases.UpdateStaffPermissionsCommand{
		Actor:       actor,
		StaffID:     staffID,
		Permissions: set,
	})
	if err != nil {
		if !errors.IsAppError(err) {
			h.logger.Errorw("failed to update staff permissions", "error", err, "staff_id", staffID)
		}
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "permissions updated", result)
}

// CheckMyCapability handles GET /staff/me/capabilities/:path
func (h *PermissionHandler) CheckMyCapability(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	path := c.Param("path")
	allowed, err := h.checkCapabilityUC.Execute(c.Request.Context(), actor.StaffID, path)
	if err != nil {
		h.logger.Errorw("failed to check capability", "error", err, "staff_id", actor.StaffID, "capability", path)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", CapabilityResponse{Capability: path, Allowed: allowed})
}

// CreateStaff handles POST /staff
func (h *PermissionHandler) CreateStaff(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	var req CreateStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create staff", "error", err)
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	brandID := actor.BrandID
	if brandID == 0 {
		brandID = req.BrandID
	}

	result, err := h.createStaffUC.Execute(c.Request.Context(), usecases.CreateStaffCommand{
		Actor:   actor,
		BrandID: brandID,
		Name:    req.Name,
		Email:   req.Email,
		Role:    req.Role,
	})
	if err != nil {
		if !errors.IsAppError(err) {
			h.logger.Errorw("failed to create staff", "error", err, "brand_id", brandID)
		}
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "staff created")
}

// ListStaff handles GET /staff
// Platform admins pick the brand with ?brand_id=.
func (h *PermissionHandler) ListStaff(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	brandID := actor.BrandID
	if brandID == 0 {
		if raw := c.Query("brand_id"); raw != "" {
			id, err := strconv.ParseUint(raw, 10, 64)
			if err != nil {
				utils.ErrorResponseWithError(c, errors.NewValidationError("invalid brand_id", err.Error()))
				return
			}
			brandID = uint(id)
		}
	}

	result, err := h.listStaffUC.Execute(c.Request.Context(), actor, brandID)
	if err != nil {
		if !errors.IsAppError(err) {
			h.logger.Errorw("failed to list staff", "error", err, "brand_id", brandID)
		}
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

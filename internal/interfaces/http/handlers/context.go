package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kolhub/kolhub/internal/application/permission/usecases"
	"github.com/kolhub/kolhub/internal/shared/constants"
	"github.com/kolhub/kolhub/internal/shared/utils"
)

// currentActor reads the identity set by the auth middleware. It writes the
// 401 response itself when the identity is missing.
func currentActor(c *gin.Context) (usecases.Actor, bool) {
	staffID, ok := utils.GetStaffID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, constants.ErrMsgUnauthorized)
		return usecases.Actor{}, false
	}
	brandID, _ := utils.GetBrandID(c)
	return usecases.Actor{StaffID: staffID, BrandID: brandID}, true
}

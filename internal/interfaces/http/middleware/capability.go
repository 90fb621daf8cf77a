package middleware

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kolhub/kolhub/internal/domain/staff"
	"github.com/kolhub/kolhub/internal/shared/constants"
	"github.com/kolhub/kolhub/internal/shared/logger"
	"github.com/kolhub/kolhub/internal/shared/utils"
)

type capabilityChecker interface {
	Execute(ctx context.Context, staffID uint, path string) (bool, error)
}

// CapabilityMiddleware gates feature routes on one capability of the
// caller's permission matrix, e.g. "operations.exportData". Brand owners and
// admins, and platform admins, pass without a matrix lookup.
type CapabilityMiddleware struct {
	checker capabilityChecker
	logger  logger.Interface
}

func NewCapabilityMiddleware(checker capabilityChecker, logger logger.Interface) *CapabilityMiddleware {
	return &CapabilityMiddleware{
		checker: checker,
		logger:  logger,
	}
}

func (m *CapabilityMiddleware) RequireCapability(path string) gin.HandlerFunc {
	return func(c *gin.Context) {
		staffID, ok := utils.GetStaffID(c)
		if !ok {
			utils.ErrorResponse(c, http.StatusUnauthorized, constants.ErrMsgUnauthorized)
			c.Abort()
			return
		}

		brandID, _ := utils.GetBrandID(c)
		if brandID == 0 || staff.Role(c.GetString(constants.ContextKeyStaffRole)).CanManageStaff() {
			c.Next()
			return
		}

		allowed, err := m.checker.Execute(c.Request.Context(), staffID, path)
		if err != nil {
			utils.ErrorResponseWithError(c, err)
			c.Abort()
			return
		}

		if !allowed {
			m.logger.Warnw("capability denied", "staff_id", staffID, "capability", path)
			utils.ErrorResponse(c, http.StatusForbidden, "missing capability: "+path)
			c.Abort()
			return
		}

		c.Next()
	}
}

package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kolhub/kolhub/internal/domain/permission"
	"github.com/kolhub/kolhub/internal/shared/constants"
	"github.com/kolhub/kolhub/internal/shared/logger"
	"github.com/kolhub/kolhub/internal/shared/utils"
)

// PermissionMiddleware gates routes on the role policies.
type PermissionMiddleware struct {
	enforcer permission.PolicyEnforcer
	logger   logger.Interface
}

func NewPermissionMiddleware(enforcer permission.PolicyEnforcer, logger logger.Interface) *PermissionMiddleware {
	return &PermissionMiddleware{
		enforcer: enforcer,
		logger:   logger,
	}
}

func (m *PermissionMiddleware) RequirePolicy(resource, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		subject := utils.GetSubject(c)
		if subject == "" {
			utils.ErrorResponse(c, http.StatusUnauthorized, constants.ErrMsgUnauthorized)
			c.Abort()
			return
		}

		allowed, err := m.enforcer.Enforce(subject, resource, action)
		if err != nil {
			m.logger.Errorw("policy check failed", "error", err, "subject", subject, "resource", resource, "action", action)
			utils.ErrorResponse(c, http.StatusInternalServerError, "permission check failed")
			c.Abort()
			return
		}

		if !allowed {
			staffID, _ := utils.GetStaffID(c)
			m.logger.Warnw("permission denied", "staff_id", staffID, "subject", subject, "resource", resource, "action", action)
			utils.ErrorResponse(c, http.StatusForbidden, "insufficient permissions")
			c.Abort()
			return
		}

		c.Next()
	}
}

package utils

import (
	"github.com/gin-gonic/gin"

	"github.com/kolhub/kolhub/internal/shared/constants"
)

// GetStaffID returns the authenticated staff ID set by the auth middleware.
func GetStaffID(c *gin.Context) (uint, bool) {
	return getUint(c, constants.ContextKeyStaffID)
}

// GetBrandID returns the caller's brand. Zero for platform admins.
func GetBrandID(c *gin.Context) (uint, bool) {
	return getUint(c, constants.ContextKeyBrandID)
}

// GetSubject returns the casbin subject of the caller.
func GetSubject(c *gin.Context) string {
	return c.GetString(constants.ContextKeySubject)
}

func getUint(c *gin.Context, key string) (uint, bool) {
	v, exists := c.Get(key)
	if !exists {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}

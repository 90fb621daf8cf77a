package utils

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/kolhub/kolhub/internal/shared/errors"
)

// ParseIDParam parses a positive numeric ID from a URL path parameter.
// entityName is used in error messages (e.g., "brand", "staff").
func ParseIDParam(c *gin.Context, paramName, entityName string) (uint, error) {
	raw := c.Param(paramName)
	if raw == "" {
		return 0, errors.NewValidationError(entityName + " ID is required")
	}

	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, errors.NewValidationError(fmt.Sprintf("invalid %s ID", entityName), raw)
	}
	return uint(id), nil
}

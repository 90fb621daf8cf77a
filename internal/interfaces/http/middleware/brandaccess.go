package middleware

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kolhub/kolhub/internal/application/subscription/dto"
	"github.com/kolhub/kolhub/internal/shared/constants"
	"github.com/kolhub/kolhub/internal/shared/errors"
	"github.com/kolhub/kolhub/internal/shared/logger"
	"github.com/kolhub/kolhub/internal/shared/utils"
)

type brandStatusReader interface {
	Execute(ctx context.Context, brandID uint) (*dto.SubscriptionStatusDTO, error)
}

// BrandAccessMiddleware blocks staff of a locked brand. Routes that must stay
// reachable while locked (subscription read and reminder ack) are mounted
// without it.
type BrandAccessMiddleware struct {
	statusReader brandStatusReader
	logger       logger.Interface
}

func NewBrandAccessMiddleware(statusReader brandStatusReader, logger logger.Interface) *BrandAccessMiddleware {
	return &BrandAccessMiddleware{
		statusReader: statusReader,
		logger:       logger,
	}
}

func (m *BrandAccessMiddleware) RequireActiveBrand() gin.HandlerFunc {
	return func(c *gin.Context) {
		brandID, ok := utils.GetBrandID(c)
		if !ok {
			utils.ErrorResponse(c, http.StatusUnauthorized, constants.ErrMsgUnauthorized)
			c.Abort()
			return
		}

		// platform admins are not bound to a brand
		if brandID == 0 {
			c.Next()
			return
		}

		status, err := m.statusReader.Execute(c.Request.Context(), brandID)
		if err != nil {
			m.logger.Errorw("failed to load brand subscription", "brand_id", brandID, "error", err)
			utils.ErrorResponseWithError(c, err)
			c.Abort()
			return
		}

		if status.IsLocked {
			utils.ErrorResponseWithError(c, errors.NewLockedError(constants.ErrMsgSubscriptionLocked))
			c.Abort()
			return
		}

		c.Next()
	}
}

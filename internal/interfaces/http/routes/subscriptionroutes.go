package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/kolhub/kolhub/internal/domain/permission"
	"github.com/kolhub/kolhub/internal/interfaces/http/handlers"
	"github.com/kolhub/kolhub/internal/interfaces/http/middleware"
)

// SubscriptionRouteConfig contains dependencies for the caller's subscription routes.
type SubscriptionRouteConfig struct {
	SubscriptionHandler  *handlers.SubscriptionHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
}

// SetupSubscriptionRoutes configures /subscription. These routes skip the
// brand lock check so a locked brand can still see why and acknowledge.
func SetupSubscriptionRoutes(engine *gin.Engine, cfg *SubscriptionRouteConfig) {
	policy := cfg.PermissionMiddleware.RequirePolicy

	subscription := engine.Group("/subscription")
	subscription.Use(cfg.AuthMiddleware.RequireAuth())
	{
		subscription.GET("", policy(permission.ResourceSubscription, permission.ActionRead), cfg.SubscriptionHandler.GetMySubscription)
		subscription.POST("/reminder/ack", policy(permission.ResourceSubscription, permission.ActionAck), cfg.SubscriptionHandler.AcknowledgeReminder)
	}
}

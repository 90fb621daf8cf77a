package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/kolhub/kolhub/internal/domain/permission"
	adminHandlers "github.com/kolhub/kolhub/internal/interfaces/http/handlers/admin"
	"github.com/kolhub/kolhub/internal/interfaces/http/middleware"
)

// AdminRouteConfig holds dependencies for platform admin routes.
type AdminRouteConfig struct {
	BrandHandler         *adminHandlers.BrandHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
}

// SetupAdminRoutes configures platform admin routes.
func SetupAdminRoutes(engine *gin.Engine, cfg *AdminRouteConfig) {
	policy := cfg.PermissionMiddleware.RequirePolicy

	adminBrands := engine.Group("/admin/brands")
	adminBrands.Use(cfg.AuthMiddleware.RequireAuth())
	{
		adminBrands.POST("", policy(permission.ResourceBrand, permission.ActionCreate), cfg.BrandHandler.CreateBrand)
		adminBrands.GET("/:id/subscription", policy(permission.ResourceBrand, permission.ActionRead), cfg.BrandHandler.GetSubscription)
		adminBrands.POST("/:id/subscription/renew", policy(permission.ResourceSubscription, permission.ActionRenew), cfg.BrandHandler.RenewSubscription)
		adminBrands.POST("/:id/subscription/unlock", policy(permission.ResourceSubscription, permission.ActionUnlock), cfg.BrandHandler.UnlockBrand)
	}

	adminSubscriptions := engine.Group("/admin/subscriptions")
	adminSubscriptions.Use(cfg.AuthMiddleware.RequireAuth())
	{
		adminSubscriptions.POST("/lock-expired", policy(permission.ResourceLockSweep, permission.ActionRun), cfg.BrandHandler.LockExpired)
	}
}

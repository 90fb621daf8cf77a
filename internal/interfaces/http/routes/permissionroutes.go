// Package routes provides HTTP route configurations.
package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/kolhub/kolhub/internal/domain/permission"
	"github.com/kolhub/kolhub/internal/interfaces/http/handlers"
	"github.com/kolhub/kolhub/internal/interfaces/http/middleware"
)

// PermissionRouteConfig contains dependencies for permission and staff routes.
type PermissionRouteConfig struct {
	PermissionHandler     *handlers.PermissionHandler
	AuthMiddleware        *middleware.AuthMiddleware
	PermissionMiddleware  *middleware.PermissionMiddleware
	BrandAccessMiddleware *middleware.BrandAccessMiddleware
	CapabilityMiddleware  *middleware.CapabilityMiddleware
}

var teamDataCapability = permission.Field{
	Category: permission.CategoryDataVisibility,
	Key:      permission.KeyViewTeamData,
}.Path()

// SetupPermissionRoutes configures permission template and staff routes.
// All routes require an unlocked brand.
func SetupPermissionRoutes(engine *gin.Engine, cfg *PermissionRouteConfig) {
	policy := cfg.PermissionMiddleware.RequirePolicy

	templates := engine.Group("/permission-templates")
	templates.Use(cfg.AuthMiddleware.RequireAuth(), cfg.BrandAccessMiddleware.RequireActiveBrand())
	{
		templates.GET("", policy(permission.ResourcePermissionTemplate, permission.ActionRead), cfg.PermissionHandler.ListTemplates)
	}

	staff := engine.Group("/staff")
	staff.Use(cfg.AuthMiddleware.RequireAuth(), cfg.BrandAccessMiddleware.RequireActiveBrand())
	{
		staff.GET("",
			policy(permission.ResourceStaff, permission.ActionRead),
			cfg.CapabilityMiddleware.RequireCapability(teamDataCapability),
			cfg.PermissionHandler.ListStaff,
		)
		staff.POST("", policy(permission.ResourceStaff, permission.ActionCreate), cfg.PermissionHandler.CreateStaff)

		// Specific named endpoints (must come BEFORE /:id)
		staff.GET("/me/capabilities/:path",
			policy(permission.ResourceCapability, permission.ActionRead),
			cfg.PermissionHandler.CheckMyCapability,
		)

		staff.GET("/:id/permissions",
			policy(permission.ResourceStaffPermission, permission.ActionRead),
			cfg.PermissionHandler.GetStaffPermissions,
		)
		staff.PUT("/:id/permissions",
			policy(permission.ResourceStaffPermission, permission.ActionUpdate),
			cfg.PermissionHandler.UpdateStaffPermissions,
		)
	}
}

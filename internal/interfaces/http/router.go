// Package http wires the KOLHub HTTP API.
package http

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/kolhub/kolhub/internal/infrastructure/metrics"
	"github.com/kolhub/kolhub/internal/infrastructure/scheduler"
	"github.com/kolhub/kolhub/internal/interfaces/http/middleware"
	"github.com/kolhub/kolhub/internal/interfaces/http/routes"
	"github.com/kolhub/kolhub/internal/shared/utils"
)

// SetupRoutes configures all HTTP routes
func (c *Container) SetupRoutes() {
	utils.UseJSONFieldNames()

	c.engine.Use(middleware.RequestID())
	c.engine.Use(middleware.Logger(c.log.Named("http")))
	c.engine.Use(middleware.Recovery(c.log))
	c.engine.Use(middleware.CORS(c.cfg.Server.AllowedOrigins))
	c.engine.Use(middleware.SecurityHeaders())
	c.engine.Use(middleware.Metrics(c.metrics))

	c.engine.GET("/health", c.hdlrs.healthHandler.Check)
	c.engine.GET("/metrics", gin.WrapH(metrics.Handler(c.registry)))

	routes.SetupPermissionRoutes(c.engine, &routes.PermissionRouteConfig{
		PermissionHandler:     c.hdlrs.permissionHandler,
		AuthMiddleware:        c.authMiddleware,
		PermissionMiddleware:  c.permissionMiddleware,
		BrandAccessMiddleware: c.brandAccessMiddleware,
		CapabilityMiddleware:  c.capabilityMiddleware,
	})
	routes.SetupSubscriptionRoutes(c.engine, &routes.SubscriptionRouteConfig{
		SubscriptionHandler:  c.hdlrs.subscriptionHandler,
		AuthMiddleware:       c.authMiddleware,
		PermissionMiddleware: c.permissionMiddleware,
	})
	routes.SetupAdminRoutes(c.engine, &routes.AdminRouteConfig{
		BrandHandler:         c.hdlrs.adminBrandHandler,
		AuthMiddleware:       c.authMiddleware,
		PermissionMiddleware: c.permissionMiddleware,
	})
}

// Engine returns the gin engine
func (c *Container) Engine() *gin.Engine {
	return c.engine
}

// StartScheduler starts the lifecycle jobs.
func (c *Container) StartScheduler() {
	c.schedulerManager.Start()
}

// RunJob runs one lifecycle job immediately under the same lease as the
// scheduler. It reports false when another instance holds the lease and
// returns the job's error.
func (c *Container) RunJob(ctx context.Context, name string) (bool, error) {
	var job scheduler.BatchJob
	switch name {
	case scheduler.JobLockSweep:
		job = c.ucs.lockExpiredBrandsUC
	case scheduler.JobExpiryReminders:
		if c.ucs.sendExpiryRemindersUC == nil {
			return false, fmt.Errorf("expiry reminders are disabled or no SMTP host is configured")
		}
		job = c.ucs.sendExpiryRemindersUC
	default:
		return false, fmt.Errorf("unknown job %q", name)
	}
	return c.schedulerManager.RunOnce(ctx, name, job)
}

// Shutdown stops background services and releases connections.
func (c *Container) Shutdown() {
	if c.schedulerManager != nil {
		if err := c.schedulerManager.Stop(); err != nil {
			c.log.Errorw("failed to stop scheduler", "error", err)
		}
	}
	c.closeRedis()
}

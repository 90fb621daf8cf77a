package http

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/kolhub/kolhub/internal/infrastructure/auth"
	"github.com/kolhub/kolhub/internal/infrastructure/config"
	"github.com/kolhub/kolhub/internal/infrastructure/metrics"
	infraPermission "github.com/kolhub/kolhub/internal/infrastructure/permission"
	"github.com/kolhub/kolhub/internal/infrastructure/scheduler"
	"github.com/kolhub/kolhub/internal/interfaces/http/middleware"
	"github.com/kolhub/kolhub/internal/shared/logger"
)

type pinger interface {
	PingContext(ctx context.Context) error
}

// Container holds all infrastructure components, repositories, use cases,
// handlers and background services, and wires them together.
type Container struct {
	// Core infrastructure
	engine *gin.Engine
	db     *gorm.DB
	cfg    *config.Config
	log    logger.Interface
	redis  *redis.Client

	registry *prometheus.Registry
	metrics  *metrics.Metrics
	jwtSvc   *auth.JWTService
	enforcer *infraPermission.Enforcer

	repos *repositories
	ucs   *allUseCases
	hdlrs *allHandlers

	// Middlewares
	authMiddleware        *middleware.AuthMiddleware
	permissionMiddleware  *middleware.PermissionMiddleware
	brandAccessMiddleware *middleware.BrandAccessMiddleware
	capabilityMiddleware  *middleware.CapabilityMiddleware

	schedulerManager *scheduler.SchedulerManager
}

// NewContainer creates a Container with all dependencies wired together.
func NewContainer(ctx context.Context, db *gorm.DB, cfg *config.Config, log logger.Interface) (*Container, error) {
	c := &Container{
		engine:   gin.New(),
		db:       db,
		cfg:      cfg,
		log:      log,
		registry: metrics.NewRegistry(),
	}
	c.metrics = metrics.New(c.registry)

	// Section 1: Infrastructure
	c.redis = initRedis(ctx, cfg, log)
	c.repos = newRepositories(db, log)
	c.jwtSvc = auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.AccessExpMinutes)

	enforcer, err := infraPermission.NewEnforcer(db, log.Named("casbin"))
	if err != nil {
		return nil, err
	}
	if err := enforcer.SeedPolicies(); err != nil {
		return nil, err
	}
	c.enforcer = enforcer

	// Section 2: Use cases and handlers
	c.ucs = newUseCases(c.repos, newReminderSender(cfg, log), c.metrics, log)

	var dbPinger pinger
	if sqlDB, err := db.DB(); err == nil {
		dbPinger = sqlDB
	}
	c.hdlrs = newHandlers(c.ucs, dbPinger, log)

	// Section 3: Middlewares
	c.authMiddleware = middleware.NewAuthMiddleware(c.jwtSvc, log)
	c.permissionMiddleware = middleware.NewPermissionMiddleware(c.enforcer, log)
	c.brandAccessMiddleware = middleware.NewBrandAccessMiddleware(c.ucs.getSubscriptionStatusUC, log)
	c.capabilityMiddleware = middleware.NewCapabilityMiddleware(c.ucs.checkCapabilityUC, log)

	// Section 4: Scheduled lifecycle jobs
	if err := c.initScheduler(); err != nil {
		c.closeRedis()
		return nil, fmt.Errorf("failed to initialize scheduler: %w", err)
	}

	return c, nil
}

func (c *Container) closeRedis() {
	if c.redis == nil {
		return
	}
	if err := c.redis.Close(); err != nil {
		c.log.Warnw("failed to close redis client", "error", err)
	}
}

package http

import (
	"github.com/kolhub/kolhub/internal/interfaces/http/handlers"
	adminHandlers "github.com/kolhub/kolhub/internal/interfaces/http/handlers/admin"
	"github.com/kolhub/kolhub/internal/shared/logger"
)

// allHandlers holds all HTTP handler instances used by the application.
type allHandlers struct {
	permissionHandler   *handlers.PermissionHandler
	subscriptionHandler *handlers.SubscriptionHandler
	adminBrandHandler   *adminHandlers.BrandHandler
	healthHandler       *handlers.HealthHandler
}

func newHandlers(ucs *allUseCases, db pinger, log logger.Interface) *allHandlers {
	return &allHandlers{
		permissionHandler: handlers.NewPermissionHandler(
			ucs.listTemplatesUC,
			ucs.getStaffPermissionsUC,
			ucs.updateStaffPermissionsUC,
			ucs.checkCapabilityUC,
			ucs.createStaffUC,
			ucs.listStaffUC,
			log,
		),
		subscriptionHandler: handlers.NewSubscriptionHandler(
			ucs.getUserSubscriptionStatusUC,
			ucs.markReminderSentUC,
			log,
		),
		adminBrandHandler: adminHandlers.NewBrandHandler(
			ucs.initializeSubscriptionUC,
			ucs.getSubscriptionStatusUC,
			ucs.renewSubscriptionUC,
			ucs.unlockBrandUC,
			ucs.lockExpiredBrandsUC,
			log,
		),
		healthHandler: handlers.NewHealthHandler(db),
	}
}

package http

import (
	permissionUsecases "github.com/kolhub/kolhub/internal/application/permission/usecases"
	subscriptionUsecases "github.com/kolhub/kolhub/internal/application/subscription/usecases"
	"github.com/kolhub/kolhub/internal/infrastructure/metrics"
	"github.com/kolhub/kolhub/internal/shared/logger"
)

// allUseCases holds all use case instances used by the application.
type allUseCases struct {
	// Subscription lifecycle
	initializeSubscriptionUC    *subscriptionUsecases.InitializeSubscriptionUseCase
	getSubscriptionStatusUC     *subscriptionUsecases.GetSubscriptionStatusUseCase
	getUserSubscriptionStatusUC *subscriptionUsecases.GetUserSubscriptionStatusUseCase
	renewSubscriptionUC         *subscriptionUsecases.RenewSubscriptionUseCase
	unlockBrandUC               *subscriptionUsecases.UnlockBrandUseCase
	markReminderSentUC          *subscriptionUsecases.MarkReminderSentUseCase
	lockExpiredBrandsUC         *subscriptionUsecases.LockExpiredBrandsUseCase
	// nil when no SMTP server is configured
	sendExpiryRemindersUC *subscriptionUsecases.SendExpiryRemindersUseCase

	// Permissions
	listTemplatesUC          *permissionUsecases.ListTemplatesUseCase
	getStaffPermissionsUC    *permissionUsecases.GetStaffPermissionsUseCase
	updateStaffPermissionsUC *permissionUsecases.UpdateStaffPermissionsUseCase
	checkCapabilityUC        *permissionUsecases.CheckCapabilityUseCase
	createStaffUC            *permissionUsecases.CreateStaffUseCase
	listStaffUC              *permissionUsecases.ListStaffUseCase
}

func newUseCases(repos *repositories, sender subscriptionUsecases.ReminderSender, m *metrics.Metrics, log logger.Interface) *allUseCases {
	ucs := &allUseCases{
		initializeSubscriptionUC:    subscriptionUsecases.NewInitializeSubscriptionUseCase(repos.brandRepo, repos.txManager, log),
		getSubscriptionStatusUC:     subscriptionUsecases.NewGetSubscriptionStatusUseCase(repos.brandRepo, log),
		getUserSubscriptionStatusUC: subscriptionUsecases.NewGetUserSubscriptionStatusUseCase(repos.staffRepo, repos.brandRepo, log),
		renewSubscriptionUC:         subscriptionUsecases.NewRenewSubscriptionUseCase(repos.brandRepo, repos.txManager, log),
		unlockBrandUC:               subscriptionUsecases.NewUnlockBrandUseCase(repos.brandRepo, repos.txManager, log),
		markReminderSentUC:          subscriptionUsecases.NewMarkReminderSentUseCase(repos.brandRepo, repos.txManager, log),
		lockExpiredBrandsUC:         subscriptionUsecases.NewLockExpiredBrandsUseCase(repos.brandRepo, repos.txManager, log),

		listTemplatesUC:          permissionUsecases.NewListTemplatesUseCase(),
		getStaffPermissionsUC:    permissionUsecases.NewGetStaffPermissionsUseCase(repos.staffRepo, log),
		updateStaffPermissionsUC: permissionUsecases.NewUpdateStaffPermissionsUseCase(repos.staffRepo, repos.txManager, log),
		checkCapabilityUC:        permissionUsecases.NewCheckCapabilityUseCase(repos.staffRepo, log),
		createStaffUC:            permissionUsecases.NewCreateStaffUseCase(repos.staffRepo, repos.brandRepo, repos.txManager, log),
		listStaffUC:              permissionUsecases.NewListStaffUseCase(repos.staffRepo, log),
	}
	ucs.lockExpiredBrandsUC.SetMetrics(m)
	ucs.updateStaffPermissionsUC.SetMetrics(m)

	if sender != nil {
		ucs.sendExpiryRemindersUC = subscriptionUsecases.NewSendExpiryRemindersUseCase(
			repos.brandRepo, sender, ucs.markReminderSentUC, log,
		)
		ucs.sendExpiryRemindersUC.SetMetrics(m)
	}

	return ucs
}

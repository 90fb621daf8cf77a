package http

import (
	"gorm.io/gorm"

	"github.com/kolhub/kolhub/internal/domain/brand"
	"github.com/kolhub/kolhub/internal/domain/staff"
	"github.com/kolhub/kolhub/internal/infrastructure/repository"
	shareddb "github.com/kolhub/kolhub/internal/shared/db"
	"github.com/kolhub/kolhub/internal/shared/logger"
)

// repositories holds all repository instances used by the application.
type repositories struct {
	brandRepo brand.Repository
	staffRepo staff.Repository
	txManager *shareddb.TransactionManager
}

func newRepositories(db *gorm.DB, log logger.Interface) *repositories {
	return &repositories{
		brandRepo: repository.NewBrandRepository(db, log),
		staffRepo: repository.NewStaffRepository(db, log),
		txManager: shareddb.NewTransactionManager(db),
	}
}

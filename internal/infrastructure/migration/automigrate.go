package migration

import (
	"github.com/kolhub/kolhub/internal/infrastructure/persistence/models"
)

// AutoMigrateModels lists the models managed by the gorm strategy.
// Keep it in step with the SQL scripts.
func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.BrandModel{},
		&models.StaffModel{},
	}
}

package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/kolhub/kolhub/internal/domain/brand"
	vo "github.com/kolhub/kolhub/internal/domain/brand/valueobjects"
	"github.com/kolhub/kolhub/internal/infrastructure/persistence/models"
)

var baseTime = time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, gdb.AutoMigrate(&models.BrandModel{}, &models.StaffModel{}))
	return gdb
}

func createBrand(t *testing.T, repo brand.Repository, name string, planType vo.PlanType, isPaid bool, startedAt time.Time) *brand.Brand {
	t.Helper()
	b, err := brand.NewBrand(name, name+"@brands.test", startedAt)
	require.NoError(t, err)
	require.NoError(t, b.InitializeSubscription(planType, isPaid, startedAt))
	require.NoError(t, repo.Create(t.Context(), b))
	return b
}

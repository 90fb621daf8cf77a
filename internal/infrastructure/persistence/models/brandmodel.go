package models

import (
	"time"

	"gorm.io/gorm"

	"github.com/kolhub/kolhub/internal/shared/constants"
)

// BrandModel is the persistence model for brands and their subscription state.
type BrandModel struct {
	ID             uint      `gorm:"primarykey"`
	UUID           string    `gorm:"uniqueIndex;not null;size:36"`
	Name           string    `gorm:"not null;size:100"`
	ContactEmail   string    `gorm:"size:255"`
	PlanType       string    `gorm:"not null;size:20;default:FREE"`
	IsPaid         bool      `gorm:"not null;default:false"`
	IsLocked       bool      `gorm:"not null;default:false;index:idx_brand_lock_sweep,priority:1"`
	LockedAt       *time.Time
	PlanStartedAt  *time.Time
	PlanExpiresAt  *time.Time `gorm:"index:idx_brand_lock_sweep,priority:2"`
	LastReminderAt *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
	DeletedAt      gorm.DeletedAt `gorm:"index"`
}

// TableName specifies the table name for GORM
func (BrandModel) TableName() string {
	return constants.TableBrands
}

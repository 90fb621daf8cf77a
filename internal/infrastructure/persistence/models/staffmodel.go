package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/kolhub/kolhub/internal/shared/constants"
)

// StaffModel is the persistence model for staff accounts. Permissions are
// stored as a JSON document so partial matrices survive a round trip.
type StaffModel struct {
	ID          uint           `gorm:"primarykey"`
	UUID        string         `gorm:"uniqueIndex;not null;size:36"`
	BrandID     uint           `gorm:"not null;index"`
	Name        string         `gorm:"not null;size:100"`
	Email       string         `gorm:"uniqueIndex;not null;size:255"`
	Role        string         `gorm:"not null;size:20;default:staff"`
	Permissions datatypes.JSON `gorm:"type:json"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}

// TableName specifies the table name for GORM
func (StaffModel) TableName() string {
	return constants.TableStaff
}

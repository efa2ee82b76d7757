package models

import (
	"time"

	"gearguard/internal/shared/constants"
)

// ActivityLogModel has no foreign keys: entries outlive what they reference.
type ActivityLogModel struct {
	ID          uint      `gorm:"primaryKey"`
	EquipmentID *uint     `gorm:"index"`
	RequestID   *uint     `gorm:"index"`
	Action      string    `gorm:"size:64;not null"`
	Details     string    `gorm:"type:text;not null"`
	CreatedAt   time.Time `gorm:"not null;index"`
}

func (ActivityLogModel) TableName() string {
	return constants.TableActivityLog
}

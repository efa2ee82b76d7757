package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"gearguard/internal/shared/constants"
)

type MaintenanceRequestModel struct {
	ID                 uint           `gorm:"primaryKey"`
	Subject            string         `gorm:"size:255;not null"`
	EquipmentID        uint           `gorm:"not null;index"`
	RequestType        string         `gorm:"size:32;not null"`
	ScheduledDate      datatypes.Date `gorm:"type:date;not null;index"`
	DurationHours      float64        `gorm:"not null;default:1"`
	Stage              string         `gorm:"size:32;not null;default:'New';index"`
	AssignedTechnician string         `gorm:"size:255;not null;default:''"`
	TeamID             *uint          `gorm:"index"`
	Department         string         `gorm:"size:255;not null;default:''"`
	Priority           string         `gorm:"size:32;not null;default:'Medium'"`
	Description        string         `gorm:"type:text;not null"`
	CreatedAt          time.Time      `gorm:"not null"`
	CompletedAt        *time.Time
}

func (MaintenanceRequestModel) TableName() string {
	return constants.TableMaintenanceRequests
}

func (m *MaintenanceRequestModel) BeforeCreate(tx *gorm.DB) error {
	if m.Stage == "" {
		m.Stage = "New"
	}
	if m.Priority == "" {
		m.Priority = "Medium"
	}
	if m.DurationHours == 0 {
		m.DurationHours = 1
	}
	return nil
}

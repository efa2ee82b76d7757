package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"gearguard/internal/shared/constants"
)

type EquipmentModel struct {
	ID               uint            `gorm:"primaryKey"`
	Name             string          `gorm:"size:255;not null"`
	SerialNumber     string          `gorm:"size:255;not null;uniqueIndex"`
	Category         string          `gorm:"size:255;not null"`
	Department       string          `gorm:"size:255;not null"`
	AssignedEmployee string          `gorm:"size:255;not null;default:''"`
	PurchaseDate     *datatypes.Date `gorm:"type:date"`
	WarrantyExpiry   *datatypes.Date `gorm:"type:date"`
	Location         string          `gorm:"size:255;not null;default:''"`
	Status           string          `gorm:"size:32;not null;default:'Usable';index"`
	TeamID           *uint           `gorm:"index"`
	Notes            string          `gorm:"type:text;not null"`
	CreatedAt        time.Time       `gorm:"not null"`
}

func (EquipmentModel) TableName() string {
	return constants.TableEquipment
}

func (e *EquipmentModel) BeforeCreate(tx *gorm.DB) error {
	if e.Status == "" {
		e.Status = "Usable"
	}
	return nil
}

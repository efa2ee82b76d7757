package models

import (
	"time"

	"gearguard/internal/shared/constants"
)

type TeamModel struct {
	ID          uint      `gorm:"primaryKey"`
	Name        string    `gorm:"size:255;not null;uniqueIndex"`
	Description string    `gorm:"type:text;not null"`
	CreatedAt   time.Time `gorm:"not null"`
}

func (TeamModel) TableName() string {
	return constants.TableTeams
}

type TeamMemberModel struct {
	ID        uint      `gorm:"primaryKey"`
	TeamID    uint      `gorm:"not null;index"`
	Name      string    `gorm:"size:255;not null"`
	Role      string    `gorm:"size:255;not null;default:''"`
	Email     string    `gorm:"size:255;not null;default:''"`
	Phone     string    `gorm:"size:64;not null;default:''"`
	CreatedAt time.Time `gorm:"not null"`
}

func (TeamMemberModel) TableName() string {
	return constants.TableTeamMembers
}

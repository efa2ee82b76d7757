package http

import (
	"gorm.io/gorm"

	"gearguard/internal/domain/activity"
	"gearguard/internal/domain/equipment"
	"gearguard/internal/domain/maintenance"
	"gearguard/internal/domain/team"
	"gearguard/internal/infrastructure/repository"
)

// repositories holds all repository instances used by the application.
type repositories struct {
	teamRepo      team.Repository
	memberRepo    team.MemberRepository
	equipmentRepo equipment.Repository
	requestRepo   maintenance.Repository
	activityRepo  activity.Repository
}

func newRepositories(db *gorm.DB) *repositories {
	return &repositories{
		teamRepo:      repository.NewTeamRepository(db),
		memberRepo:    repository.NewTeamMemberRepository(db),
		equipmentRepo: repository.NewEquipmentRepository(db),
		requestRepo:   repository.NewMaintenanceRequestRepository(db),
		activityRepo:  repository.NewActivityLogRepository(db),
	}
}

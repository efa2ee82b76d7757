package migration

import (
	"gearguard/internal/infrastructure/persistence/models"
)

func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.TeamModel{},
		&models.TeamMemberModel{},
		&models.EquipmentModel{},
		&models.MaintenanceRequestModel{},
		&models.ActivityLogModel{},
	}
}

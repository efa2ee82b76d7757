package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"gearguard/internal/domain/activity"
	"gearguard/internal/infrastructure/persistence/mappers"
	"gearguard/internal/infrastructure/persistence/models"
	"gearguard/internal/shared/constants"
	"gearguard/internal/shared/db"
)

const activityListingSelect = `activity_log.*,
	COALESCE(equipment.name, '') AS equipment_name,
	COALESCE(maintenance_requests.subject, '') AS request_subject`

type activityListingRow struct {
	models.ActivityLogModel
	EquipmentName  string
	RequestSubject string
}

type ActivityLogRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.ActivityLogMapper
}

func NewActivityLogRepository(db *gorm.DB) activity.Repository {
	return &ActivityLogRepositoryImpl{
		db:     db,
		mapper: mappers.NewActivityLogMapper(),
	}
}

func (r *ActivityLogRepositoryImpl) Append(ctx context.Context, entry *activity.Entry) error {
	model := r.mapper.ToModel(entry)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to append activity entry: %w", err)
	}
	return entry.SetID(model.ID)
}

// ListRecent clamps limit to [1, MaxActivityLimit].
func (r *ActivityLogRepositoryImpl) ListRecent(ctx context.Context, limit int) ([]*activity.Listing, error) {
	if limit <= 0 {
		limit = constants.DefaultActivityLimit
	}
	if limit > constants.MaxActivityLimit {
		limit = constants.MaxActivityLimit
	}

	var rows []activityListingRow
	err := db.GetTxFromContext(ctx, r.db).
		Table("activity_log").
		Select(activityListingSelect).
		Joins("LEFT JOIN equipment ON equipment.id = activity_log.equipment_id").
		Joins("LEFT JOIN maintenance_requests ON maintenance_requests.id = activity_log.request_id").
		Order("activity_log.created_at DESC").
		Order("activity_log.id DESC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list activity: %w", err)
	}

	result := make([]*activity.Listing, 0, len(rows))
	for i := range rows {
		entry, err := r.mapper.ToEntity(&rows[i].ActivityLogModel)
		if err != nil {
			return nil, fmt.Errorf("failed to map activity entry %d: %w", rows[i].ID, err)
		}
		result = append(result, &activity.Listing{
			Entry:          entry,
			EquipmentName:  rows[i].EquipmentName,
			RequestSubject: rows[i].RequestSubject,
		})
	}
	return result, nil
}

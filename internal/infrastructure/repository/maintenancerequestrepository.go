package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"gearguard/internal/domain/maintenance"
	vo "gearguard/internal/domain/maintenance/valueobjects"
	"gearguard/internal/infrastructure/persistence/mappers"
	"gearguard/internal/infrastructure/persistence/models"
	"gearguard/internal/shared/db"
	"gearguard/internal/shared/errors"
	"gearguard/internal/shared/mapper"
)

const requestListingSelect = `maintenance_requests.*,
	COALESCE(equipment.name, '') AS equipment_name,
	COALESCE(equipment.serial_number, '') AS equipment_serial,
	COALESCE(teams.name, '') AS team_name`

type requestListingRow struct {
	models.MaintenanceRequestModel
	EquipmentName   string
	EquipmentSerial string
	TeamName        string
}

type MaintenanceRequestRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.MaintenanceRequestMapper
}

func NewMaintenanceRequestRepository(db *gorm.DB) maintenance.Repository {
	return &MaintenanceRequestRepositoryImpl{
		db:     db,
		mapper: mappers.NewMaintenanceRequestMapper(),
	}
}

func (r *MaintenanceRequestRepositoryImpl) Create(ctx context.Context, req *maintenance.Request) error {
	model := r.mapper.ToModel(req)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return translateWriteError(err, "create maintenance request", "maintenance request already exists", "")
	}
	return req.SetID(model.ID)
}

// Update writes every column so a cleared team becomes NULL.
func (r *MaintenanceRequestRepositoryImpl) Update(ctx context.Context, req *maintenance.Request) error {
	model := r.mapper.ToModel(req)
	err := db.GetTxFromContext(ctx, r.db).
		Model(&models.MaintenanceRequestModel{ID: model.ID}).
		Select("*").
		Omit("id", "created_at").
		Updates(model).Error
	return translateWriteError(err, "update maintenance request", "maintenance request already exists", "")
}

func (r *MaintenanceRequestRepositoryImpl) GetByID(ctx context.Context, id uint) (*maintenance.Request, error) {
	var model models.MaintenanceRequestModel
	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if errors.IsRecordNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get maintenance request by ID: %w", err)
	}
	return r.mapper.ToEntity(&model)
}

func (r *MaintenanceRequestRepositoryImpl) listingQuery(ctx context.Context) *gorm.DB {
	return db.GetTxFromContext(ctx, r.db).
		Table("maintenance_requests").
		Select(requestListingSelect).
		Joins("LEFT JOIN equipment ON equipment.id = maintenance_requests.equipment_id").
		Joins("LEFT JOIN teams ON teams.id = maintenance_requests.team_id")
}

func (r *MaintenanceRequestRepositoryImpl) GetListing(ctx context.Context, id uint) (*maintenance.Listing, error) {
	var rows []requestListingRow
	if err := r.listingQuery(ctx).Where("maintenance_requests.id = ?", id).Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to get maintenance request: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return r.toListing(&rows[0])
}

func (r *MaintenanceRequestRepositoryImpl) List(ctx context.Context, filter maintenance.Filter) ([]*maintenance.Listing, error) {
	query := r.listingQuery(ctx)
	if filter.Stage != nil {
		query = query.Where("maintenance_requests.stage = ?", filter.Stage.String())
	}
	if filter.RequestType != nil {
		query = query.Where("maintenance_requests.request_type = ?", filter.RequestType.String())
	}
	if filter.TeamID != nil {
		query = query.Where("maintenance_requests.team_id = ?", *filter.TeamID)
	}
	if filter.EquipmentID != nil {
		query = query.Where("maintenance_requests.equipment_id = ?", *filter.EquipmentID)
	}
	if filter.ScheduledFrom != nil {
		query = query.Where("maintenance_requests.scheduled_date >= ?", mappers.ToDate(*filter.ScheduledFrom))
	}
	if filter.ScheduledTo != nil {
		query = query.Where("maintenance_requests.scheduled_date <= ?", mappers.ToDate(*filter.ScheduledTo))
	}

	if filter.OrderBySchedule {
		query = query.Order("maintenance_requests.scheduled_date ASC")
	} else {
		query = query.Order("maintenance_requests.created_at DESC")
	}
	query = query.Order("maintenance_requests.id DESC")

	var rows []requestListingRow
	if err := query.Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list maintenance requests: %w", err)
	}

	result := make([]*maintenance.Listing, 0, len(rows))
	for i := range rows {
		l, err := r.toListing(&rows[i])
		if err != nil {
			return nil, err
		}
		result = append(result, l)
	}
	return result, nil
}

func (r *MaintenanceRequestRepositoryImpl) toListing(row *requestListingRow) (*maintenance.Listing, error) {
	entity, err := r.mapper.ToEntity(&row.MaintenanceRequestModel)
	if err != nil {
		return nil, fmt.Errorf("failed to map maintenance request %d: %w", row.ID, err)
	}
	return &maintenance.Listing{
		Request:         entity,
		EquipmentName:   row.EquipmentName,
		EquipmentSerial: row.EquipmentSerial,
		TeamName:        row.TeamName,
	}, nil
}

func (r *MaintenanceRequestRepositoryImpl) Delete(ctx context.Context, id uint) error {
	result := db.GetTxFromContext(ctx, r.db).Delete(&models.MaintenanceRequestModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete maintenance request: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("maintenance request not found")
	}
	return nil
}

func (r *MaintenanceRequestRepositoryImpl) DeleteByEquipment(ctx context.Context, equipmentID uint) error {
	err := db.GetTxFromContext(ctx, r.db).
		Where("equipment_id = ?", equipmentID).
		Delete(&models.MaintenanceRequestModel{}).Error
	if err != nil {
		return fmt.Errorf("failed to delete equipment requests: %w", err)
	}
	return nil
}

func (r *MaintenanceRequestRepositoryImpl) ClearTeam(ctx context.Context, teamID uint) error {
	err := db.GetTxFromContext(ctx, r.db).
		Model(&models.MaintenanceRequestModel{}).
		Where("team_id = ?", teamID).
		Update("team_id", nil).Error
	if err != nil {
		return fmt.Errorf("failed to clear request team: %w", err)
	}
	return nil
}

func (r *MaintenanceRequestRepositoryImpl) CountNotInStages(ctx context.Context, stages []vo.Stage) (int64, error) {
	query := db.GetTxFromContext(ctx, r.db).Model(&models.MaintenanceRequestModel{})
	if len(stages) > 0 {
		query = query.Where("stage NOT IN ?", stageStrings(stages))
	}
	var count int64
	if err := query.Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count requests: %w", err)
	}
	return count, nil
}

func (r *MaintenanceRequestRepositoryImpl) CountOverdue(ctx context.Context, today time.Time) (int64, error) {
	var count int64
	err := db.GetTxFromContext(ctx, r.db).
		Model(&models.MaintenanceRequestModel{}).
		Where("scheduled_date < ?", mappers.ToDate(today)).
		Where("stage NOT IN ?", stageStrings(vo.ClosedStages())).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count overdue requests: %w", err)
	}
	return count, nil
}

func (r *MaintenanceRequestRepositoryImpl) CountOpenByPriority(ctx context.Context, priority vo.Priority) (int64, error) {
	var count int64
	err := db.GetTxFromContext(ctx, r.db).
		Model(&models.MaintenanceRequestModel{}).
		Where("priority = ?", priority.String()).
		Where("stage NOT IN ?", stageStrings(vo.ClosedStages())).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count requests by priority: %w", err)
	}
	return count, nil
}

func (r *MaintenanceRequestRepositoryImpl) CountByTeam(ctx context.Context) ([]maintenance.TeamCount, error) {
	var rows []maintenance.TeamCount
	err := db.GetTxFromContext(ctx, r.db).
		Table("teams").
		Select("teams.id AS team_id, teams.name AS team_name, COUNT(maintenance_requests.id) AS count").
		Joins("LEFT JOIN maintenance_requests ON maintenance_requests.team_id = teams.id").
		Group("teams.id, teams.name").
		Order("count DESC").
		Order("teams.name ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count requests by team: %w", err)
	}
	if rows == nil {
		rows = []maintenance.TeamCount{}
	}
	return rows, nil
}

func stageStrings(stages []vo.Stage) []string {
	return mapper.MapSlice(stages, vo.Stage.String)
}

package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"gearguard/internal/domain/equipment"
	vo "gearguard/internal/domain/equipment/valueobjects"
	"gearguard/internal/infrastructure/persistence/mappers"
	"gearguard/internal/infrastructure/persistence/models"
	"gearguard/internal/shared/db"
	"gearguard/internal/shared/errors"
)

const equipmentListingSelect = `equipment.*,
	COALESCE(teams.name, '') AS team_name,
	(SELECT COUNT(*) FROM maintenance_requests
		WHERE maintenance_requests.equipment_id = equipment.id
		AND maintenance_requests.stage NOT IN ('Repaired', 'Scrap')) AS open_request_count`

type equipmentListingRow struct {
	models.EquipmentModel
	TeamName         string
	OpenRequestCount int64
}

type EquipmentRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.EquipmentMapper
}

func NewEquipmentRepository(db *gorm.DB) equipment.Repository {
	return &EquipmentRepositoryImpl{
		db:     db,
		mapper: mappers.NewEquipmentMapper(),
	}
}

func (r *EquipmentRepositoryImpl) Create(ctx context.Context, e *equipment.Equipment) error {
	model := r.mapper.ToModel(e)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return translateWriteError(err, "create equipment", "serial number already exists", "serial_number")
	}
	return e.SetID(model.ID)
}

// Update writes every column so cleared dates and team become NULL.
func (r *EquipmentRepositoryImpl) Update(ctx context.Context, e *equipment.Equipment) error {
	model := r.mapper.ToModel(e)
	err := db.GetTxFromContext(ctx, r.db).
		Model(&models.EquipmentModel{ID: model.ID}).
		Select("*").
		Omit("id", "created_at").
		Updates(model).Error
	return translateWriteError(err, "update equipment", "serial number already exists", "serial_number")
}

func (r *EquipmentRepositoryImpl) GetByID(ctx context.Context, id uint) (*equipment.Equipment, error) {
	var model models.EquipmentModel
	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if errors.IsRecordNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get equipment by ID: %w", err)
	}
	return r.mapper.ToEntity(&model)
}

func (r *EquipmentRepositoryImpl) listingQuery(ctx context.Context) *gorm.DB {
	return db.GetTxFromContext(ctx, r.db).
		Table("equipment").
		Select(equipmentListingSelect).
		Joins("LEFT JOIN teams ON teams.id = equipment.team_id")
}

func (r *EquipmentRepositoryImpl) GetListing(ctx context.Context, id uint) (*equipment.Listing, error) {
	var rows []equipmentListingRow
	if err := r.listingQuery(ctx).Where("equipment.id = ?", id).Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to get equipment: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return r.toListing(&rows[0])
}

func (r *EquipmentRepositoryImpl) List(ctx context.Context, filter equipment.Filter) ([]*equipment.Listing, error) {
	query := r.listingQuery(ctx)
	if filter.Status != nil {
		query = query.Where("equipment.status = ?", filter.Status.String())
	}
	if filter.TeamID != nil {
		query = query.Where("equipment.team_id = ?", *filter.TeamID)
	}

	var rows []equipmentListingRow
	err := query.
		Order("equipment.created_at DESC").
		Order("equipment.id DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list equipment: %w", err)
	}

	result := make([]*equipment.Listing, 0, len(rows))
	for i := range rows {
		l, err := r.toListing(&rows[i])
		if err != nil {
			return nil, err
		}
		result = append(result, l)
	}
	return result, nil
}

func (r *EquipmentRepositoryImpl) toListing(row *equipmentListingRow) (*equipment.Listing, error) {
	entity, err := r.mapper.ToEntity(&row.EquipmentModel)
	if err != nil {
		return nil, fmt.Errorf("failed to map equipment %d: %w", row.ID, err)
	}
	return &equipment.Listing{
		Equipment:        entity,
		TeamName:         row.TeamName,
		OpenRequestCount: row.OpenRequestCount,
	}, nil
}

func (r *EquipmentRepositoryImpl) Delete(ctx context.Context, id uint) error {
	result := db.GetTxFromContext(ctx, r.db).Delete(&models.EquipmentModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete equipment: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("equipment not found")
	}
	return nil
}

func (r *EquipmentRepositoryImpl) ClearTeam(ctx context.Context, teamID uint) error {
	err := db.GetTxFromContext(ctx, r.db).
		Model(&models.EquipmentModel{}).
		Where("team_id = ?", teamID).
		Update("team_id", nil).Error
	if err != nil {
		return fmt.Errorf("failed to clear equipment team: %w", err)
	}
	return nil
}

func (r *EquipmentRepositoryImpl) CountByStatus(ctx context.Context, status vo.Status) (int64, error) {
	var count int64
	err := db.GetTxFromContext(ctx, r.db).
		Model(&models.EquipmentModel{}).
		Where("status = ?", status.String()).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count equipment: %w", err)
	}
	return count, nil
}

func (r *EquipmentRepositoryImpl) CountByCategory(ctx context.Context) ([]equipment.CategoryCount, error) {
	var rows []equipment.CategoryCount
	err := db.GetTxFromContext(ctx, r.db).
		Model(&models.EquipmentModel{}).
		Select("category, COUNT(*) AS count").
		Group("category").
		Order("count DESC").
		Order("category ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count equipment by category: %w", err)
	}
	if rows == nil {
		rows = []equipment.CategoryCount{}
	}
	return rows, nil
}

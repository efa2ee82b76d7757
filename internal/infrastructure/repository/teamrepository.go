package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"gearguard/internal/domain/team"
	"gearguard/internal/infrastructure/persistence/mappers"
	"gearguard/internal/infrastructure/persistence/models"
	"gearguard/internal/shared/db"
	"gearguard/internal/shared/errors"
)

const teamSummarySelect = `teams.*,
	(SELECT COUNT(*) FROM team_members WHERE team_members.team_id = teams.id) AS member_count,
	(SELECT COUNT(*) FROM equipment WHERE equipment.team_id = teams.id) AS equipment_count`

type teamSummaryRow struct {
	models.TeamModel
	MemberCount    int64
	EquipmentCount int64
}

type TeamRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.TeamMapper
}

func NewTeamRepository(db *gorm.DB) team.Repository {
	return &TeamRepositoryImpl{
		db:     db,
		mapper: mappers.NewTeamMapper(),
	}
}

func (r *TeamRepositoryImpl) Create(ctx context.Context, t *team.Team) error {
	model := r.mapper.ToModel(t)
	err := db.GetTxFromContext(ctx, r.db).Create(model).Error
	if err != nil {
		return translateWriteError(err, "create team", "team name already exists", "name")
	}
	return t.SetID(model.ID)
}

func (r *TeamRepositoryImpl) Update(ctx context.Context, t *team.Team) error {
	model := r.mapper.ToModel(t)
	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.TeamModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"name":        model.Name,
			"description": model.Description,
		})
	return translateWriteError(result.Error, "update team", "team name already exists", "name")
}

func (r *TeamRepositoryImpl) GetByID(ctx context.Context, id uint) (*team.Team, error) {
	var model models.TeamModel
	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if errors.IsRecordNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get team by ID: %w", err)
	}
	return r.mapper.ToEntity(&model)
}

func (r *TeamRepositoryImpl) GetSummary(ctx context.Context, id uint) (*team.Summary, error) {
	var rows []teamSummaryRow
	err := db.GetTxFromContext(ctx, r.db).
		Table("teams").
		Select(teamSummarySelect).
		Where("teams.id = ?", id).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get team summary: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return r.toSummary(&rows[0])
}

func (r *TeamRepositoryImpl) ListSummaries(ctx context.Context) ([]*team.Summary, error) {
	var rows []teamSummaryRow
	err := db.GetTxFromContext(ctx, r.db).
		Table("teams").
		Select(teamSummarySelect).
		Order("teams.name ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}

	result := make([]*team.Summary, 0, len(rows))
	for i := range rows {
		s, err := r.toSummary(&rows[i])
		if err != nil {
			return nil, err
		}
		result = append(result, s)
	}
	return result, nil
}

func (r *TeamRepositoryImpl) toSummary(row *teamSummaryRow) (*team.Summary, error) {
	entity, err := r.mapper.ToEntity(&row.TeamModel)
	if err != nil {
		return nil, err
	}
	return &team.Summary{
		Team:           entity,
		MemberCount:    row.MemberCount,
		EquipmentCount: row.EquipmentCount,
	}, nil
}

func (r *TeamRepositoryImpl) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := db.GetTxFromContext(ctx, r.db).
		Model(&models.TeamModel{}).
		Where("id = ?", id).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check team: %w", err)
	}
	return count > 0, nil
}

func (r *TeamRepositoryImpl) Delete(ctx context.Context, id uint) error {
	result := db.GetTxFromContext(ctx, r.db).Delete(&models.TeamModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete team: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("team not found")
	}
	return nil
}

func (r *TeamRepositoryImpl) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := db.GetTxFromContext(ctx, r.db).Model(&models.TeamModel{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count teams: %w", err)
	}
	return count, nil
}

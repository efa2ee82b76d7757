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

type memberListingRow struct {
	models.TeamMemberModel
	TeamName string
}

type TeamMemberRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.TeamMapper
}

func NewTeamMemberRepository(db *gorm.DB) team.MemberRepository {
	return &TeamMemberRepositoryImpl{
		db:     db,
		mapper: mappers.NewTeamMapper(),
	}
}

func (r *TeamMemberRepositoryImpl) Create(ctx context.Context, m *team.Member) error {
	model := r.mapper.MemberToModel(m)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return translateWriteError(err, "create team member", "team member already exists", "")
	}
	return m.SetID(model.ID)
}

func (r *TeamMemberRepositoryImpl) Update(ctx context.Context, m *team.Member) error {
	model := r.mapper.MemberToModel(m)
	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.TeamMemberModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"team_id": model.TeamID,
			"name":    model.Name,
			"role":    model.Role,
			"email":   model.Email,
			"phone":   model.Phone,
		})
	return translateWriteError(result.Error, "update team member", "team member already exists", "")
}

func (r *TeamMemberRepositoryImpl) GetByID(ctx context.Context, id uint) (*team.Member, error) {
	var model models.TeamMemberModel
	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if errors.IsRecordNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get team member by ID: %w", err)
	}
	return r.mapper.MemberToEntity(&model)
}

func (r *TeamMemberRepositoryImpl) listingQuery(ctx context.Context) *gorm.DB {
	return db.GetTxFromContext(ctx, r.db).
		Table("team_members").
		Select("team_members.*, teams.name AS team_name").
		Joins("JOIN teams ON teams.id = team_members.team_id")
}

func (r *TeamMemberRepositoryImpl) GetListing(ctx context.Context, id uint) (*team.MemberListing, error) {
	var rows []memberListingRow
	if err := r.listingQuery(ctx).Where("team_members.id = ?", id).Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to get team member: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return r.toListing(&rows[0])
}

func (r *TeamMemberRepositoryImpl) ListByTeam(ctx context.Context, teamID uint) ([]*team.MemberListing, error) {
	var rows []memberListingRow
	err := r.listingQuery(ctx).
		Where("team_members.team_id = ?", teamID).
		Order("team_members.name ASC").
		Order("team_members.id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list team members: %w", err)
	}
	return r.toListings(rows)
}

func (r *TeamMemberRepositoryImpl) ListAll(ctx context.Context) ([]*team.MemberListing, error) {
	var rows []memberListingRow
	err := r.listingQuery(ctx).
		Order("teams.name ASC").
		Order("team_members.name ASC").
		Order("team_members.id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list team members: %w", err)
	}
	return r.toListings(rows)
}

func (r *TeamMemberRepositoryImpl) toListings(rows []memberListingRow) ([]*team.MemberListing, error) {
	result := make([]*team.MemberListing, 0, len(rows))
	for i := range rows {
		l, err := r.toListing(&rows[i])
		if err != nil {
			return nil, err
		}
		result = append(result, l)
	}
	return result, nil
}

func (r *TeamMemberRepositoryImpl) toListing(row *memberListingRow) (*team.MemberListing, error) {
	entity, err := r.mapper.MemberToEntity(&row.TeamMemberModel)
	if err != nil {
		return nil, err
	}
	return &team.MemberListing{Member: entity, TeamName: row.TeamName}, nil
}

func (r *TeamMemberRepositoryImpl) Delete(ctx context.Context, id uint) error {
	result := db.GetTxFromContext(ctx, r.db).Delete(&models.TeamMemberModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete team member: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("team member not found")
	}
	return nil
}

func (r *TeamMemberRepositoryImpl) DeleteByTeam(ctx context.Context, teamID uint) error {
	err := db.GetTxFromContext(ctx, r.db).
		Where("team_id = ?", teamID).
		Delete(&models.TeamMemberModel{}).Error
	if err != nil {
		return fmt.Errorf("failed to delete team members: %w", err)
	}
	return nil
}

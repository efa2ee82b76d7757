package mappers

import (
	"fmt"

	"gearguard/internal/domain/team"
	"gearguard/internal/infrastructure/persistence/models"
	"gearguard/internal/shared/mapper"
)

type TeamMapper interface {
	ToEntity(model *models.TeamModel) (*team.Team, error)
	ToModel(entity *team.Team) *models.TeamModel
	ToEntities(models []*models.TeamModel) ([]*team.Team, error)
	MemberToEntity(model *models.TeamMemberModel) (*team.Member, error)
	MemberToModel(entity *team.Member) *models.TeamMemberModel
}

type TeamMapperImpl struct{}

func NewTeamMapper() TeamMapper {
	return &TeamMapperImpl{}
}

func (m *TeamMapperImpl) ToEntity(model *models.TeamModel) (*team.Team, error) {
	if model == nil {
		return nil, nil
	}
	entity, err := team.ReconstructTeam(model.ID, model.Name, model.Description, model.CreatedAt.UTC())
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct team entity: %w", err)
	}
	return entity, nil
}

func (m *TeamMapperImpl) ToModel(entity *team.Team) *models.TeamModel {
	if entity == nil {
		return nil
	}
	return &models.TeamModel{
		ID:          entity.ID(),
		Name:        entity.Name(),
		Description: entity.Description(),
		CreatedAt:   entity.CreatedAt(),
	}
}

func (m *TeamMapperImpl) ToEntities(list []*models.TeamModel) ([]*team.Team, error) {
	return mapper.MapSlicePtrWithID(list, m.ToEntity, func(model *models.TeamModel) uint { return model.ID })
}

func (m *TeamMapperImpl) MemberToEntity(model *models.TeamMemberModel) (*team.Member, error) {
	if model == nil {
		return nil, nil
	}
	entity, err := team.ReconstructMember(
		model.ID,
		model.TeamID,
		model.Name,
		model.Role,
		model.Email,
		model.Phone,
		model.CreatedAt.UTC(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct member entity: %w", err)
	}
	return entity, nil
}

func (m *TeamMapperImpl) MemberToModel(entity *team.Member) *models.TeamMemberModel {
	if entity == nil {
		return nil
	}
	return &models.TeamMemberModel{
		ID:        entity.ID(),
		TeamID:    entity.TeamID(),
		Name:      entity.Name(),
		Role:      entity.Role(),
		Email:     entity.Email(),
		Phone:     entity.Phone(),
		CreatedAt: entity.CreatedAt(),
	}
}

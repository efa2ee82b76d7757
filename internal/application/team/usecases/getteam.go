package usecases

import (
	"context"

	"gearguard/internal/application/team/dto"
	"gearguard/internal/domain/team"
	"gearguard/internal/shared/errors"
	"gearguard/internal/shared/logger"
)

type GetTeamUseCase struct {
	teamRepo team.Repository
	logger   logger.Interface
}

func NewGetTeamUseCase(teamRepo team.Repository, logger logger.Interface) *GetTeamUseCase {
	return &GetTeamUseCase{teamRepo: teamRepo, logger: logger}
}

func (uc *GetTeamUseCase) Execute(ctx context.Context, teamID uint) (*dto.TeamDTO, error) {
	summary, err := uc.teamRepo.GetSummary(ctx, teamID)
	if err != nil {
		uc.logger.Errorw("failed to get team", "team_id", teamID, "error", err)
		return nil, err
	}
	if summary == nil {
		return nil, errors.NewNotFoundError("team not found")
	}
	return dto.ToTeamDTO(summary), nil
}

type ListTeamsUseCase struct {
	teamRepo team.Repository
	logger   logger.Interface
}

func NewListTeamsUseCase(teamRepo team.Repository, logger logger.Interface) *ListTeamsUseCase {
	return &ListTeamsUseCase{teamRepo: teamRepo, logger: logger}
}

// Execute returns every team ordered by name.
func (uc *ListTeamsUseCase) Execute(ctx context.Context) ([]*dto.TeamDTO, error) {
	summaries, err := uc.teamRepo.ListSummaries(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list teams", "error", err)
		return nil, err
	}
	return dto.ToTeamDTOs(summaries), nil
}

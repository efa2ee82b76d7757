package usecases

import (
	"context"

	"gearguard/internal/application/team/dto"
	"gearguard/internal/domain/team"
	"gearguard/internal/shared/errors"
	"gearguard/internal/shared/logger"
)

type CreateTeamCommand struct {
	Name        string
	Description string
}

type CreateTeamUseCase struct {
	teamRepo team.Repository
	logger   logger.Interface
}

func NewCreateTeamUseCase(teamRepo team.Repository, logger logger.Interface) *CreateTeamUseCase {
	return &CreateTeamUseCase{
		teamRepo: teamRepo,
		logger:   logger,
	}
}

func (uc *CreateTeamUseCase) Execute(ctx context.Context, cmd CreateTeamCommand) (*dto.TeamDTO, error) {
	t, err := team.NewTeam(cmd.Name, cmd.Description)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.teamRepo.Create(ctx, t); err != nil {
		uc.logger.Warnw("failed to create team", "name", t.Name(), "error", err)
		return nil, err
	}

	uc.logger.Infow("team created", "team_id", t.ID(), "name", t.Name())
	return dto.ToTeamDTO(&team.Summary{Team: t}), nil
}

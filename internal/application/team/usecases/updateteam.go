package usecases

import (
	"context"

	"gearguard/internal/application/team/dto"
	"gearguard/internal/domain/team"
	"gearguard/internal/shared/db"
	"gearguard/internal/shared/errors"
	"gearguard/internal/shared/logger"
)

type UpdateTeamCommand struct {
	TeamID      uint
	Name        *string
	Description *string
}

type UpdateTeamUseCase struct {
	teamRepo team.Repository
	txMgr    db.Runner
	logger   logger.Interface
}

func NewUpdateTeamUseCase(teamRepo team.Repository, txMgr db.Runner, logger logger.Interface) *UpdateTeamUseCase {
	return &UpdateTeamUseCase{
		teamRepo: teamRepo,
		txMgr:    txMgr,
		logger:   logger,
	}
}

func (uc *UpdateTeamUseCase) Execute(ctx context.Context, cmd UpdateTeamCommand) (*dto.TeamDTO, error) {
	var summary *team.Summary
	err := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		t, err := uc.teamRepo.GetByID(txCtx, cmd.TeamID)
		if err != nil {
			return err
		}
		if t == nil {
			return errors.NewNotFoundError("team not found")
		}

		if cmd.Name != nil {
			if err := t.Rename(*cmd.Name); err != nil {
				return errors.NewValidationError(err.Error())
			}
		}
		if cmd.Description != nil {
			t.SetDescription(*cmd.Description)
		}

		if err := uc.teamRepo.Update(txCtx, t); err != nil {
			return err
		}
		summary, err = uc.teamRepo.GetSummary(txCtx, t.ID())
		return err
	})
	if err != nil {
		uc.logger.Warnw("failed to update team", "team_id", cmd.TeamID, "error", err)
		return nil, err
	}

	uc.logger.Infow("team updated", "team_id", cmd.TeamID)
	return dto.ToTeamDTO(summary), nil
}

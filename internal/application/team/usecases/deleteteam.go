package usecases

import (
	"context"

	"gearguard/internal/domain/team"
	"gearguard/internal/shared/db"
	"gearguard/internal/shared/errors"
	"gearguard/internal/shared/logger"
)

// TeamReferenceClearer nulls the team on rows that point at it.
type TeamReferenceClearer interface {
	ClearTeam(ctx context.Context, teamID uint) error
}

type DeleteTeamUseCase struct {
	teamRepo   team.Repository
	memberRepo team.MemberRepository
	clearers   []TeamReferenceClearer
	txMgr      db.Runner
	logger     logger.Interface
}

// NewDeleteTeamUseCase takes the repositories whose rows keep existing
// after the team is gone, with their team reference cleared.
func NewDeleteTeamUseCase(
	teamRepo team.Repository,
	memberRepo team.MemberRepository,
	txMgr db.Runner,
	logger logger.Interface,
	clearers ...TeamReferenceClearer,
) *DeleteTeamUseCase {
	return &DeleteTeamUseCase{
		teamRepo:   teamRepo,
		memberRepo: memberRepo,
		clearers:   clearers,
		txMgr:      txMgr,
		logger:     logger,
	}
}

// Execute deletes the team and its members. Equipment and requests that
// referenced it survive with no team.
func (uc *DeleteTeamUseCase) Execute(ctx context.Context, teamID uint) error {
	err := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		exists, err := uc.teamRepo.Exists(txCtx, teamID)
		if err != nil {
			return err
		}
		if !exists {
			return errors.NewNotFoundError("team not found")
		}

		if err := uc.memberRepo.DeleteByTeam(txCtx, teamID); err != nil {
			return err
		}
		for _, c := range uc.clearers {
			if err := c.ClearTeam(txCtx, teamID); err != nil {
				return err
			}
		}
		return uc.teamRepo.Delete(txCtx, teamID)
	})
	if err != nil {
		uc.logger.Warnw("failed to delete team", "team_id", teamID, "error", err)
		return err
	}

	uc.logger.Infow("team deleted", "team_id", teamID)
	return nil
}

package usecases

import (
	"context"

	"gearguard/internal/application/team/dto"
	"gearguard/internal/domain/team"
	"gearguard/internal/shared/db"
	"gearguard/internal/shared/errors"
	"gearguard/internal/shared/logger"
)

type CreateMemberCommand struct {
	TeamID uint
	Name   string
	Role   string
	Email  string
	Phone  string
}

type CreateMemberUseCase struct {
	teamRepo   team.Repository
	memberRepo team.MemberRepository
	txMgr      db.Runner
	logger     logger.Interface
}

func NewCreateMemberUseCase(
	teamRepo team.Repository,
	memberRepo team.MemberRepository,
	txMgr db.Runner,
	logger logger.Interface,
) *CreateMemberUseCase {
	return &CreateMemberUseCase{
		teamRepo:   teamRepo,
		memberRepo: memberRepo,
		txMgr:      txMgr,
		logger:     logger,
	}
}

func (uc *CreateMemberUseCase) Execute(ctx context.Context, cmd CreateMemberCommand) (*dto.MemberDTO, error) {
	m, err := team.NewMember(cmd.TeamID, cmd.Name, cmd.Role, cmd.Email, cmd.Phone)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	var listing *team.MemberListing
	err = uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := requireTeam(txCtx, uc.teamRepo, cmd.TeamID); err != nil {
			return err
		}
		if err := uc.memberRepo.Create(txCtx, m); err != nil {
			return err
		}
		listing, err = uc.memberRepo.GetListing(txCtx, m.ID())
		return err
	})
	if err != nil {
		uc.logger.Warnw("failed to create team member", "team_id", cmd.TeamID, "error", err)
		return nil, err
	}

	uc.logger.Infow("team member created", "member_id", m.ID(), "team_id", cmd.TeamID)
	return dto.ToMemberDTO(listing), nil
}

func requireTeam(ctx context.Context, repo team.Repository, teamID uint) error {
	exists, err := repo.Exists(ctx, teamID)
	if err != nil {
		return err
	}
	if !exists {
		return errors.NewNotFoundError("team not found")
	}
	return nil
}

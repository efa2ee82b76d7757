package usecases

import (
	"context"

	"gearguard/internal/application/team/dto"
	"gearguard/internal/domain/team"
	"gearguard/internal/shared/db"
	"gearguard/internal/shared/errors"
	"gearguard/internal/shared/logger"
)

type UpdateMemberCommand struct {
	MemberID uint
	Changes  team.MemberChanges
}

type UpdateMemberUseCase struct {
	teamRepo   team.Repository
	memberRepo team.MemberRepository
	txMgr      db.Runner
	logger     logger.Interface
}

func NewUpdateMemberUseCase(
	teamRepo team.Repository,
	memberRepo team.MemberRepository,
	txMgr db.Runner,
	logger logger.Interface,
) *UpdateMemberUseCase {
	return &UpdateMemberUseCase{
		teamRepo:   teamRepo,
		memberRepo: memberRepo,
		txMgr:      txMgr,
		logger:     logger,
	}
}

func (uc *UpdateMemberUseCase) Execute(ctx context.Context, cmd UpdateMemberCommand) (*dto.MemberDTO, error) {
	var listing *team.MemberListing
	err := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		m, err := uc.memberRepo.GetByID(txCtx, cmd.MemberID)
		if err != nil {
			return err
		}
		if m == nil {
			return errors.NewNotFoundError("team member not found")
		}

		if err := m.Apply(cmd.Changes); err != nil {
			return errors.NewValidationError(err.Error())
		}
		if cmd.Changes.TeamID != nil {
			if err := requireTeam(txCtx, uc.teamRepo, m.TeamID()); err != nil {
				return err
			}
		}

		if err := uc.memberRepo.Update(txCtx, m); err != nil {
			return err
		}
		listing, err = uc.memberRepo.GetListing(txCtx, m.ID())
		return err
	})
	if err != nil {
		uc.logger.Warnw("failed to update team member", "member_id", cmd.MemberID, "error", err)
		return nil, err
	}

	uc.logger.Infow("team member updated", "member_id", cmd.MemberID)
	return dto.ToMemberDTO(listing), nil
}

type DeleteMemberUseCase struct {
	memberRepo team.MemberRepository
	logger     logger.Interface
}

func NewDeleteMemberUseCase(memberRepo team.MemberRepository, logger logger.Interface) *DeleteMemberUseCase {
	return &DeleteMemberUseCase{memberRepo: memberRepo, logger: logger}
}

func (uc *DeleteMemberUseCase) Execute(ctx context.Context, memberID uint) error {
	if err := uc.memberRepo.Delete(ctx, memberID); err != nil {
		uc.logger.Warnw("failed to delete team member", "member_id", memberID, "error", err)
		return err
	}
	uc.logger.Infow("team member deleted", "member_id", memberID)
	return nil
}

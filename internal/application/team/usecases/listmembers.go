package usecases

import (
	"context"

	"gearguard/internal/application/team/dto"
	"gearguard/internal/domain/team"
	"gearguard/internal/shared/logger"
)

type ListMembersQuery struct {
	// TeamID limits the result to one team; nil lists every member.
	TeamID *uint
}

type ListMembersUseCase struct {
	teamRepo   team.Repository
	memberRepo team.MemberRepository
	logger     logger.Interface
}

func NewListMembersUseCase(
	teamRepo team.Repository,
	memberRepo team.MemberRepository,
	logger logger.Interface,
) *ListMembersUseCase {
	return &ListMembersUseCase{
		teamRepo:   teamRepo,
		memberRepo: memberRepo,
		logger:     logger,
	}
}

// Execute orders one team's members by name, or all members by team name
// then member name.
func (uc *ListMembersUseCase) Execute(ctx context.Context, query ListMembersQuery) ([]*dto.MemberDTO, error) {
	var (
		listings []*team.MemberListing
		err      error
	)
	if query.TeamID != nil {
		if err := requireTeam(ctx, uc.teamRepo, *query.TeamID); err != nil {
			return nil, err
		}
		listings, err = uc.memberRepo.ListByTeam(ctx, *query.TeamID)
	} else {
		listings, err = uc.memberRepo.ListAll(ctx)
	}
	if err != nil {
		uc.logger.Errorw("failed to list team members", "error", err)
		return nil, err
	}
	return dto.ToMemberDTOs(listings), nil
}

package teams

import (
	"context"

	"gearguard/internal/application/team/dto"
	"gearguard/internal/application/team/usecases"
)

type createTeamUseCase interface {
	Execute(ctx context.Context, cmd usecases.CreateTeamCommand) (*dto.TeamDTO, error)
}

type getTeamUseCase interface {
	Execute(ctx context.Context, teamID uint) (*dto.TeamDTO, error)
}

type listTeamsUseCase interface {
	Execute(ctx context.Context) ([]*dto.TeamDTO, error)
}

type updateTeamUseCase interface {
	Execute(ctx context.Context, cmd usecases.UpdateTeamCommand) (*dto.TeamDTO, error)
}

type deleteTeamUseCase interface {
	Execute(ctx context.Context, teamID uint) error
}

type createMemberUseCase interface {
	Execute(ctx context.Context, cmd usecases.CreateMemberCommand) (*dto.MemberDTO, error)
}

type listMembersUseCase interface {
	Execute(ctx context.Context, query usecases.ListMembersQuery) ([]*dto.MemberDTO, error)
}

type updateMemberUseCase interface {
	Execute(ctx context.Context, cmd usecases.UpdateMemberCommand) (*dto.MemberDTO, error)
}

type deleteMemberUseCase interface {
	Execute(ctx context.Context, memberID uint) error
}

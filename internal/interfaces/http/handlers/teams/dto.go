package teams

import (
	"gearguard/internal/application/team/usecases"
	"gearguard/internal/domain/team"
	"gearguard/internal/shared/utils"
)

type CreateTeamRequest struct {
	Name        string `json:"name" validate:"required,max=100"`
	Description string `json:"description"`
}

func (r *CreateTeamRequest) ToCommand() usecases.CreateTeamCommand {
	return usecases.CreateTeamCommand{Name: r.Name, Description: r.Description}
}

type UpdateTeamRequest struct {
	Name        *string `json:"name" validate:"omitempty,max=100"`
	Description *string `json:"description"`
}

func (r *UpdateTeamRequest) ToCommand(teamID uint) usecases.UpdateTeamCommand {
	return usecases.UpdateTeamCommand{
		TeamID:      teamID,
		Name:        utils.TrimPtr(r.Name),
		Description: r.Description,
	}
}

type CreateMemberRequest struct {
	TeamID uint   `json:"team_id" validate:"required"`
	Name   string `json:"name" validate:"required,max=100"`
	Role   string `json:"role"`
	Email  string `json:"email" validate:"omitempty,email"`
	Phone  string `json:"phone"`
}

func (r *CreateMemberRequest) ToCommand() usecases.CreateMemberCommand {
	return usecases.CreateMemberCommand{
		TeamID: r.TeamID,
		Name:   r.Name,
		Role:   r.Role,
		Email:  r.Email,
		Phone:  r.Phone,
	}
}

type UpdateMemberRequest struct {
	TeamID *uint   `json:"team_id"`
	Name   *string `json:"name" validate:"omitempty,max=100"`
	Role   *string `json:"role"`
	Email  *string `json:"email" validate:"omitempty,email"`
	Phone  *string `json:"phone"`
}

func (r *UpdateMemberRequest) ToCommand(memberID uint) usecases.UpdateMemberCommand {
	return usecases.UpdateMemberCommand{
		MemberID: memberID,
		Changes: team.MemberChanges{
			TeamID: r.TeamID,
			Name:   r.Name,
			Role:   r.Role,
			Email:  r.Email,
			Phone:  r.Phone,
		},
	}
}

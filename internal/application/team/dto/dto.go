package dto

import (
	"time"

	"gearguard/internal/domain/team"
	"gearguard/internal/shared/mapper"
)

type TeamDTO struct {
	ID             uint      `json:"id"`
	Name           string    `json:"name"`
	Description    string    `json:"description"`
	CreatedAt      time.Time `json:"created_at"`
	MemberCount    int64     `json:"member_count"`
	EquipmentCount int64     `json:"equipment_count"`
}

type MemberDTO struct {
	ID        uint      `json:"id"`
	TeamID    uint      `json:"team_id"`
	TeamName  string    `json:"team_name"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
}

func ToTeamDTO(s *team.Summary) *TeamDTO {
	if s == nil || s.Team == nil {
		return nil
	}
	return &TeamDTO{
		ID:             s.Team.ID(),
		Name:           s.Team.Name(),
		Description:    s.Team.Description(),
		CreatedAt:      s.Team.CreatedAt(),
		MemberCount:    s.MemberCount,
		EquipmentCount: s.EquipmentCount,
	}
}

func ToTeamDTOs(summaries []*team.Summary) []*TeamDTO {
	return mapper.MapSlice(summaries, ToTeamDTO)
}

func ToMemberDTO(l *team.MemberListing) *MemberDTO {
	if l == nil || l.Member == nil {
		return nil
	}
	m := l.Member
	return &MemberDTO{
		ID:        m.ID(),
		TeamID:    m.TeamID(),
		TeamName:  l.TeamName,
		Name:      m.Name(),
		Role:      m.Role(),
		Email:     m.Email(),
		Phone:     m.Phone(),
		CreatedAt: m.CreatedAt(),
	}
}

func ToMemberDTOs(listings []*team.MemberListing) []*MemberDTO {
	return mapper.MapSlice(listings, ToMemberDTO)
}

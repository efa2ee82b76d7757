package team

import (
	"fmt"
	"strings"
	"time"
)

// Member is a technician belonging to exactly one team.
type Member struct {
	id        uint
	teamID    uint
	name      string
	role      string
	email     string
	phone     string
	createdAt time.Time
}

func NewMember(teamID uint, name, role, email, phone string) (*Member, error) {
	if teamID == 0 {
		return nil, fmt.Errorf("team_id is required")
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("name is required")
	}
	return &Member{
		teamID:    teamID,
		name:      name,
		role:      strings.TrimSpace(role),
		email:     strings.TrimSpace(email),
		phone:     strings.TrimSpace(phone),
		createdAt: time.Now().UTC(),
	}, nil
}

func ReconstructMember(id, teamID uint, name, role, email, phone string, createdAt time.Time) (*Member, error) {
	if id == 0 {
		return nil, fmt.Errorf("member ID cannot be zero")
	}
	return &Member{
		id:        id,
		teamID:    teamID,
		name:      name,
		role:      role,
		email:     email,
		phone:     phone,
		createdAt: createdAt,
	}, nil
}

func (m *Member) ID() uint             { return m.id }
func (m *Member) TeamID() uint         { return m.teamID }
func (m *Member) Name() string         { return m.name }
func (m *Member) Role() string         { return m.role }
func (m *Member) Email() string        { return m.email }
func (m *Member) Phone() string        { return m.phone }
func (m *Member) CreatedAt() time.Time { return m.createdAt }

func (m *Member) SetID(id uint) error {
	if m.id != 0 {
		return fmt.Errorf("member ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("member ID cannot be zero")
	}
	m.id = id
	return nil
}

// MemberChanges lists the fields an update touches. Nil fields are left as is.
type MemberChanges struct {
	TeamID *uint
	Name   *string
	Role   *string
	Email  *string
	Phone  *string
}

// Apply mutates the member. A member always belongs to a team, so TeamID
// cannot be cleared.
func (m *Member) Apply(c MemberChanges) error {
	if c.TeamID != nil {
		if *c.TeamID == 0 {
			return fmt.Errorf("team_id is required")
		}
		m.teamID = *c.TeamID
	}
	if c.Name != nil {
		name := strings.TrimSpace(*c.Name)
		if name == "" {
			return fmt.Errorf("name is required")
		}
		m.name = name
	}
	if c.Role != nil {
		m.role = strings.TrimSpace(*c.Role)
	}
	if c.Email != nil {
		m.email = strings.TrimSpace(*c.Email)
	}
	if c.Phone != nil {
		m.phone = strings.TrimSpace(*c.Phone)
	}
	return nil
}

// MemberListing is a member joined with its team's name.
type MemberListing struct {
	Member   *Member
	TeamName string
}

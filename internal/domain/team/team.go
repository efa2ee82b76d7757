// Package team models maintenance teams and the technicians on them.
package team

import (
	"fmt"
	"strings"
	"time"
)

type Team struct {
	id          uint
	name        string
	description string
	createdAt   time.Time
}

func NewTeam(name, description string) (*Team, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("name is required")
	}
	return &Team{
		name:        name,
		description: strings.TrimSpace(description),
		createdAt:   time.Now().UTC(),
	}, nil
}

func ReconstructTeam(id uint, name, description string, createdAt time.Time) (*Team, error) {
	if id == 0 {
		return nil, fmt.Errorf("team ID cannot be zero")
	}
	return &Team{
		id:          id,
		name:        name,
		description: description,
		createdAt:   createdAt,
	}, nil
}

func (t *Team) ID() uint             { return t.id }
func (t *Team) Name() string         { return t.name }
func (t *Team) Description() string  { return t.description }
func (t *Team) CreatedAt() time.Time { return t.createdAt }

func (t *Team) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("team ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("team ID cannot be zero")
	}
	t.id = id
	return nil
}

func (t *Team) Rename(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("name is required")
	}
	t.name = name
	return nil
}

func (t *Team) SetDescription(description string) {
	t.description = strings.TrimSpace(description)
}

// Summary is a team with its member and equipment counts.
type Summary struct {
	Team           *Team
	MemberCount    int64
	EquipmentCount int64
}

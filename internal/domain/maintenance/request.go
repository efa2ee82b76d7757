// Package maintenance models work orders raised against equipment.
package maintenance

import (
	"fmt"
	"strings"
	"time"

	vo "gearguard/internal/domain/maintenance/valueobjects"
	"gearguard/internal/shared/biztime"
)

// DefaultDurationHours is the planned effort when none is given.
const DefaultDurationHours = 1.0

type Request struct {
	id                 uint
	subject            string
	equipmentID        uint
	requestType        vo.RequestType
	scheduledDate      time.Time
	durationHours      float64
	stage              vo.Stage
	assignedTechnician string
	teamID             *uint
	department         string
	priority           vo.Priority
	description        string
	createdAt          time.Time
	completedAt        *time.Time
}

// Params carries a request's fields. TeamID and Department are ignored by
// NewRequest: they are always copied from the equipment.
type Params struct {
	Subject            string
	EquipmentID        uint
	RequestType        vo.RequestType
	ScheduledDate      time.Time
	DurationHours      float64
	Stage              vo.Stage
	AssignedTechnician string
	TeamID             *uint
	Department         string
	Priority           vo.Priority
	Description        string
	CompletedAt        *time.Time
}

// NewRequest builds a request in its initial state. Stage defaults to New,
// priority to Medium and duration to one hour.
func NewRequest(p Params) (*Request, error) {
	r := &Request{
		subject:            strings.TrimSpace(p.Subject),
		equipmentID:        p.EquipmentID,
		requestType:        p.RequestType,
		scheduledDate:      biztime.NormalizeDate(p.ScheduledDate),
		durationHours:      p.DurationHours,
		stage:              p.Stage,
		assignedTechnician: strings.TrimSpace(p.AssignedTechnician),
		priority:           p.Priority,
		description:        p.Description,
		createdAt:          time.Now().UTC(),
	}
	if p.ScheduledDate.IsZero() {
		r.scheduledDate = time.Time{}
	}
	if r.stage == "" {
		r.stage = vo.StageNew
	}
	if r.priority == "" {
		r.priority = vo.PriorityMedium
	}
	if r.durationHours == 0 {
		r.durationHours = DefaultDurationHours
	}
	if err := r.validate(); err != nil {
		return nil, err
	}
	if r.stage == vo.StageRepaired {
		completed := r.createdAt
		r.completedAt = &completed
	}
	return r, nil
}

func ReconstructRequest(id uint, p Params, createdAt time.Time) (*Request, error) {
	if id == 0 {
		return nil, fmt.Errorf("request ID cannot be zero")
	}
	if !p.Stage.IsValid() {
		return nil, fmt.Errorf("invalid stage: %q", p.Stage)
	}
	return &Request{
		id:                 id,
		subject:            p.Subject,
		equipmentID:        p.EquipmentID,
		requestType:        p.RequestType,
		scheduledDate:      biztime.NormalizeDate(p.ScheduledDate),
		durationHours:      p.DurationHours,
		stage:              p.Stage,
		assignedTechnician: p.AssignedTechnician,
		teamID:             p.TeamID,
		department:         p.Department,
		priority:           p.Priority,
		description:        p.Description,
		createdAt:          createdAt,
		completedAt:        p.CompletedAt,
	}, nil
}

func (r *Request) validate() error {
	switch {
	case r.subject == "":
		return fmt.Errorf("subject is required")
	case r.equipmentID == 0:
		return fmt.Errorf("equipment_id is required")
	case !r.requestType.IsValid():
		return fmt.Errorf("invalid request type: %q", r.requestType)
	case r.scheduledDate.IsZero():
		return fmt.Errorf("scheduled_date is required")
	case r.durationHours <= 0:
		return fmt.Errorf("duration_hours must be positive")
	case !r.stage.IsValid():
		return fmt.Errorf("invalid stage: %q", r.stage)
	case !r.priority.IsValid():
		return fmt.Errorf("invalid priority: %q", r.priority)
	}
	return nil
}

func (r *Request) ID() uint                    { return r.id }
func (r *Request) Subject() string             { return r.subject }
func (r *Request) EquipmentID() uint           { return r.equipmentID }
func (r *Request) RequestType() vo.RequestType { return r.requestType }
func (r *Request) ScheduledDate() time.Time    { return r.scheduledDate }
func (r *Request) DurationHours() float64      { return r.durationHours }
func (r *Request) Stage() vo.Stage             { return r.stage }
func (r *Request) AssignedTechnician() string  { return r.assignedTechnician }
func (r *Request) TeamID() *uint               { return r.teamID }
func (r *Request) Department() string          { return r.department }
func (r *Request) Priority() vo.Priority       { return r.priority }
func (r *Request) Description() string         { return r.description }
func (r *Request) CreatedAt() time.Time        { return r.createdAt }
func (r *Request) CompletedAt() *time.Time     { return r.completedAt }

func (r *Request) SetID(id uint) error {
	if r.id != 0 {
		return fmt.Errorf("request ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("request ID cannot be zero")
	}
	r.id = id
	return nil
}

// AssignFromEquipment copies the owning team and department of the
// equipment onto the request, replacing whatever the caller supplied.
func (r *Request) AssignFromEquipment(teamID *uint, department string) {
	if teamID != nil && *teamID != 0 {
		v := *teamID
		r.teamID = &v
	} else {
		r.teamID = nil
	}
	r.department = department
}

// StageTransition describes the effect of a stage change.
type StageTransition struct {
	From vo.Stage
	To   vo.Stage
}

// EnteredScrap is true only on the edge into Scrap.
func (t StageTransition) EnteredScrap() bool {
	return t.To == vo.StageScrap && t.From != vo.StageScrap
}

// EnteredRepaired is true only on the edge into Repaired.
func (t StageTransition) EnteredRepaired() bool {
	return t.To == vo.StageRepaired && t.From != vo.StageRepaired
}

// ChangeStage moves the request to stage. Entering Repaired stamps
// completedAt with now; re-setting Repaired keeps the original stamp.
func (r *Request) ChangeStage(stage vo.Stage, now time.Time) (StageTransition, error) {
	if !stage.IsValid() {
		return StageTransition{}, fmt.Errorf("invalid stage: %q", stage)
	}
	tr := StageTransition{From: r.stage, To: stage}
	r.stage = stage
	if tr.EnteredRepaired() {
		completed := now.UTC()
		r.completedAt = &completed
	}
	return tr, nil
}

// IsOverdue reports whether the request is open and scheduled before today.
func (r *Request) IsOverdue(today time.Time) bool {
	return r.stage.IsOpen() && r.scheduledDate.Before(biztime.NormalizeDate(today))
}

// Changes lists the non-stage fields an update touches. Stage changes go
// through ChangeStage. Team and department follow the equipment and are set
// with AssignFromEquipment.
type Changes struct {
	Subject            *string
	EquipmentID        *uint
	RequestType        *vo.RequestType
	ScheduledDate      *time.Time
	DurationHours      *float64
	AssignedTechnician *string
	Priority           *vo.Priority
	Description        *string
}

// Apply mutates a copy first so a failed validation leaves r untouched.
func (r *Request) Apply(c Changes) error {
	next := *r
	if c.Subject != nil {
		next.subject = strings.TrimSpace(*c.Subject)
	}
	if c.EquipmentID != nil {
		next.equipmentID = *c.EquipmentID
	}
	if c.RequestType != nil {
		next.requestType = *c.RequestType
	}
	if c.ScheduledDate != nil {
		next.scheduledDate = time.Time{}
		if !c.ScheduledDate.IsZero() {
			next.scheduledDate = biztime.NormalizeDate(*c.ScheduledDate)
		}
	}
	if c.DurationHours != nil {
		next.durationHours = *c.DurationHours
	}
	if c.AssignedTechnician != nil {
		next.assignedTechnician = strings.TrimSpace(*c.AssignedTechnician)
	}
	if c.Priority != nil {
		next.priority = *c.Priority
	}
	if c.Description != nil {
		next.description = *c.Description
	}
	if err := next.validate(); err != nil {
		return err
	}
	*r = next
	return nil
}

// Listing is a request joined with its equipment and team names.
type Listing struct {
	Request         *Request
	EquipmentName   string
	EquipmentSerial string
	TeamName        string
}

// TeamCount is one row of the requests-by-team aggregate.
type TeamCount struct {
	TeamID   uint
	TeamName string
	Count    int64
}

package dto

import (
	"time"

	"gearguard/internal/domain/maintenance"
	"gearguard/internal/shared/biztime"
)

// RequestDTO is the REST shape of a maintenance request. IsOverdue is
// computed against the business day the DTO was built on.
type RequestDTO struct {
	ID                 uint       `json:"id"`
	Subject            string     `json:"subject"`
	EquipmentID        uint       `json:"equipment_id"`
	EquipmentName      string     `json:"equipment_name"`
	EquipmentSerial    string     `json:"equipment_serial"`
	RequestType        string     `json:"request_type"`
	ScheduledDate      string     `json:"scheduled_date"`
	DurationHours      float64    `json:"duration_hours"`
	Stage              string     `json:"stage"`
	AssignedTechnician string     `json:"assigned_technician"`
	TeamID             *uint      `json:"team_id"`
	TeamName           *string    `json:"team_name"`
	Department         string     `json:"department"`
	Priority           string     `json:"priority"`
	Description        string     `json:"description"`
	DescriptionHTML    string     `json:"description_html"`
	CreatedAt          time.Time  `json:"created_at"`
	CompletedAt        *time.Time `json:"completed_at"`
	IsOverdue          bool       `json:"is_overdue"`
}

type KanbanColumnDTO struct {
	Stage    string        `json:"stage"`
	Count    int           `json:"count"`
	Requests []*RequestDTO `json:"requests"`
}

type CalendarDayDTO struct {
	Date     string        `json:"date"`
	Requests []*RequestDTO `json:"requests"`
}

type CalendarDTO struct {
	From string            `json:"from"`
	To   string            `json:"to"`
	Days []*CalendarDayDTO `json:"days"`
}

func ToRequestDTO(l *maintenance.Listing, today time.Time, descriptionHTML string) *RequestDTO {
	if l == nil || l.Request == nil {
		return nil
	}
	r := l.Request
	var teamName *string
	if l.TeamName != "" {
		name := l.TeamName
		teamName = &name
	}
	return &RequestDTO{
		ID:                 r.ID(),
		Subject:            r.Subject(),
		EquipmentID:        r.EquipmentID(),
		EquipmentName:      l.EquipmentName,
		EquipmentSerial:    l.EquipmentSerial,
		RequestType:        r.RequestType().String(),
		ScheduledDate:      biztime.FormatDate(r.ScheduledDate()),
		DurationHours:      r.DurationHours(),
		Stage:              r.Stage().String(),
		AssignedTechnician: r.AssignedTechnician(),
		TeamID:             r.TeamID(),
		TeamName:           teamName,
		Department:         r.Department(),
		Priority:           r.Priority().String(),
		Description:        r.Description(),
		DescriptionHTML:    descriptionHTML,
		CreatedAt:          r.CreatedAt(),
		CompletedAt:        r.CompletedAt(),
		IsOverdue:          r.IsOverdue(today),
	}
}

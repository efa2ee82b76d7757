package requests

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"gearguard/internal/application/maintenance/usecases"
	"gearguard/internal/domain/maintenance"
	vo "gearguard/internal/domain/maintenance/valueobjects"
	"gearguard/internal/shared/biztime"
	"gearguard/internal/shared/errors"
	"gearguard/internal/shared/utils"
)

// CreateRequestRequest is the body of POST /api/requests. team_id and
// department are accepted but always replaced by the equipment's values.
type CreateRequestRequest struct {
	Subject            string  `json:"subject" validate:"required,max=200"`
	EquipmentID        uint    `json:"equipment_id" validate:"required"`
	RequestType        string  `json:"request_type" validate:"required"`
	ScheduledDate      string  `json:"scheduled_date" validate:"required,date"`
	DurationHours      float64 `json:"duration_hours" validate:"gte=0"`
	Stage              string  `json:"stage"`
	AssignedTechnician string  `json:"assigned_technician"`
	TeamID             *uint   `json:"team_id"`
	Department         string  `json:"department"`
	Priority           string  `json:"priority"`
	Description        string  `json:"description"`
}

func (r *CreateRequestRequest) ToCommand() (usecases.CreateRequestCommand, error) {
	var cmd usecases.CreateRequestCommand
	requestType, err := parseRequestType(r.RequestType)
	if err != nil {
		return cmd, err
	}
	scheduled, err := biztime.ParseDate(r.ScheduledDate)
	if err != nil {
		return cmd, errors.NewValidationError("invalid scheduled_date", r.ScheduledDate)
	}
	var stage vo.Stage
	if strings.TrimSpace(r.Stage) != "" {
		if stage, err = parseStage(r.Stage); err != nil {
			return cmd, err
		}
	}
	var priority vo.Priority
	if strings.TrimSpace(r.Priority) != "" {
		if priority, err = parsePriority(r.Priority); err != nil {
			return cmd, err
		}
	}
	cmd.Params = maintenance.Params{
		Subject:            r.Subject,
		EquipmentID:        r.EquipmentID,
		RequestType:        requestType,
		ScheduledDate:      scheduled,
		DurationHours:      r.DurationHours,
		Stage:              stage,
		AssignedTechnician: r.AssignedTechnician,
		TeamID:             r.TeamID,
		Department:         r.Department,
		Priority:           priority,
		Description:        r.Description,
	}
	return cmd, nil
}

// UpdateRequestRequest is a partial update. A stage here behaves exactly
// like PATCH /stage. Team and department always follow the equipment.
type UpdateRequestRequest struct {
	Subject            *string  `json:"subject" validate:"omitempty,max=200"`
	EquipmentID        *uint    `json:"equipment_id"`
	RequestType        *string  `json:"request_type"`
	ScheduledDate      *string  `json:"scheduled_date" validate:"omitempty,date"`
	DurationHours      *float64 `json:"duration_hours" validate:"omitempty,gte=0"`
	Stage              *string  `json:"stage"`
	AssignedTechnician *string  `json:"assigned_technician"`
	Priority           *string  `json:"priority"`
	Description        *string  `json:"description"`
}

func (r *UpdateRequestRequest) ToCommand(requestID uint) (usecases.UpdateRequestCommand, error) {
	cmd := usecases.UpdateRequestCommand{RequestID: requestID}
	ch := &cmd.Changes
	if r.RequestType != nil {
		rt, err := parseRequestType(*r.RequestType)
		if err != nil {
			return cmd, err
		}
		ch.RequestType = &rt
	}
	if r.ScheduledDate != nil {
		d, err := biztime.ParseDate(strings.TrimSpace(*r.ScheduledDate))
		if err != nil {
			return cmd, errors.NewValidationError("invalid scheduled_date", *r.ScheduledDate)
		}
		ch.ScheduledDate = &d
	}
	if r.Priority != nil {
		p, err := parsePriority(*r.Priority)
		if err != nil {
			return cmd, err
		}
		ch.Priority = &p
	}
	if r.Stage != nil {
		s, err := parseStage(*r.Stage)
		if err != nil {
			return cmd, err
		}
		cmd.Stage = &s
	}
	ch.Subject = r.Subject
	ch.EquipmentID = r.EquipmentID
	ch.DurationHours = r.DurationHours
	ch.AssignedTechnician = r.AssignedTechnician
	ch.Description = r.Description
	return cmd, nil
}

type ChangeStageRequest struct {
	Stage string `json:"stage" validate:"required"`
}

func parseStage(raw string) (vo.Stage, error) {
	s, err := vo.NewStage(utils.NormalizeLabel(raw))
	if err != nil {
		return "", errors.NewValidationError("invalid stage", raw)
	}
	return s, nil
}

func parseRequestType(raw string) (vo.RequestType, error) {
	rt, err := vo.NewRequestType(utils.NormalizeLabel(raw))
	if err != nil {
		return "", errors.NewValidationError("invalid request_type", raw)
	}
	return rt, nil
}

func parsePriority(raw string) (vo.Priority, error) {
	p, err := vo.NewPriority(utils.NormalizeLabel(raw))
	if err != nil {
		return "", errors.NewValidationError("invalid priority", raw)
	}
	return p, nil
}

func parseListFilter(c *gin.Context) (maintenance.Filter, error) {
	var filter maintenance.Filter
	if raw := c.Query("stage"); raw != "" {
		s, err := parseStage(raw)
		if err != nil {
			return filter, err
		}
		filter.Stage = &s
	}
	if raw := c.Query("request_type"); raw != "" {
		rt, err := parseRequestType(raw)
		if err != nil {
			return filter, err
		}
		filter.RequestType = &rt
	}
	var err error
	if filter.TeamID, err = utils.ParseOptionalID(c.Query("team_id"), "team_id"); err != nil {
		return filter, err
	}
	if filter.EquipmentID, err = utils.ParseOptionalID(c.Query("equipment_id"), "equipment_id"); err != nil {
		return filter, err
	}
	return filter, nil
}

// parseCalendarQuery reads from, to and request_type. request_type=all
// lifts the Preventive default.
func parseCalendarQuery(c *gin.Context) (usecases.CalendarQuery, error) {
	var q usecases.CalendarQuery
	for _, p := range []struct {
		name string
		dst  **time.Time
	}{{"from", &q.From}, {"to", &q.To}} {
		raw := strings.TrimSpace(c.Query(p.name))
		if raw == "" {
			continue
		}
		d, err := biztime.ParseDate(raw)
		if err != nil {
			return q, errors.NewValidationError("invalid "+p.name, raw)
		}
		*p.dst = &d
	}
	switch raw := strings.TrimSpace(c.Query("request_type")); {
	case raw == "":
	case strings.EqualFold(raw, "all"):
		q.AllTypes = true
	default:
		rt, err := parseRequestType(raw)
		if err != nil {
			return q, err
		}
		q.RequestType = &rt
	}
	var err error
	if q.TeamID, err = utils.ParseOptionalID(c.Query("team_id"), "team_id"); err != nil {
		return q, err
	}
	return q, nil
}

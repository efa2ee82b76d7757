package dto

import (
	"time"

	"gearguard/internal/domain/activity"
	"gearguard/internal/shared/mapper"
)

// ActivityDTO is one audit entry. The joined names are empty when the
// referenced row is gone.
type ActivityDTO struct {
	ID             uint      `json:"id"`
	EquipmentID    *uint     `json:"equipment_id"`
	RequestID      *uint     `json:"request_id"`
	Action         string    `json:"action"`
	Details        string    `json:"details"`
	CreatedAt      time.Time `json:"created_at"`
	EquipmentName  string    `json:"equipment_name,omitempty"`
	RequestSubject string    `json:"request_subject,omitempty"`
}

func ToActivityDTO(l *activity.Listing) *ActivityDTO {
	if l == nil || l.Entry == nil {
		return nil
	}
	e := l.Entry
	return &ActivityDTO{
		ID:             e.ID(),
		EquipmentID:    e.EquipmentID(),
		RequestID:      e.RequestID(),
		Action:         e.Action(),
		Details:        e.Details(),
		CreatedAt:      e.CreatedAt(),
		EquipmentName:  l.EquipmentName,
		RequestSubject: l.RequestSubject,
	}
}

func ToActivityDTOs(listings []*activity.Listing) []*ActivityDTO {
	return mapper.MapSlice(listings, ToActivityDTO)
}

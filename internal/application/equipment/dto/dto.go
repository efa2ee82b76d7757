package dto

import (
	"time"

	"gearguard/internal/domain/equipment"
	"gearguard/internal/shared/biztime"
	"gearguard/internal/shared/mapper"
)

// EquipmentDTO is the REST shape of an asset. Date-only fields are
// YYYY-MM-DD; team_name is null when the asset has no team.
type EquipmentDTO struct {
	ID               uint      `json:"id"`
	Name             string    `json:"name"`
	SerialNumber     string    `json:"serial_number"`
	Category         string    `json:"category"`
	Department       string    `json:"department"`
	AssignedEmployee string    `json:"assigned_employee"`
	PurchaseDate     *string   `json:"purchase_date"`
	WarrantyExpiry   *string   `json:"warranty_expiry"`
	Location         string    `json:"location"`
	Status           string    `json:"status"`
	TeamID           *uint     `json:"team_id"`
	TeamName         *string   `json:"team_name"`
	Notes            string    `json:"notes"`
	CreatedAt        time.Time `json:"created_at"`
	// RequestCount and OpenRequestCount both carry the number of requests
	// not yet Repaired or Scrap.
	RequestCount     int64 `json:"request_count"`
	OpenRequestCount int64 `json:"open_request_count"`
}

func ToEquipmentDTO(l *equipment.Listing) *EquipmentDTO {
	if l == nil || l.Equipment == nil {
		return nil
	}
	e := l.Equipment
	return &EquipmentDTO{
		ID:               e.ID(),
		Name:             e.Name(),
		SerialNumber:     e.SerialNumber(),
		Category:         e.Category(),
		Department:       e.Department(),
		AssignedEmployee: e.AssignedEmployee(),
		PurchaseDate:     FormatDatePtr(e.PurchaseDate()),
		WarrantyExpiry:   FormatDatePtr(e.WarrantyExpiry()),
		Location:         e.Location(),
		Status:           e.Status().String(),
		TeamID:           e.TeamID(),
		TeamName:         optionalName(l.TeamName),
		Notes:            e.Notes(),
		CreatedAt:        e.CreatedAt(),
		RequestCount:     l.OpenRequestCount,
		OpenRequestCount: l.OpenRequestCount,
	}
}

func ToEquipmentDTOs(listings []*equipment.Listing) []*EquipmentDTO {
	return mapper.MapSlice(listings, ToEquipmentDTO)
}

// FormatDatePtr renders an optional date as YYYY-MM-DD.
func FormatDatePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := biztime.FormatDate(*t)
	return &s
}

func optionalName(name string) *string {
	if name == "" {
		return nil
	}
	return &name
}

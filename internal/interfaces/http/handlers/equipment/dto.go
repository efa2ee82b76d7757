package equipment

import (
	"strings"

	"github.com/gin-gonic/gin"

	"gearguard/internal/application/equipment/usecases"
	domain "gearguard/internal/domain/equipment"
	vo "gearguard/internal/domain/equipment/valueobjects"
	"gearguard/internal/shared/errors"
	"gearguard/internal/shared/utils"
)

type CreateEquipmentRequest struct {
	Name             string  `json:"name" validate:"required,max=200"`
	SerialNumber     string  `json:"serial_number" validate:"required,max=100"`
	Category         string  `json:"category" validate:"required,max=100"`
	Department       string  `json:"department" validate:"required,max=100"`
	AssignedEmployee string  `json:"assigned_employee"`
	PurchaseDate     *string `json:"purchase_date" validate:"omitempty,date"`
	WarrantyExpiry   *string `json:"warranty_expiry" validate:"omitempty,date"`
	Location         string  `json:"location"`
	Status           string  `json:"status"`
	TeamID           *uint   `json:"team_id"`
	Notes            string  `json:"notes"`
}

func (r *CreateEquipmentRequest) ToCommand() (usecases.CreateEquipmentCommand, error) {
	purchase, err := utils.ParseDatePtr(r.PurchaseDate, "purchase_date")
	if err != nil {
		return usecases.CreateEquipmentCommand{}, err
	}
	warranty, err := utils.ParseDatePtr(r.WarrantyExpiry, "warranty_expiry")
	if err != nil {
		return usecases.CreateEquipmentCommand{}, err
	}
	var status vo.Status
	if strings.TrimSpace(r.Status) != "" {
		if status, err = parseStatus(r.Status); err != nil {
			return usecases.CreateEquipmentCommand{}, err
		}
	}
	return usecases.CreateEquipmentCommand{Params: domain.Params{
		Name:             r.Name,
		SerialNumber:     r.SerialNumber,
		Category:         r.Category,
		Department:       r.Department,
		AssignedEmployee: r.AssignedEmployee,
		PurchaseDate:     purchase,
		WarrantyExpiry:   warranty,
		Location:         r.Location,
		Status:           status,
		TeamID:           r.TeamID,
		Notes:            r.Notes,
	}}, nil
}

// UpdateEquipmentRequest is a partial update. team_id 0 and an empty date
// clear the field.
type UpdateEquipmentRequest struct {
	Name             *string `json:"name" validate:"omitempty,max=200"`
	SerialNumber     *string `json:"serial_number" validate:"omitempty,max=100"`
	Category         *string `json:"category" validate:"omitempty,max=100"`
	Department       *string `json:"department" validate:"omitempty,max=100"`
	AssignedEmployee *string `json:"assigned_employee"`
	PurchaseDate     *string `json:"purchase_date" validate:"omitempty,date"`
	WarrantyExpiry   *string `json:"warranty_expiry" validate:"omitempty,date"`
	Location         *string `json:"location"`
	Status           *string `json:"status"`
	TeamID           *uint   `json:"team_id"`
	Notes            *string `json:"notes"`
}

func (r *UpdateEquipmentRequest) ToCommand(equipmentID uint) (usecases.UpdateEquipmentCommand, error) {
	cmd := usecases.UpdateEquipmentCommand{EquipmentID: equipmentID}
	var err error
	if cmd.Changes.PurchaseDate, err = utils.ParseDatePtr(r.PurchaseDate, "purchase_date"); err != nil {
		return cmd, err
	}
	if cmd.Changes.WarrantyExpiry, err = utils.ParseDatePtr(r.WarrantyExpiry, "warranty_expiry"); err != nil {
		return cmd, err
	}
	if r.Status != nil {
		status, err := parseStatus(*r.Status)
		if err != nil {
			return cmd, err
		}
		cmd.Changes.Status = &status
	}
	cmd.Changes.Name = r.Name
	cmd.Changes.SerialNumber = r.SerialNumber
	cmd.Changes.Category = r.Category
	cmd.Changes.Department = r.Department
	cmd.Changes.AssignedEmployee = r.AssignedEmployee
	cmd.Changes.Location = r.Location
	cmd.Changes.TeamID = r.TeamID
	cmd.Changes.Notes = r.Notes
	return cmd, nil
}

func parseStatus(raw string) (vo.Status, error) {
	status, err := vo.NewStatus(utils.NormalizeLabel(raw))
	if err != nil {
		return "", errors.NewValidationError("invalid status", raw)
	}
	return status, nil
}

func parseFilter(c *gin.Context) (domain.Filter, error) {
	var filter domain.Filter
	if raw := c.Query("status"); raw != "" {
		status, err := parseStatus(raw)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}
	teamID, err := utils.ParseOptionalID(c.Query("team_id"), "team_id")
	if err != nil {
		return filter, err
	}
	filter.TeamID = teamID
	return filter, nil
}

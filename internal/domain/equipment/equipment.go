// Package equipment models tracked assets.
package equipment

import (
	"fmt"
	"strings"
	"time"

	vo "gearguard/internal/domain/equipment/valueobjects"
	"gearguard/internal/shared/biztime"
)

type Equipment struct {
	id               uint
	name             string
	serialNumber     string
	category         string
	department       string
	assignedEmployee string
	purchaseDate     *time.Time
	warrantyExpiry   *time.Time
	location         string
	status           vo.Status
	teamID           *uint
	notes            string
	createdAt        time.Time
}

// Params carries the fields of a new asset. Status defaults to Usable.
type Params struct {
	Name             string
	SerialNumber     string
	Category         string
	Department       string
	AssignedEmployee string
	PurchaseDate     *time.Time
	WarrantyExpiry   *time.Time
	Location         string
	Status           vo.Status
	TeamID           *uint
	Notes            string
}

func NewEquipment(p Params) (*Equipment, error) {
	e := &Equipment{
		name:             strings.TrimSpace(p.Name),
		serialNumber:     strings.TrimSpace(p.SerialNumber),
		category:         strings.TrimSpace(p.Category),
		department:       strings.TrimSpace(p.Department),
		assignedEmployee: strings.TrimSpace(p.AssignedEmployee),
		purchaseDate:     normalizeDate(p.PurchaseDate),
		warrantyExpiry:   normalizeDate(p.WarrantyExpiry),
		location:         strings.TrimSpace(p.Location),
		status:           p.Status,
		teamID:           normalizeRef(p.TeamID),
		notes:            p.Notes,
		createdAt:        time.Now().UTC(),
	}
	if e.status == "" {
		e.status = vo.StatusUsable
	}
	if err := e.validate(); err != nil {
		return nil, err
	}
	return e, nil
}

func ReconstructEquipment(
	id uint,
	p Params,
	createdAt time.Time,
) (*Equipment, error) {
	if id == 0 {
		return nil, fmt.Errorf("equipment ID cannot be zero")
	}
	if !p.Status.IsValid() {
		return nil, fmt.Errorf("invalid equipment status: %q", p.Status)
	}
	return &Equipment{
		id:               id,
		name:             p.Name,
		serialNumber:     p.SerialNumber,
		category:         p.Category,
		department:       p.Department,
		assignedEmployee: p.AssignedEmployee,
		purchaseDate:     normalizeDate(p.PurchaseDate),
		warrantyExpiry:   normalizeDate(p.WarrantyExpiry),
		location:         p.Location,
		status:           p.Status,
		teamID:           normalizeRef(p.TeamID),
		notes:            p.Notes,
		createdAt:        createdAt,
	}, nil
}

func (e *Equipment) validate() error {
	switch {
	case e.name == "":
		return fmt.Errorf("name is required")
	case e.serialNumber == "":
		return fmt.Errorf("serial_number is required")
	case e.category == "":
		return fmt.Errorf("category is required")
	case e.department == "":
		return fmt.Errorf("department is required")
	case !e.status.IsValid():
		return fmt.Errorf("invalid equipment status: %q", e.status)
	}
	return nil
}

func (e *Equipment) ID() uint                 { return e.id }
func (e *Equipment) Name() string             { return e.name }
func (e *Equipment) SerialNumber() string     { return e.serialNumber }
func (e *Equipment) Category() string         { return e.category }
func (e *Equipment) Department() string       { return e.department }
func (e *Equipment) AssignedEmployee() string { return e.assignedEmployee }
func (e *Equipment) PurchaseDate() *time.Time { return e.purchaseDate }
func (e *Equipment) WarrantyExpiry() *time.Time {
	return e.warrantyExpiry
}
func (e *Equipment) Location() string     { return e.location }
func (e *Equipment) Status() vo.Status    { return e.status }
func (e *Equipment) TeamID() *uint        { return e.teamID }
func (e *Equipment) Notes() string        { return e.notes }
func (e *Equipment) CreatedAt() time.Time { return e.createdAt }

func (e *Equipment) SetID(id uint) error {
	if e.id != 0 {
		return fmt.Errorf("equipment ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("equipment ID cannot be zero")
	}
	e.id = id
	return nil
}

// MarkScrapped retires the asset. It reports whether the status changed.
func (e *Equipment) MarkScrapped() bool {
	if e.status.IsScrapped() {
		return false
	}
	e.status = vo.StatusScrapped
	return true
}

// Changes lists the fields an update touches; nil leaves a field alone.
// A zero TeamID and a zero date clear the reference.
type Changes struct {
	Name             *string
	SerialNumber     *string
	Category         *string
	Department       *string
	AssignedEmployee *string
	PurchaseDate     *time.Time
	WarrantyExpiry   *time.Time
	Location         *string
	Status           *vo.Status
	TeamID           *uint
	Notes            *string
}

// IsEmpty reports whether the update touches nothing.
func (c Changes) IsEmpty() bool {
	return c == Changes{}
}

// Apply mutates a copy first so a failed validation leaves e untouched.
func (e *Equipment) Apply(c Changes) error {
	next := *e
	setTrimmed(&next.name, c.Name)
	setTrimmed(&next.serialNumber, c.SerialNumber)
	setTrimmed(&next.category, c.Category)
	setTrimmed(&next.department, c.Department)
	setTrimmed(&next.assignedEmployee, c.AssignedEmployee)
	setTrimmed(&next.location, c.Location)
	if c.Notes != nil {
		next.notes = *c.Notes
	}
	if c.PurchaseDate != nil {
		next.purchaseDate = normalizeDate(c.PurchaseDate)
	}
	if c.WarrantyExpiry != nil {
		next.warrantyExpiry = normalizeDate(c.WarrantyExpiry)
	}
	if c.Status != nil {
		next.status = *c.Status
	}
	if c.TeamID != nil {
		next.teamID = normalizeRef(c.TeamID)
	}
	if err := next.validate(); err != nil {
		return err
	}
	*e = next
	return nil
}

func setTrimmed(dst *string, v *string) {
	if v != nil {
		*dst = strings.TrimSpace(*v)
	}
}

func normalizeDate(t *time.Time) *time.Time {
	if t == nil || t.IsZero() {
		return nil
	}
	d := biztime.NormalizeDate(*t)
	return &d
}

func normalizeRef(id *uint) *uint {
	if id == nil || *id == 0 {
		return nil
	}
	v := *id
	return &v
}

// Listing is an asset joined with its team name and open request count.
type Listing struct {
	Equipment        *Equipment
	TeamName         string
	OpenRequestCount int64
}

// CategoryCount is one row of the equipment-by-category aggregate.
type CategoryCount struct {
	Category string
	Count    int64
}

// Package activity is the append-only audit trail of store mutations.
package activity

import (
	"fmt"
	"strings"
	"time"
)

// Action names recorded by the store.
const (
	ActionEquipmentCreated  = "Equipment Created"
	ActionEquipmentUpdated  = "Equipment Updated"
	ActionRequestCreated    = "Request Created"
	ActionEquipmentScrapped = "Equipment Scrapped"
	ActionStageChanged      = "Stage Changed"
)

// Entry is one audit record. The referenced ids are informational and are
// never checked against the equipment or request tables.
type Entry struct {
	id          uint
	equipmentID *uint
	requestID   *uint
	action      string
	details     string
	createdAt   time.Time
}

func NewEntry(equipmentID, requestID *uint, action, details string) (*Entry, error) {
	action = strings.TrimSpace(action)
	if action == "" {
		return nil, fmt.Errorf("action is required")
	}
	return &Entry{
		equipmentID: copyRef(equipmentID),
		requestID:   copyRef(requestID),
		action:      action,
		details:     details,
		createdAt:   time.Now().UTC(),
	}, nil
}

func ReconstructEntry(id uint, equipmentID, requestID *uint, action, details string, createdAt time.Time) (*Entry, error) {
	if id == 0 {
		return nil, fmt.Errorf("activity ID cannot be zero")
	}
	return &Entry{
		id:          id,
		equipmentID: equipmentID,
		requestID:   requestID,
		action:      action,
		details:     details,
		createdAt:   createdAt,
	}, nil
}

func (e *Entry) ID() uint             { return e.id }
func (e *Entry) EquipmentID() *uint   { return e.equipmentID }
func (e *Entry) RequestID() *uint     { return e.requestID }
func (e *Entry) Action() string       { return e.action }
func (e *Entry) Details() string      { return e.details }
func (e *Entry) CreatedAt() time.Time { return e.createdAt }

func (e *Entry) SetID(id uint) error {
	if e.id != 0 {
		return fmt.Errorf("activity ID is already set")
	}
	e.id = id
	return nil
}

func copyRef(id *uint) *uint {
	if id == nil {
		return nil
	}
	v := *id
	return &v
}

func ref(id uint) *uint { return &id }

// EquipmentCreated records a new asset.
func EquipmentCreated(equipmentID uint, name string) *Entry {
	return mustEntry(ref(equipmentID), nil, ActionEquipmentCreated,
		fmt.Sprintf("Equipment '%s' added to system", name))
}

// EquipmentUpdated records an edit of an asset's fields.
func EquipmentUpdated(equipmentID uint) *Entry {
	return mustEntry(ref(equipmentID), nil, ActionEquipmentUpdated, "Equipment information modified")
}

// RequestCreated records a new request against an asset.
func RequestCreated(requestID, equipmentID uint, subject, equipmentName string) *Entry {
	return mustEntry(ref(equipmentID), ref(requestID), ActionRequestCreated,
		fmt.Sprintf("Request '%s' created for %s", subject, equipmentName))
}

// EquipmentScrapped records the retirement of an asset by a request.
func EquipmentScrapped(equipmentID, requestID uint, equipmentName string) *Entry {
	return mustEntry(ref(equipmentID), ref(requestID), ActionEquipmentScrapped,
		fmt.Sprintf("Equipment '%s' marked as scrapped due to request #%d", equipmentName, requestID))
}

// StageChanged records every stage write, including no-op ones.
func StageChanged(requestID, equipmentID uint, stage string) *Entry {
	return mustEntry(ref(equipmentID), ref(requestID), ActionStageChanged,
		fmt.Sprintf("Stage updated to %s", stage))
}

func mustEntry(equipmentID, requestID *uint, action, details string) *Entry {
	e, err := NewEntry(equipmentID, requestID, action, details)
	if err != nil {
		panic(err)
	}
	return e
}

// Listing is an entry joined with the names of what it references. Names are
// empty when the referenced row no longer exists.
type Listing struct {
	Entry          *Entry
	EquipmentName  string
	RequestSubject string
}

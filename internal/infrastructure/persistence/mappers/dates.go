package mappers

import (
	"time"

	"gorm.io/datatypes"

	"gearguard/internal/shared/biztime"
)

// ToDate stores a calendar date as UTC midnight.
func ToDate(t time.Time) datatypes.Date {
	return datatypes.Date(biztime.NormalizeDate(t))
}

func ToDatePtr(t *time.Time) *datatypes.Date {
	if t == nil || t.IsZero() {
		return nil
	}
	d := ToDate(*t)
	return &d
}

// FromDate reads the calendar day back regardless of the zone the driver
// attached to it.
func FromDate(d datatypes.Date) time.Time {
	return biztime.NormalizeDate(time.Time(d))
}

func FromDatePtr(d *datatypes.Date) *time.Time {
	if d == nil || time.Time(*d).IsZero() {
		return nil
	}
	t := FromDate(*d)
	return &t
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}

// Package biztime separates storage time from business calendar days.
// Timestamps are stored in UTC. Calendar dates (scheduled, purchase, warranty)
// are represented as UTC midnight of the date they name. "Today" is the
// current date in the configured business timezone, expressed the same way.
package biztime

import (
	"fmt"
	"sync"
	"time"
)

const (
	// DefaultTimezone is used when no business timezone is configured.
	DefaultTimezone = "UTC"

	DateLayout = "2006-01-02"
)

var (
	mu          sync.RWMutex
	bizLocation = time.UTC
	nowFunc     = time.Now
)

// Init sets the business timezone. An empty name selects UTC.
func Init(tz string) error {
	if tz == "" {
		tz = DefaultTimezone
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return fmt.Errorf("load business timezone %q: %w", tz, err)
	}
	mu.Lock()
	bizLocation = loc
	mu.Unlock()
	return nil
}

// Location returns the business timezone.
func Location() *time.Location {
	mu.RLock()
	defer mu.RUnlock()
	return bizLocation
}

// NowUTC returns current time in UTC.
func NowUTC() time.Time {
	return now().UTC()
}

// Today returns the current business date as UTC midnight.
func Today() time.Time {
	return DateOf(now())
}

// DateOf returns the business date containing t, as UTC midnight.
func DateOf(t time.Time) time.Time {
	b := t.In(Location())
	return time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
}

// NormalizeDate strips clock and zone from a date value, keeping the
// year/month/day it was constructed with.
func NormalizeDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ParseDate parses YYYY-MM-DD into UTC midnight.
func ParseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date format %q: %w", s, err)
	}
	return t, nil
}

// FormatDate renders a date value as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return NormalizeDate(t).Format(DateLayout)
}

// MonthBounds returns the first and last date of the business month containing t.
func MonthBounds(t time.Time) (time.Time, time.Time) {
	d := DateOf(t)
	first := time.Date(d.Year(), d.Month(), 1, 0, 0, 0, 0, time.UTC)
	return first, first.AddDate(0, 1, -1)
}

func now() time.Time {
	mu.RLock()
	defer mu.RUnlock()
	return nowFunc()
}

// SetNowFunc replaces the clock and returns a restore function. Tests only.
func SetNowFunc(fn func() time.Time) (restore func()) {
	mu.Lock()
	prev := nowFunc
	nowFunc = fn
	mu.Unlock()
	return func() {
		mu.Lock()
		nowFunc = prev
		mu.Unlock()
	}
}

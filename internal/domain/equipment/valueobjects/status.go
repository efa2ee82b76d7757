package valueobjects

import "fmt"

type Status string

const (
	StatusUsable           Status = "Usable"
	StatusUnderMaintenance Status = "Under Maintenance"
	StatusReserved         Status = "Reserved"
	StatusScrapped         Status = "Scrapped"
)

var validStatuses = map[Status]bool{
	StatusUsable:           true,
	StatusUnderMaintenance: true,
	StatusReserved:         true,
	StatusScrapped:         true,
}

func NewStatus(s string) (Status, error) {
	st := Status(s)
	if !st.IsValid() {
		return "", fmt.Errorf("invalid equipment status: %q", s)
	}
	return st, nil
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	return validStatuses[s]
}

func (s Status) IsScrapped() bool {
	return s == StatusScrapped
}

// AllStatuses returns every status in display order.
func AllStatuses() []Status {
	return []Status{StatusUsable, StatusUnderMaintenance, StatusReserved, StatusScrapped}
}

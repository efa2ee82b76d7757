package utils

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// NormalizeLabel turns loose enum input ("in progress", "UNDER_MAINTENANCE")
// into the canonical title-cased label ("In Progress", "Under Maintenance").
func NormalizeLabel(s string) string {
	s = strings.NewReplacer("_", " ", "-", " ").Replace(s)
	s = strings.Join(strings.Fields(s), " ")
	// Casers are stateful, so one is built per call.
	return cases.Title(language.English).String(s)
}

// TrimPtr returns a pointer to the trimmed value, or nil.
func TrimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	return &v
}

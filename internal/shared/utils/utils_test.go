package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gearguard/internal/shared/errors"
)

type sampleRequest struct {
	Name  string  `json:"name" validate:"required,max=10"`
	Email string  `json:"email" validate:"omitempty,email"`
	Date  string  `json:"scheduled_date" validate:"required,date"`
	Hours float64 `json:"duration_hours" validate:"gte=0"`
}

func TestValidateStruct(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		err := ValidateStruct(sampleRequest{Name: "Pump", Date: "2024-01-01", Hours: 1})
		assert.NoError(t, err)
	})

	t.Run("reports json field names", func(t *testing.T) {
		err := ValidateStruct(sampleRequest{Email: "nope", Date: "01/01/2024", Hours: -1})
		require.Error(t, err)
		require.True(t, errors.IsValidationError(err))

		details := errors.GetAppError(err).Details
		assert.Contains(t, details, "name is required")
		assert.Contains(t, details, "email must be a valid email address")
		assert.Contains(t, details, "scheduled_date must be a date in YYYY-MM-DD format")
		assert.Contains(t, details, "duration_hours must be greater than or equal to 0")
	})
}

func TestParseID(t *testing.T) {
	id, err := ParseID("42", "id")
	require.NoError(t, err)
	assert.Equal(t, uint(42), id)

	for _, raw := range []string{"", "0", "-1", "abc"} {
		_, err := ParseID(raw, "id")
		assert.Error(t, err, raw)
	}

	opt, err := ParseOptionalID("", "team_id")
	require.NoError(t, err)
	assert.Nil(t, opt)
}

func TestNormalizeLabel(t *testing.T) {
	assert.Equal(t, "In Progress", NormalizeLabel("in progress"))
	assert.Equal(t, "Under Maintenance", NormalizeLabel("UNDER_MAINTENANCE"))
	assert.Equal(t, "Scrap", NormalizeLabel("  scrap "))
}

func TestParseDatePtr(t *testing.T) {
	got, err := ParseDatePtr(nil, "purchase_date")
	require.NoError(t, err)
	assert.Nil(t, got)

	empty := " "
	got, err = ParseDatePtr(&empty, "purchase_date")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, got.IsZero())

	valid := "2024-03-05"
	got, err = ParseDatePtr(&valid, "purchase_date")
	require.NoError(t, err)
	assert.Equal(t, "2024-03-05", got.Format("2006-01-02"))

	bad := "05/03/2024"
	_, err = ParseDatePtr(&bad, "purchase_date")
	assert.True(t, errors.IsValidationError(err))
}

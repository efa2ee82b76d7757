package equipment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "gearguard/internal/domain/equipment/valueobjects"
)

func validParams() Params {
	return Params{
		Name:         "Pump A",
		SerialNumber: "SN-1",
		Category:     "Pump",
		Department:   "Plant",
	}
}

func TestNewEquipment_Defaults(t *testing.T) {
	e, err := NewEquipment(validParams())
	require.NoError(t, err)
	assert.Equal(t, vo.StatusUsable, e.Status())
	assert.Nil(t, e.TeamID())
	assert.Nil(t, e.PurchaseDate())
}

func TestNewEquipment_RequiredFields(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Params)
		want   string
	}{
		{"name", func(p *Params) { p.Name = " " }, "name is required"},
		{"serial", func(p *Params) { p.SerialNumber = "" }, "serial_number is required"},
		{"category", func(p *Params) { p.Category = "" }, "category is required"},
		{"department", func(p *Params) { p.Department = "" }, "department is required"},
		{"status", func(p *Params) { p.Status = "Broken" }, "invalid equipment status"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validParams()
			tt.mutate(&p)
			_, err := NewEquipment(p)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestNewEquipment_ZeroTeamMeansNone(t *testing.T) {
	p := validParams()
	zero := uint(0)
	p.TeamID = &zero
	e, err := NewEquipment(p)
	require.NoError(t, err)
	assert.Nil(t, e.TeamID())
}

func TestEquipment_Apply(t *testing.T) {
	p := validParams()
	team := uint(4)
	p.TeamID = &team
	purchased := time.Date(2023, 5, 1, 15, 0, 0, 0, time.FixedZone("X", 3600))
	p.PurchaseDate = &purchased
	e, err := NewEquipment(p)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2023, 5, 1, 0, 0, 0, 0, time.UTC), *e.PurchaseDate())

	t.Run("partial update leaves other fields", func(t *testing.T) {
		loc := "Bay 3"
		require.NoError(t, e.Apply(Changes{Location: &loc}))
		assert.Equal(t, "Bay 3", e.Location())
		assert.Equal(t, uint(4), *e.TeamID())
	})

	t.Run("zero values clear references", func(t *testing.T) {
		zero := uint(0)
		var noDate time.Time
		require.NoError(t, e.Apply(Changes{TeamID: &zero, PurchaseDate: &noDate}))
		assert.Nil(t, e.TeamID())
		assert.Nil(t, e.PurchaseDate())
	})

	t.Run("invalid update is atomic", func(t *testing.T) {
		blank := ""
		loc := "Bay 9"
		err := e.Apply(Changes{Name: &blank, Location: &loc})
		require.Error(t, err)
		assert.Equal(t, "Pump A", e.Name())
		assert.Equal(t, "Bay 3", e.Location())
	})
}

func TestEquipment_MarkScrapped(t *testing.T) {
	e, _ := NewEquipment(validParams())
	assert.True(t, e.MarkScrapped())
	assert.Equal(t, vo.StatusScrapped, e.Status())
	assert.False(t, e.MarkScrapped())
}

func TestChanges_IsEmpty(t *testing.T) {
	assert.True(t, Changes{}.IsEmpty())
	n := "x"
	assert.False(t, Changes{Notes: &n}.IsEmpty())
}

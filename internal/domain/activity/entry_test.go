package activity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEntry(t *testing.T) {
	_, err := NewEntry(nil, nil, "  ", "x")
	assert.Error(t, err)

	id := uint(99)
	e, err := NewEntry(&id, nil, "Note", "free text")
	require.NoError(t, err)
	id = 1
	assert.Equal(t, uint(99), *e.EquipmentID(), "entry keeps its own copy")
	assert.Nil(t, e.RequestID())
}

func TestActionConstructors(t *testing.T) {
	e := EquipmentScrapped(3, 12, "Pump A")
	assert.Equal(t, ActionEquipmentScrapped, e.Action())
	assert.Equal(t, "Equipment 'Pump A' marked as scrapped due to request #12", e.Details())
	assert.Equal(t, uint(3), *e.EquipmentID())
	assert.Equal(t, uint(12), *e.RequestID())

	rc := RequestCreated(12, 3, "Leak fix", "Pump A")
	assert.Equal(t, "Request 'Leak fix' created for Pump A", rc.Details())

	sc := StageChanged(12, 3, "In Progress")
	assert.Equal(t, "Stage updated to In Progress", sc.Details())

	ec := EquipmentCreated(3, "Pump A")
	assert.Nil(t, ec.RequestID())
	assert.Equal(t, "Equipment 'Pump A' added to system", ec.Details())

	assert.Equal(t, "Equipment information modified", EquipmentUpdated(3).Details())
}

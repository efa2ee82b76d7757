package export

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"gearguard/internal/domain/equipment"
	vo "gearguard/internal/domain/equipment/valueobjects"
)

func TestWriteEquipment(t *testing.T) {
	purchased := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	e, err := equipment.ReconstructEquipment(7, equipment.Params{
		Name:         "CNC Machine A1",
		SerialNumber: "CNC-2024-001",
		Category:     "Machinery",
		Department:   "Production",
		PurchaseDate: &purchased,
		Status:       vo.StatusUsable,
	}, time.Date(2024, 2, 1, 10, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	var buf bytes.Buffer
	err = WriteEquipment(&buf, []*equipment.Listing{{Equipment: e, TeamName: "Mechanics", OpenRequestCount: 2}})
	require.NoError(t, err)

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(EquipmentSheet)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Serial Number", rows[0][2])
	assert.Equal(t, "7", rows[1][0])
	assert.Equal(t, "CNC-2024-001", rows[1][2])
	assert.Equal(t, "2024-01-15", rows[1][6])
	assert.Equal(t, "", rows[1][7])
	assert.Equal(t, "Usable", rows[1][9])
	assert.Equal(t, "Mechanics", rows[1][10])
	assert.Equal(t, "2", rows[1][11])
}

func TestWriteEquipment_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteEquipment(&buf, nil))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(EquipmentSheet)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

package usecases

import (
	"bytes"
	"context"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gearguard/internal/domain/activity"
	"gearguard/internal/domain/equipment"
	vo "gearguard/internal/domain/equipment/valueobjects"
	"gearguard/internal/shared/errors"
	"gearguard/internal/shared/logger"
)

func newTestEquipment(t *testing.T, id uint, teamID *uint) *equipment.Equipment {
	e, err := equipment.ReconstructEquipment(id, equipment.Params{
		Name:         "Pump A",
		SerialNumber: "PMP-1",
		Category:     "Pumps",
		Department:   "Production",
		Status:       vo.StatusUsable,
		TeamID:       teamID,
	}, time.Now().UTC())
	require.NoError(t, err)
	return e
}

// echoRepo stores the last written asset and serves it back as a listing.
func echoRepo() *mockEquipmentRepository {
	var stored *equipment.Equipment
	return &mockEquipmentRepository{
		CreateFunc: func(ctx context.Context, e *equipment.Equipment) error {
			stored = e
			return e.SetID(1)
		},
		UpdateFunc: func(ctx context.Context, e *equipment.Equipment) error {
			stored = e
			return nil
		},
		GetListingFunc: func(ctx context.Context, id uint) (*equipment.Listing, error) {
			return &equipment.Listing{Equipment: stored, TeamName: "Mechanics"}, nil
		},
	}
}

func TestCreateEquipmentUseCase_Execute(t *testing.T) {
	t.Run("creates and logs", func(t *testing.T) {
		teamID := uint(1)
		log := &mockActivityRepository{}
		uc := NewCreateEquipmentUseCase(echoRepo(), &mockTeamChecker{known: map[uint]bool{1: true}}, log, mockTxRunner{}, logger.NewNopLogger())

		result, err := uc.Execute(context.Background(), CreateEquipmentCommand{Params: equipment.Params{
			Name: "Pump A", SerialNumber: "PMP-1", Category: "Pumps", Department: "Production", TeamID: &teamID,
		}})
		require.NoError(t, err)
		assert.Equal(t, "Usable", result.Status)
		require.NotNil(t, result.TeamName)
		assert.Equal(t, "Mechanics", *result.TeamName)

		require.Len(t, log.entries, 1)
		assert.Equal(t, activity.ActionEquipmentCreated, log.entries[0].Action())
		assert.Equal(t, "Equipment 'Pump A' added to system", log.entries[0].Details())
	})

	t.Run("missing required field", func(t *testing.T) {
		uc := NewCreateEquipmentUseCase(echoRepo(), &mockTeamChecker{}, &mockActivityRepository{}, mockTxRunner{}, logger.NewNopLogger())
		_, err := uc.Execute(context.Background(), CreateEquipmentCommand{Params: equipment.Params{Name: "Pump A"}})
		assert.True(t, errors.IsValidationError(err))
	})

	t.Run("unknown team", func(t *testing.T) {
		teamID := uint(9)
		log := &mockActivityRepository{}
		uc := NewCreateEquipmentUseCase(echoRepo(), &mockTeamChecker{}, log, mockTxRunner{}, logger.NewNopLogger())
		_, err := uc.Execute(context.Background(), CreateEquipmentCommand{Params: equipment.Params{
			Name: "Pump A", SerialNumber: "PMP-1", Category: "Pumps", Department: "Production", TeamID: &teamID,
		}})
		assert.True(t, errors.IsNotFoundError(err))
		assert.Empty(t, log.entries)
	})
}

func TestUpdateEquipmentUseCase_Execute(t *testing.T) {
	repo := echoRepo()
	existing := newTestEquipment(t, 1, nil)
	repo.GetByIDFunc = func(ctx context.Context, id uint) (*equipment.Equipment, error) {
		if id == 1 {
			return existing, nil
		}
		return nil, nil
	}
	log := &mockActivityRepository{}
	uc := NewUpdateEquipmentUseCase(repo, &mockTeamChecker{}, log, mockTxRunner{}, logger.NewNopLogger())

	t.Run("partial update logs once", func(t *testing.T) {
		location := "Hall 2"
		result, err := uc.Execute(context.Background(), UpdateEquipmentCommand{
			EquipmentID: 1,
			Changes:     equipment.Changes{Location: &location},
		})
		require.NoError(t, err)
		assert.Equal(t, "Hall 2", result.Location)
		assert.Equal(t, "Pump A", result.Name)
		require.Len(t, log.entries, 1)
		assert.Equal(t, activity.ActionEquipmentUpdated, log.entries[0].Action())
	})

	t.Run("clearing a required field is rejected", func(t *testing.T) {
		empty := ""
		_, err := uc.Execute(context.Background(), UpdateEquipmentCommand{
			EquipmentID: 1,
			Changes:     equipment.Changes{Name: &empty},
		})
		assert.True(t, errors.IsValidationError(err))
		assert.Equal(t, "Pump A", existing.Name())
	})

	t.Run("missing equipment", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), UpdateEquipmentCommand{EquipmentID: 2})
		assert.True(t, errors.IsNotFoundError(err))
	})
}

func TestDeleteEquipmentUseCase_CascadesRequests(t *testing.T) {
	var deleted uint
	repo := &mockEquipmentRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*equipment.Equipment, error) {
			return newTestEquipment(t, id, nil), nil
		},
		DeleteFunc: func(ctx context.Context, id uint) error {
			deleted = id
			return nil
		},
	}
	requests := &mockRequestRemover{}
	uc := NewDeleteEquipmentUseCase(repo, requests, mockTxRunner{}, logger.NewNopLogger())

	require.NoError(t, uc.Execute(context.Background(), 4))
	assert.Equal(t, []uint{4}, requests.removed)
	assert.Equal(t, uint(4), deleted)

	uc = NewDeleteEquipmentUseCase(&mockEquipmentRepository{}, requests, mockTxRunner{}, logger.NewNopLogger())
	assert.True(t, errors.IsNotFoundError(uc.Execute(context.Background(), 5)))
}

func TestExportEquipmentUseCase_Execute(t *testing.T) {
	repo := &mockEquipmentRepository{
		ListFunc: func(ctx context.Context, filter equipment.Filter) ([]*equipment.Listing, error) {
			return []*equipment.Listing{{Equipment: newTestEquipment(t, 1, nil)}}, nil
		},
	}
	var written int
	writer := func(w io.Writer, listings []*equipment.Listing) error {
		written = len(listings)
		_, err := w.Write([]byte("xlsx"))
		return err
	}
	uc := NewExportEquipmentUseCase(repo, writer, logger.NewNopLogger())

	var buf bytes.Buffer
	n, err := uc.Execute(context.Background(), equipment.Filter{}, &buf)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, 1, written)
	assert.Equal(t, "xlsx", buf.String())
}

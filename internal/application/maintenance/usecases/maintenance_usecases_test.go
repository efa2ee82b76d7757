package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gearguard/internal/domain/activity"
	"gearguard/internal/domain/equipment"
	eqvo "gearguard/internal/domain/equipment/valueobjects"
	"gearguard/internal/domain/maintenance"
	vo "gearguard/internal/domain/maintenance/valueobjects"
	"gearguard/internal/shared/biztime"
	"gearguard/internal/shared/errors"
	"gearguard/internal/shared/logger"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func freezeClock(t *testing.T, at time.Time) {
	restore := biztime.SetNowFunc(func() time.Time { return at })
	t.Cleanup(restore)
}

func newPump(t *testing.T, teamID *uint) *equipment.Equipment {
	e, err := equipment.ReconstructEquipment(3, equipment.Params{
		Name:         "Pump A",
		SerialNumber: "PMP-1",
		Category:     "Pumps",
		Department:   "Production",
		Status:       eqvo.StatusUsable,
		TeamID:       teamID,
	}, time.Now().UTC())
	require.NoError(t, err)
	return e
}

type harness struct {
	requests  *mockRequestRepository
	equipment *mockEquipmentStore
	log       *mockActivityRepository
}

func newHarness(t *testing.T) *harness {
	teamID := uint(1)
	eqStore := &mockEquipmentStore{items: map[uint]*equipment.Equipment{3: newPump(t, &teamID)}}
	return &harness{
		requests:  memoryRequests(eqStore),
		equipment: eqStore,
		log:       &mockActivityRepository{},
	}
}

func (h *harness) create(t *testing.T, p maintenance.Params) *maintenance.Request {
	uc := NewCreateRequestUseCase(h.requests, h.equipment, h.log, mockTxRunner{}, mockRenderer{}, logger.NewNopLogger())
	result, err := uc.Execute(context.Background(), CreateRequestCommand{Params: p})
	require.NoError(t, err)
	req, err := h.requests.GetByID(context.Background(), result.ID)
	require.NoError(t, err)
	return req
}

func (h *harness) changeStage(t *testing.T, id uint, stage vo.Stage) {
	uc := NewChangeStageUseCase(h.requests, h.equipment, h.log, mockTxRunner{}, mockRenderer{}, logger.NewNopLogger())
	_, err := uc.Execute(context.Background(), ChangeStageCommand{RequestID: id, Stage: stage})
	require.NoError(t, err)
}

func leakFix() maintenance.Params {
	return maintenance.Params{
		Subject:       "Leak fix",
		EquipmentID:   3,
		RequestType:   vo.RequestTypeCorrective,
		ScheduledDate: date(2024, 1, 1),
		Description:   "Seal **worn**",
	}
}

func TestCreateRequestUseCase_Execute(t *testing.T) {
	freezeClock(t, date(2024, 6, 1))

	t.Run("copies team and department from equipment", func(t *testing.T) {
		h := newHarness(t)
		otherTeam := uint(9)
		p := leakFix()
		p.TeamID = &otherTeam
		p.Department = "Elsewhere"

		uc := NewCreateRequestUseCase(h.requests, h.equipment, h.log, mockTxRunner{}, mockRenderer{}, logger.NewNopLogger())
		result, err := uc.Execute(context.Background(), CreateRequestCommand{Params: p})
		require.NoError(t, err)

		require.NotNil(t, result.TeamID)
		assert.Equal(t, uint(1), *result.TeamID)
		assert.Equal(t, "Production", result.Department)
		require.NotNil(t, result.TeamName)
		assert.Equal(t, "Mechanics", *result.TeamName)
		assert.Equal(t, "Pump A", result.EquipmentName)
		assert.Equal(t, "New", result.Stage)
		assert.Equal(t, "Medium", result.Priority)
		assert.Equal(t, 1.0, result.DurationHours)
		assert.Equal(t, "2024-01-01", result.ScheduledDate)
		assert.True(t, result.IsOverdue)
		assert.Equal(t, "<p>Seal **worn**</p>", result.DescriptionHTML)

		require.Len(t, h.log.entries, 1)
		assert.Equal(t, activity.ActionRequestCreated, h.log.entries[0].Action())
		assert.Equal(t, "Request 'Leak fix' created for Pump A", h.log.entries[0].Details())
	})

	t.Run("equipment without team leaves team empty", func(t *testing.T) {
		h := newHarness(t)
		h.equipment.items[3] = newPump(t, nil)

		req := h.create(t, leakFix())
		assert.Nil(t, req.TeamID())
	})

	t.Run("unknown equipment", func(t *testing.T) {
		h := newHarness(t)
		p := leakFix()
		p.EquipmentID = 42

		uc := NewCreateRequestUseCase(h.requests, h.equipment, h.log, mockTxRunner{}, mockRenderer{}, logger.NewNopLogger())
		_, err := uc.Execute(context.Background(), CreateRequestCommand{Params: p})
		assert.True(t, errors.IsNotFoundError(err))
		assert.Empty(t, h.log.entries)
	})

	t.Run("missing subject", func(t *testing.T) {
		h := newHarness(t)
		p := leakFix()
		p.Subject = " "

		uc := NewCreateRequestUseCase(h.requests, h.equipment, h.log, mockTxRunner{}, mockRenderer{}, logger.NewNopLogger())
		_, err := uc.Execute(context.Background(), CreateRequestCommand{Params: p})
		assert.True(t, errors.IsValidationError(err))
	})

	t.Run("created in repaired is stamped", func(t *testing.T) {
		h := newHarness(t)
		p := leakFix()
		p.Stage = vo.StageRepaired

		req := h.create(t, p)
		assert.NotNil(t, req.CompletedAt())
		assert.Equal(t, eqvo.StatusUsable, h.equipment.items[3].Status())
	})
}

func TestChangeStageUseCase_Execute(t *testing.T) {
	freezeClock(t, date(2024, 6, 1))

	t.Run("scrap retires equipment once", func(t *testing.T) {
		h := newHarness(t)
		req := h.create(t, leakFix())
		h.log.entries = nil

		h.changeStage(t, req.ID(), vo.StageScrap)

		assert.Equal(t, eqvo.StatusScrapped, h.equipment.items[3].Status())
		assert.Equal(t, []string{activity.ActionEquipmentScrapped, activity.ActionStageChanged}, h.log.actions())
		assert.Equal(t, "Equipment 'Pump A' marked as scrapped due to request #1", h.log.entries[0].Details())
		assert.Equal(t, "Stage updated to Scrap", h.log.entries[1].Details())

		h.changeStage(t, req.ID(), vo.StageScrap)
		assert.Equal(t, []string{activity.ActionEquipmentScrapped, activity.ActionStageChanged, activity.ActionStageChanged}, h.log.actions())
		assert.Len(t, h.equipment.updated, 1)
	})

	t.Run("scrap with missing equipment only logs the stage", func(t *testing.T) {
		h := newHarness(t)
		req := h.create(t, leakFix())
		delete(h.equipment.items, 3)
		h.log.entries = nil

		h.changeStage(t, req.ID(), vo.StageScrap)
		assert.Equal(t, []string{activity.ActionStageChanged}, h.log.actions())
	})

	t.Run("repaired keeps first completion time", func(t *testing.T) {
		h := newHarness(t)
		req := h.create(t, leakFix())
		assert.Nil(t, req.CompletedAt())

		h.changeStage(t, req.ID(), vo.StageRepaired)
		first := *req.CompletedAt()

		freezeClock(t, date(2024, 6, 9))
		h.changeStage(t, req.ID(), vo.StageRepaired)
		assert.Equal(t, first, *req.CompletedAt())
	})

	t.Run("same stage is still logged", func(t *testing.T) {
		h := newHarness(t)
		req := h.create(t, leakFix())
		h.log.entries = nil

		h.changeStage(t, req.ID(), vo.StageNew)
		assert.Equal(t, []string{activity.ActionStageChanged}, h.log.actions())
	})

	t.Run("closed request is no longer overdue", func(t *testing.T) {
		h := newHarness(t)
		req := h.create(t, leakFix())

		uc := NewChangeStageUseCase(h.requests, h.equipment, h.log, mockTxRunner{}, mockRenderer{}, logger.NewNopLogger())
		result, err := uc.Execute(context.Background(), ChangeStageCommand{RequestID: req.ID(), Stage: vo.StageRepaired})
		require.NoError(t, err)
		assert.False(t, result.IsOverdue)
		assert.NotNil(t, result.CompletedAt)
	})

	t.Run("invalid stage", func(t *testing.T) {
		h := newHarness(t)
		req := h.create(t, leakFix())

		uc := NewChangeStageUseCase(h.requests, h.equipment, h.log, mockTxRunner{}, mockRenderer{}, logger.NewNopLogger())
		_, err := uc.Execute(context.Background(), ChangeStageCommand{RequestID: req.ID(), Stage: vo.Stage("Done")})
		assert.True(t, errors.IsValidationError(err))
	})

	t.Run("unknown request", func(t *testing.T) {
		h := newHarness(t)
		uc := NewChangeStageUseCase(h.requests, h.equipment, h.log, mockTxRunner{}, mockRenderer{}, logger.NewNopLogger())
		_, err := uc.Execute(context.Background(), ChangeStageCommand{RequestID: 77, Stage: vo.StageNew})
		assert.True(t, errors.IsNotFoundError(err))
	})
}

func TestUpdateRequestUseCase_Execute(t *testing.T) {
	freezeClock(t, date(2024, 6, 1))

	t.Run("stage goes through the transition path", func(t *testing.T) {
		h := newHarness(t)
		req := h.create(t, leakFix())
		h.log.entries = nil

		subject := "Replace pump seal"
		stage := vo.StageScrap
		uc := NewUpdateRequestUseCase(h.requests, h.equipment, h.log, mockTxRunner{}, mockRenderer{}, logger.NewNopLogger())
		result, err := uc.Execute(context.Background(), UpdateRequestCommand{
			RequestID: req.ID(),
			Changes:   maintenance.Changes{Subject: &subject},
			Stage:     &stage,
		})
		require.NoError(t, err)
		assert.Equal(t, "Replace pump seal", result.Subject)
		assert.Equal(t, "Scrap", result.Stage)
		assert.Equal(t, eqvo.StatusScrapped, h.equipment.items[3].Status())
		assert.Equal(t, []string{activity.ActionEquipmentScrapped, activity.ActionStageChanged}, h.log.actions())
	})

	t.Run("field edit without stage logs nothing", func(t *testing.T) {
		h := newHarness(t)
		req := h.create(t, leakFix())
		h.log.entries = nil

		hours := 2.5
		uc := NewUpdateRequestUseCase(h.requests, h.equipment, h.log, mockTxRunner{}, mockRenderer{}, logger.NewNopLogger())
		result, err := uc.Execute(context.Background(), UpdateRequestCommand{
			RequestID: req.ID(),
			Changes:   maintenance.Changes{DurationHours: &hours},
		})
		require.NoError(t, err)
		assert.Equal(t, 2.5, result.DurationHours)
		assert.Empty(t, h.log.entries)
	})

	t.Run("moving to unknown equipment", func(t *testing.T) {
		h := newHarness(t)
		req := h.create(t, leakFix())

		other := uint(55)
		uc := NewUpdateRequestUseCase(h.requests, h.equipment, h.log, mockTxRunner{}, mockRenderer{}, logger.NewNopLogger())
		_, err := uc.Execute(context.Background(), UpdateRequestCommand{
			RequestID: req.ID(),
			Changes:   maintenance.Changes{EquipmentID: &other},
		})
		assert.True(t, errors.IsNotFoundError(err))
	})

	t.Run("moving to other equipment takes its team and department", func(t *testing.T) {
		h := newHarness(t)
		req := h.create(t, leakFix())

		itTeam := uint(2)
		laptop, err := equipment.ReconstructEquipment(8, equipment.Params{
			Name:         "Laptop 7",
			SerialNumber: "LT-7",
			Category:     "Computers",
			Department:   "IT",
			Status:       eqvo.StatusUsable,
			TeamID:       &itTeam,
		}, time.Now().UTC())
		require.NoError(t, err)
		h.equipment.items[8] = laptop

		target := uint(8)
		uc := NewUpdateRequestUseCase(h.requests, h.equipment, h.log, mockTxRunner{}, mockRenderer{}, logger.NewNopLogger())
		result, err := uc.Execute(context.Background(), UpdateRequestCommand{
			RequestID: req.ID(),
			Changes:   maintenance.Changes{EquipmentID: &target},
		})
		require.NoError(t, err)
		assert.Equal(t, uint(8), result.EquipmentID)
		require.NotNil(t, result.TeamID)
		assert.Equal(t, uint(2), *result.TeamID)
		assert.Equal(t, "IT", result.Department)
		assert.Equal(t, "Laptop 7", result.EquipmentName)
	})

	t.Run("invalid change leaves request untouched", func(t *testing.T) {
		h := newHarness(t)
		req := h.create(t, leakFix())

		hours := -1.0
		uc := NewUpdateRequestUseCase(h.requests, h.equipment, h.log, mockTxRunner{}, mockRenderer{}, logger.NewNopLogger())
		_, err := uc.Execute(context.Background(), UpdateRequestCommand{
			RequestID: req.ID(),
			Changes:   maintenance.Changes{DurationHours: &hours},
		})
		assert.True(t, errors.IsValidationError(err))
		assert.Equal(t, 1.0, req.DurationHours())
	})
}

func TestDeleteRequestUseCase_Execute(t *testing.T) {
	var deleted uint
	repo := &mockRequestRepository{
		DeleteFunc: func(ctx context.Context, id uint) error {
			if id != 4 {
				return errors.NewNotFoundError("maintenance request not found")
			}
			deleted = id
			return nil
		},
	}
	uc := NewDeleteRequestUseCase(repo, logger.NewNopLogger())

	require.NoError(t, uc.Execute(context.Background(), 4))
	assert.Equal(t, uint(4), deleted)
	assert.True(t, errors.IsNotFoundError(uc.Execute(context.Background(), 5)))
}

func TestListRequestsUseCase_Execute(t *testing.T) {
	freezeClock(t, date(2024, 6, 1))

	t.Run("unknown equipment filter", func(t *testing.T) {
		h := newHarness(t)
		missing := uint(99)
		uc := NewListRequestsUseCase(h.requests, h.equipment, mockRenderer{}, logger.NewNopLogger())
		_, err := uc.Execute(context.Background(), ListRequestsQuery{Filter: maintenance.Filter{EquipmentID: &missing}})
		assert.True(t, errors.IsNotFoundError(err))
	})

	t.Run("lists with overdue flag", func(t *testing.T) {
		h := newHarness(t)
		h.create(t, leakFix())
		future := leakFix()
		future.ScheduledDate = date(2024, 7, 1)
		h.create(t, future)

		uc := NewListRequestsUseCase(h.requests, h.equipment, mockRenderer{}, logger.NewNopLogger())
		result, err := uc.Execute(context.Background(), ListRequestsQuery{})
		require.NoError(t, err)
		require.Len(t, result, 2)
		assert.True(t, result[0].IsOverdue)
		assert.False(t, result[1].IsOverdue)
	})
}

func TestGetRequestUseCase_Execute(t *testing.T) {
	h := newHarness(t)
	uc := NewGetRequestUseCase(h.requests, mockRenderer{}, logger.NewNopLogger())

	_, err := uc.Execute(context.Background(), 1)
	assert.True(t, errors.IsNotFoundError(err))

	req := h.create(t, leakFix())
	result, err := uc.Execute(context.Background(), req.ID())
	require.NoError(t, err)
	assert.Equal(t, "PMP-1", result.EquipmentSerial)
}

func TestGetKanbanUseCase_Execute(t *testing.T) {
	h := newHarness(t)
	h.create(t, leakFix())
	second := h.create(t, leakFix())
	h.changeStage(t, second.ID(), vo.StageInProgress)

	var seen maintenance.Filter
	list := h.requests.ListFunc
	h.requests.ListFunc = func(ctx context.Context, filter maintenance.Filter) ([]*maintenance.Listing, error) {
		seen = filter
		return list(ctx, filter)
	}

	teamID := uint(1)
	uc := NewGetKanbanUseCase(h.requests, mockRenderer{}, logger.NewNopLogger())
	columns, err := uc.Execute(context.Background(), KanbanQuery{TeamID: &teamID})
	require.NoError(t, err)

	assert.True(t, seen.OrderBySchedule)
	assert.Equal(t, &teamID, seen.TeamID)

	require.Len(t, columns, 4)
	stages := make([]string, 0, len(columns))
	for _, c := range columns {
		stages = append(stages, c.Stage)
		assert.NotNil(t, c.Requests)
	}
	assert.Equal(t, []string{"New", "In Progress", "Repaired", "Scrap"}, stages)
	assert.Equal(t, 1, columns[0].Count)
	assert.Equal(t, 1, columns[1].Count)
	assert.Equal(t, 0, columns[2].Count)
	assert.Empty(t, columns[3].Requests)
}

func TestGetCalendarUseCase_Execute(t *testing.T) {
	freezeClock(t, time.Date(2024, 2, 14, 10, 0, 0, 0, time.UTC))

	t.Run("defaults to preventive in current month", func(t *testing.T) {
		var seen maintenance.Filter
		repo := &mockRequestRepository{
			ListFunc: func(ctx context.Context, filter maintenance.Filter) ([]*maintenance.Listing, error) {
				seen = filter
				return nil, nil
			},
		}
		uc := NewGetCalendarUseCase(repo, mockRenderer{}, logger.NewNopLogger())
		result, err := uc.Execute(context.Background(), CalendarQuery{})
		require.NoError(t, err)

		assert.Equal(t, "2024-02-01", result.From)
		assert.Equal(t, "2024-02-29", result.To)
		assert.NotNil(t, result.Days)
		assert.Empty(t, result.Days)
		require.NotNil(t, seen.RequestType)
		assert.Equal(t, vo.RequestTypePreventive, *seen.RequestType)
		assert.True(t, seen.OrderBySchedule)
	})

	t.Run("all types drops the type filter", func(t *testing.T) {
		var seen maintenance.Filter
		repo := &mockRequestRepository{
			ListFunc: func(ctx context.Context, filter maintenance.Filter) ([]*maintenance.Listing, error) {
				seen = filter
				return nil, nil
			},
		}
		uc := NewGetCalendarUseCase(repo, mockRenderer{}, logger.NewNopLogger())
		_, err := uc.Execute(context.Background(), CalendarQuery{AllTypes: true})
		require.NoError(t, err)
		assert.Nil(t, seen.RequestType)
	})

	t.Run("buckets by day", func(t *testing.T) {
		h := newHarness(t)
		for _, d := range []int{3, 3, 20} {
			p := leakFix()
			p.RequestType = vo.RequestTypePreventive
			p.ScheduledDate = date(2024, 2, d)
			h.create(t, p)
		}

		uc := NewGetCalendarUseCase(h.requests, mockRenderer{}, logger.NewNopLogger())
		result, err := uc.Execute(context.Background(), CalendarQuery{})
		require.NoError(t, err)
		require.Len(t, result.Days, 2)
		assert.Equal(t, "2024-02-03", result.Days[0].Date)
		assert.Len(t, result.Days[0].Requests, 2)
		assert.Equal(t, "2024-02-20", result.Days[1].Date)
	})

	t.Run("reversed window", func(t *testing.T) {
		from, to := date(2024, 3, 10), date(2024, 3, 1)
		uc := NewGetCalendarUseCase(&mockRequestRepository{}, mockRenderer{}, logger.NewNopLogger())
		_, err := uc.Execute(context.Background(), CalendarQuery{From: &from, To: &to})
		assert.True(t, errors.IsValidationError(err))
	})
}

package usecases

import (
	"context"
	"time"

	"gearguard/internal/domain/activity"
	"gearguard/internal/domain/equipment"
	"gearguard/internal/domain/maintenance"
	vo "gearguard/internal/domain/maintenance/valueobjects"
)

type mockTxRunner struct{}

func (mockTxRunner) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type mockRequestRepository struct {
	CreateFunc              func(ctx context.Context, r *maintenance.Request) error
	UpdateFunc              func(ctx context.Context, r *maintenance.Request) error
	GetByIDFunc             func(ctx context.Context, id uint) (*maintenance.Request, error)
	GetListingFunc          func(ctx context.Context, id uint) (*maintenance.Listing, error)
	ListFunc                func(ctx context.Context, filter maintenance.Filter) ([]*maintenance.Listing, error)
	DeleteFunc              func(ctx context.Context, id uint) error
	DeleteByEquipmentFunc   func(ctx context.Context, equipmentID uint) error
	ClearTeamFunc           func(ctx context.Context, teamID uint) error
	CountNotInStagesFunc    func(ctx context.Context, stages []vo.Stage) (int64, error)
	CountOverdueFunc        func(ctx context.Context, today time.Time) (int64, error)
	CountOpenByPriorityFunc func(ctx context.Context, priority vo.Priority) (int64, error)
	CountByTeamFunc         func(ctx context.Context) ([]maintenance.TeamCount, error)
}

func (m *mockRequestRepository) Create(ctx context.Context, r *maintenance.Request) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, r)
	}
	return nil
}

func (m *mockRequestRepository) Update(ctx context.Context, r *maintenance.Request) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, r)
	}
	return nil
}

func (m *mockRequestRepository) GetByID(ctx context.Context, id uint) (*maintenance.Request, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockRequestRepository) GetListing(ctx context.Context, id uint) (*maintenance.Listing, error) {
	if m.GetListingFunc != nil {
		return m.GetListingFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockRequestRepository) List(ctx context.Context, filter maintenance.Filter) ([]*maintenance.Listing, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, nil
}

func (m *mockRequestRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockRequestRepository) DeleteByEquipment(ctx context.Context, equipmentID uint) error {
	if m.DeleteByEquipmentFunc != nil {
		return m.DeleteByEquipmentFunc(ctx, equipmentID)
	}
	return nil
}

func (m *mockRequestRepository) ClearTeam(ctx context.Context, teamID uint) error {
	if m.ClearTeamFunc != nil {
		return m.ClearTeamFunc(ctx, teamID)
	}
	return nil
}

func (m *mockRequestRepository) CountNotInStages(ctx context.Context, stages []vo.Stage) (int64, error) {
	if m.CountNotInStagesFunc != nil {
		return m.CountNotInStagesFunc(ctx, stages)
	}
	return 0, nil
}

func (m *mockRequestRepository) CountOverdue(ctx context.Context, today time.Time) (int64, error) {
	if m.CountOverdueFunc != nil {
		return m.CountOverdueFunc(ctx, today)
	}
	return 0, nil
}

func (m *mockRequestRepository) CountOpenByPriority(ctx context.Context, priority vo.Priority) (int64, error) {
	if m.CountOpenByPriorityFunc != nil {
		return m.CountOpenByPriorityFunc(ctx, priority)
	}
	return 0, nil
}

func (m *mockRequestRepository) CountByTeam(ctx context.Context) ([]maintenance.TeamCount, error) {
	if m.CountByTeamFunc != nil {
		return m.CountByTeamFunc(ctx)
	}
	return nil, nil
}

type mockEquipmentStore struct {
	items   map[uint]*equipment.Equipment
	updated []*equipment.Equipment
}

func (m *mockEquipmentStore) GetByID(ctx context.Context, id uint) (*equipment.Equipment, error) {
	return m.items[id], nil
}

func (m *mockEquipmentStore) Update(ctx context.Context, e *equipment.Equipment) error {
	m.updated = append(m.updated, e)
	return nil
}

type mockActivityRepository struct {
	entries []*activity.Entry
}

func (m *mockActivityRepository) Append(ctx context.Context, entry *activity.Entry) error {
	m.entries = append(m.entries, entry)
	return nil
}

func (m *mockActivityRepository) ListRecent(ctx context.Context, limit int) ([]*activity.Listing, error) {
	return nil, nil
}

func (m *mockActivityRepository) actions() []string {
	out := make([]string, 0, len(m.entries))
	for _, e := range m.entries {
		out = append(out, e.Action())
	}
	return out
}

type mockRenderer struct{}

func (mockRenderer) Render(md string) (string, error) {
	if md == "" {
		return "", nil
	}
	return "<p>" + md + "</p>", nil
}

// memoryRequests is a request repository over a map, enough to drive
// stateful scenarios through the use cases.
func memoryRequests(eqStore *mockEquipmentStore) *mockRequestRepository {
	stored := map[uint]*maintenance.Request{}
	var nextID uint
	listing := func(r *maintenance.Request) *maintenance.Listing {
		l := &maintenance.Listing{Request: r}
		if eq := eqStore.items[r.EquipmentID()]; eq != nil {
			l.EquipmentName = eq.Name()
			l.EquipmentSerial = eq.SerialNumber()
		}
		if r.TeamID() != nil {
			l.TeamName = "Mechanics"
		}
		return l
	}
	return &mockRequestRepository{
		CreateFunc: func(ctx context.Context, r *maintenance.Request) error {
			nextID++
			stored[nextID] = r
			return r.SetID(nextID)
		},
		UpdateFunc: func(ctx context.Context, r *maintenance.Request) error {
			stored[r.ID()] = r
			return nil
		},
		GetByIDFunc: func(ctx context.Context, id uint) (*maintenance.Request, error) {
			return stored[id], nil
		},
		GetListingFunc: func(ctx context.Context, id uint) (*maintenance.Listing, error) {
			r := stored[id]
			if r == nil {
				return nil, nil
			}
			return listing(r), nil
		},
		ListFunc: func(ctx context.Context, filter maintenance.Filter) ([]*maintenance.Listing, error) {
			out := []*maintenance.Listing{}
			for id := uint(1); id <= nextID; id++ {
				if r := stored[id]; r != nil {
					out = append(out, listing(r))
				}
			}
			return out, nil
		},
	}
}

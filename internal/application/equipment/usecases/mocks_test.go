package usecases

import (
	"context"

	"gearguard/internal/domain/activity"
	"gearguard/internal/domain/equipment"
	vo "gearguard/internal/domain/equipment/valueobjects"
)

type mockTxRunner struct{}

func (mockTxRunner) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type mockEquipmentRepository struct {
	CreateFunc          func(ctx context.Context, e *equipment.Equipment) error
	UpdateFunc          func(ctx context.Context, e *equipment.Equipment) error
	GetByIDFunc         func(ctx context.Context, id uint) (*equipment.Equipment, error)
	GetListingFunc      func(ctx context.Context, id uint) (*equipment.Listing, error)
	ListFunc            func(ctx context.Context, filter equipment.Filter) ([]*equipment.Listing, error)
	DeleteFunc          func(ctx context.Context, id uint) error
	ClearTeamFunc       func(ctx context.Context, teamID uint) error
	CountByStatusFunc   func(ctx context.Context, status vo.Status) (int64, error)
	CountByCategoryFunc func(ctx context.Context) ([]equipment.CategoryCount, error)
}

func (m *mockEquipmentRepository) Create(ctx context.Context, e *equipment.Equipment) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, e)
	}
	return nil
}

func (m *mockEquipmentRepository) Update(ctx context.Context, e *equipment.Equipment) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, e)
	}
	return nil
}

func (m *mockEquipmentRepository) GetByID(ctx context.Context, id uint) (*equipment.Equipment, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockEquipmentRepository) GetListing(ctx context.Context, id uint) (*equipment.Listing, error) {
	if m.GetListingFunc != nil {
		return m.GetListingFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockEquipmentRepository) List(ctx context.Context, filter equipment.Filter) ([]*equipment.Listing, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, nil
}

func (m *mockEquipmentRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockEquipmentRepository) ClearTeam(ctx context.Context, teamID uint) error {
	if m.ClearTeamFunc != nil {
		return m.ClearTeamFunc(ctx, teamID)
	}
	return nil
}

func (m *mockEquipmentRepository) CountByStatus(ctx context.Context, status vo.Status) (int64, error) {
	if m.CountByStatusFunc != nil {
		return m.CountByStatusFunc(ctx, status)
	}
	return 0, nil
}

func (m *mockEquipmentRepository) CountByCategory(ctx context.Context) ([]equipment.CategoryCount, error) {
	if m.CountByCategoryFunc != nil {
		return m.CountByCategoryFunc(ctx)
	}
	return nil, nil
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

type mockTeamChecker struct {
	known map[uint]bool
}

func (m *mockTeamChecker) Exists(ctx context.Context, id uint) (bool, error) {
	return m.known[id], nil
}

type mockRequestRemover struct {
	removed []uint
}

func (m *mockRequestRemover) DeleteByEquipment(ctx context.Context, equipmentID uint) error {
	m.removed = append(m.removed, equipmentID)
	return nil
}

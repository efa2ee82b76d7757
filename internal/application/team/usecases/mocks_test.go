package usecases

import (
	"context"

	"gearguard/internal/domain/team"
)

type mockTxRunner struct {
	calls int
}

func (m *mockTxRunner) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	m.calls++
	return fn(ctx)
}

type mockTeamRepository struct {
	CreateFunc        func(ctx context.Context, t *team.Team) error
	UpdateFunc        func(ctx context.Context, t *team.Team) error
	GetByIDFunc       func(ctx context.Context, id uint) (*team.Team, error)
	GetSummaryFunc    func(ctx context.Context, id uint) (*team.Summary, error)
	ListSummariesFunc func(ctx context.Context) ([]*team.Summary, error)
	ExistsFunc        func(ctx context.Context, id uint) (bool, error)
	DeleteFunc        func(ctx context.Context, id uint) error
	CountFunc         func(ctx context.Context) (int64, error)
}

func (m *mockTeamRepository) Create(ctx context.Context, t *team.Team) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, t)
	}
	return nil
}

func (m *mockTeamRepository) Update(ctx context.Context, t *team.Team) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, t)
	}
	return nil
}

func (m *mockTeamRepository) GetByID(ctx context.Context, id uint) (*team.Team, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockTeamRepository) GetSummary(ctx context.Context, id uint) (*team.Summary, error) {
	if m.GetSummaryFunc != nil {
		return m.GetSummaryFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockTeamRepository) ListSummaries(ctx context.Context) ([]*team.Summary, error) {
	if m.ListSummariesFunc != nil {
		return m.ListSummariesFunc(ctx)
	}
	return nil, nil
}

func (m *mockTeamRepository) Exists(ctx context.Context, id uint) (bool, error) {
	if m.ExistsFunc != nil {
		return m.ExistsFunc(ctx, id)
	}
	return false, nil
}

func (m *mockTeamRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockTeamRepository) Count(ctx context.Context) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx)
	}
	return 0, nil
}

type mockMemberRepository struct {
	CreateFunc       func(ctx context.Context, m *team.Member) error
	UpdateFunc       func(ctx context.Context, m *team.Member) error
	GetByIDFunc      func(ctx context.Context, id uint) (*team.Member, error)
	GetListingFunc   func(ctx context.Context, id uint) (*team.MemberListing, error)
	ListByTeamFunc   func(ctx context.Context, teamID uint) ([]*team.MemberListing, error)
	ListAllFunc      func(ctx context.Context) ([]*team.MemberListing, error)
	DeleteFunc       func(ctx context.Context, id uint) error
	DeleteByTeamFunc func(ctx context.Context, teamID uint) error
}

func (m *mockMemberRepository) Create(ctx context.Context, member *team.Member) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, member)
	}
	return nil
}

func (m *mockMemberRepository) Update(ctx context.Context, member *team.Member) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, member)
	}
	return nil
}

func (m *mockMemberRepository) GetByID(ctx context.Context, id uint) (*team.Member, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockMemberRepository) GetListing(ctx context.Context, id uint) (*team.MemberListing, error) {
	if m.GetListingFunc != nil {
		return m.GetListingFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockMemberRepository) ListByTeam(ctx context.Context, teamID uint) ([]*team.MemberListing, error) {
	if m.ListByTeamFunc != nil {
		return m.ListByTeamFunc(ctx, teamID)
	}
	return nil, nil
}

func (m *mockMemberRepository) ListAll(ctx context.Context) ([]*team.MemberListing, error) {
	if m.ListAllFunc != nil {
		return m.ListAllFunc(ctx)
	}
	return nil, nil
}

func (m *mockMemberRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockMemberRepository) DeleteByTeam(ctx context.Context, teamID uint) error {
	if m.DeleteByTeamFunc != nil {
		return m.DeleteByTeamFunc(ctx, teamID)
	}
	return nil
}

type mockClearer struct {
	cleared []uint
}

func (m *mockClearer) ClearTeam(ctx context.Context, teamID uint) error {
	m.cleared = append(m.cleared, teamID)
	return nil
}

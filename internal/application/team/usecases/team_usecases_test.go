package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gearguard/internal/domain/team"
	"gearguard/internal/shared/errors"
	"gearguard/internal/shared/logger"
)

func newTestTeam(t *testing.T, id uint, name string) *team.Team {
	tm, err := team.ReconstructTeam(id, name, "", time.Now().UTC())
	require.NoError(t, err)
	return tm
}

func TestCreateTeamUseCase_Execute(t *testing.T) {
	t.Run("creates team with zero counts", func(t *testing.T) {
		repo := &mockTeamRepository{
			CreateFunc: func(ctx context.Context, tm *team.Team) error {
				return tm.SetID(1)
			},
		}
		uc := NewCreateTeamUseCase(repo, logger.NewNopLogger())

		result, err := uc.Execute(context.Background(), CreateTeamCommand{Name: " Mechanics ", Description: "pumps"})
		require.NoError(t, err)
		assert.Equal(t, uint(1), result.ID)
		assert.Equal(t, "Mechanics", result.Name)
		assert.Zero(t, result.MemberCount)
	})

	t.Run("blank name is a validation error", func(t *testing.T) {
		uc := NewCreateTeamUseCase(&mockTeamRepository{}, logger.NewNopLogger())
		_, err := uc.Execute(context.Background(), CreateTeamCommand{Name: "  "})
		assert.True(t, errors.IsValidationError(err))
	})

	t.Run("duplicate name surfaces conflict", func(t *testing.T) {
		repo := &mockTeamRepository{
			CreateFunc: func(ctx context.Context, tm *team.Team) error {
				return errors.NewConflictError("team name already exists")
			},
		}
		uc := NewCreateTeamUseCase(repo, logger.NewNopLogger())
		_, err := uc.Execute(context.Background(), CreateTeamCommand{Name: "Mechanics"})
		assert.True(t, errors.IsConflictError(err))
	})
}

func TestGetTeamUseCase_NotFound(t *testing.T) {
	uc := NewGetTeamUseCase(&mockTeamRepository{}, logger.NewNopLogger())
	_, err := uc.Execute(context.Background(), 42)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestUpdateTeamUseCase_Execute(t *testing.T) {
	existing := newTestTeam(t, 3, "HVAC")
	var saved *team.Team
	repo := &mockTeamRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*team.Team, error) {
			if id == 3 {
				return existing, nil
			}
			return nil, nil
		},
		UpdateFunc: func(ctx context.Context, tm *team.Team) error {
			saved = tm
			return nil
		},
		GetSummaryFunc: func(ctx context.Context, id uint) (*team.Summary, error) {
			return &team.Summary{Team: saved, MemberCount: 2}, nil
		},
	}
	tx := &mockTxRunner{}
	uc := NewUpdateTeamUseCase(repo, tx, logger.NewNopLogger())

	name := "Climate"
	result, err := uc.Execute(context.Background(), UpdateTeamCommand{TeamID: 3, Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Climate", result.Name)
	assert.EqualValues(t, 2, result.MemberCount)
	assert.Equal(t, 1, tx.calls)

	_, err = uc.Execute(context.Background(), UpdateTeamCommand{TeamID: 99, Name: &name})
	assert.True(t, errors.IsNotFoundError(err))
}

func TestDeleteTeamUseCase_Execute(t *testing.T) {
	t.Run("cascades members and clears references", func(t *testing.T) {
		var deletedMembersOf, deleted uint
		repo := &mockTeamRepository{
			ExistsFunc: func(ctx context.Context, id uint) (bool, error) { return true, nil },
			DeleteFunc: func(ctx context.Context, id uint) error {
				deleted = id
				return nil
			},
		}
		members := &mockMemberRepository{
			DeleteByTeamFunc: func(ctx context.Context, teamID uint) error {
				deletedMembersOf = teamID
				return nil
			},
		}
		equipmentRefs, requestRefs := &mockClearer{}, &mockClearer{}
		uc := NewDeleteTeamUseCase(repo, members, &mockTxRunner{}, logger.NewNopLogger(), equipmentRefs, requestRefs)

		require.NoError(t, uc.Execute(context.Background(), 5))
		assert.Equal(t, uint(5), deletedMembersOf)
		assert.Equal(t, []uint{5}, equipmentRefs.cleared)
		assert.Equal(t, []uint{5}, requestRefs.cleared)
		assert.Equal(t, uint(5), deleted)
	})

	t.Run("missing team", func(t *testing.T) {
		uc := NewDeleteTeamUseCase(&mockTeamRepository{}, &mockMemberRepository{}, &mockTxRunner{}, logger.NewNopLogger())
		err := uc.Execute(context.Background(), 5)
		assert.True(t, errors.IsNotFoundError(err))
	})
}

func TestCreateMemberUseCase_Execute(t *testing.T) {
	t.Run("unknown team", func(t *testing.T) {
		uc := NewCreateMemberUseCase(&mockTeamRepository{}, &mockMemberRepository{}, &mockTxRunner{}, logger.NewNopLogger())
		_, err := uc.Execute(context.Background(), CreateMemberCommand{TeamID: 9, Name: "John Smith"})
		assert.True(t, errors.IsNotFoundError(err))
	})

	t.Run("returns listing with team name", func(t *testing.T) {
		teams := &mockTeamRepository{
			ExistsFunc: func(ctx context.Context, id uint) (bool, error) { return true, nil },
		}
		var created *team.Member
		members := &mockMemberRepository{
			CreateFunc: func(ctx context.Context, m *team.Member) error {
				created = m
				return m.SetID(11)
			},
			GetListingFunc: func(ctx context.Context, id uint) (*team.MemberListing, error) {
				return &team.MemberListing{Member: created, TeamName: "Mechanics"}, nil
			},
		}
		uc := NewCreateMemberUseCase(teams, members, &mockTxRunner{}, logger.NewNopLogger())

		result, err := uc.Execute(context.Background(), CreateMemberCommand{TeamID: 1, Name: "John Smith", Role: "Technician"})
		require.NoError(t, err)
		assert.Equal(t, uint(11), result.ID)
		assert.Equal(t, "Mechanics", result.TeamName)
		assert.Equal(t, "Technician", result.Role)
	})
}

func TestListMembersUseCase_Execute(t *testing.T) {
	var byTeamCalled, allCalled bool
	teams := &mockTeamRepository{
		ExistsFunc: func(ctx context.Context, id uint) (bool, error) { return id == 1, nil },
	}
	members := &mockMemberRepository{
		ListByTeamFunc: func(ctx context.Context, teamID uint) ([]*team.MemberListing, error) {
			byTeamCalled = true
			return nil, nil
		},
		ListAllFunc: func(ctx context.Context) ([]*team.MemberListing, error) {
			allCalled = true
			return nil, nil
		},
	}
	uc := NewListMembersUseCase(teams, members, logger.NewNopLogger())

	all, err := uc.Execute(context.Background(), ListMembersQuery{})
	require.NoError(t, err)
	assert.NotNil(t, all)
	assert.True(t, allCalled)

	id := uint(1)
	_, err = uc.Execute(context.Background(), ListMembersQuery{TeamID: &id})
	require.NoError(t, err)
	assert.True(t, byTeamCalled)

	missing := uint(2)
	_, err = uc.Execute(context.Background(), ListMembersQuery{TeamID: &missing})
	assert.True(t, errors.IsNotFoundError(err))
}

func TestUpdateMemberUseCase_RejectsUnknownTeam(t *testing.T) {
	member, err := team.ReconstructMember(4, 1, "Jane Doe", "", "", "", time.Now().UTC())
	require.NoError(t, err)
	members := &mockMemberRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*team.Member, error) { return member, nil },
	}
	uc := NewUpdateMemberUseCase(&mockTeamRepository{}, members, &mockTxRunner{}, logger.NewNopLogger())

	teamID := uint(7)
	_, err = uc.Execute(context.Background(), UpdateMemberCommand{MemberID: 4, Changes: team.MemberChanges{TeamID: &teamID}})
	assert.True(t, errors.IsNotFoundError(err))
}

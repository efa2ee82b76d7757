package team

import "context"

// Repository persists teams. GetByID returns nil, nil when the team does
// not exist.
type Repository interface {
	Create(ctx context.Context, team *Team) error
	Update(ctx context.Context, team *Team) error
	GetByID(ctx context.Context, id uint) (*Team, error)
	GetSummary(ctx context.Context, id uint) (*Summary, error)
	ListSummaries(ctx context.Context) ([]*Summary, error)
	Exists(ctx context.Context, id uint) (bool, error)
	Delete(ctx context.Context, id uint) error
	Count(ctx context.Context) (int64, error)
}

type MemberRepository interface {
	Create(ctx context.Context, member *Member) error
	Update(ctx context.Context, member *Member) error
	GetByID(ctx context.Context, id uint) (*Member, error)
	GetListing(ctx context.Context, id uint) (*MemberListing, error)
	// ListByTeam orders by member name.
	ListByTeam(ctx context.Context, teamID uint) ([]*MemberListing, error)
	// ListAll orders by team name, then member name.
	ListAll(ctx context.Context) ([]*MemberListing, error)
	Delete(ctx context.Context, id uint) error
	DeleteByTeam(ctx context.Context, teamID uint) error
}

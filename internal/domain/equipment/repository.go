package equipment

import (
	"context"

	vo "gearguard/internal/domain/equipment/valueobjects"
)

// Filter narrows List. Nil fields do not filter.
type Filter struct {
	Status *vo.Status
	TeamID *uint
}

// Repository persists assets. GetByID and GetListing return nil, nil when
// the asset does not exist.
type Repository interface {
	Create(ctx context.Context, equipment *Equipment) error
	Update(ctx context.Context, equipment *Equipment) error
	GetByID(ctx context.Context, id uint) (*Equipment, error)
	GetListing(ctx context.Context, id uint) (*Listing, error)
	// List orders by created_at, newest first.
	List(ctx context.Context, filter Filter) ([]*Listing, error)
	Delete(ctx context.Context, id uint) error
	ClearTeam(ctx context.Context, teamID uint) error
	CountByStatus(ctx context.Context, status vo.Status) (int64, error)
	// CountByCategory orders by count, largest first.
	CountByCategory(ctx context.Context) ([]CategoryCount, error)
}

package maintenance

import (
	"context"
	"time"

	vo "gearguard/internal/domain/maintenance/valueobjects"
)

// Filter narrows List; nil fields do not filter and set fields are ANDed.
// ScheduledFrom and ScheduledTo bound scheduled_date inclusively.
type Filter struct {
	Stage         *vo.Stage
	RequestType   *vo.RequestType
	TeamID        *uint
	EquipmentID   *uint
	ScheduledFrom *time.Time
	ScheduledTo   *time.Time
	// OrderBySchedule sorts by scheduled_date ascending instead of newest first.
	OrderBySchedule bool
}

// Repository persists requests. GetByID and GetListing return nil, nil when
// the request does not exist.
type Repository interface {
	Create(ctx context.Context, request *Request) error
	Update(ctx context.Context, request *Request) error
	GetByID(ctx context.Context, id uint) (*Request, error)
	GetListing(ctx context.Context, id uint) (*Listing, error)
	List(ctx context.Context, filter Filter) ([]*Listing, error)
	Delete(ctx context.Context, id uint) error
	DeleteByEquipment(ctx context.Context, equipmentID uint) error
	ClearTeam(ctx context.Context, teamID uint) error
	CountNotInStages(ctx context.Context, stages []vo.Stage) (int64, error)
	CountOverdue(ctx context.Context, today time.Time) (int64, error)
	CountOpenByPriority(ctx context.Context, priority vo.Priority) (int64, error)
	// CountByTeam includes every team, with zero counts, largest first.
	CountByTeam(ctx context.Context) ([]TeamCount, error)
}

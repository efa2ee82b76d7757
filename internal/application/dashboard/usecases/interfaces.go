package usecases

import (
	"context"
	"time"

	"gearguard/internal/domain/equipment"
	eqvo "gearguard/internal/domain/equipment/valueobjects"
	"gearguard/internal/domain/maintenance"
	vo "gearguard/internal/domain/maintenance/valueobjects"
)

type EquipmentCounter interface {
	CountByStatus(ctx context.Context, status eqvo.Status) (int64, error)
	CountByCategory(ctx context.Context) ([]equipment.CategoryCount, error)
}

type RequestCounter interface {
	CountNotInStages(ctx context.Context, stages []vo.Stage) (int64, error)
	CountOverdue(ctx context.Context, today time.Time) (int64, error)
	CountOpenByPriority(ctx context.Context, priority vo.Priority) (int64, error)
	CountByTeam(ctx context.Context) ([]maintenance.TeamCount, error)
}

type TeamCounter interface {
	Count(ctx context.Context) (int64, error)
}

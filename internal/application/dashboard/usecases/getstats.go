package usecases

import (
	"context"
	"fmt"

	"gearguard/internal/application/dashboard/dto"
	eqvo "gearguard/internal/domain/equipment/valueobjects"
	vo "gearguard/internal/domain/maintenance/valueobjects"
	"gearguard/internal/shared/biztime"
	"gearguard/internal/shared/logger"
)

type GetStatsUseCase struct {
	equipment EquipmentCounter
	requests  RequestCounter
	teams     TeamCounter
	logger    logger.Interface
}

func NewGetStatsUseCase(equipment EquipmentCounter, requests RequestCounter, teams TeamCounter, logger logger.Interface) *GetStatsUseCase {
	return &GetStatsUseCase{equipment: equipment, requests: requests, teams: teams, logger: logger}
}

// Execute counts usable assets, open requests, overdue requests against the
// current business day, teams and open Critical requests.
func (uc *GetStatsUseCase) Execute(ctx context.Context) (*dto.StatsDTO, error) {
	var (
		stats dto.StatsDTO
		err   error
	)

	if stats.TotalEquipment, err = uc.equipment.CountByStatus(ctx, eqvo.StatusUsable); err != nil {
		return nil, uc.fail("count usable equipment", err)
	}
	if stats.ActiveRequests, err = uc.requests.CountNotInStages(ctx, vo.ClosedStages()); err != nil {
		return nil, uc.fail("count active requests", err)
	}
	if stats.OverdueRequests, err = uc.requests.CountOverdue(ctx, biztime.Today()); err != nil {
		return nil, uc.fail("count overdue requests", err)
	}
	if stats.TotalTeams, err = uc.teams.Count(ctx); err != nil {
		return nil, uc.fail("count teams", err)
	}
	if stats.CriticalRequests, err = uc.requests.CountOpenByPriority(ctx, vo.PriorityCritical); err != nil {
		return nil, uc.fail("count critical requests", err)
	}
	return &stats, nil
}

func (uc *GetStatsUseCase) fail(op string, err error) error {
	uc.logger.Errorw("failed to compute dashboard stats", "op", op, "error", err)
	return fmt.Errorf("%s: %w", op, err)
}

type RequestsByTeamUseCase struct {
	requests RequestCounter
	logger   logger.Interface
}

func NewRequestsByTeamUseCase(requests RequestCounter, logger logger.Interface) *RequestsByTeamUseCase {
	return &RequestsByTeamUseCase{requests: requests, logger: logger}
}

// Execute lists every team with its request count, zero included.
func (uc *RequestsByTeamUseCase) Execute(ctx context.Context) ([]*dto.TeamCountDTO, error) {
	rows, err := uc.requests.CountByTeam(ctx)
	if err != nil {
		uc.logger.Errorw("failed to count requests by team", "error", err)
		return nil, err
	}
	return dto.ToTeamCountDTOs(rows), nil
}

type EquipmentByCategoryUseCase struct {
	equipment EquipmentCounter
	logger    logger.Interface
}

func NewEquipmentByCategoryUseCase(equipment EquipmentCounter, logger logger.Interface) *EquipmentByCategoryUseCase {
	return &EquipmentByCategoryUseCase{equipment: equipment, logger: logger}
}

func (uc *EquipmentByCategoryUseCase) Execute(ctx context.Context) ([]*dto.CategoryCountDTO, error) {
	rows, err := uc.equipment.CountByCategory(ctx)
	if err != nil {
		uc.logger.Errorw("failed to count equipment by category", "error", err)
		return nil, err
	}
	return dto.ToCategoryCountDTOs(rows), nil
}

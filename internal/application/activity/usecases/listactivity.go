package usecases

import (
	"context"

	"gearguard/internal/application/activity/dto"
	"gearguard/internal/domain/activity"
	"gearguard/internal/shared/constants"
	"gearguard/internal/shared/logger"
)

type ListActivityQuery struct {
	// Limit defaults to DefaultActivityLimit when not positive.
	Limit int
}

type ListActivityUseCase struct {
	activityRepo activity.Repository
	logger       logger.Interface
}

func NewListActivityUseCase(activityRepo activity.Repository, logger logger.Interface) *ListActivityUseCase {
	return &ListActivityUseCase{activityRepo: activityRepo, logger: logger}
}

func (uc *ListActivityUseCase) Execute(ctx context.Context, query ListActivityQuery) ([]*dto.ActivityDTO, error) {
	limit := query.Limit
	if limit <= 0 {
		limit = constants.DefaultActivityLimit
	}
	if limit > constants.MaxActivityLimit {
		limit = constants.MaxActivityLimit
	}

	listings, err := uc.activityRepo.ListRecent(ctx, limit)
	if err != nil {
		uc.logger.Errorw("failed to list activity", "limit", limit, "error", err)
		return nil, err
	}
	return dto.ToActivityDTOs(listings), nil
}

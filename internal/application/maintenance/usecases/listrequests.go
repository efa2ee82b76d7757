package usecases

import (
	"context"

	"gearguard/internal/application/maintenance/dto"
	"gearguard/internal/domain/maintenance"
	"gearguard/internal/shared/errors"
	"gearguard/internal/shared/logger"
	"gearguard/internal/shared/services/markdown"
)

type GetRequestUseCase struct {
	requestRepo maintenance.Repository
	presenter   presenter
	logger      logger.Interface
}

func NewGetRequestUseCase(requestRepo maintenance.Repository, renderer markdown.Renderer, logger logger.Interface) *GetRequestUseCase {
	return &GetRequestUseCase{
		requestRepo: requestRepo,
		presenter:   presenter{renderer: renderer, logger: logger},
		logger:      logger,
	}
}

func (uc *GetRequestUseCase) Execute(ctx context.Context, requestID uint) (*dto.RequestDTO, error) {
	listing, err := uc.requestRepo.GetListing(ctx, requestID)
	if err != nil {
		uc.logger.Errorw("failed to get maintenance request", "request_id", requestID, "error", err)
		return nil, err
	}
	if listing == nil {
		return nil, errors.NewNotFoundError("maintenance request not found")
	}
	return uc.presenter.one(listing), nil
}

type ListRequestsQuery struct {
	Filter maintenance.Filter
}

type ListRequestsUseCase struct {
	requestRepo   maintenance.Repository
	equipmentRepo EquipmentStore
	presenter     presenter
	logger        logger.Interface
}

func NewListRequestsUseCase(
	requestRepo maintenance.Repository,
	equipmentRepo EquipmentStore,
	renderer markdown.Renderer,
	logger logger.Interface,
) *ListRequestsUseCase {
	return &ListRequestsUseCase{
		requestRepo:   requestRepo,
		equipmentRepo: equipmentRepo,
		presenter:     presenter{renderer: renderer, logger: logger},
		logger:        logger,
	}
}

// Execute returns matching requests, newest first. Filtering by an
// equipment that does not exist is NotFound rather than an empty list.
func (uc *ListRequestsUseCase) Execute(ctx context.Context, query ListRequestsQuery) ([]*dto.RequestDTO, error) {
	if query.Filter.EquipmentID != nil {
		eq, err := uc.equipmentRepo.GetByID(ctx, *query.Filter.EquipmentID)
		if err != nil {
			return nil, err
		}
		if eq == nil {
			return nil, errors.NewNotFoundError("equipment not found")
		}
	}

	listings, err := uc.requestRepo.List(ctx, query.Filter)
	if err != nil {
		uc.logger.Errorw("failed to list maintenance requests", "error", err)
		return nil, err
	}
	return uc.presenter.many(listings), nil
}

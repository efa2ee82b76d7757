package usecases

import (
	"context"

	"gearguard/internal/application/maintenance/dto"
	"gearguard/internal/domain/activity"
	"gearguard/internal/domain/equipment"
	"gearguard/internal/domain/maintenance"
	vo "gearguard/internal/domain/maintenance/valueobjects"
	"gearguard/internal/shared/db"
	"gearguard/internal/shared/errors"
	"gearguard/internal/shared/logger"
	"gearguard/internal/shared/services/markdown"
)

// UpdateRequestCommand is a partial update. A non-nil Stage goes through the
// same transition path as ChangeStageUseCase.
type UpdateRequestCommand struct {
	RequestID uint
	Changes   maintenance.Changes
	Stage     *vo.Stage
}

type UpdateRequestUseCase struct {
	requestRepo   maintenance.Repository
	equipmentRepo EquipmentStore
	stages        stageChanger
	txMgr         db.Runner
	presenter     presenter
	logger        logger.Interface
}

func NewUpdateRequestUseCase(
	requestRepo maintenance.Repository,
	equipmentRepo EquipmentStore,
	activityRepo activity.Repository,
	txMgr db.Runner,
	renderer markdown.Renderer,
	logger logger.Interface,
) *UpdateRequestUseCase {
	return &UpdateRequestUseCase{
		requestRepo:   requestRepo,
		equipmentRepo: equipmentRepo,
		stages:        stageChanger{equipmentRepo: equipmentRepo, activityRepo: activityRepo},
		txMgr:         txMgr,
		presenter:     presenter{renderer: renderer, logger: logger},
		logger:        logger,
	}
}

func (uc *UpdateRequestUseCase) Execute(ctx context.Context, cmd UpdateRequestCommand) (*dto.RequestDTO, error) {
	var listing *maintenance.Listing
	err := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		req, err := uc.requestRepo.GetByID(txCtx, cmd.RequestID)
		if err != nil {
			return err
		}
		if req == nil {
			return errors.NewNotFoundError("maintenance request not found")
		}

		var moved *equipment.Equipment
		if cmd.Changes.EquipmentID != nil && *cmd.Changes.EquipmentID != req.EquipmentID() {
			moved, err = uc.equipmentRepo.GetByID(txCtx, *cmd.Changes.EquipmentID)
			if err != nil {
				return err
			}
			if moved == nil {
				return errors.NewNotFoundError("equipment not found")
			}
		}
		if err := req.Apply(cmd.Changes); err != nil {
			return errors.NewValidationError(err.Error())
		}
		if moved != nil {
			req.AssignFromEquipment(moved.TeamID(), moved.Department())
		}

		if cmd.Stage != nil {
			if _, err := uc.stages.apply(txCtx, req, *cmd.Stage); err != nil {
				return err
			}
		}

		if err := uc.requestRepo.Update(txCtx, req); err != nil {
			return err
		}
		listing, err = uc.requestRepo.GetListing(txCtx, req.ID())
		return err
	})
	if err != nil {
		uc.logger.Warnw("failed to update maintenance request", "request_id", cmd.RequestID, "error", err)
		return nil, err
	}

	uc.logger.Infow("maintenance request updated", "request_id", cmd.RequestID)
	return uc.presenter.one(listing), nil
}

type DeleteRequestUseCase struct {
	requestRepo maintenance.Repository
	logger      logger.Interface
}

func NewDeleteRequestUseCase(requestRepo maintenance.Repository, logger logger.Interface) *DeleteRequestUseCase {
	return &DeleteRequestUseCase{requestRepo: requestRepo, logger: logger}
}

func (uc *DeleteRequestUseCase) Execute(ctx context.Context, requestID uint) error {
	if err := uc.requestRepo.Delete(ctx, requestID); err != nil {
		uc.logger.Warnw("failed to delete maintenance request", "request_id", requestID, "error", err)
		return err
	}
	uc.logger.Infow("maintenance request deleted", "request_id", requestID)
	return nil
}

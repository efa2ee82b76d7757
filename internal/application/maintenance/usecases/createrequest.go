package usecases

import (
	"context"

	"gearguard/internal/application/maintenance/dto"
	"gearguard/internal/domain/activity"
	"gearguard/internal/domain/maintenance"
	"gearguard/internal/shared/db"
	"gearguard/internal/shared/errors"
	"gearguard/internal/shared/logger"
	"gearguard/internal/shared/services/markdown"
)

// CreateRequestCommand carries the caller's fields. Team and department in
// Params are ignored: they are copied from the equipment.
type CreateRequestCommand struct {
	Params maintenance.Params
}

type CreateRequestUseCase struct {
	requestRepo   maintenance.Repository
	equipmentRepo EquipmentStore
	activityRepo  activity.Repository
	txMgr         db.Runner
	presenter     presenter
	logger        logger.Interface
}

func NewCreateRequestUseCase(
	requestRepo maintenance.Repository,
	equipmentRepo EquipmentStore,
	activityRepo activity.Repository,
	txMgr db.Runner,
	renderer markdown.Renderer,
	logger logger.Interface,
) *CreateRequestUseCase {
	return &CreateRequestUseCase{
		requestRepo:   requestRepo,
		equipmentRepo: equipmentRepo,
		activityRepo:  activityRepo,
		txMgr:         txMgr,
		presenter:     presenter{renderer: renderer, logger: logger},
		logger:        logger,
	}
}

func (uc *CreateRequestUseCase) Execute(ctx context.Context, cmd CreateRequestCommand) (*dto.RequestDTO, error) {
	req, err := maintenance.NewRequest(cmd.Params)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	var listing *maintenance.Listing
	err = uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		eq, err := uc.equipmentRepo.GetByID(txCtx, req.EquipmentID())
		if err != nil {
			return err
		}
		if eq == nil {
			return errors.NewNotFoundError("equipment not found")
		}
		req.AssignFromEquipment(eq.TeamID(), eq.Department())

		if err := uc.requestRepo.Create(txCtx, req); err != nil {
			return err
		}
		entry := activity.RequestCreated(req.ID(), eq.ID(), req.Subject(), eq.Name())
		if err := uc.activityRepo.Append(txCtx, entry); err != nil {
			return err
		}
		listing, err = uc.requestRepo.GetListing(txCtx, req.ID())
		return err
	})
	if err != nil {
		uc.logger.Warnw("failed to create maintenance request", "equipment_id", cmd.Params.EquipmentID, "error", err)
		return nil, err
	}

	uc.logger.Infow("maintenance request created",
		"request_id", req.ID(),
		"equipment_id", req.EquipmentID(),
		"stage", req.Stage().String())
	return uc.presenter.one(listing), nil
}

package usecases

import (
	"context"

	"gearguard/internal/application/maintenance/dto"
	"gearguard/internal/domain/activity"
	"gearguard/internal/domain/maintenance"
	vo "gearguard/internal/domain/maintenance/valueobjects"
	"gearguard/internal/shared/db"
	"gearguard/internal/shared/errors"
	"gearguard/internal/shared/logger"
	"gearguard/internal/shared/services/markdown"
)

type ChangeStageCommand struct {
	RequestID uint
	Stage     vo.Stage
}

type ChangeStageUseCase struct {
	requestRepo maintenance.Repository
	stages      stageChanger
	txMgr       db.Runner
	presenter   presenter
	logger      logger.Interface
}

func NewChangeStageUseCase(
	requestRepo maintenance.Repository,
	equipmentRepo EquipmentStore,
	activityRepo activity.Repository,
	txMgr db.Runner,
	renderer markdown.Renderer,
	logger logger.Interface,
) *ChangeStageUseCase {
	return &ChangeStageUseCase{
		requestRepo: requestRepo,
		stages:      stageChanger{equipmentRepo: equipmentRepo, activityRepo: activityRepo},
		txMgr:       txMgr,
		presenter:   presenter{renderer: renderer, logger: logger},
		logger:      logger,
	}
}

// Execute sets the stage. Any stage may follow any other; re-setting the
// current stage is allowed and still logged.
func (uc *ChangeStageUseCase) Execute(ctx context.Context, cmd ChangeStageCommand) (*dto.RequestDTO, error) {
	var (
		listing *maintenance.Listing
		tr      maintenance.StageTransition
	)
	err := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		req, err := uc.requestRepo.GetByID(txCtx, cmd.RequestID)
		if err != nil {
			return err
		}
		if req == nil {
			return errors.NewNotFoundError("maintenance request not found")
		}

		tr, err = uc.stages.apply(txCtx, req, cmd.Stage)
		if err != nil {
			return err
		}
		if err := uc.requestRepo.Update(txCtx, req); err != nil {
			return err
		}
		listing, err = uc.requestRepo.GetListing(txCtx, req.ID())
		return err
	})
	if err != nil {
		uc.logger.Warnw("failed to change request stage", "request_id", cmd.RequestID, "stage", cmd.Stage.String(), "error", err)
		return nil, err
	}

	uc.logger.Infow("request stage changed",
		"request_id", cmd.RequestID,
		"from", tr.From.String(),
		"to", tr.To.String())
	return uc.presenter.one(listing), nil
}

package usecases

import (
	"context"

	"gearguard/internal/application/equipment/dto"
	"gearguard/internal/domain/activity"
	"gearguard/internal/domain/equipment"
	"gearguard/internal/shared/db"
	"gearguard/internal/shared/errors"
	"gearguard/internal/shared/logger"
)

type UpdateEquipmentCommand struct {
	EquipmentID uint
	Changes     equipment.Changes
}

type UpdateEquipmentUseCase struct {
	equipmentRepo equipment.Repository
	teams         TeamChecker
	activityRepo  activity.Repository
	txMgr         db.Runner
	logger        logger.Interface
}

func NewUpdateEquipmentUseCase(
	equipmentRepo equipment.Repository,
	teams TeamChecker,
	activityRepo activity.Repository,
	txMgr db.Runner,
	logger logger.Interface,
) *UpdateEquipmentUseCase {
	return &UpdateEquipmentUseCase{
		equipmentRepo: equipmentRepo,
		teams:         teams,
		activityRepo:  activityRepo,
		txMgr:         txMgr,
		logger:        logger,
	}
}

// Execute applies a partial update and records it in the activity log.
// An empty update still records the entry.
func (uc *UpdateEquipmentUseCase) Execute(ctx context.Context, cmd UpdateEquipmentCommand) (*dto.EquipmentDTO, error) {
	var listing *equipment.Listing
	err := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		e, err := uc.equipmentRepo.GetByID(txCtx, cmd.EquipmentID)
		if err != nil {
			return err
		}
		if e == nil {
			return errors.NewNotFoundError("equipment not found")
		}

		if err := e.Apply(cmd.Changes); err != nil {
			return errors.NewValidationError(err.Error())
		}
		if cmd.Changes.TeamID != nil {
			if err := requireTeam(txCtx, uc.teams, e.TeamID()); err != nil {
				return err
			}
		}

		if err := uc.equipmentRepo.Update(txCtx, e); err != nil {
			return err
		}
		if err := uc.activityRepo.Append(txCtx, activity.EquipmentUpdated(e.ID())); err != nil {
			return err
		}
		listing, err = uc.equipmentRepo.GetListing(txCtx, e.ID())
		return err
	})
	if err != nil {
		uc.logger.Warnw("failed to update equipment", "equipment_id", cmd.EquipmentID, "error", err)
		return nil, err
	}

	uc.logger.Infow("equipment updated", "equipment_id", cmd.EquipmentID)
	return dto.ToEquipmentDTO(listing), nil
}

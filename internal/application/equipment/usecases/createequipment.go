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

type CreateEquipmentCommand struct {
	Params equipment.Params
}

type CreateEquipmentUseCase struct {
	equipmentRepo equipment.Repository
	teams         TeamChecker
	activityRepo  activity.Repository
	txMgr         db.Runner
	logger        logger.Interface
}

func NewCreateEquipmentUseCase(
	equipmentRepo equipment.Repository,
	teams TeamChecker,
	activityRepo activity.Repository,
	txMgr db.Runner,
	logger logger.Interface,
) *CreateEquipmentUseCase {
	return &CreateEquipmentUseCase{
		equipmentRepo: equipmentRepo,
		teams:         teams,
		activityRepo:  activityRepo,
		txMgr:         txMgr,
		logger:        logger,
	}
}

func (uc *CreateEquipmentUseCase) Execute(ctx context.Context, cmd CreateEquipmentCommand) (*dto.EquipmentDTO, error) {
	e, err := equipment.NewEquipment(cmd.Params)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	var listing *equipment.Listing
	err = uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := requireTeam(txCtx, uc.teams, e.TeamID()); err != nil {
			return err
		}
		if err := uc.equipmentRepo.Create(txCtx, e); err != nil {
			return err
		}
		if err := uc.activityRepo.Append(txCtx, activity.EquipmentCreated(e.ID(), e.Name())); err != nil {
			return err
		}
		listing, err = uc.equipmentRepo.GetListing(txCtx, e.ID())
		return err
	})
	if err != nil {
		uc.logger.Warnw("failed to create equipment", "serial_number", e.SerialNumber(), "error", err)
		return nil, err
	}

	uc.logger.Infow("equipment created", "equipment_id", e.ID(), "serial_number", e.SerialNumber())
	return dto.ToEquipmentDTO(listing), nil
}

package usecases

import (
	"context"

	"gearguard/internal/domain/equipment"
	"gearguard/internal/shared/db"
	"gearguard/internal/shared/errors"
	"gearguard/internal/shared/logger"
)

type DeleteEquipmentUseCase struct {
	equipmentRepo equipment.Repository
	requests      RequestRemover
	txMgr         db.Runner
	logger        logger.Interface
}

func NewDeleteEquipmentUseCase(
	equipmentRepo equipment.Repository,
	requests RequestRemover,
	txMgr db.Runner,
	logger logger.Interface,
) *DeleteEquipmentUseCase {
	return &DeleteEquipmentUseCase{
		equipmentRepo: equipmentRepo,
		requests:      requests,
		txMgr:         txMgr,
		logger:        logger,
	}
}

// Execute removes the asset together with its requests. Activity entries
// that mention it are kept.
func (uc *DeleteEquipmentUseCase) Execute(ctx context.Context, equipmentID uint) error {
	err := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		e, err := uc.equipmentRepo.GetByID(txCtx, equipmentID)
		if err != nil {
			return err
		}
		if e == nil {
			return errors.NewNotFoundError("equipment not found")
		}
		if err := uc.requests.DeleteByEquipment(txCtx, equipmentID); err != nil {
			return err
		}
		return uc.equipmentRepo.Delete(txCtx, equipmentID)
	})
	if err != nil {
		uc.logger.Warnw("failed to delete equipment", "equipment_id", equipmentID, "error", err)
		return err
	}

	uc.logger.Infow("equipment deleted", "equipment_id", equipmentID)
	return nil
}

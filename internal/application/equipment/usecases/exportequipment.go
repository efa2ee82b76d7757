package usecases

import (
	"context"
	"io"

	"gearguard/internal/domain/equipment"
	"gearguard/internal/shared/logger"
)

// EquipmentWriter renders asset listings into a document.
type EquipmentWriter func(w io.Writer, listings []*equipment.Listing) error

type ExportEquipmentUseCase struct {
	equipmentRepo equipment.Repository
	write         EquipmentWriter
	logger        logger.Interface
}

func NewExportEquipmentUseCase(equipmentRepo equipment.Repository, write EquipmentWriter, logger logger.Interface) *ExportEquipmentUseCase {
	return &ExportEquipmentUseCase{
		equipmentRepo: equipmentRepo,
		write:         write,
		logger:        logger,
	}
}

// Execute writes the assets matching filter to w, newest first.
func (uc *ExportEquipmentUseCase) Execute(ctx context.Context, filter equipment.Filter, w io.Writer) (int, error) {
	listings, err := uc.equipmentRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to load equipment for export", "error", err)
		return 0, err
	}
	if err := uc.write(w, listings); err != nil {
		uc.logger.Errorw("failed to write equipment export", "error", err)
		return 0, err
	}
	uc.logger.Infow("equipment exported", "rows", len(listings))
	return len(listings), nil
}

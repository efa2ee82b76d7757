package usecases

import (
	"context"

	"gearguard/internal/application/equipment/dto"
	"gearguard/internal/domain/equipment"
	"gearguard/internal/shared/errors"
	"gearguard/internal/shared/logger"
)

type GetEquipmentUseCase struct {
	equipmentRepo equipment.Repository
	logger        logger.Interface
}

func NewGetEquipmentUseCase(equipmentRepo equipment.Repository, logger logger.Interface) *GetEquipmentUseCase {
	return &GetEquipmentUseCase{equipmentRepo: equipmentRepo, logger: logger}
}

func (uc *GetEquipmentUseCase) Execute(ctx context.Context, equipmentID uint) (*dto.EquipmentDTO, error) {
	listing, err := uc.equipmentRepo.GetListing(ctx, equipmentID)
	if err != nil {
		uc.logger.Errorw("failed to get equipment", "equipment_id", equipmentID, "error", err)
		return nil, err
	}
	if listing == nil {
		return nil, errors.NewNotFoundError("equipment not found")
	}
	return dto.ToEquipmentDTO(listing), nil
}

type ListEquipmentQuery struct {
	Filter equipment.Filter
}

type ListEquipmentUseCase struct {
	equipmentRepo equipment.Repository
	logger        logger.Interface
}

func NewListEquipmentUseCase(equipmentRepo equipment.Repository, logger logger.Interface) *ListEquipmentUseCase {
	return &ListEquipmentUseCase{equipmentRepo: equipmentRepo, logger: logger}
}

// Execute returns matching assets, newest first.
func (uc *ListEquipmentUseCase) Execute(ctx context.Context, query ListEquipmentQuery) ([]*dto.EquipmentDTO, error) {
	listings, err := uc.equipmentRepo.List(ctx, query.Filter)
	if err != nil {
		uc.logger.Errorw("failed to list equipment", "error", err)
		return nil, err
	}
	return dto.ToEquipmentDTOs(listings), nil
}

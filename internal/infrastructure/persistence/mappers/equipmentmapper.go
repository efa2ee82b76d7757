package mappers

import (
	"fmt"

	"gearguard/internal/domain/equipment"
	vo "gearguard/internal/domain/equipment/valueobjects"
	"gearguard/internal/infrastructure/persistence/models"
)

type EquipmentMapper interface {
	ToEntity(model *models.EquipmentModel) (*equipment.Equipment, error)
	ToModel(entity *equipment.Equipment) *models.EquipmentModel
}

type EquipmentMapperImpl struct{}

func NewEquipmentMapper() EquipmentMapper {
	return &EquipmentMapperImpl{}
}

func (m *EquipmentMapperImpl) ToEntity(model *models.EquipmentModel) (*equipment.Equipment, error) {
	if model == nil {
		return nil, nil
	}

	status, err := vo.NewStatus(model.Status)
	if err != nil {
		return nil, fmt.Errorf("failed to create equipment status: %w", err)
	}

	entity, err := equipment.ReconstructEquipment(model.ID, equipment.Params{
		Name:             model.Name,
		SerialNumber:     model.SerialNumber,
		Category:         model.Category,
		Department:       model.Department,
		AssignedEmployee: model.AssignedEmployee,
		PurchaseDate:     FromDatePtr(model.PurchaseDate),
		WarrantyExpiry:   FromDatePtr(model.WarrantyExpiry),
		Location:         model.Location,
		Status:           status,
		TeamID:           model.TeamID,
		Notes:            model.Notes,
	}, model.CreatedAt.UTC())
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct equipment entity: %w", err)
	}
	return entity, nil
}

func (m *EquipmentMapperImpl) ToModel(entity *equipment.Equipment) *models.EquipmentModel {
	if entity == nil {
		return nil
	}
	return &models.EquipmentModel{
		ID:               entity.ID(),
		Name:             entity.Name(),
		SerialNumber:     entity.SerialNumber(),
		Category:         entity.Category(),
		Department:       entity.Department(),
		AssignedEmployee: entity.AssignedEmployee(),
		PurchaseDate:     ToDatePtr(entity.PurchaseDate()),
		WarrantyExpiry:   ToDatePtr(entity.WarrantyExpiry()),
		Location:         entity.Location(),
		Status:           entity.Status().String(),
		TeamID:           entity.TeamID(),
		Notes:            entity.Notes(),
		CreatedAt:        entity.CreatedAt(),
	}
}

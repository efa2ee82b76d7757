package mappers

import (
	"fmt"

	"gearguard/internal/domain/maintenance"
	vo "gearguard/internal/domain/maintenance/valueobjects"
	"gearguard/internal/infrastructure/persistence/models"
)

type MaintenanceRequestMapper interface {
	ToEntity(model *models.MaintenanceRequestModel) (*maintenance.Request, error)
	ToModel(entity *maintenance.Request) *models.MaintenanceRequestModel
}

type MaintenanceRequestMapperImpl struct{}

func NewMaintenanceRequestMapper() MaintenanceRequestMapper {
	return &MaintenanceRequestMapperImpl{}
}

func (m *MaintenanceRequestMapperImpl) ToEntity(model *models.MaintenanceRequestModel) (*maintenance.Request, error) {
	if model == nil {
		return nil, nil
	}

	requestType, err := vo.NewRequestType(model.RequestType)
	if err != nil {
		return nil, fmt.Errorf("failed to create request type: %w", err)
	}
	stage, err := vo.NewStage(model.Stage)
	if err != nil {
		return nil, fmt.Errorf("failed to create stage: %w", err)
	}
	priority, err := vo.NewPriority(model.Priority)
	if err != nil {
		return nil, fmt.Errorf("failed to create priority: %w", err)
	}

	entity, err := maintenance.ReconstructRequest(model.ID, maintenance.Params{
		Subject:            model.Subject,
		EquipmentID:        model.EquipmentID,
		RequestType:        requestType,
		ScheduledDate:      FromDate(model.ScheduledDate),
		DurationHours:      model.DurationHours,
		Stage:              stage,
		AssignedTechnician: model.AssignedTechnician,
		TeamID:             model.TeamID,
		Department:         model.Department,
		Priority:           priority,
		Description:        model.Description,
		CompletedAt:        utcPtr(model.CompletedAt),
	}, model.CreatedAt.UTC())
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct request entity: %w", err)
	}
	return entity, nil
}

func (m *MaintenanceRequestMapperImpl) ToModel(entity *maintenance.Request) *models.MaintenanceRequestModel {
	if entity == nil {
		return nil
	}
	return &models.MaintenanceRequestModel{
		ID:                 entity.ID(),
		Subject:            entity.Subject(),
		EquipmentID:        entity.EquipmentID(),
		RequestType:        entity.RequestType().String(),
		ScheduledDate:      ToDate(entity.ScheduledDate()),
		DurationHours:      entity.DurationHours(),
		Stage:              entity.Stage().String(),
		AssignedTechnician: entity.AssignedTechnician(),
		TeamID:             entity.TeamID(),
		Department:         entity.Department(),
		Priority:           entity.Priority().String(),
		Description:        entity.Description(),
		CreatedAt:          entity.CreatedAt(),
		CompletedAt:        entity.CompletedAt(),
	}
}

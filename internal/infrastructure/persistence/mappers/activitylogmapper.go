package mappers

import (
	"fmt"

	"gearguard/internal/domain/activity"
	"gearguard/internal/infrastructure/persistence/models"
)

type ActivityLogMapper interface {
	ToEntity(model *models.ActivityLogModel) (*activity.Entry, error)
	ToModel(entity *activity.Entry) *models.ActivityLogModel
}

type ActivityLogMapperImpl struct{}

func NewActivityLogMapper() ActivityLogMapper {
	return &ActivityLogMapperImpl{}
}

func (m *ActivityLogMapperImpl) ToEntity(model *models.ActivityLogModel) (*activity.Entry, error) {
	if model == nil {
		return nil, nil
	}
	entity, err := activity.ReconstructEntry(
		model.ID,
		model.EquipmentID,
		model.RequestID,
		model.Action,
		model.Details,
		model.CreatedAt.UTC(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct activity entry: %w", err)
	}
	return entity, nil
}

func (m *ActivityLogMapperImpl) ToModel(entity *activity.Entry) *models.ActivityLogModel {
	if entity == nil {
		return nil
	}
	return &models.ActivityLogModel{
		ID:          entity.ID(),
		EquipmentID: entity.EquipmentID(),
		RequestID:   entity.RequestID(),
		Action:      entity.Action(),
		Details:     entity.Details(),
		CreatedAt:   entity.CreatedAt(),
	}
}

package equipment

import (
	"context"
	"io"

	"gearguard/internal/application/equipment/dto"
	"gearguard/internal/application/equipment/usecases"
	maintenancedto "gearguard/internal/application/maintenance/dto"
	maintenanceusecases "gearguard/internal/application/maintenance/usecases"
	domain "gearguard/internal/domain/equipment"
)

type createEquipmentUseCase interface {
	Execute(ctx context.Context, cmd usecases.CreateEquipmentCommand) (*dto.EquipmentDTO, error)
}

type getEquipmentUseCase interface {
	Execute(ctx context.Context, equipmentID uint) (*dto.EquipmentDTO, error)
}

type listEquipmentUseCase interface {
	Execute(ctx context.Context, query usecases.ListEquipmentQuery) ([]*dto.EquipmentDTO, error)
}

type updateEquipmentUseCase interface {
	Execute(ctx context.Context, cmd usecases.UpdateEquipmentCommand) (*dto.EquipmentDTO, error)
}

type deleteEquipmentUseCase interface {
	Execute(ctx context.Context, equipmentID uint) error
}

type exportEquipmentUseCase interface {
	Execute(ctx context.Context, filter domain.Filter, w io.Writer) (int, error)
}

type listRequestsUseCase interface {
	Execute(ctx context.Context, query maintenanceusecases.ListRequestsQuery) ([]*maintenancedto.RequestDTO, error)
}

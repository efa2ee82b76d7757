package requests

import (
	"context"

	"gearguard/internal/application/maintenance/dto"
	"gearguard/internal/application/maintenance/usecases"
)

type createRequestUseCase interface {
	Execute(ctx context.Context, cmd usecases.CreateRequestCommand) (*dto.RequestDTO, error)
}

type getRequestUseCase interface {
	Execute(ctx context.Context, requestID uint) (*dto.RequestDTO, error)
}

type listRequestsUseCase interface {
	Execute(ctx context.Context, query usecases.ListRequestsQuery) ([]*dto.RequestDTO, error)
}

type updateRequestUseCase interface {
	Execute(ctx context.Context, cmd usecases.UpdateRequestCommand) (*dto.RequestDTO, error)
}

type changeStageUseCase interface {
	Execute(ctx context.Context, cmd usecases.ChangeStageCommand) (*dto.RequestDTO, error)
}

type deleteRequestUseCase interface {
	Execute(ctx context.Context, requestID uint) error
}

type kanbanUseCase interface {
	Execute(ctx context.Context, query usecases.KanbanQuery) ([]*dto.KanbanColumnDTO, error)
}

type calendarUseCase interface {
	Execute(ctx context.Context, query usecases.CalendarQuery) (*dto.CalendarDTO, error)
}

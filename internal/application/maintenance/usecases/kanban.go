package usecases

import (
	"context"

	"gearguard/internal/application/maintenance/dto"
	"gearguard/internal/domain/maintenance"
	vo "gearguard/internal/domain/maintenance/valueobjects"
	"gearguard/internal/shared/logger"
	"gearguard/internal/shared/services/markdown"
)

type KanbanQuery struct {
	TeamID *uint
}

type GetKanbanUseCase struct {
	requestRepo maintenance.Repository
	presenter   presenter
	logger      logger.Interface
}

func NewGetKanbanUseCase(requestRepo maintenance.Repository, renderer markdown.Renderer, logger logger.Interface) *GetKanbanUseCase {
	return &GetKanbanUseCase{
		requestRepo: requestRepo,
		presenter:   presenter{renderer: renderer, logger: logger},
		logger:      logger,
	}
}

// Execute returns one column per stage in lifecycle order, every column
// present even when empty. Cards are ordered by scheduled date.
func (uc *GetKanbanUseCase) Execute(ctx context.Context, query KanbanQuery) ([]*dto.KanbanColumnDTO, error) {
	listings, err := uc.requestRepo.List(ctx, maintenance.Filter{
		TeamID:          query.TeamID,
		OrderBySchedule: true,
	})
	if err != nil {
		uc.logger.Errorw("failed to load kanban board", "error", err)
		return nil, err
	}

	stages := vo.AllStages()
	columns := make([]*dto.KanbanColumnDTO, len(stages))
	byStage := make(map[vo.Stage]*dto.KanbanColumnDTO, len(stages))
	for i, stage := range stages {
		columns[i] = &dto.KanbanColumnDTO{Stage: stage.String(), Requests: []*dto.RequestDTO{}}
		byStage[stage] = columns[i]
	}

	for _, card := range uc.presenter.many(listings) {
		col, ok := byStage[vo.Stage(card.Stage)]
		if !ok {
			continue
		}
		col.Requests = append(col.Requests, card)
		col.Count++
	}
	return columns, nil
}

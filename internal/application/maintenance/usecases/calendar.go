package usecases

import (
	"context"
	"time"

	"gearguard/internal/application/maintenance/dto"
	"gearguard/internal/domain/maintenance"
	vo "gearguard/internal/domain/maintenance/valueobjects"
	"gearguard/internal/shared/biztime"
	"gearguard/internal/shared/errors"
	"gearguard/internal/shared/logger"
	"gearguard/internal/shared/services/markdown"
)

// CalendarQuery selects a date window. A nil bound defaults to the current
// business month; a nil RequestType means Preventive unless AllTypes is set.
type CalendarQuery struct {
	From        *time.Time
	To          *time.Time
	RequestType *vo.RequestType
	AllTypes    bool
	TeamID      *uint
}

type GetCalendarUseCase struct {
	requestRepo maintenance.Repository
	presenter   presenter
	logger      logger.Interface
}

func NewGetCalendarUseCase(requestRepo maintenance.Repository, renderer markdown.Renderer, logger logger.Interface) *GetCalendarUseCase {
	return &GetCalendarUseCase{
		requestRepo: requestRepo,
		presenter:   presenter{renderer: renderer, logger: logger},
		logger:      logger,
	}
}

// Execute buckets requests by scheduled date. Only days with at least one
// request are returned, in date order.
func (uc *GetCalendarUseCase) Execute(ctx context.Context, query CalendarQuery) (*dto.CalendarDTO, error) {
	from, to := biztime.MonthBounds(biztime.NowUTC())
	if query.From != nil {
		from = biztime.NormalizeDate(*query.From)
	}
	if query.To != nil {
		to = biztime.NormalizeDate(*query.To)
	}
	if to.Before(from) {
		return nil, errors.NewValidationError("invalid date window", "to must not be before from")
	}

	filter := maintenance.Filter{
		ScheduledFrom:   &from,
		ScheduledTo:     &to,
		TeamID:          query.TeamID,
		OrderBySchedule: true,
	}
	if !query.AllTypes {
		requestType := vo.RequestTypePreventive
		if query.RequestType != nil {
			requestType = *query.RequestType
		}
		filter.RequestType = &requestType
	}

	listings, err := uc.requestRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to load calendar", "error", err)
		return nil, err
	}

	result := &dto.CalendarDTO{
		From: biztime.FormatDate(from),
		To:   biztime.FormatDate(to),
		Days: []*dto.CalendarDayDTO{},
	}
	var current *dto.CalendarDayDTO
	for _, card := range uc.presenter.many(listings) {
		if current == nil || current.Date != card.ScheduledDate {
			current = &dto.CalendarDayDTO{Date: card.ScheduledDate}
			result.Days = append(result.Days, current)
		}
		current.Requests = append(current.Requests, card)
	}
	return result, nil
}

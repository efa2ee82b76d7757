package usecases

import (
	"context"
	"time"

	"gearguard/internal/application/maintenance/dto"
	"gearguard/internal/domain/equipment"
	"gearguard/internal/domain/maintenance"
	"gearguard/internal/shared/biztime"
	"gearguard/internal/shared/logger"
	"gearguard/internal/shared/services/markdown"
)

// EquipmentStore is the part of the equipment repository request writes
// need: resolving the asset and retiring it on Scrap.
type EquipmentStore interface {
	GetByID(ctx context.Context, id uint) (*equipment.Equipment, error)
	Update(ctx context.Context, e *equipment.Equipment) error
}

// presenter turns listings into DTOs for one business day.
type presenter struct {
	renderer markdown.Renderer
	logger   logger.Interface
}

func (p presenter) one(l *maintenance.Listing) *dto.RequestDTO {
	return p.at(l, biztime.Today())
}

func (p presenter) many(listings []*maintenance.Listing) []*dto.RequestDTO {
	today := biztime.Today()
	out := make([]*dto.RequestDTO, 0, len(listings))
	for _, l := range listings {
		out = append(out, p.at(l, today))
	}
	return out
}

func (p presenter) at(l *maintenance.Listing, today time.Time) *dto.RequestDTO {
	if l == nil || l.Request == nil {
		return nil
	}
	var html string
	if p.renderer != nil {
		rendered, err := p.renderer.Render(l.Request.Description())
		if err != nil {
			p.logger.Warnw("failed to render request description", "request_id", l.Request.ID(), "error", err)
		} else {
			html = rendered
		}
	}
	return dto.ToRequestDTO(l, today, html)
}

package usecases

import (
	"context"

	"gearguard/internal/domain/activity"
	"gearguard/internal/domain/maintenance"
	vo "gearguard/internal/domain/maintenance/valueobjects"
	"gearguard/internal/shared/biztime"
	"gearguard/internal/shared/errors"
)

// stageChanger is the single path every stage write goes through. It does
// not persist the request itself; the caller saves it in the same
// transaction.
type stageChanger struct {
	equipmentRepo EquipmentStore
	activityRepo  activity.Repository
}

func (s stageChanger) apply(ctx context.Context, req *maintenance.Request, stage vo.Stage) (maintenance.StageTransition, error) {
	tr, err := req.ChangeStage(stage, biztime.NowUTC())
	if err != nil {
		return tr, errors.NewValidationError(err.Error())
	}

	if tr.EnteredScrap() {
		eq, err := s.equipmentRepo.GetByID(ctx, req.EquipmentID())
		if err != nil {
			return tr, err
		}
		if eq != nil {
			eq.MarkScrapped()
			if err := s.equipmentRepo.Update(ctx, eq); err != nil {
				return tr, err
			}
			if err := s.activityRepo.Append(ctx, activity.EquipmentScrapped(eq.ID(), req.ID(), eq.Name())); err != nil {
				return tr, err
			}
		}
	}

	if err := s.activityRepo.Append(ctx, activity.StageChanged(req.ID(), req.EquipmentID(), stage.String())); err != nil {
		return tr, err
	}
	return tr, nil
}

package usecases

import (
	"context"

	"gearguard/internal/shared/errors"
)

// TeamChecker is the part of the team repository equipment writes need.
type TeamChecker interface {
	Exists(ctx context.Context, id uint) (bool, error)
}

// RequestRemover deletes the requests raised against an asset.
type RequestRemover interface {
	DeleteByEquipment(ctx context.Context, equipmentID uint) error
}

func requireTeam(ctx context.Context, teams TeamChecker, teamID *uint) error {
	if teamID == nil {
		return nil
	}
	exists, err := teams.Exists(ctx, *teamID)
	if err != nil {
		return err
	}
	if !exists {
		return errors.NewNotFoundError("team not found")
	}
	return nil
}

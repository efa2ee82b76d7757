package repository

import (
	"fmt"

	"gearguard/internal/shared/errors"
)

// translateWriteError maps constraint failures onto the store's error
// taxonomy; anything else is wrapped as an unexpected failure.
func translateWriteError(err error, op, conflictMsg, conflictField string) error {
	switch {
	case err == nil:
		return nil
	case errors.IsDuplicateError(err):
		return errors.NewConflictError(conflictMsg, conflictField)
	case errors.IsForeignKeyViolation(err):
		return errors.NewNotFoundError("referenced record not found", op)
	default:
		return fmt.Errorf("failed to %s: %w", op, err)
	}
}

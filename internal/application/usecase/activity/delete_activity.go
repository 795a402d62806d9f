// Package activity contains activity-related use cases.
package activity

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/activity-log/backend/internal/application/adapter"
	domainerror "github.com/activity-log/backend/internal/domain/error"
)

// DeleteActivityInput represents the input for activity deletion.
type DeleteActivityInput struct {
	ID uuid.UUID
}

// DeleteActivityUseCase handles activity deletion logic.
type DeleteActivityUseCase struct {
	activityRepo adapter.ActivityRepository
}

// NewDeleteActivityUseCase creates a new DeleteActivityUseCase instance.
func NewDeleteActivityUseCase(activityRepo adapter.ActivityRepository) *DeleteActivityUseCase {
	return &DeleteActivityUseCase{
		activityRepo: activityRepo,
	}
}

// Execute performs the activity deletion.
func (uc *DeleteActivityUseCase) Execute(ctx context.Context, input DeleteActivityInput) error {
	if _, err := uc.activityRepo.FindByID(ctx, input.ID); err != nil {
		if errors.Is(err, domainerror.ErrRecordNotFound) {
			return err
		}
		return domainerror.NewRecordError(
			domainerror.ErrCodeDeleteRecord,
			"failed to delete activity record",
			err,
		)
	}

	if err := uc.activityRepo.Delete(ctx, input.ID); err != nil {
		return domainerror.NewRecordError(
			domainerror.ErrCodeDeleteRecord,
			"failed to delete activity record",
			err,
		)
	}

	return nil
}

// Package activity contains activity-related use cases.
package activity

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/activity-log/backend/internal/application/adapter"
	"github.com/activity-log/backend/internal/domain/entity"
	domainerror "github.com/activity-log/backend/internal/domain/error"
	"github.com/activity-log/backend/internal/domain/valueobject"
)

// CreateActivityInput represents the input for activity creation.
// OccurredAt accepts either RFC3339 variant (space- or 'T'-separated).
type CreateActivityInput struct {
	Name       string
	Notes      string
	Quantity   decimal.Decimal
	Unit       string
	OccurredAt string
}

// CreateActivityOutput represents the output of activity creation.
type CreateActivityOutput struct {
	Activity *entity.ActivityRecord
}

// CreateActivityUseCase handles activity creation logic.
type CreateActivityUseCase struct {
	activityRepo adapter.ActivityRepository
}

// NewCreateActivityUseCase creates a new CreateActivityUseCase instance.
func NewCreateActivityUseCase(activityRepo adapter.ActivityRepository) *CreateActivityUseCase {
	return &CreateActivityUseCase{
		activityRepo: activityRepo,
	}
}

// Execute performs the activity creation.
func (uc *CreateActivityUseCase) Execute(ctx context.Context, input CreateActivityInput) (*CreateActivityOutput, error) {
	if input.Name == "" {
		return nil, fmt.Errorf("activity name is required")
	}
	if len(input.Name) > entity.MaxActivityNameLength {
		return nil, fmt.Errorf("activity name must not exceed %d characters", entity.MaxActivityNameLength)
	}
	if len(input.Notes) > entity.MaxActivityNotesLength {
		return nil, fmt.Errorf("activity notes must not exceed %d characters", entity.MaxActivityNotesLength)
	}

	// Parse the occurrence date; a DateError here carries the offending
	// literal and flows back to the caller untouched.
	occurredAt, err := valueobject.ParseTimestamp(input.OccurredAt)
	if err != nil {
		return nil, err
	}

	activity := entity.NewActivityRecord(
		input.Name,
		input.Notes,
		input.Quantity,
		input.Unit,
		occurredAt,
	)

	if err := uc.activityRepo.Create(ctx, activity); err != nil {
		return nil, domainerror.NewRecordError(
			domainerror.ErrCodeCreateRecord,
			"failed to create activity record",
			err,
		)
	}

	return &CreateActivityOutput{
		Activity: activity,
	}, nil
}

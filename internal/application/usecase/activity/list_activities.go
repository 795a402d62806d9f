// Package activity contains activity-related use cases.
package activity

import (
	"context"

	"github.com/activity-log/backend/internal/application/adapter"
	"github.com/activity-log/backend/internal/domain/entity"
	domainerror "github.com/activity-log/backend/internal/domain/error"
	"github.com/activity-log/backend/internal/domain/valueobject"
)

// ListActivitiesInput represents the input for listing activities.
// From and To accept either RFC3339 variant; empty means unbounded.
type ListActivitiesInput struct {
	From string
	To   string
}

// ListActivitiesOutput represents the output of listing activities.
type ListActivitiesOutput struct {
	Activities []*entity.ActivityRecord
}

// ListActivitiesUseCase handles retrieval of the full activity record list.
type ListActivitiesUseCase struct {
	activityRepo adapter.ActivityRepository
}

// NewListActivitiesUseCase creates a new ListActivitiesUseCase instance.
func NewListActivitiesUseCase(activityRepo adapter.ActivityRepository) *ListActivitiesUseCase {
	return &ListActivitiesUseCase{
		activityRepo: activityRepo,
	}
}

// Execute retrieves the activity record list, optionally bounded by time.
func (uc *ListActivitiesUseCase) Execute(ctx context.Context, input ListActivitiesInput) (*ListActivitiesOutput, error) {
	var filter adapter.ActivityListFilter

	// Bounds are normalized to the canonical storage form so the store can
	// compare them against the occurred_at column as plain strings.
	if input.From != "" {
		from, err := valueobject.NormalizeTimestamp(input.From)
		if err != nil {
			return nil, err
		}
		filter.From = from
	}
	if input.To != "" {
		to, err := valueobject.NormalizeTimestamp(input.To)
		if err != nil {
			return nil, err
		}
		filter.To = to
	}

	activities, err := uc.activityRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, domainerror.NewRecordError(
			domainerror.ErrCodeGetFullRecordList,
			"failed to get full activity record list",
			err,
		)
	}

	return &ListActivitiesOutput{
		Activities: activities,
	}, nil
}

// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/activity-log/backend/internal/domain/entity"
)

// ActivityListFilter narrows FindAll results by occurrence time. Bounds are
// canonical space-separated RFC3339 strings; canonical strings order
// lexicographically in chronological order, so the store compares them
// directly against the occurred_at column.
type ActivityListFilter struct {
	From string // inclusive lower bound, empty means unbounded
	To   string // inclusive upper bound, empty means unbounded
}

// ActivityRepository defines the interface for activity record persistence operations.
type ActivityRepository interface {
	// Create creates a new activity record in the store.
	Create(ctx context.Context, activity *entity.ActivityRecord) error

	// FindByID retrieves an activity record by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.ActivityRecord, error)

	// FindAll retrieves the full activity record list, newest first,
	// optionally narrowed by filter.
	FindAll(ctx context.Context, filter ActivityListFilter) ([]*entity.ActivityRecord, error)

	// Delete removes an activity record from the store.
	Delete(ctx context.Context, id uuid.UUID) error
}

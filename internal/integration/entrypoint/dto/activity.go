// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/shopspring/decimal"

	"github.com/activity-log/backend/internal/domain/entity"
	"github.com/activity-log/backend/internal/domain/valueobject"
)

// CreateActivityRequest represents the request body for activity creation.
// OccurredAt accepts either RFC3339 variant (space- or 'T'-separated).
type CreateActivityRequest struct {
	Name       string          `json:"name" binding:"required,min=1,max=100"`
	Notes      string          `json:"notes,omitempty" binding:"omitempty,max=500"`
	Quantity   decimal.Decimal `json:"quantity"`
	Unit       string          `json:"unit,omitempty" binding:"omitempty,max=20"`
	OccurredAt string          `json:"occurred_at" binding:"required"`
}

// ActivityResponse represents a single activity record in API responses.
// OccurredAt is always rendered in the canonical space-separated form.
type ActivityResponse struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Notes      string          `json:"notes,omitempty"`
	Quantity   decimal.Decimal `json:"quantity"`
	Unit       string          `json:"unit,omitempty"`
	OccurredAt string          `json:"occurred_at"`
	CreatedAt  string          `json:"created_at"`
	UpdatedAt  string          `json:"updated_at"`
}

// ActivityListResponse represents the response for listing activities.
type ActivityListResponse struct {
	Activities []ActivityResponse `json:"activities"`
}

// ErrorResponse represents an error payload returned by the API.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

// ToActivityResponse converts a domain ActivityRecord entity to an ActivityResponse DTO.
func ToActivityResponse(activity *entity.ActivityRecord) (ActivityResponse, error) {
	occurredAt, err := valueobject.ToCanonical(activity.OccurredAt)
	if err != nil {
		return ActivityResponse{}, err
	}
	createdAt, err := valueobject.ToCanonical(activity.CreatedAt)
	if err != nil {
		return ActivityResponse{}, err
	}
	updatedAt, err := valueobject.ToCanonical(activity.UpdatedAt)
	if err != nil {
		return ActivityResponse{}, err
	}

	return ActivityResponse{
		ID:         activity.ID.String(),
		Name:       activity.Name,
		Notes:      activity.Notes,
		Quantity:   activity.Quantity,
		Unit:       activity.Unit,
		OccurredAt: occurredAt,
		CreatedAt:  createdAt,
		UpdatedAt:  updatedAt,
	}, nil
}

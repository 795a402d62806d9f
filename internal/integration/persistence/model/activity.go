// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/activity-log/backend/internal/domain/entity"
	"github.com/activity-log/backend/internal/domain/valueobject"
)

// ActivityModel represents the activities table in the database.
// OccurredAt holds the canonical space-separated RFC3339 string; canonical
// strings sort lexicographically in chronological order, so the column is
// directly usable for ordering and range filters.
type ActivityModel struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name       string          `gorm:"type:varchar(100);not null"`
	Notes      string          `gorm:"type:varchar(500)"`
	Quantity   decimal.Decimal `gorm:"type:numeric(12,3);not null"`
	Unit       string          `gorm:"type:varchar(20)"`
	OccurredAt string          `gorm:"type:varchar(30);not null;index"`
	CreatedAt  time.Time       `gorm:"not null"`
	UpdatedAt  time.Time       `gorm:"not null"`
}

// TableName returns the table name for the ActivityModel.
func (ActivityModel) TableName() string {
	return "activities"
}

// ToEntity converts an ActivityModel to a domain ActivityRecord entity.
// A stored timestamp that no longer parses means the store's contract was
// broken outside this application; the failure is surfaced, not repaired.
func (m *ActivityModel) ToEntity() (*entity.ActivityRecord, error) {
	occurredAt, err := valueobject.ParseTimestamp(m.OccurredAt)
	if err != nil {
		return nil, err
	}

	return &entity.ActivityRecord{
		ID:         m.ID,
		Name:       m.Name,
		Notes:      m.Notes,
		Quantity:   m.Quantity,
		Unit:       m.Unit,
		OccurredAt: occurredAt,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}, nil
}

// ActivityFromEntity creates an ActivityModel from a domain ActivityRecord
// entity. The canonical form produced here is the only timestamp
// representation ever written to the store.
func ActivityFromEntity(activity *entity.ActivityRecord) (*ActivityModel, error) {
	occurredAt, err := valueobject.ToCanonical(activity.OccurredAt)
	if err != nil {
		return nil, err
	}

	return &ActivityModel{
		ID:         activity.ID,
		Name:       activity.Name,
		Notes:      activity.Notes,
		Quantity:   activity.Quantity,
		Unit:       activity.Unit,
		OccurredAt: occurredAt,
		CreatedAt:  activity.CreatedAt,
		UpdatedAt:  activity.UpdatedAt,
	}, nil
}

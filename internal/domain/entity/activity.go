// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MaxActivityNameLength is the maximum allowed length for activity names.
const MaxActivityNameLength = 100

// MaxActivityNotesLength is the maximum allowed length for activity notes.
const MaxActivityNotesLength = 500

// ActivityRecord represents a single timestamped activity in the Activity Log system.
// OccurredAt is always a valid instant; the persistence layer stores it as the
// canonical space-separated RFC3339 string.
type ActivityRecord struct {
	ID         uuid.UUID
	Name       string
	Notes      string
	Quantity   decimal.Decimal
	Unit       string
	OccurredAt time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// NewActivityRecord creates a new ActivityRecord entity.
// Input validation (name length, date parsing) is an Application layer
// responsibility performed before calling this constructor.
func NewActivityRecord(name, notes string, quantity decimal.Decimal, unit string, occurredAt time.Time) *ActivityRecord {
	now := time.Now().UTC()

	return &ActivityRecord{
		ID:         uuid.New(),
		Name:       name,
		Notes:      notes,
		Quantity:   quantity,
		Unit:       unit,
		OccurredAt: occurredAt,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// Package activity contains activity-related use cases.
package activity

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/activity-log/backend/internal/application/adapter"
	"github.com/activity-log/backend/internal/domain/entity"
	domainerror "github.com/activity-log/backend/internal/domain/error"
)

// fakeActivityRepository is an in-memory adapter.ActivityRepository for tests.
type fakeActivityRepository struct {
	records   map[uuid.UUID]*entity.ActivityRecord
	createErr error
	findErr   error
	deleteErr error
}

func newFakeActivityRepository() *fakeActivityRepository {
	return &fakeActivityRepository{
		records: make(map[uuid.UUID]*entity.ActivityRecord),
	}
}

func (f *fakeActivityRepository) Create(_ context.Context, activity *entity.ActivityRecord) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.records[activity.ID] = activity
	return nil
}

func (f *fakeActivityRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.ActivityRecord, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	record, ok := f.records[id]
	if !ok {
		return nil, domainerror.ErrRecordNotFound
	}
	return record, nil
}

func (f *fakeActivityRepository) FindAll(_ context.Context, filter adapter.ActivityListFilter) ([]*entity.ActivityRecord, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	activities := make([]*entity.ActivityRecord, 0, len(f.records))
	for _, record := range f.records {
		activities = append(activities, record)
	}
	return activities, nil
}

func (f *fakeActivityRepository) Delete(_ context.Context, id uuid.UUID) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	delete(f.records, id)
	return nil
}

func TestCreateActivity(t *testing.T) {
	repo := newFakeActivityRepository()
	uc := NewCreateActivityUseCase(repo)

	output, err := uc.Execute(context.Background(), CreateActivityInput{
		Name:       "Morning run",
		Notes:      "Easy pace",
		Quantity:   decimal.NewFromFloat(7.5),
		Unit:       "km",
		OccurredAt: "2025-03-28 06:15:00.000Z",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := time.Date(2025, 3, 28, 6, 15, 0, 0, time.UTC)
	if !output.Activity.OccurredAt.Equal(want) {
		t.Errorf("OccurredAt = %v, want %v", output.Activity.OccurredAt, want)
	}
	if len(repo.records) != 1 {
		t.Errorf("expected 1 persisted record, got %d", len(repo.records))
	}
}

func TestCreateActivityInvalidDate(t *testing.T) {
	tests := []struct {
		name       string
		occurredAt string
		wantCode   domainerror.DateErrorCode
	}{
		{
			name:       "empty date string",
			occurredAt: "",
			wantCode:   domainerror.ErrCodeDateInvalidFormat,
		},
		{
			name:       "unparseable date string",
			occurredAt: "yesterday-ish",
			wantCode:   domainerror.ErrCodeDateInvalidFormat,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeActivityRepository()
			uc := NewCreateActivityUseCase(repo)

			_, err := uc.Execute(context.Background(), CreateActivityInput{
				Name:       "Morning run",
				OccurredAt: tt.occurredAt,
			})
			if err == nil {
				t.Fatal("expected error")
			}

			var dateErr *domainerror.DateError
			if !errors.As(err, &dateErr) {
				t.Fatalf("expected *DateError, got %T", err)
			}
			if dateErr.Code != tt.wantCode {
				t.Errorf("code = %q, want %q", dateErr.Code, tt.wantCode)
			}
			if len(repo.records) != 0 {
				t.Error("no record should be persisted on date failure")
			}
		})
	}
}

func TestCreateActivityStoreFailure(t *testing.T) {
	repo := newFakeActivityRepository()
	repo.createErr = errors.New("connection reset")
	uc := NewCreateActivityUseCase(repo)

	_, err := uc.Execute(context.Background(), CreateActivityInput{
		Name:       "Morning run",
		OccurredAt: "2025-03-28T06:15:00.000Z",
	})
	if err == nil {
		t.Fatal("expected error")
	}

	var recordErr *domainerror.RecordError
	if !errors.As(err, &recordErr) {
		t.Fatalf("expected *RecordError, got %T", err)
	}
	if recordErr.Code != domainerror.ErrCodeCreateRecord {
		t.Errorf("code = %q, want %q", recordErr.Code, domainerror.ErrCodeCreateRecord)
	}
	if !errors.Is(err, repo.createErr) {
		t.Error("expected the store failure to be preserved as cause")
	}
}

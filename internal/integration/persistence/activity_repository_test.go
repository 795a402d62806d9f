// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/activity-log/backend/internal/application/adapter"
	"github.com/activity-log/backend/internal/domain/entity"
	domainerror "github.com/activity-log/backend/internal/domain/error"
	"github.com/activity-log/backend/internal/integration/persistence/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open in-memory database: %v", err)
	}
	if err := db.AutoMigrate(&model.ActivityModel{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

func seedActivity(t *testing.T, repo *activityRepository, name string, occurredAt time.Time) *entity.ActivityRecord {
	t.Helper()

	activity := entity.NewActivityRecord(name, "", decimal.NewFromInt(1), "session", occurredAt)
	if err := repo.Create(context.Background(), activity); err != nil {
		t.Fatalf("failed to seed activity: %v", err)
	}
	return activity
}

func TestActivityRepositoryCreateAndFind(t *testing.T) {
	db := newTestDB(t)
	repo := &activityRepository{db: db}

	occurredAt := time.Date(2025, 3, 28, 12, 30, 45, 0, time.UTC)
	created := seedActivity(t, repo, "Morning run", occurredAt)

	found, err := repo.FindByID(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !found.OccurredAt.Equal(occurredAt) {
		t.Errorf("OccurredAt = %v, want %v", found.OccurredAt, occurredAt)
	}

	// The column itself must hold the canonical space-separated form.
	var stored model.ActivityModel
	if err := db.Where("id = ?", created.ID).First(&stored).Error; err != nil {
		t.Fatalf("failed to read raw model: %v", err)
	}
	if stored.OccurredAt != "2025-03-28 12:30:45.000Z" {
		t.Errorf("stored occurred_at = %q, want %q", stored.OccurredAt, "2025-03-28 12:30:45.000Z")
	}
}

func TestActivityRepositoryFindByIDNotFound(t *testing.T) {
	db := newTestDB(t)
	repo := &activityRepository{db: db}

	_, err := repo.FindByID(context.Background(), uuid.New())
	if !errors.Is(err, domainerror.ErrRecordNotFound) {
		t.Errorf("expected ErrRecordNotFound, got %v", err)
	}
}

func TestActivityRepositoryCreateInvalidTimestamp(t *testing.T) {
	db := newTestDB(t)
	repo := &activityRepository{db: db}

	activity := entity.NewActivityRecord("Broken", "", decimal.Zero, "", time.Time{})
	err := repo.Create(context.Background(), activity)
	if err == nil {
		t.Fatal("expected error for the reserved invalid instant")
	}

	var dateErr *domainerror.DateError
	if !errors.As(err, &dateErr) {
		t.Fatalf("expected *DateError, got %T", err)
	}
	if dateErr.Code != domainerror.ErrCodeDateInvalid {
		t.Errorf("code = %q, want %q", dateErr.Code, domainerror.ErrCodeDateInvalid)
	}
}

func TestActivityRepositoryFindAllOrdersAndFilters(t *testing.T) {
	db := newTestDB(t)
	repo := &activityRepository{db: db}

	seedActivity(t, repo, "Day one", time.Date(2025, 3, 26, 8, 0, 0, 0, time.UTC))
	seedActivity(t, repo, "Day two", time.Date(2025, 3, 27, 8, 0, 0, 0, time.UTC))
	seedActivity(t, repo, "Day three", time.Date(2025, 3, 28, 8, 0, 0, 0, time.UTC))

	all, err := repo.FindAll(context.Background(), adapter.ActivityListFilter{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 activities, got %d", len(all))
	}
	if all[0].Name != "Day three" || all[2].Name != "Day one" {
		t.Errorf("expected newest-first ordering, got %q ... %q", all[0].Name, all[2].Name)
	}

	filtered, err := repo.FindAll(context.Background(), adapter.ActivityListFilter{
		From: "2025-03-27 00:00:00.000Z",
		To:   "2025-03-27 23:59:59.999Z",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(filtered) != 1 || filtered[0].Name != "Day two" {
		t.Errorf("expected only the middle activity, got %d results", len(filtered))
	}
}

func TestActivityRepositoryDelete(t *testing.T) {
	db := newTestDB(t)
	repo := &activityRepository{db: db}

	created := seedActivity(t, repo, "Morning run", time.Date(2025, 3, 28, 8, 0, 0, 0, time.UTC))

	if err := repo.Delete(context.Background(), created.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := repo.FindByID(context.Background(), created.ID); !errors.Is(err, domainerror.ErrRecordNotFound) {
		t.Errorf("expected ErrRecordNotFound after delete, got %v", err)
	}
}

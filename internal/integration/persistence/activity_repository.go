// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/activity-log/backend/internal/application/adapter"
	"github.com/activity-log/backend/internal/domain/entity"
	domainerror "github.com/activity-log/backend/internal/domain/error"
	"github.com/activity-log/backend/internal/integration/persistence/model"
)

// activityRepository implements the adapter.ActivityRepository interface.
type activityRepository struct {
	db *gorm.DB
}

// NewActivityRepository creates a new activity repository instance.
func NewActivityRepository(db *gorm.DB) adapter.ActivityRepository {
	return &activityRepository{
		db: db,
	}
}

// Create creates a new activity record in the database.
func (r *activityRepository) Create(ctx context.Context, activity *entity.ActivityRecord) error {
	activityModel, err := model.ActivityFromEntity(activity)
	if err != nil {
		return err
	}
	result := r.db.WithContext(ctx).Create(activityModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves an activity record by its ID.
func (r *activityRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.ActivityRecord, error) {
	var activityModel model.ActivityModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&activityModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrRecordNotFound
		}
		return nil, result.Error
	}
	return activityModel.ToEntity()
}

// FindAll retrieves the full activity record list, newest first, optionally
// narrowed by filter. Filter bounds are canonical strings compared directly
// against the occurred_at column.
func (r *activityRepository) FindAll(ctx context.Context, filter adapter.ActivityListFilter) ([]*entity.ActivityRecord, error) {
	query := r.db.WithContext(ctx).Model(&model.ActivityModel{})
	if filter.From != "" {
		query = query.Where("occurred_at >= ?", filter.From)
	}
	if filter.To != "" {
		query = query.Where("occurred_at <= ?", filter.To)
	}

	var activityModels []model.ActivityModel
	result := query.Order("occurred_at DESC").Find(&activityModels)
	if result.Error != nil {
		return nil, result.Error
	}

	activities := make([]*entity.ActivityRecord, len(activityModels))
	for i, am := range activityModels {
		activity, err := am.ToEntity()
		if err != nil {
			return nil, err
		}
		activities[i] = activity
	}
	return activities, nil
}

// Delete removes an activity record from the database.
func (r *activityRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.ActivityModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

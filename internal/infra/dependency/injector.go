// Package dependency provides dependency injection for the application.
package dependency

import (
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/activity-log/backend/config"
	"github.com/activity-log/backend/internal/application/usecase/activity"
	"github.com/activity-log/backend/internal/infra/server/router"
	"github.com/activity-log/backend/internal/integration/entrypoint/controller"
	"github.com/activity-log/backend/internal/integration/entrypoint/middleware"
	"github.com/activity-log/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config *config.Config
	DB     *gorm.DB
	Router *router.Router
}

// NewInjector creates a new dependency injector with all dependencies wired.
// The record store client is constructed once here and shared by everything
// that needs it; redisClient may be nil, which degrades rate limiting to
// per-process counters.
func NewInjector(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *Injector {
	// Create repositories
	activityRepo := persistence.NewActivityRepository(db)

	// Create activity use cases
	createActivityUseCase := activity.NewCreateActivityUseCase(activityRepo)
	listActivitiesUseCase := activity.NewListActivitiesUseCase(activityRepo)
	deleteActivityUseCase := activity.NewDeleteActivityUseCase(activityRepo)

	// Create controllers
	healthController := controller.NewHealthController(func() bool {
		sqlDB, err := db.DB()
		if err != nil {
			return false
		}
		return sqlDB.Ping() == nil
	})

	activityController := controller.NewActivityController(
		createActivityUseCase,
		listActivitiesUseCase,
		deleteActivityUseCase,
	)

	// Create middleware
	writeRateLimiter := middleware.NewRateLimiterWithConfig(
		redisClient,
		cfg.RateLimit.MaxAttempts,
		cfg.RateLimit.WindowDuration,
	)

	// Create router
	r := router.NewRouter(healthController, activityController, writeRateLimiter)

	return &Injector{
		Config: cfg,
		DB:     db,
		Router: r,
	}
}

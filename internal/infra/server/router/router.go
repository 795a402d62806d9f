// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/activity-log/backend/internal/integration/entrypoint/controller"
	"github.com/activity-log/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine             *gin.Engine
	healthController   *controller.HealthController
	activityController *controller.ActivityController
	writeRateLimiter   *middleware.RateLimiter
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	activityController *controller.ActivityController,
	writeRateLimiter *middleware.RateLimiter,
) *Router {
	return &Router{
		healthController:   healthController,
		activityController: activityController,
		writeRateLimiter:   writeRateLimiter,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	// Set Gin mode based on environment
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Create router with default middleware (logger and recovery)
	r.engine = gin.Default()

	// Setup routes
	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	if r.activityController == nil {
		return
	}

	api := r.engine.Group("/api/v1")

	activities := api.Group("/activities")
	{
		activities.GET("", r.activityController.List)

		// Writes go through the rate limiter.
		writes := activities.Group("")
		if r.writeRateLimiter != nil {
			writes.Use(r.writeRateLimiter.Middleware())
		}
		writes.POST("", r.activityController.Create)
		writes.DELETE("/:id", r.activityController.Delete)
	}
}

package router

import (
	"github.com/gin-gonic/gin"

	"github.com/nutri-app/nutri/backend/internal/api"
	"github.com/nutri-app/nutri/backend/internal/middleware"
)

// Handlers groups every route handler the router mounts.
type Handlers struct {
	Health    *api.HealthHandler
	AI        *api.AIHandler
	Auth      *api.AuthHandler
	Profile   *api.ProfileHandler
	Progress  *api.ProgressHandler
	Bookmark  *api.BookmarkHandler
	Meal      *api.MealHandler
	Dashboard *api.DashboardHandler
}

// Options carries the cross-cutting pieces of the router.
type Options struct {
	Auth      middleware.TokenValidator
	AILimiter *middleware.RateLimiter
	BodyLimit int64
}

// SetupRouter configures the application routes
func SetupRouter(h Handlers, opts Options) *gin.Engine {
	router := gin.New()
	router.Use(middleware.RequestLogger(), middleware.Recovery())

	// CORS middleware
	router.Use(middleware.CORS())
	if opts.BodyLimit > 0 {
		router.Use(middleware.BodyLimit(opts.BodyLimit))
	}

	router.GET("/health", h.Health.HealthCheck)
	router.POST("/bmi", api.CalculateBMI)

	// Generative routes keep the root paths the mobile client uses.
	ai := router.Group("")
	ai.Use(middleware.OptionalAuth(opts.Auth))
	if opts.AILimiter != nil {
		ai.Use(opts.AILimiter.RateLimitMiddleware())
	}
	h.AI.RegisterRoutes(ai)

	// API v1 routes
	v1 := router.Group("/api/v1")
	h.Auth.RegisterRoutes(v1)

	// Protected routes
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(opts.Auth))
	{
		h.Profile.RegisterRoutes(protected)
		h.Progress.RegisterRoutes(protected)
		h.Bookmark.RegisterRoutes(protected)
		h.Dashboard.RegisterRoutes(protected)

		var analyze []gin.HandlerFunc
		if opts.AILimiter != nil {
			analyze = append(analyze, opts.AILimiter.RateLimitMiddleware())
		}
		h.Meal.RegisterRoutes(protected, analyze...)
	}

	return router
}

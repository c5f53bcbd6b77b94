package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/nutri-app/nutri/backend/config"
	"github.com/nutri-app/nutri/backend/internal/api"
	"github.com/nutri-app/nutri/backend/internal/llm"
	"github.com/nutri-app/nutri/backend/internal/middleware"
	"github.com/nutri-app/nutri/backend/internal/router"
	"github.com/nutri-app/nutri/backend/internal/service"
)

const (
	shutdownTimeout = 5 * time.Second
	tipsCacheSize   = 256
)

// Deps are the external resources the server is built on. Redis and Store
// are optional.
type Deps struct {
	DB    *gorm.DB
	Redis *redis.Client
	LLM   llm.Client
	Store service.ObjectStore
}

// Server represents the HTTP server
type Server struct {
	cfg    *config.Config
	router *gin.Engine
	http   *http.Server
}

// New wires services, handlers and routes.
func New(cfg *config.Config, deps Deps) *Server {
	var tipsCache service.TipsCache
	var aiLimiter *middleware.RateLimiter
	if deps.Redis != nil {
		tipsCache = service.NewRedisTipsCache(deps.Redis, service.TipsTTL)
		if cfg.AIRateLimit > 0 {
			aiLimiter = middleware.NewAIRateLimiter(deps.Redis, cfg.AIRateLimit)
		}
	} else {
		tipsCache = service.NewMemoryTipsCache(tipsCacheSize, service.TipsTTL)
	}

	authService := service.NewAuthService(deps.DB, cfg.JWTSecret)
	aiService := service.NewAIService(deps.LLM, tipsCache)
	profileService := service.NewProfileService(deps.DB)
	progressService := service.NewProgressService(deps.DB)
	recommendationService := service.NewRecommendationService(deps.DB)
	bookmarkService := service.NewBookmarkService(deps.DB)
	mealService := service.NewMealService(deps.DB, aiService, deps.Store)
	dashboardService := service.NewDashboardService(profileService, progressService, mealService, bookmarkService, recommendationService)

	var imageService service.IImageService
	if deps.Store != nil {
		imageService = service.NewImageService(deps.Store)
	}

	engine := router.SetupRouter(router.Handlers{
		Health:    api.NewHealthHandler(deps.DB, deps.Redis),
		AI:        api.NewAIHandler(aiService, recommendationService),
		Auth:      api.NewAuthHandler(authService),
		Profile:   api.NewProfileHandler(profileService, imageService),
		Progress:  api.NewProgressHandler(progressService, recommendationService),
		Bookmark:  api.NewBookmarkHandler(bookmarkService),
		Meal:      api.NewMealHandler(mealService),
		Dashboard: api.NewDashboardHandler(dashboardService),
	}, router.Options{
		Auth:      authService,
		AILimiter: aiLimiter,
		BodyLimit: cfg.BodyLimit,
	})

	return &Server{
		cfg:    cfg,
		router: engine,
		http: &http.Server{
			Addr:              net.JoinHostPort(cfg.ServerHost, cfg.ServerPort),
			Handler:           engine,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		log.Info().Msgf("Server running at http://%s", s.http.Addr)
		if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("failed to start server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info().Msg("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return s.Stop(shutdownCtx)
}

// Stop gracefully stops the HTTP server
func (s *Server) Stop(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}

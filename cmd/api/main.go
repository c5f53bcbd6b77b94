package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/nutri-app/nutri/backend/config"
	"github.com/nutri-app/nutri/backend/internal/database"
	"github.com/nutri-app/nutri/backend/internal/llm"
	"github.com/nutri-app/nutri/backend/internal/logger"
	"github.com/nutri-app/nutri/backend/internal/server"
	"github.com/nutri-app/nutri/backend/internal/service"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}
	logger.Init(cfg.Environment, cfg.LogLevel)
	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.Open(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	if cfg.AutoMigrate {
		if err := database.RunMigrations(ctx, db, cfg.MigrationsDir); err != nil {
			log.Fatal().Err(err).Msg("Failed to run migrations")
		}
	}

	deps := server.Deps{DB: db}

	if cfg.RedisEnabled() {
		rdb, err := database.NewRedisClient(cfg)
		if err != nil {
			log.Warn().Err(err).Msg("Redis unavailable, continuing without rate limiting")
		} else {
			defer rdb.Close()
			deps.Redis = rdb
		}
	}

	gemini, err := llm.NewGemini(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create Gemini client")
	}
	defer gemini.Close()
	deps.LLM = gemini

	if cfg.S3Bucket != "" {
		s3Config, err := config.NewS3Config(ctx, cfg)
		if err != nil {
			log.Warn().Err(err).Msg("S3 unavailable, image uploads disabled")
		} else {
			deps.Store = service.NewS3Store(s3Config)
		}
	}

	srv := server.New(cfg, deps)
	if err := srv.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server error")
	}
	log.Info().Msg("Server stopped")
}

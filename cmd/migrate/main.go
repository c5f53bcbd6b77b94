package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/nutri-app/nutri/backend/config"
	"github.com/nutri-app/nutri/backend/internal/database"
	"github.com/nutri-app/nutri/backend/internal/logger"
)

func main() {
	// Parse command line flags
	rollback := flag.Bool("rollback", false, "Rollback the last migration")
	dir := flag.String("dir", "", "Migrations directory (defaults to MIGRATIONS_DIR or ./migrations)")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}
	logger.Init(cfg.Environment, cfg.LogLevel)

	if cfg.DBDriver != config.DriverPostgres {
		log.Fatal().Str("driver", cfg.DBDriver).Msg("SQL migrations only run against postgres")
	}

	migrationsDir := cfg.MigrationsDir
	if *dir != "" {
		migrationsDir = *dir
	}

	db, err := database.NewFromConfig(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()
	if err := db.HealthCheck(ctx); err != nil {
		log.Fatal().Err(err).Msg("Database is not reachable")
	}

	migrator := database.NewMigrator(db.DB, migrationsDir)

	if *rollback {
		name, err := migrator.Rollback(ctx)
		if errors.Is(err, database.ErrNoMigrations) {
			fmt.Println("No migrations to rollback")
			return
		}
		if err != nil {
			log.Fatal().Err(err).Msg("Rollback failed")
		}
		fmt.Printf("Successfully rolled back migration: %s\n", name)
		return
	}

	applied, err := migrator.Up(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("Migration failed")
	}
	if len(applied) == 0 {
		fmt.Println("Database is up to date")
		return
	}
	for _, name := range applied {
		fmt.Printf("Successfully applied migration: %s\n", name)
	}
}

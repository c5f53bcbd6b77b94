package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/nutri-app/nutri/backend/config"
	"github.com/nutri-app/nutri/backend/internal/database"
	"github.com/nutri-app/nutri/backend/internal/logger"
	"github.com/nutri-app/nutri/backend/internal/service"
	"github.com/nutri-app/nutri/backend/internal/types"
)

const password = "testpassword123"

type testUser struct {
	name     string
	email    string
	age      int
	gender   string
	heightCm float64
	weights  []float64
	risk     string
}

var testUsers = []testUser{
	{name: "Aisyah Rahman", email: "aisyah@example.com", age: 28, gender: "female", heightCm: 158, weights: []float64{68, 67.2, 66.5}, risk: "Overweight_Level_I"},
	{name: "Daniel Tan", email: "daniel@example.com", age: 35, gender: "male", heightCm: 172, weights: []float64{95, 93.8}, risk: "Obesity_Type_I"},
	{name: "Priya Nair", email: "priya@example.com", age: 22, gender: "female", heightCm: 165, weights: []float64{49.5}, risk: "Insufficient_Weight"},
	{name: "Test Normal", email: "normal@example.com", age: 30, gender: "male", heightCm: 178, risk: "Normal_Weight"},
}

var sampleBookmark = json.RawMessage(`{
	"recipeName": "Grilled Chicken Salad",
	"recipeDescription": "High protein salad with leafy greens",
	"recipeItems": ["chicken breast", "lettuce", "cucumber"],
	"cookingInstructions": ["Grill the chicken", "Toss with the vegetables"],
	"recipeCalories": 350,
	"recipeBenefits": "Keeps you full with few calories",
	"iconClass": "leaf",
	"estimatedCookingTime": "25 minutes"
}`)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}
	logger.Init(cfg.Environment, cfg.LogLevel)

	db, err := database.Open(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	ctx := context.Background()
	if err := database.RunMigrations(ctx, db, cfg.MigrationsDir); err != nil {
		log.Fatal().Err(err).Msg("Failed to run migrations")
	}

	auth := service.NewAuthService(db, cfg.JWTSecret)
	profiles := service.NewProfileService(db)
	progress := service.NewProgressService(db)
	bookmarks := service.NewBookmarkService(db)

	log.Info().Msg("Creating test users...")

	created := 0
	for _, u := range testUsers {
		user, _, err := auth.Register(ctx, &types.RegisterRequest{
			FullName: u.name,
			Email:    u.email,
			Password: password,
		})
		if errors.Is(err, service.ErrAlreadyExists) {
			log.Info().Msgf("User %s already exists, skipping...", u.email)
			continue
		}
		if err != nil {
			log.Error().Err(err).Msgf("Failed to create user %s", u.email)
			continue
		}

		weight := u.heightCm * u.heightCm / 10000 * 22
		if len(u.weights) > 0 {
			weight = u.weights[len(u.weights)-1]
		}
		_, err = profiles.UpdateProfile(ctx, user.ID, &types.UpdateProfileRequest{
			Age:         &u.age,
			Gender:      &u.gender,
			HeightCm:    &u.heightCm,
			WeightKg:    &weight,
			ObesityRisk: &u.risk,
		})
		if err != nil {
			log.Error().Err(err).Msgf("Failed to update profile for %s", u.email)
			continue
		}

		// One check-in per week, oldest first.
		start := time.Now().AddDate(0, 0, -7*(len(u.weights)-1))
		for i, w := range u.weights {
			date := start.AddDate(0, 0, 7*i).Format("2006-01-02")
			if _, err := progress.AddProgress(ctx, user.ID, &types.CreateProgressRequest{WeightKg: w, Date: date}); err != nil {
				log.Error().Err(err).Msgf("Failed to add progress for %s", u.email)
			}
		}

		_, err = bookmarks.AddBookmark(ctx, user.ID, &types.CreateBookmarkRequest{
			ItemID:   "grilled-chicken-salad",
			Type:     "recipe",
			ItemData: sampleBookmark,
		})
		if err != nil {
			log.Error().Err(err).Msgf("Failed to add bookmark for %s", u.email)
		}

		created++
		log.Info().Msgf("Created user: %s (%s)", u.name, u.email)
	}

	fmt.Printf("Created %d test users. Password for all of them: %s\n", created, password)
}

package service

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/nutri-app/nutri/backend/internal/llm"
	"github.com/nutri-app/nutri/backend/internal/models"
	"github.com/nutri-app/nutri/backend/internal/normalizer"
	"github.com/nutri-app/nutri/backend/internal/types"
)

// MealService keeps the per-day calorie log.
type MealService struct {
	db    *gorm.DB
	ai    IAIService
	store ObjectStore
}

var _ IMealService = (*MealService)(nil)

// NewMealService creates a MealService. store may be nil, in which case
// analyzed photos are not kept.
func NewMealService(db *gorm.DB, ai IAIService, store ObjectStore) *MealService {
	return &MealService{db: db, ai: ai, store: store}
}

func (s *MealService) AddMeal(ctx context.Context, userID uuid.UUID, req *types.CreateMealRequest) (*models.Meal, error) {
	if !models.ValidMealType(req.MealType) {
		return nil, fmt.Errorf("meal type %q: %w", req.MealType, ErrInvalidInput)
	}
	if req.CaloriesAmount < 0 {
		return nil, fmt.Errorf("calories: %w", ErrInvalidInput)
	}
	date, err := normalizeDate(req.Date)
	if err != nil {
		return nil, err
	}

	items := req.FoodItems
	if items == nil {
		items = []models.FoodItem{}
	}
	foodItems, err := models.MarshalJSONValue(items)
	if err != nil {
		return nil, err
	}

	meal := &models.Meal{
		UserID:         userID,
		Date:           date,
		MealType:       req.MealType,
		CaloriesAmount: req.CaloriesAmount,
		DishName:       strings.TrimSpace(req.DishName),
		ImageURL:       req.ImageURL,
		FoodItems:      foodItems,
		Notes:          models.JSONBStringArray(req.Notes),
	}
	if err := s.db.WithContext(ctx).Create(meal).Error; err != nil {
		return nil, fmt.Errorf("failed to save meal: %w", err)
	}
	return meal, nil
}

// MealsForDay returns the day's meals in the order they were logged and their
// calorie total.
func (s *MealService) MealsForDay(ctx context.Context, userID uuid.UUID, date string) (*types.DailyMeals, error) {
	date, err := normalizeDate(date)
	if err != nil {
		return nil, err
	}

	meals := []*models.Meal{}
	err = s.db.WithContext(ctx).
		Where("user_id = ? AND date = ?", userID, date).
		Order("created_at ASC").
		Find(&meals).Error
	if err != nil {
		return nil, err
	}

	day := &types.DailyMeals{Date: date, Meals: meals}
	for _, m := range meals {
		day.TotalCalories += m.CaloriesAmount
	}
	return day, nil
}

func (s *MealService) DeleteMeal(ctx context.Context, userID, mealID uuid.UUID) error {
	result := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", mealID, userID).
		Delete(&models.Meal{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// AnalyzeMeal estimates the calories in a food photo and logs the result as a meal.
func (s *MealService) AnalyzeMeal(ctx context.Context, userID uuid.UUID, req *types.AnalyzeMealRequest) (*models.Meal, *normalizer.CalorieEstimate, error) {
	if !models.ValidMealType(req.MealType) {
		return nil, nil, fmt.Errorf("meal type %q: %w", req.MealType, ErrInvalidInput)
	}
	if _, err := normalizeDate(req.Date); err != nil {
		return nil, nil, err
	}

	estimate, err := s.ai.EstimateCalories(ctx, req.Base64Image)
	if err != nil {
		return nil, nil, err
	}

	items := make([]models.FoodItem, 0, len(estimate.FoodItems))
	for _, it := range estimate.FoodItems {
		items = append(items, models.FoodItem{
			Name:     it.Name.String(),
			Calories: it.Calories.Float64(),
			Portion:  it.Portion.String(),
		})
	}

	meal, err := s.AddMeal(ctx, userID, &types.CreateMealRequest{
		MealType:       req.MealType,
		CaloriesAmount: estimate.TotalCalories.Float64(),
		DishName:       estimate.DishName.String(),
		ImageURL:       s.keepPhoto(ctx, userID, req.Base64Image),
		FoodItems:      items,
		Notes:          estimate.Notes,
		Date:           req.Date,
	})
	if err != nil {
		return nil, nil, err
	}
	return meal, estimate, nil
}

// keepPhoto uploads the analyzed photo. Failures only cost the thumbnail.
func (s *MealService) keepPhoto(ctx context.Context, userID uuid.UUID, dataURL string) string {
	if s.store == nil {
		return ""
	}
	image, mimeType, err := llm.DecodeDataURL(dataURL)
	if err != nil {
		return ""
	}
	key, err := imageKey("meals", userID, "", mimeType)
	if err != nil {
		return ""
	}
	url, err := s.store.Upload(ctx, key, mimeType, bytes.NewReader(image))
	if err != nil {
		log.Warn().Err(err).Str("user_id", userID.String()).Msg("failed to store meal photo")
		return ""
	}
	return url
}

package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/nutri-app/nutri/backend/internal/models"
	"github.com/nutri-app/nutri/backend/internal/testhelpers"
	"github.com/nutri-app/nutri/backend/internal/types"
)

func TestMealsForDay(t *testing.T) {
	freezeTime(t, time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC))
	db := setupDB(t)
	userID := createUser(t, db)
	svc := NewMealService(db, nil, nil)
	ctx := context.Background()

	_, err := svc.AddMeal(ctx, userID, &types.CreateMealRequest{
		MealType: "breakfast", CaloriesAmount: 350, DishName: "Roti Canai",
		FoodItems: []models.FoodItem{{Name: "roti", Calories: 300, Portion: "1 piece"}},
	})
	require.NoError(t, err)
	_, err = svc.AddMeal(ctx, userID, &types.CreateMealRequest{MealType: "lunch", CaloriesAmount: 600})
	require.NoError(t, err)
	_, err = svc.AddMeal(ctx, userID, &types.CreateMealRequest{MealType: "dinner", CaloriesAmount: 500, Date: "2024-05-31"})
	require.NoError(t, err)

	day, err := svc.MealsForDay(ctx, userID, "")
	require.NoError(t, err)
	assert.Equal(t, "2024-06-01", day.Date)
	require.Len(t, day.Meals, 2)
	assert.Equal(t, 950.0, day.TotalCalories)

	var items []models.FoodItem
	require.NoError(t, json.Unmarshal(day.Meals[0].FoodItems, &items))
	assert.Equal(t, "roti", items[0].Name)

	yesterday, err := svc.MealsForDay(ctx, userID, "2024-05-31")
	require.NoError(t, err)
	assert.Equal(t, 500.0, yesterday.TotalCalories)
}

func TestMealsForDayEmpty(t *testing.T) {
	db := setupDB(t)
	day, err := NewMealService(db, nil, nil).MealsForDay(context.Background(), uuid.New(), "2024-01-01")
	require.NoError(t, err)
	assert.NotNil(t, day.Meals)
	assert.Zero(t, day.TotalCalories)
}

func TestAddMealValidation(t *testing.T) {
	db := setupDB(t)
	svc := NewMealService(db, nil, nil)

	_, err := svc.AddMeal(context.Background(), uuid.New(), &types.CreateMealRequest{MealType: "brunch"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.AddMeal(context.Background(), uuid.New(), &types.CreateMealRequest{MealType: "snack", Date: "yesterday"})
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestDeleteMeal(t *testing.T) {
	db := setupDB(t)
	alice, bob := createUser(t, db), createUser(t, db)
	svc := NewMealService(db, nil, nil)

	meal, err := svc.AddMeal(context.Background(), alice, &types.CreateMealRequest{MealType: "snack", CaloriesAmount: 90})
	require.NoError(t, err)

	assert.ErrorIs(t, svc.DeleteMeal(context.Background(), bob, meal.ID), ErrNotFound)
	require.NoError(t, svc.DeleteMeal(context.Background(), alice, meal.ID))
	assert.ErrorIs(t, svc.DeleteMeal(context.Background(), alice, meal.ID), ErrNotFound)
}

func TestAnalyzeMeal(t *testing.T) {
	db := setupDB(t)
	userID := createUser(t, db)

	client := new(testhelpers.MockLLMClient)
	client.On("GenerateWithImage", mock.Anything, mock.Anything, mock.Anything, "image/png").Return(calorieJSON, nil)

	store := new(testhelpers.MockObjectStore)
	store.On("Upload", mock.Anything, mock.MatchedBy(func(key string) bool {
		return len(key) > len("meals/") && key[:6] == "meals/"
	}), "image/png", mock.Anything).Return("https://bucket.s3.amazonaws.com/meals/x.png", nil)

	svc := NewMealService(db, NewAIService(client, nil), store)
	meal, est, err := svc.AnalyzeMeal(context.Background(), userID, &types.AnalyzeMealRequest{
		Base64Image: tinyPNG,
		MealType:    "lunch",
		Date:        "2024-06-01",
	})
	require.NoError(t, err)
	assert.Equal(t, "Nasi Lemak", est.DishName.String())
	assert.Equal(t, "Nasi Lemak", meal.DishName)
	assert.Equal(t, 420.0, meal.CaloriesAmount)
	assert.Equal(t, "https://bucket.s3.amazonaws.com/meals/x.png", meal.ImageURL)
	assert.Equal(t, models.JSONBStringArray{"estimate only"}, meal.Notes)

	var items []models.FoodItem
	require.NoError(t, json.Unmarshal(meal.FoodItems, &items))
	require.Len(t, items, 2)
	assert.Equal(t, "Unknown Item", items[1].Name)
	store.AssertExpectations(t)
}

func TestAnalyzeMealKeepsMealWhenUploadFails(t *testing.T) {
	db := setupDB(t)
	userID := createUser(t, db)

	client := new(testhelpers.MockLLMClient)
	client.On("GenerateWithImage", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(calorieJSON, nil)
	store := new(testhelpers.MockObjectStore)
	store.On("Upload", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return("", errors.New("s3 down"))

	svc := NewMealService(db, NewAIService(client, nil), store)
	meal, _, err := svc.AnalyzeMeal(context.Background(), userID, &types.AnalyzeMealRequest{Base64Image: tinyPNG, MealType: "dinner"})
	require.NoError(t, err)
	assert.Empty(t, meal.ImageURL)
}

func TestAnalyzeMealModelFailure(t *testing.T) {
	db := setupDB(t)
	client := new(testhelpers.MockLLMClient)
	client.On("GenerateWithImage", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return("no idea", nil)

	svc := NewMealService(db, NewAIService(client, nil), nil)
	_, _, err := svc.AnalyzeMeal(context.Background(), uuid.New(), &types.AnalyzeMealRequest{Base64Image: tinyPNG, MealType: "dinner"})
	assert.Error(t, err)

	var count int64
	require.NoError(t, db.Model(&models.Meal{}).Count(&count).Error)
	assert.Zero(t, count)
}

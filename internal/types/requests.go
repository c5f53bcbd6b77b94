package types

import (
	"encoding/json"

	"github.com/nutri-app/nutri/backend/internal/models"
)

// GenerateTipsRequest is the body of POST /generate-ai-tips. BMI is kept raw
// so it can be echoed back exactly as the client sent it.
type GenerateTipsRequest struct {
	BMI         json.RawMessage `json:"bmi"`
	ObesityRisk string          `json:"obesityRisk"`
}

type ChatRequest struct {
	Message string `json:"message"`
}

type EstimateCaloriesRequest struct {
	Base64Image string `json:"base64Image"`
}

type BMIRequest struct {
	WeightKg float64 `json:"weightKg" binding:"required,gt=0"`
	HeightCm float64 `json:"heightCm" binding:"required,gt=0"`
}

// Auth API types
type RegisterRequest struct {
	FullName string `json:"fullName" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

// UpdateProfileRequest carries optional profile fields; nil means unchanged.
type UpdateProfileRequest struct {
	FullName     *string  `json:"fullName"`
	Age          *int     `json:"age"`
	Gender       *string  `json:"gender"`
	HeightCm     *float64 `json:"heightCm"`
	WeightKg     *float64 `json:"weightKg"`
	EatingHabits *string  `json:"eatingHabits"`
	Lifestyle    *string  `json:"lifestyle"`
	BMI          *float64 `json:"bmi"`
	ObesityRisk  *string  `json:"obesityRisk"`
}

type CreateProgressRequest struct {
	WeightKg float64 `json:"weightKg" binding:"required,gt=0"`
	BMI      float64 `json:"bmi"`
	Date     string  `json:"date"`
	Notes    string  `json:"notes"`
}

type CreateBookmarkRequest struct {
	ItemID   string          `json:"itemId" binding:"required"`
	Type     string          `json:"type" binding:"required,oneof=recipe exercise"`
	ItemData json.RawMessage `json:"itemData" binding:"required"`
}

type CreateMealRequest struct {
	MealType       string            `json:"mealType" binding:"required,oneof=breakfast lunch dinner snack"`
	CaloriesAmount float64           `json:"caloriesAmount" binding:"gte=0"`
	DishName       string            `json:"dishName"`
	ImageURL       string            `json:"imageUrl"`
	FoodItems      []models.FoodItem `json:"foodItems"`
	Notes          []string          `json:"notes"`
	Date           string            `json:"date"`
}

type AnalyzeMealRequest struct {
	Base64Image string `json:"base64Image" binding:"required"`
	MealType    string `json:"mealType" binding:"required,oneof=breakfast lunch dinner snack"`
	Date        string `json:"date"`
}

// DailyMeals is the GET /meals response.
type DailyMeals struct {
	Date          string         `json:"date"`
	Meals         []*models.Meal `json:"meals"`
	TotalCalories float64        `json:"totalCalories"`
}

// Dashboard aggregates the home screen data.
type Dashboard struct {
	Profile              *models.UserProfile    `json:"profile"`
	LatestProgress       *models.ProgressEntry  `json:"latestProgress"`
	TodayCalories        float64                `json:"todayCalories"`
	BookmarkCount        int64                  `json:"bookmarkCount"`
	LatestRecommendation *models.Recommendation `json:"latestRecommendation"`
}

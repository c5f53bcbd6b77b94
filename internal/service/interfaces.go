package service

import (
	"context"
	"errors"
	"io"

	"github.com/google/uuid"

	"github.com/nutri-app/nutri/backend/internal/models"
	"github.com/nutri-app/nutri/backend/internal/normalizer"
	"github.com/nutri-app/nutri/backend/internal/types"
)

var (
	ErrNotFound           = errors.New("record not found")
	ErrAlreadyExists      = errors.New("record already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
	ErrInvalidDate        = errors.New("date must be formatted as YYYY-MM-DD")
	ErrInvalidInput       = errors.New("invalid input")
)

// IAIService defines the generative operations behind the original AI routes
type IAIService interface {
	GenerateTips(ctx context.Context, bmi, obesityRisk string) (*normalizer.RecommendationPayload, error)
	Chat(ctx context.Context, message string) (string, error)
	EstimateCalories(ctx context.Context, imageDataURL string) (*normalizer.CalorieEstimate, error)
}

// IAuthService defines the interface for authentication operations
type IAuthService interface {
	Register(ctx context.Context, req *types.RegisterRequest) (*models.User, string, error)
	Login(ctx context.Context, email, password string) (*models.User, string, error)
	ValidateToken(token string) (*types.TokenClaims, error)
	GenerateToken(user *models.User) (string, error)
}

// IProfileService defines the interface for user profile operations
type IProfileService interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*models.UserProfile, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, req *types.UpdateProfileRequest) (*models.UserProfile, error)
	SetProfileImage(ctx context.Context, userID uuid.UUID, url string) (*models.UserProfile, error)
}

type IProgressService interface {
	ListProgress(ctx context.Context, userID uuid.UUID) ([]*models.ProgressEntry, error)
	AddProgress(ctx context.Context, userID uuid.UUID, req *types.CreateProgressRequest) (*models.ProgressEntry, error)
	LatestProgress(ctx context.Context, userID uuid.UUID) (*models.ProgressEntry, error)
}

type IRecommendationService interface {
	SaveRecommendation(ctx context.Context, userID uuid.UUID, bmi, obesityRisk string, payload *normalizer.RecommendationPayload) (*models.Recommendation, error)
	ListRecommendations(ctx context.Context, userID uuid.UUID) ([]*models.Recommendation, error)
	LatestRecommendation(ctx context.Context, userID uuid.UUID) (*models.Recommendation, error)
}

type IBookmarkService interface {
	AddBookmark(ctx context.Context, userID uuid.UUID, req *types.CreateBookmarkRequest) (*models.Bookmark, error)
	RemoveBookmark(ctx context.Context, userID uuid.UUID, itemID, itemType string) error
	IsBookmarked(ctx context.Context, userID uuid.UUID, itemID, itemType string) (bool, error)
	ListBookmarks(ctx context.Context, userID uuid.UUID, itemType string) ([]*models.Bookmark, error)
	SearchBookmarks(ctx context.Context, userID uuid.UUID, query string, limit int) ([]*models.Bookmark, error)
	CountBookmarks(ctx context.Context, userID uuid.UUID) (int64, error)
}

type IMealService interface {
	AddMeal(ctx context.Context, userID uuid.UUID, req *types.CreateMealRequest) (*models.Meal, error)
	MealsForDay(ctx context.Context, userID uuid.UUID, date string) (*types.DailyMeals, error)
	DeleteMeal(ctx context.Context, userID, mealID uuid.UUID) error
	AnalyzeMeal(ctx context.Context, userID uuid.UUID, req *types.AnalyzeMealRequest) (*models.Meal, *normalizer.CalorieEstimate, error)
}

// ObjectStore uploads a blob and returns its public URL.
type ObjectStore interface {
	Upload(ctx context.Context, key, contentType string, body io.Reader) (string, error)
}

type IImageService interface {
	UploadProfileImage(ctx context.Context, userID uuid.UUID, filename, contentType string, body io.Reader) (string, error)
}

type IDashboardService interface {
	GetDashboard(ctx context.Context, userID uuid.UUID) (*types.Dashboard, error)
}

package service

import (
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nutri-app/nutri/backend/internal/models"
	"github.com/nutri-app/nutri/backend/internal/testhelpers"
)

const validTipsJSON = `{
  "recipes": [
    {
      "recipeName": "Ulam Rice Bowl",
      "recipeDescription": "Brown rice with local herbs",
      "recipeItems": ["brown rice", "ulam raja", "kacang botol"],
      "cookingInstructions": ["Cook rice", "Slice herbs", "Combine"],
      "recipeCalories": 420,
      "recipeBenefits": "High in fiber",
      "iconClass": "leaf",
      "estimatedCookingTime": "25 minutes"
    }
  ],
  "exercises": [
    {
      "exerciseName": "Brisk Walking",
      "exerciseDescription": "Walk at a steady pace",
      "exercisePerform": ["Warm up", "Walk briskly", "Cool down"],
      "duration": "30 minutes",
      "intensity": "Moderate",
      "exerciseBenefits": "Improves cardiovascular health",
      "iconClass": "walking",
      "location": "Taman Tasik Titiwangsa"
    }
  ]
}`

const calorieJSON = `{"dishName":"Nasi Lemak","foodItems":[{"name":"rice","calories":300,"portion":"1 cup"},{"calories":"120 kcal"}],"totalCalories":420,"notes":["estimate only"]}`

// tinyPNG is a data URL whose payload decodes to "png-bytes".
const tinyPNG = "data:image/png;base64,cG5nLWJ5dGVz"

func createUser(t *testing.T, db *gorm.DB) uuid.UUID {
	t.Helper()
	user := models.User{Email: uuid.NewString() + "@example.com", FullName: "Aisyah", PasswordHash: "x"}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("failed to create user: %v", err)
	}
	if err := db.Create(&models.UserProfile{UserID: user.ID, FullName: user.FullName}).Error; err != nil {
		t.Fatalf("failed to create profile: %v", err)
	}
	return user.ID
}

func setupDB(t *testing.T) *gorm.DB {
	return testhelpers.SetupTestDatabase(t)
}

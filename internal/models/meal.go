package models

import "github.com/google/uuid"

var MealTypes = []string{"breakfast", "lunch", "dinner", "snack"}

// FoodItem is one component of a logged meal.
type FoodItem struct {
	Name     string  `json:"name"`
	Calories float64 `json:"calories"`
	Portion  string  `json:"portion"`
}

// Meal is a calorie log entry. Date is the YYYY-MM-DD day the meal belongs to.
type Meal struct {
	Base
	UserID         uuid.UUID        `gorm:"type:varchar(36);not null;index:idx_meals_user_date" json:"user_id"`
	Date           string           `gorm:"size:10;not null;index:idx_meals_user_date" json:"date"`
	MealType       string           `gorm:"size:20;not null" json:"meal_type"`
	CaloriesAmount float64          `json:"calories_amount"`
	DishName       string           `gorm:"size:255" json:"dish_name"`
	ImageURL       string           `gorm:"size:512" json:"image_url"`
	FoodItems      JSON             `gorm:"type:jsonb" json:"food_items"`
	Notes          JSONBStringArray `gorm:"type:jsonb" json:"notes"`
}

// ValidMealType reports whether t is one of MealTypes.
func ValidMealType(t string) bool {
	for _, m := range MealTypes {
		if m == t {
			return true
		}
	}
	return false
}

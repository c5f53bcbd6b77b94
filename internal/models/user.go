package models

import (
	"github.com/google/uuid"
)

type User struct {
	Base
	Email        string `gorm:"uniqueIndex;not null" json:"email"`
	FullName     string `gorm:"size:255" json:"full_name"`
	PasswordHash string `gorm:"not null" json:"-"`
}

// UserProfile holds the body measurements and habits the recommendations are
// generated from.
type UserProfile struct {
	Base
	UserID          uuid.UUID `gorm:"type:varchar(36);not null;uniqueIndex" json:"user_id"`
	FullName        string    `gorm:"size:255" json:"full_name"`
	Age             int       `json:"age"`
	Gender          string    `gorm:"size:20" json:"gender"`
	HeightCm        float64   `json:"height_cm"`
	WeightKg        float64   `json:"weight_kg"`
	EatingHabits    string    `gorm:"type:text" json:"eating_habits"`
	Lifestyle       string    `gorm:"type:text" json:"lifestyle"`
	BMI             float64   `gorm:"column:bmi" json:"bmi"`
	ObesityRisk     string    `gorm:"size:100" json:"obesity_risk"`
	ProfileImageURL string    `gorm:"size:512" json:"profile_image_url"`
}

func (UserProfile) TableName() string {
	return "user_profiles"
}

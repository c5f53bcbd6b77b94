package models

import "github.com/google/uuid"

// ProgressEntry is one weight/BMI check-in. Date is YYYY-MM-DD.
type ProgressEntry struct {
	Base
	UserID   uuid.UUID `gorm:"type:varchar(36);not null;index" json:"user_id"`
	Date     string    `gorm:"size:10;not null;index" json:"date"`
	WeightKg float64   `json:"weight_kg"`
	BMI      float64   `gorm:"column:bmi" json:"bmi"`
	Notes    string    `gorm:"type:text" json:"notes"`
}

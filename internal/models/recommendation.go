package models

import "github.com/google/uuid"

// Recommendation is a generated recipe/exercise batch kept in the user's history.
type Recommendation struct {
	Base
	UserID      uuid.UUID `gorm:"type:varchar(36);not null;index" json:"user_id"`
	BMI         string    `gorm:"column:bmi;size:20" json:"bmi"`
	ObesityRisk string    `gorm:"size:100" json:"obesity_risk"`
	Payload     JSON      `gorm:"type:jsonb;not null" json:"payload"`
}

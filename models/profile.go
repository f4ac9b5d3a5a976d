package models

import (
	"gorm.io/gorm"
)

// Profile holds the biometric inputs plus the two derived fields. BMR and
// DailyCalories are nil until the first upsert computes them, and are always
// recomputed together whenever any input field changes, so they never go stale
// relative to the stored inputs.
type Profile struct {
	gorm.Model
	UserID uint `gorm:"uniqueIndex;not null" json:"user_id"`

	Age           int     `gorm:"not null" json:"age"`
	Weight        float64 `gorm:"not null" json:"weight"` // kg
	Height        float64 `gorm:"not null" json:"height"` // cm
	Gender        string  `gorm:"not null" json:"gender"`
	ActivityLevel string  `gorm:"not null" json:"activity_level"`
	Goal          string  `gorm:"not null" json:"goal"`

	DietType     string `gorm:"default:'omnivore'" json:"diet_type"`
	Allergies    string `json:"allergies"`
	FoodLikes    string `json:"food_likes"`
	FoodDislikes string `json:"food_dislikes"`

	BMR           *float64 `json:"bmr"`
	DailyCalories *int     `json:"daily_calories"`
}

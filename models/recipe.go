package models

import (
	"gorm.io/gorm"
)

type Recipe struct {
	gorm.Model
	UserID uint `gorm:"index;not null" json:"user_id"`

	Title        string  `gorm:"index;not null" json:"title"`
	Description  string  `json:"description"`
	Instructions string  `gorm:"not null" json:"instructions"`
	PrepTime     int     `json:"prep_time"` // minutes
	Calories     float64 `json:"calories"`  // kcal
	Category     string  `json:"category"`
	IsFavorite   bool    `gorm:"default:false" json:"is_favorite"`

	Ingredients []Ingredient `gorm:"constraint:OnDelete:CASCADE" json:"ingredients"`
}

type Ingredient struct {
	gorm.Model
	RecipeID uint `gorm:"index;not null" json:"recipe_id"`

	Name     string  `gorm:"index;not null" json:"name"`
	Quantity float64 `gorm:"not null" json:"quantity"`
	Unit     string  `gorm:"not null" json:"unit"` // "g", "ml", "un"
	Calories float64 `gorm:"default:0" json:"calories"`
}

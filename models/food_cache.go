package models

import (
	"gorm.io/gorm"
)

// FoodCache is a permanent calorie memo: one row per normalized food name,
// written once on the first successful AI lookup and never updated or
// expired. UnitType records the unit the value was computed under; lookups
// are keyed by name only, so a hit is reused regardless of the unit the
// caller asked for. Bad rows are corrected manually.
type FoodCache struct {
	gorm.Model
	Name            string  `gorm:"uniqueIndex;not null" json:"name"` // lowercased, trimmed
	CaloriesPerUnit float64 `gorm:"not null" json:"calories_per_unit"`
	UnitType        string  `gorm:"not null" json:"unit_type"` // "g", "ml", "un"
}

package services

import (
	"errors"
	"time"

	"github.com/vfranco00/Nutri-Agent/models"

	"gorm.io/gorm"
)

type ProfileService struct {
	db *gorm.DB
}

func NewProfileService(db *gorm.DB) *ProfileService {
	return &ProfileService{db: db}
}

// ProfileInput carries the validated biometric inputs for an upsert. The
// enums were already checked at the HTTP boundary.
type ProfileInput struct {
	Age           int
	Weight        float64
	Height        float64
	Gender        Gender
	ActivityLevel ActivityLevel
	Goal          Goal
	DietType      string
	Allergies     string
	FoodLikes     string
	FoodDislikes  string
}

// GetByUserID returns the user's profile or ErrNotFound.
func (s *ProfileService) GetByUserID(userID uint) (*models.Profile, error) {
	var profile models.Profile
	if err := s.db.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &profile, nil
}

// Upsert creates or replaces the user's profile. BMR and the daily calorie
// target are recomputed from the inputs on every call, so the derived fields
// can never go stale. Each field is assigned explicitly, without any dynamic
// attribute loop, which keeps the update contract checkable.
func (s *ProfileService) Upsert(userID uint, in ProfileInput) (*models.Profile, error) {
	bmr, daily := ComputeMetrics(in.Age, in.Weight, in.Height, in.Gender, in.ActivityLevel, in.Goal)

	dietType := in.DietType
	if dietType == "" {
		dietType = "omnivore"
	}

	var profile models.Profile
	err := s.db.Where("user_id = ?", userID).First(&profile).Error
	switch {
	case err == nil:
		// fall through to the field-by-field update below
	case errors.Is(err, gorm.ErrRecordNotFound):
		profile = models.Profile{UserID: userID}
	default:
		return nil, err
	}

	profile.Age = in.Age
	profile.Weight = in.Weight
	profile.Height = in.Height
	profile.Gender = string(in.Gender)
	profile.ActivityLevel = string(in.ActivityLevel)
	profile.Goal = string(in.Goal)
	profile.DietType = dietType
	profile.Allergies = in.Allergies
	profile.FoodLikes = in.FoodLikes
	profile.FoodDislikes = in.FoodDislikes
	profile.BMR = &bmr
	profile.DailyCalories = &daily

	if err := s.db.Save(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

// AddWeight appends a weight history entry.
func (s *ProfileService) AddWeight(userID uint, weight float64) (*models.WeightEntry, error) {
	entry := models.WeightEntry{UserID: userID, Weight: weight, RecordedAt: time.Now()}
	if err := s.db.Create(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

// WeightHistory lists the user's weight entries, oldest first.
func (s *ProfileService) WeightHistory(userID uint) ([]models.WeightEntry, error) {
	var entries []models.WeightEntry
	err := s.db.
		Where("user_id = ?", userID).
		Order("recorded_at ASC").
		Find(&entries).Error
	return entries, err
}

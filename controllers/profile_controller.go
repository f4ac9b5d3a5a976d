package controllers

import (
	"net/http"

	"github.com/vfranco00/Nutri-Agent/services"

	"github.com/gin-gonic/gin"
)

type ProfileController struct {
	profiles *services.ProfileService
}

func NewProfileController(profiles *services.ProfileService) *ProfileController {
	return &ProfileController{profiles: profiles}
}

// ProfileUpsertInput validates the enums at the boundary; the services only
// ever see the closed set of values (plus the documented sedentary fallback
// inside the calculator).
type ProfileUpsertInput struct {
	Age           int     `json:"age" binding:"required,gt=0,lte=120"`
	Weight        float64 `json:"weight" binding:"required,gt=0"`
	Height        float64 `json:"height" binding:"required,gt=0"`
	Gender        string  `json:"gender" binding:"required,oneof=male female"`
	ActivityLevel string  `json:"activity_level" binding:"required,oneof=sedentary lightly_active moderately_active very_active super_active"`
	Goal          string  `json:"goal" binding:"required,oneof=lose_weight maintain gain_muscle"`
	DietType      string  `json:"diet_type"`
	Allergies     string  `json:"allergies"`
	FoodLikes     string  `json:"food_likes"`
	FoodDislikes  string  `json:"food_dislikes"`
}

// GET /profiles/me
func (ctl *ProfileController) GetMe(c *gin.Context) {
	profile, err := ctl.profiles.GetByUserID(currentUserID(c))
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// PUT /profiles/me creates or replaces the profile; the response carries
// the freshly computed bmr and daily_calories.
func (ctl *ProfileController) UpsertMe(c *gin.Context) {
	var input ProfileUpsertInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	profile, err := ctl.profiles.Upsert(currentUserID(c), services.ProfileInput{
		Age:           input.Age,
		Weight:        input.Weight,
		Height:        input.Height,
		Gender:        services.Gender(input.Gender),
		ActivityLevel: services.ActivityLevel(input.ActivityLevel),
		Goal:          services.Goal(input.Goal),
		DietType:      input.DietType,
		Allergies:     input.Allergies,
		FoodLikes:     input.FoodLikes,
		FoodDislikes:  input.FoodDislikes,
	})
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

// POST /profiles/weight
func (ctl *ProfileController) AddWeight(c *gin.Context) {
	var input struct {
		Weight float64 `json:"weight" binding:"required,gt=0"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := ctl.profiles.AddWeight(currentUserID(c), input.Weight)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, entry)
}

// GET /profiles/weight/history
func (ctl *ProfileController) WeightHistory(c *gin.Context) {
	entries, err := ctl.profiles.WeightHistory(currentUserID(c))
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}

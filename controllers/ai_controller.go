package controllers

import (
	"errors"
	"io"
	"net/http"

	"github.com/vfranco00/Nutri-Agent/services"

	"github.com/gin-gonic/gin"
)

type AIController struct {
	plans    *services.PlanService
	calories *services.CalorieService
	profiles *services.ProfileService
}

func NewAIController(plans *services.PlanService, calories *services.CalorieService, profiles *services.ProfileService) *AIController {
	return &AIController{plans: plans, calories: calories, profiles: profiles}
}

type GeneratePlanInput struct {
	Days int    `json:"days" binding:"omitempty,min=1,max=7"`
	Mode string `json:"mode" binding:"omitempty,oneof=varied repetitive"`
}

type RecipeByIngredientsInput struct {
	Ingredients []string `json:"ingredients" binding:"required,min=1,dive,required"`
}

type CalculateCaloriesInput struct {
	Name     string  `json:"name" binding:"required"`
	Quantity float64 `json:"quantity" binding:"required,gt=0"`
	Unit     string  `json:"unit" binding:"required"`
}

// POST /ai/generate-plan requires an existing profile; a generation
// failure is surfaced to the caller, never papered over.
func (ctl *AIController) GeneratePlan(c *gin.Context) {
	// Body is optional: an empty POST means one varied day.
	var input GeneratePlanInput
	if err := c.ShouldBindJSON(&input); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	profile, err := ctl.profiles.GetByUserID(currentUserID(c))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			abortWithServiceError(c, services.ErrNoProfile)
			return
		}
		abortWithServiceError(c, err)
		return
	}

	days := input.Days
	if days == 0 {
		days = 1
	}

	plan, err := ctl.plans.GeneratePlan(c.Request.Context(), profile, days, services.PlanMode(input.Mode))
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, plan)
}

// POST /ai/recipe-by-ingredients
func (ctl *AIController) RecipeByIngredients(c *gin.Context) {
	var input RecipeByIngredientsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Profile is optional here: with one, the recipe honors diet and
	// allergy restrictions; without one, anything goes.
	profile, err := ctl.profiles.GetByUserID(currentUserID(c))
	if err != nil && !errors.Is(err, services.ErrNotFound) {
		abortWithServiceError(c, err)
		return
	}

	recipe, err := ctl.plans.RecipeByIngredients(c.Request.Context(), profile, input.Ingredients)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, recipe)
}

// POST /ai/calculate-calories is a cache-first lookup; an oracle failure
// degrades to 0.0 rather than erroring.
func (ctl *AIController) CalculateCalories(c *gin.Context) {
	var input CalculateCaloriesInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	total := ctl.calories.TotalCalories(c.Request.Context(), input.Name, input.Quantity, input.Unit)
	c.JSON(http.StatusOK, gin.H{"total_calories": total})
}

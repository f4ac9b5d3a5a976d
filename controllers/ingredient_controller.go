package controllers

import (
	"net/http"

	"github.com/vfranco00/Nutri-Agent/services"

	"github.com/gin-gonic/gin"
)

type IngredientController struct {
	recipes *services.RecipeService
}

func NewIngredientController(recipes *services.RecipeService) *IngredientController {
	return &IngredientController{recipes: recipes}
}

type AddIngredientInput struct {
	RecipeID uint    `json:"recipe_id" binding:"required"`
	Name     string  `json:"name" binding:"required"`
	Quantity float64 `json:"quantity" binding:"required,gt=0"`
	Unit     string  `json:"unit" binding:"required"`
	Calories float64 `json:"calories"`
}

// POST /ingredients; the recipe must exist and belong to the caller.
func (ctl *IngredientController) Add(c *gin.Context) {
	var input AddIngredientInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ing, err := ctl.recipes.AddIngredient(currentUserID(c), input.RecipeID, services.IngredientInput{
		Name:     input.Name,
		Quantity: input.Quantity,
		Unit:     input.Unit,
		Calories: input.Calories,
	})
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, ing)
}

// GET /ingredients/recipe/:recipe_id
func (ctl *IngredientController) ListByRecipe(c *gin.Context) {
	recipeID, err := pathID(c, "recipe_id")
	if err != nil {
		return
	}
	ingredients, err := ctl.recipes.ListIngredients(currentUserID(c), recipeID)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, ingredients)
}

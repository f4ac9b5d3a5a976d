package controllers

import (
	"net/http"
	"strconv"

	"github.com/vfranco00/Nutri-Agent/services"

	"github.com/gin-gonic/gin"
)

type RecipeController struct {
	recipes *services.RecipeService
}

func NewRecipeController(recipes *services.RecipeService) *RecipeController {
	return &RecipeController{recipes: recipes}
}

type IngredientBody struct {
	Name     string  `json:"name" binding:"required"`
	Quantity float64 `json:"quantity" binding:"required,gt=0"`
	Unit     string  `json:"unit" binding:"required"`
	Calories float64 `json:"calories"`
}

type RecipeBody struct {
	Title        string           `json:"title" binding:"required"`
	Description  string           `json:"description"`
	Instructions string           `json:"instructions" binding:"required"`
	PrepTime     int              `json:"prep_time"`
	Calories     float64          `json:"calories"`
	Category     string           `json:"category"`
	Ingredients  []IngredientBody `json:"ingredients"`
}

func (b RecipeBody) toInput() services.RecipeInput {
	in := services.RecipeInput{
		Title:        b.Title,
		Description:  b.Description,
		Instructions: b.Instructions,
		PrepTime:     b.PrepTime,
		Calories:     b.Calories,
		Category:     b.Category,
	}
	for _, ing := range b.Ingredients {
		in.Ingredients = append(in.Ingredients, services.IngredientInput{
			Name:     ing.Name,
			Quantity: ing.Quantity,
			Unit:     ing.Unit,
			Calories: ing.Calories,
		})
	}
	return in
}

func (ctl *RecipeController) Create(c *gin.Context) {
	var body RecipeBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	recipe, err := ctl.recipes.Create(currentUserID(c), body.toInput())
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, recipe)
}

func (ctl *RecipeController) List(c *gin.Context) {
	skip, _ := strconv.Atoi(c.DefaultQuery("skip", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))

	recipes, err := ctl.recipes.List(currentUserID(c), skip, limit)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, recipes)
}

func (ctl *RecipeController) Get(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		return
	}
	recipe, err := ctl.recipes.Get(currentUserID(c), id)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, recipe)
}

func (ctl *RecipeController) Update(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		return
	}
	var body RecipeBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	recipe, err := ctl.recipes.Update(currentUserID(c), id, body.toInput())
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, recipe)
}

func (ctl *RecipeController) Delete(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		return
	}
	if err := ctl.recipes.Delete(currentUserID(c), id); err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "recipe deleted"})
}

func (ctl *RecipeController) ToggleFavorite(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		return
	}
	recipe, err := ctl.recipes.ToggleFavorite(currentUserID(c), id)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, recipe)
}

// pathID parses a numeric path parameter, writing the 400 itself so callers
// can just bail on error.
func pathID(c *gin.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return 0, err
	}
	return uint(id), nil
}

package services

import (
	"errors"

	"github.com/vfranco00/Nutri-Agent/models"

	"gorm.io/gorm"
)

type RecipeService struct {
	db *gorm.DB
}

func NewRecipeService(db *gorm.DB) *RecipeService {
	return &RecipeService{db: db}
}

type IngredientInput struct {
	Name     string
	Quantity float64
	Unit     string
	Calories float64
}

type RecipeInput struct {
	Title        string
	Description  string
	Instructions string
	PrepTime     int
	Calories     float64
	Category     string
	Ingredients  []IngredientInput
}

func (s *RecipeService) Create(userID uint, in RecipeInput) (*models.Recipe, error) {
	recipe := models.Recipe{
		UserID:       userID,
		Title:        in.Title,
		Description:  in.Description,
		Instructions: in.Instructions,
		PrepTime:     in.PrepTime,
		Calories:     in.Calories,
		Category:     in.Category,
	}
	for _, ing := range in.Ingredients {
		recipe.Ingredients = append(recipe.Ingredients, models.Ingredient{
			Name:     ing.Name,
			Quantity: ing.Quantity,
			Unit:     ing.Unit,
			Calories: ing.Calories,
		})
	}
	if err := s.db.Create(&recipe).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

func (s *RecipeService) List(userID uint, skip, limit int) ([]models.Recipe, error) {
	if limit <= 0 || limit > 100 {
		limit = 100
	}
	var recipes []models.Recipe
	err := s.db.
		Preload("Ingredients").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Offset(skip).Limit(limit).
		Find(&recipes).Error
	return recipes, err
}

// Get returns the recipe, distinguishing a missing recipe (ErrNotFound)
// from one owned by somebody else (ErrForbidden).
func (s *RecipeService) Get(userID, recipeID uint) (*models.Recipe, error) {
	var recipe models.Recipe
	if err := s.db.Preload("Ingredients").First(&recipe, recipeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if recipe.UserID != userID {
		return nil, ErrForbidden
	}
	return &recipe, nil
}

// Update replaces the recipe's own fields; ingredients are managed through
// AddIngredient.
func (s *RecipeService) Update(userID, recipeID uint, in RecipeInput) (*models.Recipe, error) {
	recipe, err := s.Get(userID, recipeID)
	if err != nil {
		return nil, err
	}

	recipe.Title = in.Title
	recipe.Description = in.Description
	recipe.Instructions = in.Instructions
	recipe.PrepTime = in.PrepTime
	recipe.Calories = in.Calories
	recipe.Category = in.Category

	if err := s.db.Save(recipe).Error; err != nil {
		return nil, err
	}
	return recipe, nil
}

func (s *RecipeService) Delete(userID, recipeID uint) error {
	recipe, err := s.Get(userID, recipeID)
	if err != nil {
		return err
	}
	if err := s.db.Where("recipe_id = ?", recipe.ID).Delete(&models.Ingredient{}).Error; err != nil {
		return err
	}
	return s.db.Delete(recipe).Error
}

// ToggleFavorite flips the is_favorite flag and returns the updated recipe.
func (s *RecipeService) ToggleFavorite(userID, recipeID uint) (*models.Recipe, error) {
	recipe, err := s.Get(userID, recipeID)
	if err != nil {
		return nil, err
	}
	recipe.IsFavorite = !recipe.IsFavorite
	if err := s.db.Save(recipe).Error; err != nil {
		return nil, err
	}
	return recipe, nil
}

// AddIngredient appends an ingredient to a recipe the user owns.
func (s *RecipeService) AddIngredient(userID, recipeID uint, in IngredientInput) (*models.Ingredient, error) {
	if _, err := s.Get(userID, recipeID); err != nil {
		return nil, err
	}
	ing := models.Ingredient{
		RecipeID: recipeID,
		Name:     in.Name,
		Quantity: in.Quantity,
		Unit:     in.Unit,
		Calories: in.Calories,
	}
	if err := s.db.Create(&ing).Error; err != nil {
		return nil, err
	}
	return &ing, nil
}

// ListIngredients lists a recipe's ingredients after the ownership check.
func (s *RecipeService) ListIngredients(userID, recipeID uint) ([]models.Ingredient, error) {
	if _, err := s.Get(userID, recipeID); err != nil {
		return nil, err
	}
	var ingredients []models.Ingredient
	err := s.db.Where("recipe_id = ?", recipeID).Find(&ingredients).Error
	return ingredients, err
}

// services/recipe_service.go
package services

import (
	"gorm.io/gorm"

	"github.com/kevinreyes061304-ops/meal-planner/models"
)

// RecipeService is the recipe catalog: CRUD over shared and user-owned
// recipes. Read-only to the planner.
type RecipeService struct {
	db *gorm.DB
}

func NewRecipeService(db *gorm.DB) *RecipeService {
	return &RecipeService{db: db}
}

type RecipeInput struct {
	Name         string `json:"name" binding:"required,max=200"`
	Description  string `json:"description"`
	Ingredients  string `json:"ingredients"` // one per line
	Instructions string `json:"instructions"`
	PrepTime     int    `json:"prep_time" binding:"min=0"`
	CookTime     int    `json:"cook_time" binding:"min=0"`
	Servings     int    `json:"servings" binding:"omitempty,min=1"`
	MealType     string `json:"meal_type"`
	ImageURL     string `json:"image_url"`
}

// Create adds a recipe. A non-nil createdBy makes it that user's private
// recipe; nil seeds a shared standard recipe.
func (s *RecipeService) Create(createdBy *uint, input RecipeInput) (*models.Recipe, error) {
	if input.MealType == "" {
		input.MealType = models.MealLunch
	}
	if !models.IsRecipeMealType(input.MealType) {
		return nil, ErrInvalidMealType
	}
	if input.Servings < 1 {
		input.Servings = 1
	}

	recipe := models.Recipe{
		Name:         input.Name,
		Description:  input.Description,
		Ingredients:  input.Ingredients,
		Instructions: input.Instructions,
		PrepTime:     input.PrepTime,
		CookTime:     input.CookTime,
		Servings:     input.Servings,
		MealType:     input.MealType,
		ImageURL:     input.ImageURL,
		CreatedByID:  createdBy,
	}
	if err := s.db.Create(&recipe).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

func (s *RecipeService) Get(id uint) (*models.Recipe, error) {
	var recipe models.Recipe
	if err := s.db.First(&recipe, id).Error; err != nil {
		return nil, err // could be ErrRecordNotFound
	}
	return &recipe, nil
}

// List returns the full catalog available to a user for the weekly plan
// dropdowns: their own recipes first, then the shared ones, each in name
// order.
func (s *RecipeService) List(userID uint) ([]models.Recipe, error) {
	owned, err := s.ListByOwner(userID, "")
	if err != nil {
		return nil, err
	}
	shared, err := s.ListShared()
	if err != nil {
		return nil, err
	}
	return append(owned, shared...), nil
}

// ListByOwner returns a user's private recipes, optionally filtered by
// meal type.
func (s *RecipeService) ListByOwner(userID uint, mealType string) ([]models.Recipe, error) {
	q := s.db.Where("created_by_id = ?", userID)
	if mealType != "" && mealType != "all" {
		q = q.Where("meal_type = ?", mealType)
	}
	var recipes []models.Recipe
	err := q.Order("name").Find(&recipes).Error
	return recipes, err
}

// ListShared returns the seeded standard recipes.
func (s *RecipeService) ListShared() ([]models.Recipe, error) {
	var recipes []models.Recipe
	err := s.db.Where("created_by_id IS NULL").Order("name").Find(&recipes).Error
	return recipes, err
}

// ListPopular returns the dashboard recipes, highest score first.
func (s *RecipeService) ListPopular(limit int) ([]models.Recipe, error) {
	if limit <= 0 {
		limit = 6
	}
	var recipes []models.Recipe
	err := s.db.
		Where("is_popular = ?", true).
		Order("popularity_score DESC, created_at DESC").
		Limit(limit).
		Find(&recipes).Error
	return recipes, err
}

// Delete removes a recipe and every plan slot that referenced it, in one
// transaction. Only the owner may delete; shared recipes are not
// user-deletable through this path.
func (s *RecipeService) Delete(id, userID uint) error {
	var recipe models.Recipe
	if err := s.db.First(&recipe, id).Error; err != nil {
		return err
	}
	if !recipe.OwnedBy(userID) {
		return ErrPermissionDenied
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("recipe_id = ?", recipe.ID).Delete(&models.MealPlan{}).Error; err != nil {
			return err
		}
		return tx.Delete(&recipe).Error
	})
}

package services

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/kevinreyes061304-ops/meal-planner/models"
)

// newTestDB opens a fresh in-memory database with the full schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.UserProfile{},
		&models.Recipe{},
		&models.MealPlan{},
		&models.Comment{},
	))
	return db
}

func createTestUser(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()

	user, err := NewUserService(db).Register(email, "sup3rsecret", "Test User")
	require.NoError(t, err)
	return user
}

func createTestRecipe(t *testing.T, db *gorm.DB, name string, owner *uint) *models.Recipe {
	t.Helper()

	recipe, err := NewRecipeService(db).Create(owner, RecipeInput{
		Name:     name,
		MealType: models.MealAny,
	})
	require.NoError(t, err)
	return recipe
}

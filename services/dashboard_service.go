// services/dashboard_service.go
package services

import (
	"time"

	"gorm.io/gorm"

	"github.com/kevinreyes061304-ops/meal-planner/models"
)

// DashboardService aggregates the daily landing view: today's meals,
// popular recipes, recent important notes and the profile. Read-only.
type DashboardService struct {
	db *gorm.DB
}

func NewDashboardService(db *gorm.DB) *DashboardService {
	return &DashboardService{db: db}
}

type DashboardView struct {
	Date           string                      `json:"date"`
	Meals          map[string]*models.MealPlan `json:"meals"` // keyed by meal type, nil when unplanned
	PopularRecipes []models.Recipe             `json:"popular_recipes"`
	RecentNotes    []models.Comment            `json:"recent_notes"`
	Profile        *models.UserProfile         `json:"profile"`
}

func (s *DashboardService) Overview(userID uint, today time.Time) (*DashboardView, error) {
	date := today.Format(dateLayout)

	var slots []models.MealPlan
	if err := s.db.Preload("Recipe").
		Where("user_id = ? AND date = ?", userID, date).
		Find(&slots).Error; err != nil {
		return nil, err
	}

	meals := make(map[string]*models.MealPlan, len(models.SlotMealTypes))
	for _, mealType := range models.SlotMealTypes {
		meals[mealType] = nil
	}
	for i := range slots {
		meals[slots[i].MealType] = &slots[i]
	}

	popular, err := NewRecipeService(s.db).ListPopular(6)
	if err != nil {
		return nil, err
	}

	notes, err := NewCommentService(s.db).ListImportant(userID, 5)
	if err != nil {
		return nil, err
	}

	profile, err := NewUserService(s.db).ProfileFor(userID)
	if err != nil {
		return nil, err
	}

	return &DashboardView{
		Date:           date,
		Meals:          meals,
		PopularRecipes: popular,
		RecentNotes:    notes,
		Profile:        profile,
	}, nil
}

// services/planner_service.go
package services

import (
	"strconv"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/kevinreyes061304-ops/meal-planner/models"
)

// PlannerService reconciles submitted weekly grids against the persisted
// meal plan slots. All writes go through an upsert on the composite unique
// index (user_id, date, meal_type), so concurrent submissions for the same
// slot serialize to a single row at the storage layer.
type PlannerService struct {
	db *gorm.DB
}

func NewPlannerService(db *gorm.DB) *PlannerService {
	return &PlannerService{db: db}
}

// CellInput is one submitted cell of the weekly grid. RecipeID carries the
// raw form value: empty, non-numeric or unknown ids mean "no recipe
// selected" and are never an error.
type CellInput struct {
	RecipeID   string `json:"recipe_id"`
	CustomMeal string `json:"custom_meal"`
	Notes      string `json:"notes"`
}

// WeekPayload is a full week's grid keyed by encoded CellKey. Cells absent
// from the map count as empty and clear any persisted slot.
type WeekPayload struct {
	Cells map[string]CellInput `json:"cells"`
}

type CellView struct {
	Date       string `json:"date"`
	MealType   string `json:"meal_type"`
	RecipeID   *uint  `json:"recipe_id,omitempty"`
	RecipeName string `json:"recipe_name,omitempty"`
	CustomMeal string `json:"custom_meal"`
	Notes      string `json:"notes"`
	Planned    bool   `json:"planned"`
}

type WeekView struct {
	StartOfWeek string              `json:"start_of_week"`
	Dates       []string            `json:"dates"`
	Cells       map[string]CellView `json:"cells"`
	Recipes     []models.Recipe     `json:"recipes"`
}

type WeekSummary struct {
	Saved   int `json:"saved"`
	Deleted int `json:"deleted"`
}

// WeekWindow returns the 7 ISO dates of the week containing anchor,
// starting on the Monday on or before it.
func WeekWindow(anchor time.Time) []string {
	offset := (int(anchor.Weekday()) + 6) % 7 // Monday == 0
	monday := anchor.AddDate(0, 0, -offset)
	dates := make([]string, 7)
	for i := range dates {
		dates[i] = monday.AddDate(0, 0, i).Format(dateLayout)
	}
	return dates
}

// ComputeWeek returns the current week grid for rendering: the 7 dates in
// order, all 28 cells keyed by encoded CellKey (empty placeholders
// included), and the recipe catalog for the dropdowns. Pure read.
func (s *PlannerService) ComputeWeek(userID uint, anchor time.Time) (*WeekView, error) {
	dates := WeekWindow(anchor)

	var slots []models.MealPlan
	if err := s.db.Preload("Recipe").
		Where("user_id = ? AND date IN ?", userID, dates).
		Find(&slots).Error; err != nil {
		return nil, err
	}

	view := &WeekView{
		StartOfWeek: dates[0],
		Dates:       dates,
		Cells:       make(map[string]CellView, len(dates)*len(models.SlotMealTypes)),
	}
	for _, date := range dates {
		for _, mealType := range models.SlotMealTypes {
			key := CellKey{Date: date, MealType: mealType}
			view.Cells[key.Encode()] = CellView{Date: date, MealType: mealType}
		}
	}
	for _, slot := range slots {
		cell := CellView{
			Date:       slot.Date,
			MealType:   slot.MealType,
			RecipeID:   slot.RecipeID,
			CustomMeal: slot.CustomMeal,
			Notes:      slot.Notes,
			Planned:    true,
		}
		if slot.Recipe != nil {
			cell.RecipeName = slot.Recipe.Name
		}
		view.Cells[CellKey{Date: slot.Date, MealType: slot.MealType}.Encode()] = cell
	}

	recipes, err := NewRecipeService(s.db).List(userID)
	if err != nil {
		return nil, err
	}
	view.Recipes = recipes

	return view, nil
}

// ApplyWeek reconciles a submitted grid against storage, one cell at a
// time: cells with neither a resolvable recipe nor custom text are
// deleted, everything else is upserted. Applying the same payload twice is
// idempotent in effect (the rows end up identical) but not in count: every
// non-empty cell increments Saved again, because clients resubmit the full
// grid every time and each non-empty cell is re-upserted. Deleted only
// counts rows that actually went away.
//
// The batch is best-effort per cell: a failure on one cell does not stop
// the other 27. The first storage error is returned alongside the counts.
func (s *PlannerService) ApplyWeek(userID uint, anchor time.Time, payload WeekPayload) (*WeekSummary, error) {
	summary := &WeekSummary{}
	var firstErr error

	for _, date := range WeekWindow(anchor) {
		for _, mealType := range models.SlotMealTypes {
			input := payload.Cells[CellKey{Date: date, MealType: mealType}.Encode()]

			recipeID := s.resolveRecipe(input.RecipeID)
			customMeal := strings.TrimSpace(input.CustomMeal)
			notes := strings.TrimSpace(input.Notes)

			var err error
			if recipeID == nil && customMeal == "" {
				var removed bool
				removed, err = s.removeSlot(userID, date, mealType)
				if removed {
					summary.Deleted++
				}
			} else {
				if err = s.upsertSlot(userID, date, mealType, recipeID, customMeal, notes); err == nil {
					summary.Saved++
				}
			}
			if err != nil && firstErr == nil {
				firstErr = err
			}
		}
	}

	return summary, firstErr
}

// SaveSlot plans a recipe into one slot, keeping any notes already on it.
// Used by the quick "add to today's plan" path; the recipe must exist.
func (s *PlannerService) SaveSlot(userID uint, date, mealType string, recipeID uint) error {
	if _, err := time.Parse(dateLayout, date); err != nil {
		return ErrInvalidDate
	}
	if !models.IsSlotMealType(mealType) {
		return ErrInvalidMealType
	}
	if err := s.db.Select("id").First(&models.Recipe{}, recipeID).Error; err != nil {
		return err
	}

	slot := models.MealPlan{
		UserID:   userID,
		Date:     date,
		MealType: mealType,
		RecipeID: &recipeID,
	}
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "date"}, {Name: "meal_type"}},
		DoUpdates: clause.AssignmentColumns([]string{"recipe_id", "updated_at"}),
	}).Create(&slot).Error
}

// DeleteSlot removes at most one slot. The bool reports whether a slot was
// actually there; "nothing to delete" is a valid outcome, not an error.
func (s *PlannerService) DeleteSlot(userID uint, date, mealType string) (bool, error) {
	if _, err := time.Parse(dateLayout, date); err != nil {
		return false, ErrInvalidDate
	}
	if !models.IsSlotMealType(mealType) {
		return false, ErrInvalidMealType
	}
	return s.removeSlot(userID, date, mealType)
}

// DeleteDay removes all slots (0-4) for the user on one date.
func (s *PlannerService) DeleteDay(userID uint, date string) (int64, error) {
	if _, err := time.Parse(dateLayout, date); err != nil {
		return 0, ErrInvalidDate
	}
	res := s.db.Where("user_id = ? AND date = ?", userID, date).Delete(&models.MealPlan{})
	return res.RowsAffected, res.Error
}

// ClearWeek removes every slot inside the Monday-anchored window around
// anchor, and nothing outside it.
func (s *PlannerService) ClearWeek(userID uint, anchor time.Time) (int64, error) {
	res := s.db.Where("user_id = ? AND date IN ?", userID, WeekWindow(anchor)).Delete(&models.MealPlan{})
	return res.RowsAffected, res.Error
}

// resolveRecipe maps a raw form value to a recipe id. Empty, malformed and
// unknown references all resolve to nil: the intake is permissive, a stale
// dropdown value just means "no recipe".
func (s *PlannerService) resolveRecipe(raw string) *uint {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return nil
	}
	var recipe models.Recipe
	if err := s.db.Select("id").First(&recipe, uint(id)).Error; err != nil {
		return nil
	}
	return &recipe.ID
}

func (s *PlannerService) upsertSlot(userID uint, date, mealType string, recipeID *uint, customMeal, notes string) error {
	slot := models.MealPlan{
		UserID:     userID,
		Date:       date,
		MealType:   mealType,
		RecipeID:   recipeID,
		CustomMeal: customMeal,
		Notes:      notes,
	}
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "date"}, {Name: "meal_type"}},
		DoUpdates: clause.AssignmentColumns([]string{"recipe_id", "custom_meal", "notes", "updated_at"}),
	}).Create(&slot).Error
}

func (s *PlannerService) removeSlot(userID uint, date, mealType string) (bool, error) {
	res := s.db.
		Where("user_id = ? AND date = ? AND meal_type = ?", userID, date, mealType).
		Delete(&models.MealPlan{})
	return res.RowsAffected > 0, res.Error
}

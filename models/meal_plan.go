package models

import "time"

// Meal type values. Recipes may additionally be tagged "any"; plan slots
// always use one of the four concrete types.
const (
	MealBreakfast     = "breakfast"
	MealLunch         = "lunch"
	MealDinner        = "dinner"
	MealMidnightSnack = "midnight_snack"
	MealAny           = "any"
)

// SlotMealTypes lists the meal types a plan slot may use, in display order.
var SlotMealTypes = []string{MealBreakfast, MealLunch, MealDinner, MealMidnightSnack}

func IsSlotMealType(t string) bool {
	switch t {
	case MealBreakfast, MealLunch, MealDinner, MealMidnightSnack:
		return true
	}
	return false
}

func IsRecipeMealType(t string) bool {
	return t == MealAny || IsSlotMealType(t)
}

// MealPlan is one planned slot: what a user eats on a date for a meal type.
// The composite unique index is the storage-level guarantee that at most
// one row exists per (user, date, meal type); the planner service upserts
// against it. Slots are hard-deleted and recreated as the user edits the
// week, so there is no soft-delete column here.
//
// Date is stored as an ISO YYYY-MM-DD string in a plain varchar column,
// not a SQL date: it sorts chronologically, scans back byte-identical on
// postgres and sqlite, and matches the cell key encoding with no timezone
// drift. A date column must never be reintroduced here: postgres would
// scan it back through time.Time as an RFC3339 string, and everything
// that builds cell keys assumes the stored form IS the key form.
type MealPlan struct {
	ID         uint   `gorm:"primaryKey"`
	UserID     uint   `gorm:"not null;uniqueIndex:idx_meal_plans_user_date_meal"`
	Date       string `gorm:"type:varchar(10);not null;uniqueIndex:idx_meal_plans_user_date_meal"`
	MealType   string `gorm:"type:varchar(20);not null;uniqueIndex:idx_meal_plans_user_date_meal"`
	RecipeID   *uint
	Recipe     *Recipe
	CustomMeal string `gorm:"type:varchar(200)"` // meal name when not using a recipe
	Notes      string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

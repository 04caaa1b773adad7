package services

import (
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kevinreyes061304-ops/meal-planner/models"
)

var plannerAnchor = time.Date(2025, time.March, 12, 8, 0, 0, 0, time.UTC) // a Wednesday

func cellKey(date, mealType string) string {
	return CellKey{Date: date, MealType: mealType}.Encode()
}

func TestApplyWeekSavesAndComputesBack(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "planner@example.com")
	recipe := createTestRecipe(t, db, "Pancakes", nil)

	svc := NewPlannerService(db)
	dates := WeekWindow(plannerAnchor)

	payload := WeekPayload{Cells: map[string]CellInput{
		cellKey(dates[0], models.MealBreakfast): {RecipeID: strconv.Itoa(int(recipe.ID))},
		cellKey(dates[0], models.MealLunch):     {CustomMeal: "  sandwich  ", Notes: " no mustard "},
	}}

	summary, err := svc.ApplyWeek(user.ID, plannerAnchor, payload)
	require.NoError(t, err)
	assert.Equal(t, 2, summary.Saved)
	assert.Equal(t, 0, summary.Deleted)

	view, err := svc.ComputeWeek(user.ID, plannerAnchor)
	require.NoError(t, err)
	assert.Equal(t, dates, view.Dates)
	assert.Equal(t, dates[0], view.StartOfWeek)
	require.Len(t, view.Cells, 28)

	breakfast := view.Cells[cellKey(dates[0], models.MealBreakfast)]
	require.True(t, breakfast.Planned)
	require.NotNil(t, breakfast.RecipeID)
	assert.Equal(t, recipe.ID, *breakfast.RecipeID)
	assert.Equal(t, "Pancakes", breakfast.RecipeName)

	lunch := view.Cells[cellKey(dates[0], models.MealLunch)]
	assert.True(t, lunch.Planned)
	assert.Equal(t, "sandwich", lunch.CustomMeal)
	assert.Equal(t, "no mustard", lunch.Notes)

	planned := 0
	for _, cell := range view.Cells {
		if cell.Planned {
			planned++
		}
	}
	assert.Equal(t, 2, planned, "only the two submitted cells may be populated")
}

func TestApplyWeekIsIdempotentInEffect(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "planner@example.com")
	recipe := createTestRecipe(t, db, "Ramen", nil)

	svc := NewPlannerService(db)
	dates := WeekWindow(plannerAnchor)

	payload := WeekPayload{Cells: map[string]CellInput{
		cellKey(dates[1], models.MealDinner):        {RecipeID: strconv.Itoa(int(recipe.ID)), Notes: "extra egg"},
		cellKey(dates[3], models.MealMidnightSnack): {CustomMeal: "cereal"},
	}}

	first, err := svc.ApplyWeek(user.ID, plannerAnchor, payload)
	require.NoError(t, err)
	second, err := svc.ApplyWeek(user.ID, plannerAnchor, payload)
	require.NoError(t, err)

	// counts repeat on resubmission: every non-empty cell is re-upserted
	assert.Equal(t, first, second)
	assert.Equal(t, 2, second.Saved)
	assert.Equal(t, 0, second.Deleted)

	// but the stored state is identical, one row per cell
	var count int64
	require.NoError(t, db.Model(&models.MealPlan{}).Count(&count).Error)
	assert.EqualValues(t, 2, count)

	view, err := svc.ComputeWeek(user.ID, plannerAnchor)
	require.NoError(t, err)
	dinner := view.Cells[cellKey(dates[1], models.MealDinner)]
	require.NotNil(t, dinner.RecipeID)
	assert.Equal(t, recipe.ID, *dinner.RecipeID)
	assert.Equal(t, "extra egg", dinner.Notes)
}

func TestApplyWeekDeletesEmptiedCells(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "planner@example.com")

	svc := NewPlannerService(db)
	dates := WeekWindow(plannerAnchor)
	tuesdayDinner := cellKey(dates[1], models.MealDinner)

	_, err := svc.ApplyWeek(user.ID, plannerAnchor, WeekPayload{Cells: map[string]CellInput{
		tuesdayDinner: {CustomMeal: "stew"},
	}})
	require.NoError(t, err)

	// resubmit with Tuesday dinner blank and Friday lunch filled
	summary, err := svc.ApplyWeek(user.ID, plannerAnchor, WeekPayload{Cells: map[string]CellInput{
		cellKey(dates[4], models.MealLunch): {CustomMeal: "leftovers"},
	}})
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Saved)
	assert.Equal(t, 1, summary.Deleted)

	view, err := svc.ComputeWeek(user.ID, plannerAnchor)
	require.NoError(t, err)
	assert.False(t, view.Cells[tuesdayDinner].Planned)
	assert.True(t, view.Cells[cellKey(dates[4], models.MealLunch)].Planned)
}

func TestApplyWeekIgnoresUnresolvableRecipeRefs(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "planner@example.com")

	svc := NewPlannerService(db)
	dates := WeekWindow(plannerAnchor)

	summary, err := svc.ApplyWeek(user.ID, plannerAnchor, WeekPayload{Cells: map[string]CellInput{
		// unknown id, no custom text: cell stays empty, never an error
		cellKey(dates[0], models.MealBreakfast): {RecipeID: "9999"},
		// garbage id but custom text present: saved as a custom meal
		cellKey(dates[0], models.MealLunch): {RecipeID: "not-a-number", CustomMeal: "toast"},
	}})
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Saved)
	assert.Equal(t, 0, summary.Deleted)

	view, err := svc.ComputeWeek(user.ID, plannerAnchor)
	require.NoError(t, err)
	assert.False(t, view.Cells[cellKey(dates[0], models.MealBreakfast)].Planned)

	lunch := view.Cells[cellKey(dates[0], models.MealLunch)]
	assert.True(t, lunch.Planned)
	assert.Nil(t, lunch.RecipeID)
	assert.Equal(t, "toast", lunch.CustomMeal)
}

func TestSlotUniquenessUnderRepeatedUpserts(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "planner@example.com")
	recipe := createTestRecipe(t, db, "Tacos", nil)

	svc := NewPlannerService(db)
	dates := WeekWindow(plannerAnchor)
	key := cellKey(dates[2], models.MealDinner)

	for i := 0; i < 3; i++ {
		_, err := svc.ApplyWeek(user.ID, plannerAnchor, WeekPayload{Cells: map[string]CellInput{
			key: {RecipeID: strconv.Itoa(int(recipe.ID))},
		}})
		require.NoError(t, err)
	}
	require.NoError(t, svc.SaveSlot(user.ID, dates[2], models.MealDinner, recipe.ID))

	var count int64
	require.NoError(t, db.Model(&models.MealPlan{}).
		Where("user_id = ? AND date = ? AND meal_type = ?", user.ID, dates[2], models.MealDinner).
		Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestSlotUniquenessUnderConcurrentUpserts(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "planner@example.com")
	recipe := createTestRecipe(t, db, "Chili", nil)

	svc := NewPlannerService(db)
	dates := WeekWindow(plannerAnchor)
	key := cellKey(dates[2], models.MealDinner)
	payload := WeekPayload{Cells: map[string]CellInput{
		key: {RecipeID: strconv.Itoa(int(recipe.ID))},
	}}

	// two browser tabs submitting the same week must race to one row
	var wg sync.WaitGroup
	errs := make([]error, 8)
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.ApplyWeek(user.ID, plannerAnchor, payload)
		}(i)
	}
	wg.Wait()
	for _, err := range errs {
		require.NoError(t, err)
	}

	var count int64
	require.NoError(t, db.Model(&models.MealPlan{}).
		Where("user_id = ? AND date = ? AND meal_type = ?", user.ID, dates[2], models.MealDinner).
		Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

// Stored dates must read back byte-identical to the cell key's date part,
// so every persisted slot lands on one of the 28 placeholder keys and the
// view never grows extra cells.
func TestComputeWeekKeysStayCanonical(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "planner@example.com")

	svc := NewPlannerService(db)
	dates := WeekWindow(plannerAnchor)

	payload := WeekPayload{Cells: map[string]CellInput{}}
	for _, date := range dates {
		payload.Cells[cellKey(date, models.MealBreakfast)] = CellInput{CustomMeal: "meal " + date}
	}
	_, err := svc.ApplyWeek(user.ID, plannerAnchor, payload)
	require.NoError(t, err)

	var slots []models.MealPlan
	require.NoError(t, db.Where("user_id = ?", user.ID).Find(&slots).Error)
	require.Len(t, slots, 7)
	for _, slot := range slots {
		assert.Regexp(t, `^\d{4}-\d{2}-\d{2}$`, slot.Date)
	}

	view, err := svc.ComputeWeek(user.ID, plannerAnchor)
	require.NoError(t, err)
	require.Len(t, view.Cells, 28, "persisted slots must overlay placeholders, not add keys")
	for encoded := range view.Cells {
		key, err := ParseCellKey(encoded)
		require.NoError(t, err)
		assert.Contains(t, dates, key.Date)
	}
	for _, date := range dates {
		assert.True(t, view.Cells[cellKey(date, models.MealBreakfast)].Planned)
	}
}

func TestSaveSlotKeepsExistingNotes(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "planner@example.com")
	recipe := createTestRecipe(t, db, "Curry", nil)

	svc := NewPlannerService(db)
	dates := WeekWindow(plannerAnchor)

	_, err := svc.ApplyWeek(user.ID, plannerAnchor, WeekPayload{Cells: map[string]CellInput{
		cellKey(dates[0], models.MealDinner): {CustomMeal: "takeout", Notes: "order early"},
	}})
	require.NoError(t, err)

	require.NoError(t, svc.SaveSlot(user.ID, dates[0], models.MealDinner, recipe.ID))

	var slot models.MealPlan
	require.NoError(t, db.
		Where("user_id = ? AND date = ? AND meal_type = ?", user.ID, dates[0], models.MealDinner).
		First(&slot).Error)
	require.NotNil(t, slot.RecipeID)
	assert.Equal(t, recipe.ID, *slot.RecipeID)
	assert.Equal(t, "order early", slot.Notes)
}

func TestSaveSlotRequiresExistingRecipe(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "planner@example.com")

	svc := NewPlannerService(db)
	dates := WeekWindow(plannerAnchor)

	err := svc.SaveSlot(user.ID, dates[0], models.MealDinner, 9999)
	assert.Error(t, err)

	assert.ErrorIs(t, svc.SaveSlot(user.ID, "not-a-date", models.MealDinner, 1), ErrInvalidDate)
	assert.ErrorIs(t, svc.SaveSlot(user.ID, dates[0], "brunch", 1), ErrInvalidMealType)
}

func TestDeleteSlot(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "planner@example.com")

	svc := NewPlannerService(db)
	dates := WeekWindow(plannerAnchor)

	_, err := svc.ApplyWeek(user.ID, plannerAnchor, WeekPayload{Cells: map[string]CellInput{
		cellKey(dates[0], models.MealBreakfast): {CustomMeal: "oatmeal"},
	}})
	require.NoError(t, err)

	removed, err := svc.DeleteSlot(user.ID, dates[0], models.MealBreakfast)
	require.NoError(t, err)
	assert.True(t, removed)

	// deleting again is a no-op, not an error
	removed, err = svc.DeleteSlot(user.ID, dates[0], models.MealBreakfast)
	require.NoError(t, err)
	assert.False(t, removed)

	_, err = svc.DeleteSlot(user.ID, "2025/03/10", models.MealBreakfast)
	assert.ErrorIs(t, err, ErrInvalidDate)
	_, err = svc.DeleteSlot(user.ID, dates[0], "elevenses")
	assert.ErrorIs(t, err, ErrInvalidMealType)
}

func TestDeleteDayLeavesAdjacentDays(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "planner@example.com")

	svc := NewPlannerService(db)
	dates := WeekWindow(plannerAnchor)

	_, err := svc.ApplyWeek(user.ID, plannerAnchor, WeekPayload{Cells: map[string]CellInput{
		cellKey(dates[1], models.MealBreakfast): {CustomMeal: "eggs"},
		cellKey(dates[1], models.MealLunch):     {CustomMeal: "soup"},
		cellKey(dates[2], models.MealDinner):    {CustomMeal: "pasta"},
	}})
	require.NoError(t, err)

	deleted, err := svc.DeleteDay(user.ID, dates[1])
	require.NoError(t, err)
	assert.EqualValues(t, 2, deleted)

	view, err := svc.ComputeWeek(user.ID, plannerAnchor)
	require.NoError(t, err)
	assert.False(t, view.Cells[cellKey(dates[1], models.MealBreakfast)].Planned)
	assert.False(t, view.Cells[cellKey(dates[1], models.MealLunch)].Planned)
	assert.True(t, view.Cells[cellKey(dates[2], models.MealDinner)].Planned)

	_, err = svc.DeleteDay(user.ID, "tomorrow")
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestClearWeekBoundedToWindow(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "planner@example.com")

	svc := NewPlannerService(db)
	dates := WeekWindow(plannerAnchor)

	_, err := svc.ApplyWeek(user.ID, plannerAnchor, WeekPayload{Cells: map[string]CellInput{
		cellKey(dates[0], models.MealBreakfast): {CustomMeal: "eggs"},
		cellKey(dates[6], models.MealDinner):    {CustomMeal: "pizza"},
	}})
	require.NoError(t, err)

	// a slot on the following Monday must survive the clear
	nextMonday := plannerAnchor.AddDate(0, 0, 7)
	_, err = svc.ApplyWeek(user.ID, nextMonday, WeekPayload{Cells: map[string]CellInput{
		cellKey(WeekWindow(nextMonday)[0], models.MealLunch): {CustomMeal: "salad"},
	}})
	require.NoError(t, err)

	deleted, err := svc.ClearWeek(user.ID, plannerAnchor)
	require.NoError(t, err)
	assert.EqualValues(t, 2, deleted)

	var count int64
	require.NoError(t, db.Model(&models.MealPlan{}).Where("user_id = ?", user.ID).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestApplyWeekScopedToUser(t *testing.T) {
	db := newTestDB(t)
	alice := createTestUser(t, db, "alice@example.com")
	bob := createTestUser(t, db, "bob@example.com")

	svc := NewPlannerService(db)
	dates := WeekWindow(plannerAnchor)
	key := cellKey(dates[0], models.MealLunch)

	_, err := svc.ApplyWeek(alice.ID, plannerAnchor, WeekPayload{Cells: map[string]CellInput{
		key: {CustomMeal: "salad"},
	}})
	require.NoError(t, err)

	// Bob submitting an empty week must not touch Alice's slots
	summary, err := svc.ApplyWeek(bob.ID, plannerAnchor, WeekPayload{})
	require.NoError(t, err)
	assert.Equal(t, 0, summary.Deleted)

	view, err := svc.ComputeWeek(alice.ID, plannerAnchor)
	require.NoError(t, err)
	assert.True(t, view.Cells[key].Planned)
}

package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/kevinreyes061304-ops/meal-planner/models"
)

const dateLayout = "2006-01-02"

// CellKey addresses one cell of the weekly grid: a calendar date plus a
// meal type. Its encoded form ("2025-01-06_breakfast") is the field key
// shared by week views and submitted payloads, so a cell in a response
// always maps back to the same cell in the next request.
type CellKey struct {
	Date     string
	MealType string
}

// Encode renders the canonical wire form of the key.
func (k CellKey) Encode() string {
	return k.Date + "_" + k.MealType
}

// ParseCellKey is the inverse of Encode. The date never contains an
// underscore, so the split is unambiguous even for "midnight_snack".
func ParseCellKey(s string) (CellKey, error) {
	date, mealType, found := strings.Cut(s, "_")
	if !found {
		return CellKey{}, fmt.Errorf("malformed cell key %q", s)
	}
	if _, err := time.Parse(dateLayout, date); err != nil {
		return CellKey{}, fmt.Errorf("malformed cell key %q: %w", s, ErrInvalidDate)
	}
	if !models.IsSlotMealType(mealType) {
		return CellKey{}, fmt.Errorf("malformed cell key %q: %w", s, ErrInvalidMealType)
	}
	return CellKey{Date: date, MealType: mealType}, nil
}

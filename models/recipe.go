package models

import "gorm.io/gorm"

// A recipe the user can plan meals with. Rows with a nil CreatedByID are
// the seeded standard catalog shared by everyone; rows with an owner are
// that user's private recipes.
type Recipe struct {
	gorm.Model
	Name            string `gorm:"type:varchar(200);index;not null"`
	Description     string
	Ingredients     string // one per line
	Instructions    string
	PrepTime        int    // minutes
	CookTime        int    // minutes
	Servings        int    `gorm:"default:1"`
	MealType        string `gorm:"type:varchar(20);default:'lunch'"`
	IsPopular       bool   `gorm:"index"` // show on dashboard
	PopularityScore int    // higher = more prominent
	ImageURL        string
	CreatedByID     *uint `gorm:"index"`
}

// TotalTime is prep plus cook time in minutes.
func (r *Recipe) TotalTime() int {
	return r.PrepTime + r.CookTime
}

// OwnedBy reports whether the recipe is a private recipe of the given user.
func (r *Recipe) OwnedBy(userID uint) bool {
	return r.CreatedByID != nil && *r.CreatedByID == userID
}

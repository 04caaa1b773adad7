package models

import "gorm.io/gorm"

// UserProfile holds the free-text dietary info shown on the dashboard.
// One row per user, created lazily on first read.
type UserProfile struct {
	gorm.Model
	UserID      uint   `gorm:"uniqueIndex;not null"`
	Allergies   string // e.g. peanuts, shellfish, dairy
	Preferences string // e.g. vegetarian, low-carb
	Description string
}

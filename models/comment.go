package models

import "gorm.io/gorm"

// Comment is a user note about allergies, preferences or planning tips.
// Append-only: notes are never edited, only added and (via account
// deletion) removed.
type Comment struct {
	gorm.Model
	UserID      uint   `gorm:"index;not null"`
	Content     string `gorm:"not null"`
	IsImportant bool   `gorm:"default:true"` // important notes show on the dashboard
}

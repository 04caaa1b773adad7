package models

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Handle   string `gorm:"type:varchar(64);uniqueIndex;not null"` // public id, assigned at registration
	Email    string `gorm:"uniqueIndex;not null"`
	Password string `gorm:"not null"` // bcrypt hash
	FullName string
}

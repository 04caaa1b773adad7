package services

import "errors"

var (
	ErrPermissionDenied = errors.New("permission denied")
	ErrInvalidDate      = errors.New("invalid date, expected YYYY-MM-DD")
	ErrInvalidMealType  = errors.New("invalid meal type")
	ErrEmailTaken       = errors.New("email already registered")
)

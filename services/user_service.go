// services/user_service.go
package services

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/kevinreyes061304-ops/meal-planner/models"
	"github.com/kevinreyes061304-ops/meal-planner/utils"
)

type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

// Register creates the account in one insert and lets the unique index on
// email arbitrate: two concurrent registrations for the same address race
// to a single winner, the loser gets ErrEmailTaken.
func (s *UserService) Register(email, password, fullName string) (*models.User, error) {
	hashed, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Handle:   uuid.New().String(),
		Email:    email,
		Password: hashed,
		FullName: fullName,
	}
	if err := s.db.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	return &user, nil
}

// Authenticate checks the credentials and returns a signed JWT.
func (s *UserService) Authenticate(email, password string) (string, error) {
	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		return "", errors.New("user not found")
	}

	if !utils.CheckPasswordHash(password, user.Password) {
		return "", errors.New("incorrect password")
	}

	return utils.GenerateJWT(user.ID, user.Email)
}

func (s *UserService) Get(userID uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// ProfileFor returns the user's profile, creating an empty one on first
// access.
func (s *UserService) ProfileFor(userID uint) (*models.UserProfile, error) {
	var profile models.UserProfile
	err := s.db.Where(models.UserProfile{UserID: userID}).FirstOrCreate(&profile).Error
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

type ProfileInput struct {
	FullName    string `json:"full_name"`
	Allergies   string `json:"allergies"`
	Preferences string `json:"preferences"`
	Description string `json:"description"`
}

// UpdateProfile replaces the profile's dietary text and, when provided,
// the display name.
func (s *UserService) UpdateProfile(userID uint, input ProfileInput) error {
	if input.FullName != "" {
		if err := s.db.Model(&models.User{}).
			Where("id = ?", userID).
			Update("full_name", input.FullName).Error; err != nil {
			return err
		}
	}

	profile, err := s.ProfileFor(userID)
	if err != nil {
		return err
	}
	profile.Allergies = input.Allergies
	profile.Preferences = input.Preferences
	profile.Description = input.Description
	return s.db.Save(profile).Error
}

// ChangePassword swaps the password after verifying the old one. A wrong
// old password is a permission error, not a validation error.
func (s *UserService) ChangePassword(userID uint, oldPassword, newPassword string) error {
	user, err := s.Get(userID)
	if err != nil {
		return err
	}
	if !utils.CheckPasswordHash(oldPassword, user.Password) {
		return ErrPermissionDenied
	}

	hashed, err := utils.HashPassword(newPassword)
	if err != nil {
		return err
	}
	user.Password = hashed
	return s.db.Save(user).Error
}

// DeleteAccount permanently removes the user after a password check. Meal
// plans, comments and the profile go with the account; owned recipes are
// detached into the shared catalog instead of being destroyed.
func (s *UserService) DeleteAccount(userID uint, password string) error {
	user, err := s.Get(userID)
	if err != nil {
		return err
	}
	if !utils.CheckPasswordHash(password, user.Password) {
		return ErrPermissionDenied
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Recipe{}).
			Where("created_by_id = ?", userID).
			Update("created_by_id", nil).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", userID).Delete(&models.MealPlan{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", userID).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", userID).Delete(&models.UserProfile{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.User{}, userID).Error
	})
}

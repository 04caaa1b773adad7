package services

import (
	"gorm.io/gorm"

	"github.com/kevinreyes061304-ops/meal-planner/models"
)

// CommentService is the user's append-only note log. Notes are added and
// listed, never edited.
type CommentService struct {
	db *gorm.DB
}

func NewCommentService(db *gorm.DB) *CommentService {
	return &CommentService{db: db}
}

func (s *CommentService) Add(userID uint, content string, isImportant bool) (*models.Comment, error) {
	comment := models.Comment{
		UserID:      userID,
		Content:     content,
		IsImportant: isImportant,
	}
	if err := s.db.Create(&comment).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

// ListRecent returns the user's notes, newest first.
func (s *CommentService) ListRecent(userID uint, limit int) ([]models.Comment, error) {
	if limit <= 0 {
		limit = 20
	}
	var comments []models.Comment
	err := s.db.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&comments).Error
	return comments, err
}

// ListImportant returns the user's important notes, newest first. These
// are the ones surfaced on the dashboard.
func (s *CommentService) ListImportant(userID uint, limit int) ([]models.Comment, error) {
	if limit <= 0 {
		limit = 5
	}
	var comments []models.Comment
	err := s.db.
		Where("user_id = ? AND is_important = ?", userID, true).
		Order("created_at DESC").
		Limit(limit).
		Find(&comments).Error
	return comments, err
}

package repositories

import (
	"fmt"
	"time"

	"reviewhub/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMCommentRepository is a GORM implementation of CommentRepository.
type GORMCommentRepository struct {
	db *gorm.DB
}

// NewGORMCommentRepository creates a new instance of GORMCommentRepository.
func NewGORMCommentRepository(db *gorm.DB) *GORMCommentRepository {
	return &GORMCommentRepository{
		db: db,
	}
}

// Create inserts a comment. An unknown user or review fails with
// ErrReferenceMissing.
func (r *GORMCommentRepository) Create(comment *models.Comment) error {
	if comment.ID == "" {
		comment.ID = uuid.New().String()
	}
	if err := r.db.Create(comment).Error; err != nil {
		return fmt.Errorf("failed to create comment: %w", translate(err))
	}
	return nil
}

// ListByUser returns every comment written by userID.
func (r *GORMCommentRepository) ListByUser(userID string) ([]models.Comment, error) {
	comments := []models.Comment{}
	if err := r.db.Where("user_id = ?", userID).Order("created_at").Find(&comments).Error; err != nil {
		return nil, fmt.Errorf("failed to list comments for user %s: %w", userID, err)
	}
	return comments, nil
}

// ListByReview returns the thread under a review.
func (r *GORMCommentRepository) ListByReview(reviewID string) ([]models.Comment, error) {
	comments := []models.Comment{}
	if err := r.db.Where("review_id = ?", reviewID).Order("created_at").Find(&comments).Error; err != nil {
		return nil, fmt.Errorf("failed to list comments for review %s: %w", reviewID, err)
	}
	return comments, nil
}

func (r *GORMCommentRepository) getByID(id string) (*models.Comment, error) {
	var comment models.Comment
	if err := r.db.First(&comment, "id = ?", id).Error; err != nil {
		return nil, fmt.Errorf("failed to get comment %s: %w", id, translate(err))
	}
	return &comment, nil
}

// UpdateOwned rewrites the text of comment id only if userID owns it.
func (r *GORMCommentRepository) UpdateOwned(userID, id, text string) (*models.Comment, error) {
	res := r.db.Model(&models.Comment{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(map[string]interface{}{
			"text":       text,
			"updated_at": time.Now(),
		})
	if res.Error != nil {
		return nil, fmt.Errorf("failed to update comment %s: %w", id, translate(res.Error))
	}
	if res.RowsAffected == 0 {
		return nil, fmt.Errorf("comment %s not found for update: %w", id, ErrNotFound)
	}
	return r.getByID(id)
}

// DeleteOwned removes comment id only if userID owns it.
func (r *GORMCommentRepository) DeleteOwned(userID, id string) error {
	res := r.db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.Comment{})
	if res.Error != nil {
		return fmt.Errorf("failed to delete comment %s: %w", id, translate(res.Error))
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("comment %s not found for deletion: %w", id, ErrNotFound)
	}
	return nil
}

package repositories

import "reviewhub/internal/models"

// CommentRepository defines the interface for comment data access.
type CommentRepository interface {
	Create(comment *models.Comment) error
	ListByUser(userID string) ([]models.Comment, error)
	ListByReview(reviewID string) ([]models.Comment, error)
	UpdateOwned(userID, id, text string) (*models.Comment, error)
	DeleteOwned(userID, id string) error
}

package services

import (
	"errors"
	"fmt"

	"reviewhub/internal/models"
	"reviewhub/internal/repositories"
)

// CommentService handles business logic related to comments.
type CommentService struct {
	repo      repositories.CommentRepository
	publisher EventPublisher
}

// NewCommentService creates a new CommentService. publisher may be nil.
func NewCommentService(repo repositories.CommentRepository, publisher EventPublisher) *CommentService {
	return &CommentService{
		repo:      repo,
		publisher: publisher,
	}
}

// CreateComment stores userID's comment on reviewID.
func (s *CommentService) CreateComment(text, userID, reviewID string) (*models.Comment, error) {
	comment := &models.Comment{
		Text:     text,
		UserID:   userID,
		ReviewID: reviewID,
	}
	if err := s.repo.Create(comment); err != nil {
		if errors.Is(err, repositories.ErrReferenceMissing) {
			return nil, fmt.Errorf("review %s or user %s: %w", reviewID, userID, ErrNotFound)
		}
		return nil, err
	}

	publishEvent(s.publisher, Event{Type: "comment.created", ID: comment.ID, UserID: userID, ReviewID: reviewID})
	return comment, nil
}

// ListCommentsByUser returns every comment userID wrote.
func (s *CommentService) ListCommentsByUser(userID string) ([]models.Comment, error) {
	return s.repo.ListByUser(userID)
}

// ListCommentsByReview returns the thread under a review.
func (s *CommentService) ListCommentsByReview(reviewID string) ([]models.Comment, error) {
	return s.repo.ListByReview(reviewID)
}

// UpdateComment changes the text of a comment owned by actingUserID.
func (s *CommentService) UpdateComment(actingUserID, commentID, text string) (*models.Comment, error) {
	comment, err := s.repo.UpdateOwned(actingUserID, commentID, text)
	if err != nil {
		return nil, notFound(err)
	}

	publishEvent(s.publisher, Event{Type: "comment.updated", ID: comment.ID, UserID: actingUserID, ReviewID: comment.ReviewID})
	return comment, nil
}

// DeleteComment removes a comment owned by actingUserID.
func (s *CommentService) DeleteComment(actingUserID, commentID string) error {
	if err := s.repo.DeleteOwned(actingUserID, commentID); err != nil {
		return notFound(err)
	}

	publishEvent(s.publisher, Event{Type: "comment.deleted", ID: commentID, UserID: actingUserID})
	return nil
}

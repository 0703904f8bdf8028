package services

import (
	"errors"
	"fmt"

	"reviewhub/internal/models"
	"reviewhub/internal/repositories"
)

// ReviewService handles business logic related to reviews.
type ReviewService struct {
	repo      repositories.ReviewRepository
	publisher EventPublisher
}

// NewReviewService creates a new ReviewService. publisher may be nil.
func NewReviewService(repo repositories.ReviewRepository, publisher EventPublisher) *ReviewService {
	return &ReviewService{
		repo:      repo,
		publisher: publisher,
	}
}

// CreateReview stores userID's review of itemID. The (user, item) unique
// index rejects a second review instead of overwriting the first.
func (s *ReviewService) CreateReview(text string, rating float64, userID, itemID string) (*models.Review, error) {
	review := &models.Review{
		Text:   text,
		Rating: rating,
		UserID: userID,
		ItemID: itemID,
	}
	if err := s.repo.Create(review); err != nil {
		switch {
		case errors.Is(err, repositories.ErrDuplicate):
			return nil, ErrDuplicateReview
		case errors.Is(err, repositories.ErrReferenceMissing):
			return nil, fmt.Errorf("item %s or user %s: %w", itemID, userID, ErrNotFound)
		}
		return nil, err
	}

	publishEvent(s.publisher, Event{Type: "review.created", ID: review.ID, UserID: userID, ItemID: itemID, Rating: &review.Rating})
	return review, nil
}

// GetReview retrieves a single review.
func (s *ReviewService) GetReview(id string) (*models.Review, error) {
	review, err := s.repo.GetByID(id)
	if err != nil {
		return nil, notFound(err)
	}
	return review, nil
}

// ListReviews returns the reviews of an item.
func (s *ReviewService) ListReviews(itemID string) ([]models.Review, error) {
	return s.repo.ListByItem(itemID)
}

// UpdateReview changes text and rating of a review owned by actingUserID.
// A review that is missing or owned by someone else is ErrNotFound.
func (s *ReviewService) UpdateReview(actingUserID, reviewID, text string, rating float64) (*models.Review, error) {
	review, err := s.repo.UpdateOwned(actingUserID, reviewID, text, rating)
	if err != nil {
		return nil, notFound(err)
	}

	publishEvent(s.publisher, Event{Type: "review.updated", ID: review.ID, UserID: actingUserID, ItemID: review.ItemID, Rating: &review.Rating})
	return review, nil
}

// DeleteReview removes a review owned by actingUserID together with its
// comments.
func (s *ReviewService) DeleteReview(actingUserID, reviewID string) error {
	if err := s.repo.DeleteOwned(actingUserID, reviewID); err != nil {
		return notFound(err)
	}

	publishEvent(s.publisher, Event{Type: "review.deleted", ID: reviewID, UserID: actingUserID})
	return nil
}

// notFound converts the repository miss into the core's ErrNotFound and
// passes any other error through.
func notFound(err error) error {
	if errors.Is(err, repositories.ErrNotFound) {
		return fmt.Errorf("%v: %w", err, ErrNotFound)
	}
	return err
}

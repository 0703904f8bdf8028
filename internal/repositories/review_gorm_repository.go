package repositories

import (
	"fmt"
	"time"

	"reviewhub/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMReviewRepository is a GORM implementation of ReviewRepository.
type GORMReviewRepository struct {
	db *gorm.DB
}

// NewGORMReviewRepository creates a new instance of GORMReviewRepository.
func NewGORMReviewRepository(db *gorm.DB) *GORMReviewRepository {
	return &GORMReviewRepository{
		db: db,
	}
}

// Create inserts a review. A second review by the same user on the same
// item fails with ErrDuplicate; an unknown user or item with
// ErrReferenceMissing.
func (r *GORMReviewRepository) Create(review *models.Review) error {
	if review.ID == "" {
		review.ID = uuid.New().String()
	}
	if err := r.db.Create(review).Error; err != nil {
		return fmt.Errorf("failed to create review: %w", translate(err))
	}
	return nil
}

// GetByID retrieves a review by its ID.
func (r *GORMReviewRepository) GetByID(id string) (*models.Review, error) {
	var review models.Review
	if err := r.db.First(&review, "id = ?", id).Error; err != nil {
		return nil, fmt.Errorf("failed to get review %s: %w", id, translate(err))
	}
	return &review, nil
}

// ListByItem returns every review of an item, oldest first.
func (r *GORMReviewRepository) ListByItem(itemID string) ([]models.Review, error) {
	reviews := []models.Review{}
	if err := r.db.Where("item_id = ?", itemID).Order("created_at").Find(&reviews).Error; err != nil {
		return nil, fmt.Errorf("failed to list reviews for item %s: %w", itemID, err)
	}
	return reviews, nil
}

// UpdateOwned rewrites text and rating of review id only if userID owns it.
// Wrong id and wrong owner are both ErrNotFound.
func (r *GORMReviewRepository) UpdateOwned(userID, id, text string, rating float64) (*models.Review, error) {
	res := r.db.Model(&models.Review{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(map[string]interface{}{
			"text":       text,
			"rating":     rating,
			"updated_at": time.Now(),
		})
	if res.Error != nil {
		return nil, fmt.Errorf("failed to update review %s: %w", id, translate(res.Error))
	}
	if res.RowsAffected == 0 {
		return nil, fmt.Errorf("review %s not found for update: %w", id, ErrNotFound)
	}
	return r.GetByID(id)
}

// DeleteOwned removes review id only if userID owns it. Its comments go
// with it.
func (r *GORMReviewRepository) DeleteOwned(userID, id string) error {
	res := r.db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.Review{})
	if res.Error != nil {
		return fmt.Errorf("failed to delete review %s: %w", id, translate(res.Error))
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("review %s not found for deletion: %w", id, ErrNotFound)
	}
	return nil
}

package repositories

import "reviewhub/internal/models"

// ReviewRepository defines the interface for review data access. Mutations
// are scoped to the owning user inside a single statement.
type ReviewRepository interface {
	Create(review *models.Review) error
	GetByID(id string) (*models.Review, error)
	ListByItem(itemID string) ([]models.Review, error)
	UpdateOwned(userID, id, text string, rating float64) (*models.Review, error)
	DeleteOwned(userID, id string) error
}

package repositories

import "reviewhub/internal/models"

// ItemRepository defines the interface for catalog data access.
type ItemRepository interface {
	Create(item *models.Item) error
	List(search string) ([]models.Item, error)
	GetDetails(id string) (*models.ItemDetails, error)
}

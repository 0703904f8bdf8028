package repositories

import (
	"fmt"
	"strings"

	"reviewhub/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMItemRepository is a GORM implementation of ItemRepository.
type GORMItemRepository struct {
	db *gorm.DB
}

// NewGORMItemRepository creates a new instance of GORMItemRepository.
func NewGORMItemRepository(db *gorm.DB) *GORMItemRepository {
	return &GORMItemRepository{
		db: db,
	}
}

// Create inserts a new catalog item.
func (r *GORMItemRepository) Create(item *models.Item) error {
	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	if err := r.db.Create(item).Error; err != nil {
		return fmt.Errorf("failed to create item: %w", translate(err))
	}
	return nil
}

// List returns all items, or only those whose name or description contains
// search, ignoring case.
func (r *GORMItemRepository) List(search string) ([]models.Item, error) {
	items := []models.Item{}
	query := r.db.Order("name")
	if search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		query = query.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", pattern, pattern)
	}
	if err := query.Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}
	return items, nil
}

// GetDetails returns the item with the mean rating of its reviews, computed
// at read time.
func (r *GORMItemRepository) GetDetails(id string) (*models.ItemDetails, error) {
	var details models.ItemDetails
	res := r.db.Model(&models.Item{}).
		Select("items.id, items.name, items.description, AVG(reviews.rating) AS average_rating").
		Joins("LEFT JOIN reviews ON reviews.item_id = items.id").
		Where("items.id = ?", id).
		Group("items.id, items.name, items.description").
		Scan(&details)
	if res.Error != nil {
		return nil, fmt.Errorf("failed to get item %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, fmt.Errorf("item %s: %w", id, ErrNotFound)
	}
	return &details, nil
}

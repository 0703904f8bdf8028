package services

import (
	"errors"
	"fmt"

	"reviewhub/internal/models"
	"reviewhub/internal/repositories"
)

// CatalogService handles business logic related to items.
type CatalogService struct {
	repo repositories.ItemRepository
}

// NewCatalogService creates a new CatalogService.
func NewCatalogService(repo repositories.ItemRepository) *CatalogService {
	return &CatalogService{
		repo: repo,
	}
}

// CreateItem adds an item to the catalog.
func (s *CatalogService) CreateItem(name, description string) (*models.Item, error) {
	item := &models.Item{Name: name, Description: description}
	if err := s.repo.Create(item); err != nil {
		return nil, err
	}
	return item, nil
}

// ListItems returns every item, filtered by a substring when search is set.
func (s *CatalogService) ListItems(search string) ([]models.Item, error) {
	return s.repo.List(search)
}

// GetItem returns an item with its average rating.
func (s *CatalogService) GetItem(id string) (*models.ItemDetails, error) {
	details, err := s.repo.GetDetails(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, fmt.Errorf("item %s: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return details, nil
}

package services_test

import (
	"fmt"
	"testing"

	"reviewhub/internal/models"
	"reviewhub/internal/repositories"
	"reviewhub/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCatalogService_CreateAndList(t *testing.T) {
	mockRepo := new(MockItemRepository)
	service := services.NewCatalogService(mockRepo)

	mockRepo.On("Create", mock.MatchedBy(func(it *models.Item) bool {
		return it.Name == "foo" && it.Description == "foo description"
	})).Return(nil).Once()

	item, err := service.CreateItem("foo", "foo description")
	require.NoError(t, err)
	assert.Equal(t, "foo", item.Name)

	expected := []models.Item{{ID: "1", Name: "foo"}}
	mockRepo.On("List", "fo").Return(expected, nil).Once()
	items, err := service.ListItems("fo")
	require.NoError(t, err)
	assert.Equal(t, expected, items)
	mockRepo.AssertExpectations(t)
}

func TestCatalogService_GetItem(t *testing.T) {
	mockRepo := new(MockItemRepository)
	service := services.NewCatalogService(mockRepo)

	avg := 3.5
	mockRepo.On("GetDetails", "1").Return(&models.ItemDetails{ID: "1", Name: "foo", AverageRating: &avg}, nil).Once()
	mockRepo.On("GetDetails", "99").Return(nil, fmt.Errorf("item 99: %w", repositories.ErrNotFound)).Once()

	details, err := service.GetItem("1")
	require.NoError(t, err)
	assert.Equal(t, 3.5, *details.AverageRating)

	_, err = service.GetItem("99")
	assert.ErrorIs(t, err, services.ErrNotFound)
	mockRepo.AssertExpectations(t)
}

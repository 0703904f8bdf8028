package handlers

import (
	"reviewhub/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// ItemHandler handles HTTP requests for catalog items.
type ItemHandler struct {
	service  *services.CatalogService
	validate *validator.Validate
}

// NewItemHandler creates a new ItemHandler.
func NewItemHandler(service *services.CatalogService) *ItemHandler {
	return &ItemHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the item routes. auth guards item creation.
func (h *ItemHandler) RegisterRoutes(router fiber.Router, auth fiber.Handler) {
	itemRoutes := router.Group("/items")
	itemRoutes.Get("/", h.HandleListItems)
	itemRoutes.Post("/", auth, h.HandleCreateItem)
	itemRoutes.Get("/:id", h.HandleGetItem)
}

// CreateItemRequest is the body of POST /items.
type CreateItemRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=50"`
	Description string `json:"description" validate:"required"`
}

// HandleListItems lists items, optionally filtered by ?search=.
func (h *ItemHandler) HandleListItems(c *fiber.Ctx) error {
	items, err := h.service.ListItems(c.Query("search"))
	if err != nil {
		return respondError(c, "Could not retrieve items", err)
	}
	return c.JSON(items)
}

// HandleGetItem returns one item with its average rating.
func (h *ItemHandler) HandleGetItem(c *fiber.Ctx) error {
	item, err := h.service.GetItem(c.Params("id"))
	if err != nil {
		return respondError(c, "Could not retrieve item", err)
	}
	return c.JSON(item)
}

// HandleCreateItem adds an item to the catalog.
func (h *ItemHandler) HandleCreateItem(c *fiber.Ctx) error {
	var req CreateItemRequest
	if ok, err := parseAndValidate(c, h.validate, &req); !ok {
		return err
	}

	item, err := h.service.CreateItem(req.Name, req.Description)
	if err != nil {
		return respondError(c, "Could not create item", err)
	}
	return c.Status(fiber.StatusCreated).JSON(item)
}

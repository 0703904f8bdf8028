package handlers

import (
	"reviewhub/internal/middleware"
	"reviewhub/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// ReviewHandler handles HTTP requests for reviews.
type ReviewHandler struct {
	service  *services.ReviewService
	validate *validator.Validate
}

// NewReviewHandler creates a new ReviewHandler.
func NewReviewHandler(service *services.ReviewService) *ReviewHandler {
	return &ReviewHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the review routes. Creation needs a token;
// update and delete also need the :userId path segment to be the caller.
func (h *ReviewHandler) RegisterRoutes(router fiber.Router, auth fiber.Handler) {
	router.Get("/items/:id/reviews", h.HandleListReviews)
	router.Post("/items/:id/reviews", auth, h.HandleCreateReview)

	owned := router.Group("/users/:userId/reviews", auth, middleware.OwnerRequired("userId"))
	owned.Put("/:id", h.HandleUpdateReview)
	owned.Delete("/:id", h.HandleDeleteReview)
}

// ReviewRequest is the body of review create and update.
type ReviewRequest struct {
	Text   string  `json:"text" validate:"required"`
	Rating float64 `json:"rating" validate:"required,min=1,max=5"`
}

// HandleListReviews lists the reviews of an item.
func (h *ReviewHandler) HandleListReviews(c *fiber.Ctx) error {
	reviews, err := h.service.ListReviews(c.Params("id"))
	if err != nil {
		return respondError(c, "Could not retrieve reviews", err)
	}
	return c.JSON(reviews)
}

// HandleCreateReview stores the caller's review of the item.
func (h *ReviewHandler) HandleCreateReview(c *fiber.Ctx) error {
	var req ReviewRequest
	if ok, err := parseAndValidate(c, h.validate, &req); !ok {
		return err
	}

	identity := middleware.CurrentIdentity(c)
	review, err := h.service.CreateReview(req.Text, req.Rating, identity.ID, c.Params("id"))
	if err != nil {
		return respondError(c, "Could not create review", err)
	}
	return c.Status(fiber.StatusCreated).JSON(review)
}

// HandleUpdateReview edits a review owned by the caller.
func (h *ReviewHandler) HandleUpdateReview(c *fiber.Ctx) error {
	var req ReviewRequest
	if ok, err := parseAndValidate(c, h.validate, &req); !ok {
		return err
	}

	review, err := h.service.UpdateReview(c.Params("userId"), c.Params("id"), req.Text, req.Rating)
	if err != nil {
		return respondError(c, "Could not update review", err)
	}
	return c.JSON(review)
}

// HandleDeleteReview removes a review owned by the caller.
func (h *ReviewHandler) HandleDeleteReview(c *fiber.Ctx) error {
	if err := h.service.DeleteReview(c.Params("userId"), c.Params("id")); err != nil {
		return respondError(c, "Could not delete review", err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

package handlers

import (
	"reviewhub/internal/middleware"
	"reviewhub/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// CommentHandler handles HTTP requests for comments on reviews.
type CommentHandler struct {
	service  *services.CommentService
	validate *validator.Validate
}

// NewCommentHandler creates a new CommentHandler.
func NewCommentHandler(service *services.CommentService) *CommentHandler {
	return &CommentHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the comment routes.
func (h *CommentHandler) RegisterRoutes(router fiber.Router, auth fiber.Handler) {
	// :itemId is part of the public path only; the review alone decides
	// where the comment goes.
	router.Post("/items/:itemId/reviews/:id/comments", auth, h.HandleCreateComment)
	router.Get("/reviews/:id/comments", h.HandleListReviewComments)
	router.Get("/comments/me", auth, h.HandleListMyComments)

	owned := router.Group("/users/:userId/comments", auth, middleware.OwnerRequired("userId"))
	owned.Put("/:id", h.HandleUpdateComment)
	owned.Delete("/:id", h.HandleDeleteComment)
}

// CommentRequest is the body of comment create and update.
type CommentRequest struct {
	Text string `json:"text" validate:"required"`
}

// HandleCreateComment adds the caller's comment to a review.
func (h *CommentHandler) HandleCreateComment(c *fiber.Ctx) error {
	var req CommentRequest
	if ok, err := parseAndValidate(c, h.validate, &req); !ok {
		return err
	}

	identity := middleware.CurrentIdentity(c)
	comment, err := h.service.CreateComment(req.Text, identity.ID, c.Params("id"))
	if err != nil {
		return respondError(c, "Could not create comment", err)
	}
	return c.Status(fiber.StatusCreated).JSON(comment)
}

// HandleListReviewComments lists the thread under a review.
func (h *CommentHandler) HandleListReviewComments(c *fiber.Ctx) error {
	comments, err := h.service.ListCommentsByReview(c.Params("id"))
	if err != nil {
		return respondError(c, "Could not retrieve comments", err)
	}
	return c.JSON(comments)
}

// HandleListMyComments lists every comment written by the caller.
func (h *CommentHandler) HandleListMyComments(c *fiber.Ctx) error {
	comments, err := h.service.ListCommentsByUser(middleware.CurrentIdentity(c).ID)
	if err != nil {
		return respondError(c, "Could not retrieve comments", err)
	}
	return c.JSON(comments)
}

// HandleUpdateComment edits a comment owned by the caller.
func (h *CommentHandler) HandleUpdateComment(c *fiber.Ctx) error {
	var req CommentRequest
	if ok, err := parseAndValidate(c, h.validate, &req); !ok {
		return err
	}

	comment, err := h.service.UpdateComment(c.Params("userId"), c.Params("id"), req.Text)
	if err != nil {
		return respondError(c, "Could not update comment", err)
	}
	return c.JSON(comment)
}

// HandleDeleteComment removes a comment owned by the caller.
func (h *CommentHandler) HandleDeleteComment(c *fiber.Ctx) error {
	if err := h.service.DeleteComment(c.Params("userId"), c.Params("id")); err != nil {
		return respondError(c, "Could not delete comment", err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

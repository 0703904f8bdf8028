package middleware

import (
	"errors"
	"log"
	"strings"

	"reviewhub/internal/models"
	"reviewhub/internal/services"

	"github.com/gofiber/fiber/v2"
)

const identityKey = "identity"

// AuthRequired is a Fiber middleware that resolves the presented token to a
// live user and stores it in the request context.
//
// Both "Bearer <token>" and a bare token are accepted in the Authorization
// header.
func AuthRequired(resolver *services.IdentityResolver) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := strings.TrimSpace(c.Get(fiber.HeaderAuthorization))
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Authorization header is required",
			})
		}

		tokenString := authHeader
		if parts := strings.SplitN(authHeader, " ", 2); len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			tokenString = strings.TrimSpace(parts[1])
		}

		identity, err := resolver.Resolve(tokenString)
		if err != nil {
			if errors.Is(err, services.ErrNotAuthorized) {
				return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
					"message": "Not authorized",
					"error":   err.Error(),
				})
			}
			log.Printf("Identity lookup failed: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": "Could not resolve identity",
				"error":   err.Error(),
			})
		}

		c.Locals(identityKey, identity)
		return c.Next()
	}
}

// CurrentIdentity returns the identity stored by AuthRequired, or nil.
func CurrentIdentity(c *fiber.Ctx) *models.Identity {
	identity, _ := c.Locals(identityKey).(*models.Identity)
	return identity
}

// OwnerRequired rejects the request unless the route parameter param names
// the authenticated user. It must run after AuthRequired.
func OwnerRequired(param string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := services.Authorize(CurrentIdentity(c), c.Params(param)); err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Not authorized",
				"error":   err.Error(),
			})
		}
		return c.Next()
	}
}

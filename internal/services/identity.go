package services

import (
	"errors"

	"reviewhub/internal/models"
	"reviewhub/internal/repositories"
)

// IdentityResolver turns a presented token into the live user it names.
type IdentityResolver struct {
	userRepo repositories.UserRepository
	tokens   *TokenService
}

// NewIdentityResolver creates a new IdentityResolver.
func NewIdentityResolver(userRepo repositories.UserRepository, tokens *TokenService) *IdentityResolver {
	return &IdentityResolver{
		userRepo: userRepo,
		tokens:   tokens,
	}
}

// Resolve returns {id, username} for the token's user. A bad token and a
// user that no longer exists both fail with ErrNotAuthorized.
func (r *IdentityResolver) Resolve(token string) (*models.Identity, error) {
	userID, err := r.tokens.Verify(token)
	if err != nil {
		return nil, ErrNotAuthorized
	}

	user, err := r.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrNotAuthorized
		}
		return nil, err
	}
	return user.Identity(), nil
}

// Authorize allows a mutation only when the acting identity is the owner.
func Authorize(identity *models.Identity, ownerID string) error {
	if identity == nil || identity.ID == "" || identity.ID != ownerID {
		return ErrNotAuthorized
	}
	return nil
}

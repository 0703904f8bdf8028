package services

import (
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"log"

	"reviewhub/internal/models"
	"reviewhub/internal/repositories"

	"golang.org/x/crypto/bcrypt"
)

// AuthService is the credential store: it registers users with a bcrypt
// hash and verifies plaintext passwords against it.
type AuthService struct {
	userRepo   repositories.UserRepository
	tokens     *TokenService
	bcryptCost int
	// dummyHash is compared against when the username is unknown, so both
	// failure paths spend the same bcrypt time.
	dummyHash []byte
}

// NewAuthService creates a new AuthService hashing at a fixed bcryptCost.
func NewAuthService(userRepo repositories.UserRepository, tokens *TokenService, bcryptCost int) *AuthService {
	dummyHash, err := bcrypt.GenerateFromPassword([]byte("reviewhub-dummy-password"), bcryptCost)
	if err != nil {
		log.Printf("Warning: could not prepare dummy password hash: %v", err)
	}
	return &AuthService{
		userRepo:   userRepo,
		tokens:     tokens,
		bcryptCost: bcryptCost,
		dummyHash:  dummyHash,
	}
}

// Register hashes the password and stores a new user. The username unique
// index decides duplicates, so concurrent registrations cannot both win.
func (s *AuthService) Register(username, password string) (*models.User, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword(bcryptInput(password), s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Username: username,
		Password: string(hashedPassword),
	}
	if err := s.userRepo.Create(user); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, fmt.Errorf("username '%s': %w", username, ErrDuplicateUsername)
		}
		return nil, fmt.Errorf("failed to register user: %w", err)
	}
	return user, nil
}

// Verify returns the user when password matches. An unknown username and a
// wrong password are indistinguishable: both are ErrInvalidCredentials.
func (s *AuthService) Verify(username, password string) (*models.User, error) {
	user, err := s.userRepo.GetByUsername(username)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			_ = bcrypt.CompareHashAndPassword(s.dummyHash, bcryptInput(password))
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), bcryptInput(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

// maxBcryptPassword is the longest input bcrypt accepts.
const maxBcryptPassword = 72

// bcryptInput returns the bytes handed to bcrypt. Passwords longer than
// bcrypt's limit are reduced to their base64 SHA-256 digest, so every length
// is accepted and no suffix is ignored.
func bcryptInput(password string) []byte {
	if len(password) <= maxBcryptPassword {
		return []byte(password)
	}
	sum := sha256.Sum256([]byte(password))
	return []byte(base64.StdEncoding.EncodeToString(sum[:]))
}

// RegisterAndIssue registers a user and returns a token for them.
func (s *AuthService) RegisterAndIssue(username, password string) (string, error) {
	user, err := s.Register(username, password)
	if err != nil {
		return "", err
	}
	return s.tokens.Issue(user.ID)
}

// Login verifies credentials and returns a token for the user.
func (s *AuthService) Login(username, password string) (string, error) {
	user, err := s.Verify(username, password)
	if err != nil {
		return "", err
	}
	return s.tokens.Issue(user.ID)
}

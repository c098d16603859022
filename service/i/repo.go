package i

import (
	"context"

	"github.com/beka-birhanu/vinom-maze/domain"
	"github.com/google/uuid"
)

// UserRepo defines the interface for user persistence operations.
type UserRepo interface {
	// Save inserts or updates a user in the repository.
	// If the user already exists, it updates the record. Otherwise, it creates a new one.
	Save(user *domain.User) error

	// ByID retrieves a user by their unique ID.
	// Returns an error if the user is not found or in case of an unexpected error.
	ByID(id uuid.UUID) (*domain.User, error)

	// ByUsername retrieves a user by their username.
	// Returns an error if the user is not found or in case of an unexpected error.
	ByUsername(username string) (*domain.User, error)
}

// ChallengeRepo persists published challenges.
type ChallengeRepo interface {
	Save(ctx context.Context, c *domain.Challenge) error
	ByID(ctx context.Context, id uuid.UUID) (*domain.Challenge, error)
	ByAuthor(ctx context.Context, authorID uuid.UUID) ([]*domain.Challenge, error)
}

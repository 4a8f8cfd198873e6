package ports

import (
	"context"

	"github.com/saddam-69/zcardgen/internal/core/domain"
)

// AuthRepository defines the interface for user persistence.
type AuthRepository interface {
	// FindByEmail returns the user with the given email, or
	// domain.ErrUserNotFound.
	FindByEmail(ctx context.Context, email string) (*domain.User, error)

	// Create inserts a new user. Returns domain.ErrUserExists when the
	// email is already taken.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}

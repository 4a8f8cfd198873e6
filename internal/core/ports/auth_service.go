package ports

import (
	"context"
	"time"

	"github.com/saddam-69/zcardgen/internal/core/domain"
)

// AuthService implements registration, credential login and logout.
type AuthService interface {
	Register(ctx context.Context, name, email, password string) (*domain.User, error)

	// Login verifies credentials and returns a signed token plus the user.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)

	// Logout revokes the token with the given jti until its natural expiry.
	Logout(ctx context.Context, jti string, expiresAt time.Time) error
}

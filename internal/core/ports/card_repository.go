package ports

import (
	"context"

	"github.com/saddam-69/zcardgen/internal/core/domain"
)

// CardRepository defines the persistence operations for cards and their
// owned social links and views.
type CardRepository interface {
	// Create inserts the card and its social links in one transaction and
	// returns the stored card including the links.
	Create(ctx context.Context, card *domain.Card) (*domain.Card, error)

	// FindByID returns the card with social links and views preloaded,
	// views ordered newest-first, or domain.ErrCardNotFound.
	FindByID(ctx context.Context, id string) (*domain.Card, error)

	// FindAllByOwnerEmail returns every card owned by the user with the
	// given email, views ordered newest-first.
	FindAllByOwnerEmail(ctx context.Context, email string) ([]domain.Card, error)

	// Exists reports whether a card with the given id exists.
	Exists(ctx context.Context, id string) (bool, error)

	// Update applies only the given column values. When socialLinks is
	// non-nil the existing link set is replaced by it inside the same
	// transaction. Returns the refreshed card.
	Update(ctx context.Context, id string, fields map[string]any, socialLinks *[]domain.SocialLink) (*domain.Card, error)

	// Delete removes the card; social links and views go with it via the
	// FK cascade.
	Delete(ctx context.Context, id string) error
}

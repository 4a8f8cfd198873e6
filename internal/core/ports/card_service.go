package ports

import (
	"context"

	"github.com/saddam-69/zcardgen/internal/core/domain"
)

// SocialLinkInput is one sanitized social link from the transport layer.
type SocialLinkInput struct {
	Platform string
	URL      string
}

// CreateCardInput carries the sanitized fields for a new card. Optional
// fields are absent when empty.
type CreateCardInput struct {
	Name        string
	Position    string
	Company     string
	Email       string
	Phone       string
	Website     string
	Logo        string
	Theme       string
	SocialLinks []SocialLinkInput

	// OwnerEmail identifies the acting user; resolved server-side, never
	// taken from the payload.
	OwnerEmail string
}

// UpdateCardInput carries a partial update. Nil pointers mean "leave
// untouched"; a non-nil SocialLinks replaces the whole set.
type UpdateCardInput struct {
	ID          string
	Name        *string
	Position    *string
	Company     *string
	Email       *string
	Phone       *string
	Website     *string
	Logo        *string
	Theme       *string
	SocialLinks *[]SocialLinkInput

	OwnerEmail string
}

// CardService defines the use-case operations for cards.
type CardService interface {
	CreateCard(ctx context.Context, input CreateCardInput) (*domain.Card, error)
	GetCard(ctx context.Context, id string) (*domain.Card, error)
	ListCards(ctx context.Context, ownerEmail string) ([]domain.Card, error)
	UpdateCard(ctx context.Context, input UpdateCardInput) (*domain.Card, error)
	DeleteCard(ctx context.Context, id, ownerEmail string) error
}

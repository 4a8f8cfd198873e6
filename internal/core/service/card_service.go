package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/saddam-69/zcardgen/internal/core/domain"
	"github.com/saddam-69/zcardgen/internal/core/ports"
)

// CardService implements the card use cases over the repository, enforcing
// ownership on every mutation.
type CardService struct {
	cards  ports.CardRepository
	users  ports.AuthRepository
	logger zerolog.Logger
}

func NewCardService(cards ports.CardRepository, users ports.AuthRepository, logger zerolog.Logger) *CardService {
	return &CardService{cards: cards, users: users, logger: logger}
}

// authorizeOwner is the single ownership gate for all mutating operations.
// The acting identity comes from the verified session, never the payload.
func authorizeOwner(card *domain.Card, userID string) error {
	if card.UserID != userID {
		return domain.ErrForbidden
	}
	return nil
}

func (s *CardService) CreateCard(ctx context.Context, input ports.CreateCardInput) (*domain.Card, error) {
	owner, err := s.users.FindByEmail(ctx, input.OwnerEmail)
	if err != nil {
		return nil, err
	}

	theme := input.Theme
	if !domain.ValidTheme(theme) {
		theme = string(domain.ThemeDefault)
	}

	card := &domain.Card{
		Name:        input.Name,
		Position:    input.Position,
		Company:     input.Company,
		Email:       input.Email,
		Phone:       input.Phone,
		Website:     input.Website,
		Logo:        input.Logo,
		Theme:       domain.Theme(theme),
		UserID:      owner.ID,
		SocialLinks: toDomainLinks(input.SocialLinks),
	}

	created, err := s.cards.Create(ctx, card)
	if err != nil {
		s.logger.Error().Err(err).Str("owner", owner.ID).Msg("failed to create card")
		return nil, err
	}

	s.logger.Info().Str("card_id", created.ID).Str("owner", owner.ID).Msg("card created")
	return created, nil
}

func (s *CardService) GetCard(ctx context.Context, id string) (*domain.Card, error) {
	return s.cards.FindByID(ctx, id)
}

func (s *CardService) ListCards(ctx context.Context, ownerEmail string) ([]domain.Card, error) {
	return s.cards.FindAllByOwnerEmail(ctx, ownerEmail)
}

func (s *CardService) UpdateCard(ctx context.Context, input ports.UpdateCardInput) (*domain.Card, error) {
	owner, err := s.users.FindByEmail(ctx, input.OwnerEmail)
	if err != nil {
		return nil, err
	}

	card, err := s.cards.FindByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if err := authorizeOwner(card, owner.ID); err != nil {
		return nil, err
	}

	fields := make(map[string]any)
	setIfPresent(fields, "name", input.Name)
	setIfPresent(fields, "position", input.Position)
	setIfPresent(fields, "company", input.Company)
	setIfPresent(fields, "email", input.Email)
	setIfPresent(fields, "phone", input.Phone)
	setIfPresent(fields, "website", input.Website)
	setIfPresent(fields, "logo", input.Logo)
	setIfPresent(fields, "theme", input.Theme)

	var links *[]domain.SocialLink
	if input.SocialLinks != nil {
		replaced := toDomainLinks(*input.SocialLinks)
		links = &replaced
	}

	updated, err := s.cards.Update(ctx, input.ID, fields, links)
	if err != nil {
		s.logger.Error().Err(err).Str("card_id", input.ID).Msg("failed to update card")
		return nil, fmt.Errorf("update card: %w", err)
	}

	s.logger.Info().Str("card_id", input.ID).Str("owner", owner.ID).Msg("card updated")
	return updated, nil
}

func (s *CardService) DeleteCard(ctx context.Context, id, ownerEmail string) error {
	owner, err := s.users.FindByEmail(ctx, ownerEmail)
	if err != nil {
		return err
	}

	card, err := s.cards.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := authorizeOwner(card, owner.ID); err != nil {
		return err
	}

	if err := s.cards.Delete(ctx, id); err != nil {
		s.logger.Error().Err(err).Str("card_id", id).Msg("failed to delete card")
		return fmt.Errorf("delete card: %w", err)
	}

	s.logger.Info().Str("card_id", id).Str("owner", owner.ID).Msg("card deleted")
	return nil
}

func setIfPresent(fields map[string]any, column string, value *string) {
	if value != nil {
		fields[column] = *value
	}
}

func toDomainLinks(in []ports.SocialLinkInput) []domain.SocialLink {
	out := make([]domain.SocialLink, len(in))
	for i, l := range in {
		out[i] = domain.SocialLink{Platform: l.Platform, URL: l.URL}
	}
	return out
}

package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/saddam-69/zcardgen/internal/core/domain"
	"github.com/saddam-69/zcardgen/internal/core/ports"
)

type viewService struct {
	cards ports.CardRepository
	views ports.ViewRepository
	log   zerolog.Logger
}

// NewViewService returns a ViewService implementation.
func NewViewService(cards ports.CardRepository, views ports.ViewRepository, log zerolog.Logger) ports.ViewService {
	return &viewService{cards: cards, views: views, log: log}
}

// Process appends one view row for the referenced card. The existence check
// runs again here even though the track endpoint pre-checks, because the
// card may be deleted between enqueue and dequeue.
func (s *viewService) Process(ctx context.Context, in ports.RecordViewInput) (*domain.View, error) {
	ok, err := s.cards.Exists(ctx, in.CardID)
	if err != nil {
		return nil, fmt.Errorf("record view: %w", err)
	}
	if !ok {
		return nil, domain.ErrCardNotFound
	}

	view, err := s.views.Insert(ctx, &domain.View{
		CardID:    in.CardID,
		IPAddress: in.IPAddress,
		UserAgent: in.UserAgent,
	})
	if err != nil {
		return nil, fmt.Errorf("record view: %w", err)
	}

	s.log.Debug().Str("card_id", in.CardID).Msg("view recorded")
	return view, nil
}

func (s *viewService) CardExists(ctx context.Context, cardID string) (bool, error) {
	return s.cards.Exists(ctx, cardID)
}

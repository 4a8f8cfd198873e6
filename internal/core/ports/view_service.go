package ports

import (
	"context"

	"github.com/saddam-69/zcardgen/internal/core/domain"
)

// RecordViewInput is the DTO passed from the transport layer to ViewService.
// IPAddress and UserAgent come from transport metadata, never from the
// client body.
type RecordViewInput struct {
	CardID    string
	IPAddress string
	UserAgent string
}

// ViewService records card views.
type ViewService interface {
	// Process verifies the card exists and appends one view row. Returns
	// domain.ErrCardNotFound when the card is missing.
	Process(ctx context.Context, input RecordViewInput) (*domain.View, error)

	// CardExists reports whether the referenced card exists. Used by the
	// track endpoint for its synchronous 404 check before enqueueing.
	CardExists(ctx context.Context, cardID string) (bool, error)
}

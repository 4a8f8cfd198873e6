package ports

import (
	"context"

	"github.com/saddam-69/zcardgen/internal/core/domain"
)

// ViewRepository persists the append-only view log.
type ViewRepository interface {
	// Insert stores a new view row stamped with the current time and
	// returns it.
	Insert(ctx context.Context, view *domain.View) (*domain.View, error)
}

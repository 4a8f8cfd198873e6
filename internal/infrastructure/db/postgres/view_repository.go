package postgres

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/saddam-69/zcardgen/internal/core/domain"
)

type ViewRepository struct {
	db *gorm.DB
}

func NewViewRepository(db *gorm.DB) *ViewRepository {
	return &ViewRepository{db: db}
}

// Insert appends one view row. Views are never updated or deleted here;
// removal happens only through the card FK cascade.
func (r *ViewRepository) Insert(ctx context.Context, view *domain.View) (*domain.View, error) {
	row := viewRow{
		CardID:    view.CardID,
		IPAddress: view.IPAddress,
		UserAgent: view.UserAgent,
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return nil, fmt.Errorf("insert view: %w", err)
	}
	v := toDomainView(&row)
	return &v, nil
}

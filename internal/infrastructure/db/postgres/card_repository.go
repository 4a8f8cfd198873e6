package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/saddam-69/zcardgen/internal/core/domain"
)

type CardRepository struct {
	db *gorm.DB
}

func NewCardRepository(db *gorm.DB) *CardRepository {
	return &CardRepository{db: db}
}

// Create inserts the card and its social links. GORM writes the card row and
// the association rows inside a single transaction.
func (r *CardRepository) Create(ctx context.Context, card *domain.Card) (*domain.Card, error) {
	row := fromDomainCard(card)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return nil, err
	}
	return r.FindByID(ctx, row.ID)
}

func (r *CardRepository) FindByID(ctx context.Context, id string) (*domain.Card, error) {
	var row cardRow
	err := r.db.WithContext(ctx).
		Preload("SocialLinks").
		Preload("Views", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at DESC")
		}).
		First(&row, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCardNotFound
		}
		return nil, err
	}
	return toDomainCard(&row), nil
}

func (r *CardRepository) FindAllByOwnerEmail(ctx context.Context, email string) ([]domain.Card, error) {
	var rows []cardRow
	err := r.db.WithContext(ctx).
		Joins("JOIN users ON users.id = cards.user_id").
		Where("users.email = ?", email).
		Preload("SocialLinks").
		Preload("Views", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at DESC")
		}).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	cards := make([]domain.Card, len(rows))
	for i := range rows {
		cards[i] = *toDomainCard(&rows[i])
	}
	return cards, nil
}

func (r *CardRepository) Exists(ctx context.Context, id string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&cardRow{}).
		Where("id = ?", id).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Update applies only the given columns. When socialLinks is non-nil the
// existing set is deleted and the replacement inserted in the same
// transaction, so readers never observe a merged state after commit.
func (r *CardRepository) Update(ctx context.Context, id string, fields map[string]any, socialLinks *[]domain.SocialLink) (*domain.Card, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if socialLinks != nil {
			if err := tx.Where("card_id = ?", id).Delete(&socialLinkRow{}).Error; err != nil {
				return err
			}
			for _, l := range *socialLinks {
				row := socialLinkRow{CardID: id, Platform: l.Platform, URL: l.URL}
				if err := tx.Create(&row).Error; err != nil {
					return err
				}
			}
		}
		if len(fields) > 0 {
			if err := tx.Model(&cardRow{}).Where("id = ?", id).Updates(fields).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return r.FindByID(ctx, id)
}

func (r *CardRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&cardRow{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrCardNotFound
	}
	return nil
}

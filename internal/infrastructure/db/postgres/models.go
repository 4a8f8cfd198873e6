package postgres

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/saddam-69/zcardgen/internal/core/domain"
)

// Row types are private to this package; the rest of the system only sees
// domain structs. Deleting a user cascades to cards, deleting a card
// cascades to social links and views.

type userRow struct {
	ID           string `gorm:"type:uuid;primaryKey"`
	Name         string `gorm:"type:varchar(100);not null"`
	Email        string `gorm:"type:varchar(100);uniqueIndex;not null"`
	PasswordHash string `gorm:"type:varchar(100)"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Cards []cardRow `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

func (userRow) TableName() string { return "users" }

func (r *userRow) BeforeCreate(*gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}

type cardRow struct {
	ID       string `gorm:"type:uuid;primaryKey"`
	Name     string `gorm:"type:varchar(100);not null"`
	Position string `gorm:"type:varchar(100);not null"`
	Company  string `gorm:"type:varchar(100);not null"`
	Email    string `gorm:"type:varchar(100);not null"`
	Phone    string `gorm:"type:varchar(30)"`
	Website  string `gorm:"type:varchar(255)"`
	Logo     string `gorm:"type:varchar(500)"`
	Theme    string `gorm:"type:varchar(20);not null;default:default"`
	UserID   string `gorm:"type:uuid;index;not null"`

	SocialLinks []socialLinkRow `gorm:"foreignKey:CardID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Views       []viewRow       `gorm:"foreignKey:CardID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (cardRow) TableName() string { return "cards" }

func (r *cardRow) BeforeCreate(*gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}

type socialLinkRow struct {
	ID       string `gorm:"type:uuid;primaryKey"`
	CardID   string `gorm:"type:uuid;index;not null"`
	Platform string `gorm:"type:varchar(100);not null"`
	URL      string `gorm:"type:varchar(255);not null"`
}

func (socialLinkRow) TableName() string { return "social_links" }

func (r *socialLinkRow) BeforeCreate(*gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}

type viewRow struct {
	ID        string    `gorm:"type:uuid;primaryKey"`
	CardID    string    `gorm:"type:uuid;index;not null"`
	IPAddress string    `gorm:"type:varchar(64)"`
	UserAgent string    `gorm:"type:varchar(512)"`
	CreatedAt time.Time `gorm:"index"`
}

func (viewRow) TableName() string { return "views" }

func (r *viewRow) BeforeCreate(*gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}

// --- row ↔ domain mapping ---

func toDomainUser(r *userRow) *domain.User {
	return &domain.User{
		ID:           r.ID,
		Name:         r.Name,
		Email:        r.Email,
		PasswordHash: r.PasswordHash,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

func toDomainCard(r *cardRow) *domain.Card {
	links := make([]domain.SocialLink, len(r.SocialLinks))
	for i, l := range r.SocialLinks {
		links[i] = domain.SocialLink{Platform: l.Platform, URL: l.URL}
	}
	views := make([]domain.View, len(r.Views))
	for i, v := range r.Views {
		views[i] = toDomainView(&v)
	}
	return &domain.Card{
		ID:          r.ID,
		Name:        r.Name,
		Position:    r.Position,
		Company:     r.Company,
		Email:       r.Email,
		Phone:       r.Phone,
		Website:     r.Website,
		Logo:        r.Logo,
		Theme:       domain.Theme(r.Theme),
		UserID:      r.UserID,
		SocialLinks: links,
		Views:       views,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

func toDomainView(r *viewRow) domain.View {
	return domain.View{
		ID:        r.ID,
		CardID:    r.CardID,
		IPAddress: r.IPAddress,
		UserAgent: r.UserAgent,
		CreatedAt: r.CreatedAt,
	}
}

func fromDomainCard(c *domain.Card) cardRow {
	links := make([]socialLinkRow, len(c.SocialLinks))
	for i, l := range c.SocialLinks {
		links[i] = socialLinkRow{Platform: l.Platform, URL: l.URL}
	}
	return cardRow{
		ID:          c.ID,
		Name:        c.Name,
		Position:    c.Position,
		Company:     c.Company,
		Email:       c.Email,
		Phone:       c.Phone,
		Website:     c.Website,
		Logo:        c.Logo,
		Theme:       string(c.Theme),
		UserID:      c.UserID,
		SocialLinks: links,
	}
}

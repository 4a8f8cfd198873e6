package domain

import (
	"errors"
	"time"
)

// Theme is the visual theme a card is rendered with.
type Theme string

const (
	ThemeDefault Theme = "default"
	ThemeDark    Theme = "dark"
	ThemeLight   Theme = "light"
)

var (
	ErrCardNotFound = errors.New("card not found")
	ErrForbidden    = errors.New("forbidden")
)

// Card is a shareable digital contact profile owned by exactly one user.
// UserID is set at creation and never changes afterwards.
type Card struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Position    string       `json:"position"`
	Company     string       `json:"company"`
	Email       string       `json:"email"`
	Phone       string       `json:"phone,omitempty"`
	Website     string       `json:"website,omitempty"`
	Logo        string       `json:"logo,omitempty"`
	Theme       Theme        `json:"theme"`
	UserID      string       `json:"userId"`
	SocialLinks []SocialLink `json:"socialLinks"`
	Views       []View       `json:"views,omitempty"`
	CreatedAt   time.Time    `json:"createdAt"`
	UpdatedAt   time.Time    `json:"updatedAt"`
}

// SocialLink is a labelled external profile URL attached to a card. Links
// have no identity of their own towards clients; updates replace the whole
// set.
type SocialLink struct {
	Platform string `json:"platform"`
	URL      string `json:"url"`
}

// ValidTheme reports whether s is one of the three supported themes.
func ValidTheme(s string) bool {
	switch Theme(s) {
	case ThemeDefault, ThemeDark, ThemeLight:
		return true
	}
	return false
}

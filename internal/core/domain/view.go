package domain

import "time"

// View is one access to a card's public page. Rows are append-only: a view
// is never updated or deleted individually, only removed by the cascade when
// its card is deleted.
type View struct {
	ID        string    `json:"id"`
	CardID    string    `json:"cardId"`
	IPAddress string    `json:"ipAddress,omitempty"`
	UserAgent string    `json:"userAgent,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

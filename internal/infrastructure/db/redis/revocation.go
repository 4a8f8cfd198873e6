package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RevocationList stores revoked JWT ids until their natural expiry.
// Key format: revoked:<jti>
type RevocationList struct {
	client *redis.Client
}

// NewRevocationList creates a RevocationList wrapping the given Redis client.
func NewRevocationList(client *redis.Client) *RevocationList {
	return &RevocationList{client: client}
}

// Revoke marks the jti as revoked for ttl (the token's remaining lifetime).
func (l *RevocationList) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	return l.client.Set(ctx, l.key(jti), "1", ttl).Err()
}

// IsRevoked reports whether the jti has been revoked.
func (l *RevocationList) IsRevoked(ctx context.Context, jti string) (bool, error) {
	n, err := l.client.Exists(ctx, l.key(jti)).Result()
	if err != nil {
		return false, fmt.Errorf("revocation check: %w", err)
	}
	return n > 0, nil
}

func (l *RevocationList) key(jti string) string {
	return "revoked:" + jti
}

package redis

import (
	"context"
	"fmt"
	"time"
)

const revokedPrefix = "revoked:"

// TokenStore keeps a denylist of revoked access tokens. Entries expire with
// the token itself, so the set stays bounded by the access token TTL.
type TokenStore struct {
	client *Client
}

// NewTokenStore creates a new token revocation store
func NewTokenStore(client *Client) *TokenStore {
	return &TokenStore{client: client}
}

// Revoke marks a token id as revoked for the remainder of its lifetime. A
// non-positive ttl means the token is already expired and nothing is stored.
func (s *TokenStore) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	if err := s.client.rdb.Set(ctx, revokedPrefix+jti, 1, ttl).Err(); err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}
	return nil
}

// IsRevoked reports whether a token id has been revoked
func (s *TokenStore) IsRevoked(ctx context.Context, jti string) (bool, error) {
	n, err := s.client.rdb.Exists(ctx, revokedPrefix+jti).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check token: %w", err)
	}
	return n > 0, nil
}

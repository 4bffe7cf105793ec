package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/technotes/notes-api/internal/core/domain"
)

const defaultRefreshTTL = 7 * 24 * time.Hour

// TokenStore holds refresh tokens in Redis until they expire or are revoked.
// Key format: refresh:<token> -> username
type TokenStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewTokenStore creates a TokenStore wrapping the given Redis client. A
// non-positive ttl falls back to defaultRefreshTTL.
func NewTokenStore(client *redis.Client, ttl time.Duration) *TokenStore {
	if ttl <= 0 {
		ttl = defaultRefreshTTL
	}
	return &TokenStore{client: client, ttl: ttl}
}

// Save records a refresh token for its configured lifetime.
func (s *TokenStore) Save(ctx context.Context, token, username string) error {
	if err := s.client.Set(ctx, s.key(token), username, s.ttl).Err(); err != nil {
		return fmt.Errorf("save refresh token: %w", err)
	}
	return nil
}

// Lookup returns the username a refresh token was issued to.
func (s *TokenStore) Lookup(ctx context.Context, token string) (string, error) {
	username, err := s.client.Get(ctx, s.key(token)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", domain.ErrInvalidToken
		}
		return "", fmt.Errorf("lookup refresh token: %w", err)
	}
	return username, nil
}

// Revoke deletes a refresh token. Revoking an unknown token is a no-op.
func (s *TokenStore) Revoke(ctx context.Context, token string) error {
	if err := s.client.Del(ctx, s.key(token)).Err(); err != nil {
		return fmt.Errorf("revoke refresh token: %w", err)
	}
	return nil
}

func (s *TokenStore) key(token string) string {
	return "refresh:" + token
}

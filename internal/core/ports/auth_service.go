package ports

import (
	"context"

	"github.com/technotes/notes-api/internal/core/domain"
)

// TokenPair is returned on a successful login.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// AuthService issues and rotates the tokens the API is guarded with.
type AuthService interface {
	Login(ctx context.Context, username, password string) (*TokenPair, *domain.User, error)
	// Refresh exchanges a live refresh token for a new access token.
	Refresh(ctx context.Context, refreshToken string) (string, error)
	Logout(ctx context.Context, refreshToken string) error
}

// TokenStore persists refresh tokens for their configured lifetime.
type TokenStore interface {
	Save(ctx context.Context, token, username string) error
	// Lookup returns the username a refresh token was issued to, or
	// domain.ErrInvalidToken when the token is unknown or expired.
	Lookup(ctx context.Context, token string) (string, error)
	Revoke(ctx context.Context, token string) error
}

package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/technotes/notes-api/internal/core/domain"
	"github.com/technotes/notes-api/internal/core/ports"
)

// AuthService implements login, access-token refresh and logout. Access
// tokens are short-lived JWTs; refresh tokens are opaque values held in the
// token store until they expire or are revoked.
type AuthService struct {
	users     ports.UserRepository
	tokens    ports.TokenStore
	jwtSecret string
	accessTTL time.Duration
}

func NewAuthService(users ports.UserRepository, tokens ports.TokenStore, jwtSecret string, accessTTL time.Duration) *AuthService {
	if accessTTL <= 0 {
		accessTTL = 15 * time.Minute
	}
	return &AuthService{users: users, tokens: tokens, jwtSecret: jwtSecret, accessTTL: accessTTL}
}

func (s *AuthService) Login(ctx context.Context, username, password string) (*ports.TokenPair, *domain.User, error) {
	if username == "" || password == "" {
		return nil, nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return nil, nil, domain.ErrInvalidCredentials
	}
	if !user.Active {
		return nil, nil, domain.ErrInvalidCredentials
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, nil, domain.ErrInvalidCredentials
	}

	access, err := s.signAccessToken(user)
	if err != nil {
		return nil, nil, err
	}

	refresh := newRefreshToken()
	if err := s.tokens.Save(ctx, refresh, user.Username); err != nil {
		return nil, nil, err
	}

	return &ports.TokenPair{AccessToken: access, RefreshToken: refresh}, user, nil
}

// Refresh exchanges a live refresh token for a new access token. A token
// whose user has since been deleted or deactivated is treated as invalid.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (string, error) {
	if refreshToken == "" {
		return "", domain.ErrInvalidToken
	}

	username, err := s.tokens.Lookup(ctx, refreshToken)
	if err != nil {
		return "", err
	}

	user, err := s.users.FindByUsername(ctx, username)
	if err != nil || !user.Active {
		return "", domain.ErrInvalidToken
	}

	return s.signAccessToken(user)
}

func (s *AuthService) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return nil
	}
	return s.tokens.Revoke(ctx, refreshToken)
}

func (s *AuthService) signAccessToken(user *domain.User) (string, error) {
	claims := jwt.MapClaims{
		"username": user.Username,
		"roles":    user.Roles,
		"exp":      time.Now().Add(s.accessTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}

// newRefreshToken returns 32 bytes of hex-encoded randomness.
func newRefreshToken() string {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return hex.EncodeToString([]byte(time.Now().UTC().Format(time.RFC3339Nano)))
	}
	return hex.EncodeToString(b)
}

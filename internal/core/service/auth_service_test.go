package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/technotes/notes-api/internal/core/domain"
	"github.com/technotes/notes-api/internal/core/ports"
)

func newAuthFixture(t *testing.T) (*AuthService, *stubUserRepo, *stubTokenStore) {
	t.Helper()
	users := newStubUserRepo()
	tokens := newStubTokenStore()
	return NewAuthService(users, tokens, "secret", time.Hour), users, tokens
}

func seedCredentials(t *testing.T, users *stubUserRepo, username, password string, active bool) *domain.User {
	t.Helper()
	userSvc := NewUserService(users, newStubNoteRepo(), zerolog.Nop())
	created, err := userSvc.Create(context.Background(), ports.CreateUserInput{
		Username: username,
		Password: password,
		Roles:    []string{domain.RoleEmployee},
	})
	if err != nil {
		t.Fatalf("seed credentials: %v", err)
	}
	if !active {
		stored := users.users[created.ID]
		stored.Active = false
	}
	return created
}

func TestAuthService_Login_Success(t *testing.T) {
	svc, users, tokens := newAuthFixture(t)
	seedCredentials(t, users, "jdoe", "secret123", true)

	pair, user, err := svc.Login(context.Background(), "jdoe", "secret123")
	if err != nil {
		t.Fatalf("login returned error: %v", err)
	}
	if pair.AccessToken == "" || pair.RefreshToken == "" {
		t.Fatalf("expected both tokens, got %+v", pair)
	}
	if user.Username != "jdoe" {
		t.Fatalf("unexpected user: %+v", user)
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(pair.AccessToken, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("access token invalid: %v", err)
	}
	if claims["username"] != "jdoe" {
		t.Fatalf("unexpected username claim: %v", claims["username"])
	}

	if username, err := tokens.Lookup(context.Background(), pair.RefreshToken); err != nil || username != "jdoe" {
		t.Fatalf("refresh token not stored: %v %q", err, username)
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	svc, users, _ := newAuthFixture(t)
	seedCredentials(t, users, "jdoe", "secret123", true)

	if _, _, err := svc.Login(context.Background(), "jdoe", "wrong"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_UnknownOrInactive(t *testing.T) {
	svc, users, _ := newAuthFixture(t)
	seedCredentials(t, users, "ghost", "pass", false)

	if _, _, err := svc.Login(context.Background(), "nobody", "pass"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for unknown user, got %v", err)
	}
	if _, _, err := svc.Login(context.Background(), "ghost", "pass"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for inactive user, got %v", err)
	}
}

func TestAuthService_Refresh(t *testing.T) {
	svc, users, _ := newAuthFixture(t)
	seedCredentials(t, users, "jdoe", "secret123", true)

	pair, _, err := svc.Login(context.Background(), "jdoe", "secret123")
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	access, err := svc.Refresh(context.Background(), pair.RefreshToken)
	if err != nil {
		t.Fatalf("refresh returned error: %v", err)
	}
	if access == "" {
		t.Fatalf("expected access token")
	}

	if _, err := svc.Refresh(context.Background(), "bogus"); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestAuthService_Logout(t *testing.T) {
	svc, users, _ := newAuthFixture(t)
	seedCredentials(t, users, "jdoe", "secret123", true)

	pair, _, err := svc.Login(context.Background(), "jdoe", "secret123")
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	if err := svc.Logout(context.Background(), pair.RefreshToken); err != nil {
		t.Fatalf("logout returned error: %v", err)
	}
	if _, err := svc.Refresh(context.Background(), pair.RefreshToken); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("revoked token still refreshes: %v", err)
	}
}

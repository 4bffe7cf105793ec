package ports

import (
	"context"

	"github.com/technotes/notes-api/internal/core/domain"
)

// CreateUserInput carries the fields required to create a user.
type CreateUserInput struct {
	Username string
	Password string
	Roles    []string
}

// UpdateUserInput carries the fields applied to an existing user. Password is
// optional: when empty the stored hash is kept. Active is a pointer so a
// missing flag can be told apart from false.
type UpdateUserInput struct {
	ID       string
	Username string
	Roles    []string
	Active   *bool
	Password string
}

// UserService defines use-case operations for users.
type UserService interface {
	// List returns all users, or domain.ErrNoUsers when none exist.
	List(ctx context.Context) ([]*domain.User, error)
	Create(ctx context.Context, input CreateUserInput) (*domain.User, error)
	Update(ctx context.Context, input UpdateUserInput) (*domain.User, error)
	// Delete removes the user and returns the deleted record. It fails with
	// domain.ErrUserHasNotes while any note still references the user.
	Delete(ctx context.Context, id string) (*domain.User, error)
}

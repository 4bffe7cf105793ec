package ports

import (
	"context"

	"github.com/technotes/notes-api/internal/core/domain"
)

// UserRepository defines persistence operations for users. Reads return
// detached snapshots; Update performs a full replacement of the mutable
// fields and returns the record as stored.
type UserRepository interface {
	FindAll(ctx context.Context) ([]*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	Create(ctx context.Context, u *domain.User) (*domain.User, error)
	Update(ctx context.Context, u *domain.User) (*domain.User, error)
	Delete(ctx context.Context, id string) error
}

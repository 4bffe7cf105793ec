package ports

import (
	"context"

	"github.com/technotes/notes-api/internal/core/domain"
)

// NoteRepository defines persistence operations for notes.
type NoteRepository interface {
	FindAll(ctx context.Context) ([]*domain.Note, error)
	FindByID(ctx context.Context, id string) (*domain.Note, error)
	FindByTitle(ctx context.Context, title string) (*domain.Note, error)
	// FindOneByUser returns any note owned by the given user, or
	// domain.ErrNoteNotFound when the user owns none. Used by the
	// user-deletion guard.
	FindOneByUser(ctx context.Context, userID string) (*domain.Note, error)
	Create(ctx context.Context, n *domain.Note) (*domain.Note, error)
	// Update replaces title, text and completed on the stored document and
	// returns the updated record.
	Update(ctx context.Context, n *domain.Note) (*domain.Note, error)
	Delete(ctx context.Context, id string) error
}

package ports

import (
	"context"

	"github.com/technotes/notes-api/internal/core/domain"
)

// CreateNoteInput carries the fields required to create a note.
type CreateNoteInput struct {
	User  string
	Title string
	Text  string
}

// UpdateNoteInput carries a whole-record replacement for an existing note.
// Completed is a pointer so a missing flag can be told apart from false.
type UpdateNoteInput struct {
	ID        string
	Title     string
	Text      string
	Completed *bool
}

// EnrichedNote pairs a note with its owner's display name. Username is empty
// when the owning user no longer resolves.
type EnrichedNote struct {
	Note     *domain.Note
	Username string
}

// NoteService defines use-case operations for notes.
type NoteService interface {
	// List returns all notes with owner usernames attached, or
	// domain.ErrNoNotes when none exist.
	List(ctx context.Context) ([]EnrichedNote, error)
	Create(ctx context.Context, input CreateNoteInput) (*domain.Note, error)
	Update(ctx context.Context, input UpdateNoteInput) (*domain.Note, error)
	// Delete removes the note and returns the deleted record so callers can
	// report its title and id.
	Delete(ctx context.Context, id string) (*domain.Note, error)
}

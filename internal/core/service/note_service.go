package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/technotes/notes-api/internal/core/domain"
	"github.com/technotes/notes-api/internal/core/ports"
)

// NoteService implements note CRUD with global title uniqueness and owner
// resolution.
type NoteService struct {
	notes  ports.NoteRepository
	users  ports.UserRepository
	logger zerolog.Logger
}

func NewNoteService(notes ports.NoteRepository, users ports.UserRepository, logger zerolog.Logger) *NoteService {
	return &NoteService{notes: notes, users: users, logger: logger}
}

// List returns every note with the owner's username attached. Enrichment is
// best effort: a note whose owner no longer resolves keeps an empty username
// instead of failing the whole request.
func (s *NoteService) List(ctx context.Context) ([]ports.EnrichedNote, error) {
	notes, err := s.notes.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(notes) == 0 {
		return nil, domain.ErrNoNotes
	}

	out := make([]ports.EnrichedNote, 0, len(notes))
	for _, n := range notes {
		item := ports.EnrichedNote{Note: n}
		owner, err := s.users.FindByID(ctx, n.User)
		switch {
		case err == nil:
			item.Username = owner.Username
		case errors.Is(err, domain.ErrUserNotFound):
			// dangling owner reference, leave username empty
		default:
			return nil, err
		}
		out = append(out, item)
	}
	return out, nil
}

// Create validates field presence, title uniqueness and owner existence, then
// persists the note.
func (s *NoteService) Create(ctx context.Context, input ports.CreateNoteInput) (*domain.Note, error) {
	if input.User == "" || input.Title == "" || input.Text == "" {
		return nil, domain.ErrMissingFields
	}

	if _, err := s.notes.FindByTitle(ctx, input.Title); err == nil {
		return nil, domain.ErrDuplicateTitle
	} else if !errors.Is(err, domain.ErrNoteNotFound) {
		return nil, err
	}

	if _, err := s.users.FindByID(ctx, input.User); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}

	created, err := s.notes.Create(ctx, &domain.Note{
		User:  input.User,
		Title: input.Title,
		Text:  input.Text,
	})
	if err != nil {
		// The unique title index can still reject the write when a
		// concurrent create slipped past the duplicate check above.
		if errors.Is(err, domain.ErrDuplicateTitle) {
			return nil, err
		}
		s.logger.Error().Err(err).Str("title", input.Title).Msg("failed to create note")
		return nil, domain.ErrInvalidNoteData
	}

	s.logger.Info().Str("note_id", created.ID).Str("title", created.Title).Msg("note created")
	return created, nil
}

// Update replaces title, text and completed on an existing note. Renaming a
// note to its own current title is allowed; colliding with a different note's
// title is a conflict.
func (s *NoteService) Update(ctx context.Context, input ports.UpdateNoteInput) (*domain.Note, error) {
	if input.ID == "" || input.Title == "" || input.Text == "" || input.Completed == nil {
		return nil, domain.ErrMissingFields
	}

	note, err := s.notes.FindByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	if dup, err := s.notes.FindByTitle(ctx, input.Title); err == nil {
		if dup.ID != note.ID {
			return nil, domain.ErrDuplicateTitle
		}
	} else if !errors.Is(err, domain.ErrNoteNotFound) {
		return nil, err
	}

	note.Title = input.Title
	note.Text = input.Text
	note.Completed = *input.Completed

	updated, err := s.notes.Update(ctx, note)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateTitle) {
			return nil, err
		}
		s.logger.Error().Err(err).Str("note_id", note.ID).Msg("failed to update note")
		return nil, domain.ErrInvalidNoteData
	}

	s.logger.Info().Str("note_id", updated.ID).Msg("note updated")
	return updated, nil
}

// Delete removes a note and returns the deleted record.
func (s *NoteService) Delete(ctx context.Context, id string) (*domain.Note, error) {
	if id == "" {
		return nil, domain.ErrMissingFields
	}

	note, err := s.notes.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.notes.Delete(ctx, note.ID); err != nil {
		s.logger.Error().Err(err).Str("note_id", note.ID).Msg("failed to delete note")
		return nil, err
	}

	s.logger.Info().Str("note_id", note.ID).Str("title", note.Title).Msg("note deleted")
	return note, nil
}

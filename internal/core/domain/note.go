package domain

import (
	"errors"
	"time"
)

var ErrNoteNotFound = errors.New("note not found")
var ErrDuplicateTitle = errors.New("note title already exists")
var ErrNoNotes = errors.New("no notes found")
var ErrInvalidNoteData = errors.New("invalid note data")
var ErrMissingFields = errors.New("missing required fields")

// Note is a single work item owned by exactly one user. Title is unique
// across all notes, not per owner. Timestamps are maintained by the store.
type Note struct {
	ID        string    `json:"id"`
	User      string    `json:"user"`
	Title     string    `json:"title"`
	Text      string    `json:"text"`
	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

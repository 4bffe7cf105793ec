package handler

import (
	"time"

	"github.com/technotes/notes-api/internal/core/ports"
)

// messageResponse is the envelope used for every plain-message reply,
// success and failure alike.
type messageResponse struct {
	Message string `json:"message"`
}

type createNoteRequest struct {
	User  string `json:"user"`
	Title string `json:"title"`
	Text  string `json:"text"`
}

// updateNoteRequest carries a whole-record replacement. Completed is a
// pointer so `false` survives the missing-field check.
type updateNoteRequest struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Text      string `json:"text"`
	Completed *bool  `json:"completed"`
}

type deleteNoteRequest struct {
	ID string `json:"id"`
}

// noteResponse is a note as returned by the API. Username is the owner's
// display name attached by list enrichment; it is omitted when the owner no
// longer resolves.
type noteResponse struct {
	ID        string    `json:"id"`
	User      string    `json:"user"`
	Title     string    `json:"title"`
	Text      string    `json:"text"`
	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	Username  string    `json:"username,omitempty"`
}

type updateNoteResponse struct {
	Message     string       `json:"message"`
	UpdatedNote noteResponse `json:"updatedNote"`
}

func toNoteResponse(n ports.EnrichedNote) noteResponse {
	return noteResponse{
		ID:        n.Note.ID,
		User:      n.Note.User,
		Title:     n.Note.Title,
		Text:      n.Note.Text,
		Completed: n.Note.Completed,
		CreatedAt: n.Note.CreatedAt.UTC(),
		UpdatedAt: n.Note.UpdatedAt.UTC(),
		Username:  n.Username,
	}
}

func toNoteListResponse(items []ports.EnrichedNote) []noteResponse {
	out := make([]noteResponse, len(items))
	for i, item := range items {
		out[i] = toNoteResponse(item)
	}
	return out
}

package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/technotes/notes-api/internal/api/metrics"
	"github.com/technotes/notes-api/internal/core/domain"
	"github.com/technotes/notes-api/internal/core/ports"
)

// NoteHandler handles HTTP requests for note operations.
type NoteHandler struct {
	service ports.NoteService
}

func NewNoteHandler(service ports.NoteService) *NoteHandler {
	return &NoteHandler{service: service}
}

// List handles GET /notes.
//
// @Summary      List all notes with owner usernames attached
// @Tags         notes
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   noteResponse
// @Failure      400  {object}  messageResponse
// @Router       /notes [get]
func (h *NoteHandler) List(c echo.Context) error {
	items, err := h.service.List(c.Request().Context())
	if err != nil {
		if errors.Is(err, domain.ErrNoNotes) {
			metrics.RequestsRejectedTotal.WithLabelValues("notes", "empty").Inc()
			return c.JSON(http.StatusBadRequest, messageResponse{Message: "No notes found"})
		}
		return err
	}
	return c.JSON(http.StatusOK, toNoteListResponse(items))
}

// Create handles POST /notes.
//
// @Summary      Create a new note
// @Tags         notes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createNoteRequest  true  "Note fields"
// @Success      201   {object}  messageResponse
// @Failure      400   {object}  messageResponse
// @Failure      409   {object}  messageResponse
// @Router       /notes [post]
func (h *NoteHandler) Create(c echo.Context) error {
	var req createNoteRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "Please enter all fields"})
	}

	note, err := h.service.Create(c.Request().Context(), ports.CreateNoteInput{
		User:  req.User,
		Title: req.Title,
		Text:  req.Text,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrMissingFields):
			metrics.RequestsRejectedTotal.WithLabelValues("notes", "validation").Inc()
			return c.JSON(http.StatusBadRequest, messageResponse{Message: "Please enter all fields"})
		case errors.Is(err, domain.ErrDuplicateTitle):
			metrics.RequestsRejectedTotal.WithLabelValues("notes", "conflict").Inc()
			return c.JSON(http.StatusConflict, messageResponse{Message: "Note title already exists"})
		case errors.Is(err, domain.ErrUserNotFound):
			metrics.RequestsRejectedTotal.WithLabelValues("notes", "validation").Inc()
			return c.JSON(http.StatusBadRequest, messageResponse{Message: "User does not exist"})
		case errors.Is(err, domain.ErrInvalidNoteData):
			return c.JSON(http.StatusBadRequest, messageResponse{Message: "Invalid note data"})
		}
		return err
	}

	metrics.NotesCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, messageResponse{Message: fmt.Sprintf("Note %s created", note.Title)})
}

// Update handles PATCH /notes — whole-record replacement of title, text and
// completed.
//
// @Summary      Update an existing note
// @Tags         notes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      updateNoteRequest  true  "Note replacement"
// @Success      200   {object}  updateNoteResponse
// @Failure      400   {object}  messageResponse
// @Failure      409   {object}  messageResponse
// @Router       /notes [patch]
func (h *NoteHandler) Update(c echo.Context) error {
	var req updateNoteRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "All fields are required"})
	}

	updated, err := h.service.Update(c.Request().Context(), ports.UpdateNoteInput{
		ID:        req.ID,
		Title:     req.Title,
		Text:      req.Text,
		Completed: req.Completed,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrMissingFields):
			metrics.RequestsRejectedTotal.WithLabelValues("notes", "validation").Inc()
			return c.JSON(http.StatusBadRequest, messageResponse{Message: "All fields are required"})
		case errors.Is(err, domain.ErrNoteNotFound):
			metrics.RequestsRejectedTotal.WithLabelValues("notes", "not_found").Inc()
			return c.JSON(http.StatusBadRequest, messageResponse{Message: "Note does not exist"})
		case errors.Is(err, domain.ErrDuplicateTitle):
			metrics.RequestsRejectedTotal.WithLabelValues("notes", "conflict").Inc()
			return c.JSON(http.StatusConflict, messageResponse{Message: "Note title already exists"})
		case errors.Is(err, domain.ErrInvalidNoteData):
			return c.JSON(http.StatusBadRequest, messageResponse{Message: "Invalid note data"})
		}
		return err
	}

	return c.JSON(http.StatusOK, updateNoteResponse{
		Message:     "Note updated",
		UpdatedNote: toNoteResponse(ports.EnrichedNote{Note: updated}),
	})
}

// Delete handles DELETE /notes.
//
// @Summary      Delete a note
// @Tags         notes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      deleteNoteRequest  true  "Note id"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  messageResponse
// @Router       /notes [delete]
func (h *NoteHandler) Delete(c echo.Context) error {
	var req deleteNoteRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "Note ID required"})
	}

	note, err := h.service.Delete(c.Request().Context(), req.ID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrMissingFields):
			metrics.RequestsRejectedTotal.WithLabelValues("notes", "validation").Inc()
			return c.JSON(http.StatusBadRequest, messageResponse{Message: "Note ID required"})
		case errors.Is(err, domain.ErrNoteNotFound):
			metrics.RequestsRejectedTotal.WithLabelValues("notes", "not_found").Inc()
			return c.JSON(http.StatusBadRequest, messageResponse{Message: "Note does not exist"})
		}
		return err
	}

	metrics.NotesDeletedTotal.Inc()
	reply := fmt.Sprintf("Note '%s' with ID %s deleted", note.Title, note.ID)
	return c.JSON(http.StatusOK, messageResponse{Message: reply})
}

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

// UserHandler handles HTTP requests for user operations.
type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// List handles GET /users. Password hashes never appear in the response.
//
// @Summary      List all users
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   userResponse
// @Failure      400  {object}  messageResponse
// @Router       /users [get]
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.service.List(c.Request().Context())
	if err != nil {
		if errors.Is(err, domain.ErrNoUsers) {
			metrics.RequestsRejectedTotal.WithLabelValues("users", "empty").Inc()
			return c.JSON(http.StatusBadRequest, messageResponse{Message: "No users found"})
		}
		return err
	}
	return c.JSON(http.StatusOK, toUserListResponse(users))
}

// Create handles POST /users.
//
// @Summary      Create a new user
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createUserRequest  true  "User fields"
// @Success      201   {object}  messageResponse
// @Failure      400   {object}  messageResponse
// @Failure      409   {object}  messageResponse
// @Router       /users [post]
func (h *UserHandler) Create(c echo.Context) error {
	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "Please enter all fields"})
	}

	user, err := h.service.Create(c.Request().Context(), ports.CreateUserInput{
		Username: req.Username,
		Password: req.Password,
		Roles:    req.Roles,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrMissingFields):
			metrics.RequestsRejectedTotal.WithLabelValues("users", "validation").Inc()
			return c.JSON(http.StatusBadRequest, messageResponse{Message: "Please enter all fields"})
		case errors.Is(err, domain.ErrUserExists):
			metrics.RequestsRejectedTotal.WithLabelValues("users", "conflict").Inc()
			return c.JSON(http.StatusConflict, messageResponse{Message: "User already exists"})
		case errors.Is(err, domain.ErrInvalidUserData):
			return c.JSON(http.StatusBadRequest, messageResponse{Message: "Invalid user data"})
		}
		return err
	}

	metrics.UsersCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, messageResponse{Message: fmt.Sprintf("User %s created", user.Username)})
}

// Update handles PATCH /users/:id. All fields except password are required;
// the password is rehashed only when supplied.
//
// @Summary      Update an existing user
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "User id"
// @Param        body  body      updateUserRequest  true  "User fields"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  messageResponse
// @Failure      409   {object}  messageResponse
// @Router       /users/{id} [patch]
func (h *UserHandler) Update(c echo.Context) error {
	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "All fields except password are required"})
	}

	id := c.Param("id")
	if id == "" {
		id = req.ID
	}

	updated, err := h.service.Update(c.Request().Context(), ports.UpdateUserInput{
		ID:       id,
		Username: req.Username,
		Roles:    req.Roles,
		Active:   req.Active,
		Password: req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrMissingFields):
			metrics.RequestsRejectedTotal.WithLabelValues("users", "validation").Inc()
			return c.JSON(http.StatusBadRequest, messageResponse{Message: "All fields except password are required"})
		case errors.Is(err, domain.ErrUserNotFound):
			metrics.RequestsRejectedTotal.WithLabelValues("users", "not_found").Inc()
			return c.JSON(http.StatusBadRequest, messageResponse{Message: "User not found"})
		case errors.Is(err, domain.ErrUserExists):
			metrics.RequestsRejectedTotal.WithLabelValues("users", "conflict").Inc()
			return c.JSON(http.StatusConflict, messageResponse{Message: fmt.Sprintf("User %s already exists", req.Username)})
		case errors.Is(err, domain.ErrInvalidUserData):
			return c.JSON(http.StatusBadRequest, messageResponse{Message: "Invalid user data"})
		}
		return err
	}

	return c.JSON(http.StatusOK, messageResponse{Message: fmt.Sprintf("User %s updated", updated.Username)})
}

// Delete handles DELETE /users/:id. Deletion is refused while any note still
// references the user.
//
// @Summary      Delete a user
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "User id"
// @Success      200  {object}  messageResponse
// @Failure      400  {object}  messageResponse
// @Router       /users/{id} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	user, err := h.service.Delete(c.Request().Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrMissingFields):
			metrics.RequestsRejectedTotal.WithLabelValues("users", "validation").Inc()
			return c.JSON(http.StatusBadRequest, messageResponse{Message: "ID is required"})
		case errors.Is(err, domain.ErrUserHasNotes):
			metrics.RequestsRejectedTotal.WithLabelValues("users", "guard").Inc()
			return c.JSON(http.StatusBadRequest, messageResponse{Message: "User has assigned notes"})
		case errors.Is(err, domain.ErrUserNotFound):
			metrics.RequestsRejectedTotal.WithLabelValues("users", "not_found").Inc()
			return c.JSON(http.StatusBadRequest, messageResponse{Message: "User not found"})
		}
		return err
	}

	metrics.UsersDeletedTotal.Inc()
	reply := fmt.Sprintf("Username %s with ID %s deleted", user.Username, user.ID)
	return c.JSON(http.StatusOK, messageResponse{Message: reply})
}

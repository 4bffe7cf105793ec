package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/technotes/notes-api/internal/core/domain"
	"github.com/technotes/notes-api/internal/core/ports"
)

type stubUserService struct {
	listFn   func(ctx context.Context) ([]*domain.User, error)
	createFn func(ctx context.Context, input ports.CreateUserInput) (*domain.User, error)
	updateFn func(ctx context.Context, input ports.UpdateUserInput) (*domain.User, error)
	deleteFn func(ctx context.Context, id string) (*domain.User, error)
}

func (s *stubUserService) List(ctx context.Context) ([]*domain.User, error) {
	return s.listFn(ctx)
}

func (s *stubUserService) Create(ctx context.Context, input ports.CreateUserInput) (*domain.User, error) {
	return s.createFn(ctx, input)
}

func (s *stubUserService) Update(ctx context.Context, input ports.UpdateUserInput) (*domain.User, error) {
	return s.updateFn(ctx, input)
}

func (s *stubUserService) Delete(ctx context.Context, id string) (*domain.User, error) {
	return s.deleteFn(ctx, id)
}

func newUserContext(t *testing.T, method, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(method, "/users", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestUserHandler_List_OmitsPasswordHash(t *testing.T) {
	stub := &stubUserService{
		listFn: func(ctx context.Context) ([]*domain.User, error) {
			return []*domain.User{
				{ID: "u1", Username: "alice", PasswordHash: "$2a$10$secret", Roles: []string{domain.RoleEmployee}, Active: true},
			}, nil
		},
	}
	c, rec := newUserContext(t, http.MethodGet, "")

	if err := NewUserHandler(stub).List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var users []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &users); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(users) != 1 {
		t.Fatalf("expected 1 user, got %d", len(users))
	}
	if users[0]["username"] != "alice" {
		t.Fatalf("unexpected username: %v", users[0]["username"])
	}
	for key := range users[0] {
		if strings.Contains(strings.ToLower(key), "password") {
			t.Fatalf("password material leaked under key %q", key)
		}
	}
}

func TestUserHandler_List_Empty(t *testing.T) {
	stub := &stubUserService{
		listFn: func(ctx context.Context) ([]*domain.User, error) {
			return nil, domain.ErrNoUsers
		},
	}
	c, rec := newUserContext(t, http.MethodGet, "")

	if err := NewUserHandler(stub).List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if msg := decodeMessage(t, rec); msg != "No users found" {
		t.Fatalf("unexpected message: %q", msg)
	}
}

func TestUserHandler_Create_Success(t *testing.T) {
	stub := &stubUserService{
		createFn: func(ctx context.Context, input ports.CreateUserInput) (*domain.User, error) {
			if input.Username != "bob" || input.Password != "hunter2" {
				t.Fatalf("unexpected input: %+v", input)
			}
			return &domain.User{ID: "u2", Username: "bob", Roles: input.Roles, Active: true}, nil
		},
	}
	c, rec := newUserContext(t, http.MethodPost, `{"username":"bob","password":"hunter2","roles":["Employee"]}`)

	if err := NewUserHandler(stub).Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if msg := decodeMessage(t, rec); msg != "User bob created" {
		t.Fatalf("unexpected message: %q", msg)
	}
}

func TestUserHandler_Create_Failures(t *testing.T) {
	cases := []struct {
		name    string
		err     error
		code    int
		message string
	}{
		{"missing fields", domain.ErrMissingFields, http.StatusBadRequest, "Please enter all fields"},
		{"duplicate", domain.ErrUserExists, http.StatusConflict, "User already exists"},
		{"store reject", domain.ErrInvalidUserData, http.StatusBadRequest, "Invalid user data"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			stub := &stubUserService{
				createFn: func(ctx context.Context, input ports.CreateUserInput) (*domain.User, error) {
					return nil, tc.err
				},
			}
			c, rec := newUserContext(t, http.MethodPost, `{"username":"bob","password":"x","roles":["Employee"]}`)

			if err := NewUserHandler(stub).Create(c); err != nil {
				t.Fatalf("handler error: %v", err)
			}
			if rec.Code != tc.code {
				t.Fatalf("expected %d, got %d", tc.code, rec.Code)
			}
			if msg := decodeMessage(t, rec); msg != tc.message {
				t.Fatalf("expected %q, got %q", tc.message, msg)
			}
		})
	}
}

func TestUserHandler_Update_UsesPathID(t *testing.T) {
	stub := &stubUserService{
		updateFn: func(ctx context.Context, input ports.UpdateUserInput) (*domain.User, error) {
			if input.ID != "u1" {
				t.Fatalf("expected id from path, got %q", input.ID)
			}
			if input.Active == nil || *input.Active {
				t.Fatalf("active flag not forwarded: %+v", input)
			}
			return &domain.User{ID: "u1", Username: input.Username, Roles: input.Roles}, nil
		},
	}
	c, rec := newUserContext(t, http.MethodPatch, `{"username":"alice","roles":["Manager"],"active":false}`)
	c.SetParamNames("id")
	c.SetParamValues("u1")

	if err := NewUserHandler(stub).Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if msg := decodeMessage(t, rec); msg != "User alice updated" {
		t.Fatalf("unexpected message: %q", msg)
	}
}

func TestUserHandler_Update_Failures(t *testing.T) {
	cases := []struct {
		name    string
		err     error
		code    int
		message string
	}{
		{"missing fields", domain.ErrMissingFields, http.StatusBadRequest, "All fields except password are required"},
		{"not found", domain.ErrUserNotFound, http.StatusBadRequest, "User not found"},
		{"conflict", domain.ErrUserExists, http.StatusConflict, "User alice already exists"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			stub := &stubUserService{
				updateFn: func(ctx context.Context, input ports.UpdateUserInput) (*domain.User, error) {
					return nil, tc.err
				},
			}
			c, rec := newUserContext(t, http.MethodPatch, `{"username":"alice","roles":["Employee"],"active":true}`)
			c.SetParamNames("id")
			c.SetParamValues("u1")

			_ = NewUserHandler(stub).Update(c)

			if rec.Code != tc.code {
				t.Fatalf("expected %d, got %d", tc.code, rec.Code)
			}
			if msg := decodeMessage(t, rec); msg != tc.message {
				t.Fatalf("expected %q, got %q", tc.message, msg)
			}
		})
	}
}

func TestUserHandler_Delete_Success(t *testing.T) {
	stub := &stubUserService{
		deleteFn: func(ctx context.Context, id string) (*domain.User, error) {
			return &domain.User{ID: id, Username: "alice"}, nil
		},
	}
	c, rec := newUserContext(t, http.MethodDelete, "")
	c.SetParamNames("id")
	c.SetParamValues("u1")

	if err := NewUserHandler(stub).Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if msg := decodeMessage(t, rec); msg != "Username alice with ID u1 deleted" {
		t.Fatalf("unexpected message: %q", msg)
	}
}

func TestUserHandler_Delete_Failures(t *testing.T) {
	cases := []struct {
		name    string
		err     error
		message string
	}{
		{"missing id", domain.ErrMissingFields, "ID is required"},
		{"has notes", domain.ErrUserHasNotes, "User has assigned notes"},
		{"not found", domain.ErrUserNotFound, "User not found"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			stub := &stubUserService{
				deleteFn: func(ctx context.Context, id string) (*domain.User, error) {
					return nil, tc.err
				},
			}
			c, rec := newUserContext(t, http.MethodDelete, "")
			c.SetParamNames("id")
			c.SetParamValues("u1")

			_ = NewUserHandler(stub).Delete(c)

			if rec.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", rec.Code)
			}
			if msg := decodeMessage(t, rec); msg != tc.message {
				t.Fatalf("expected %q, got %q", tc.message, msg)
			}
		})
	}
}

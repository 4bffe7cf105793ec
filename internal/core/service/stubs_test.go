package service

import (
	"context"
	"fmt"
	"time"

	"github.com/technotes/notes-api/internal/core/domain"
)

// In-memory repositories used across the service tests. They mimic the store
// contract: detached snapshots on reads, sentinel errors on misses, and
// uniqueness enforced on writes.

type stubUserRepo struct {
	users  map[string]*domain.User
	nextID int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	clone.Roles = append([]string(nil), u.Roles...)
	return &clone
}

func (r *stubUserRepo) FindAll(_ context.Context) ([]*domain.User, error) {
	out := make([]*domain.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, cloneUser(u))
	}
	return out, nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) Create(_ context.Context, u *domain.User) (*domain.User, error) {
	for _, existing := range r.users {
		if existing.Username == u.Username {
			return nil, domain.ErrUserExists
		}
	}
	r.nextID++
	clone := cloneUser(u)
	clone.ID = fmt.Sprintf("user-%d", r.nextID)
	r.users[clone.ID] = clone
	return cloneUser(clone), nil
}

func (r *stubUserRepo) Update(_ context.Context, u *domain.User) (*domain.User, error) {
	if _, ok := r.users[u.ID]; !ok {
		return nil, domain.ErrUserNotFound
	}
	for id, existing := range r.users {
		if existing.Username == u.Username && id != u.ID {
			return nil, domain.ErrUserExists
		}
	}
	r.users[u.ID] = cloneUser(u)
	return cloneUser(u), nil
}

func (r *stubUserRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.users[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}

type stubNoteRepo struct {
	notes  map[string]*domain.Note
	nextID int
}

func newStubNoteRepo() *stubNoteRepo {
	return &stubNoteRepo{notes: make(map[string]*domain.Note)}
}

func cloneNote(n *domain.Note) *domain.Note {
	if n == nil {
		return nil
	}
	clone := *n
	return &clone
}

func (r *stubNoteRepo) FindAll(_ context.Context) ([]*domain.Note, error) {
	out := make([]*domain.Note, 0, len(r.notes))
	for _, n := range r.notes {
		out = append(out, cloneNote(n))
	}
	return out, nil
}

func (r *stubNoteRepo) FindByID(_ context.Context, id string) (*domain.Note, error) {
	n, ok := r.notes[id]
	if !ok {
		return nil, domain.ErrNoteNotFound
	}
	return cloneNote(n), nil
}

func (r *stubNoteRepo) FindByTitle(_ context.Context, title string) (*domain.Note, error) {
	for _, n := range r.notes {
		if n.Title == title {
			return cloneNote(n), nil
		}
	}
	return nil, domain.ErrNoteNotFound
}

func (r *stubNoteRepo) FindOneByUser(_ context.Context, userID string) (*domain.Note, error) {
	for _, n := range r.notes {
		if n.User == userID {
			return cloneNote(n), nil
		}
	}
	return nil, domain.ErrNoteNotFound
}

func (r *stubNoteRepo) Create(_ context.Context, n *domain.Note) (*domain.Note, error) {
	for _, existing := range r.notes {
		if existing.Title == n.Title {
			return nil, domain.ErrDuplicateTitle
		}
	}
	r.nextID++
	clone := cloneNote(n)
	clone.ID = fmt.Sprintf("note-%d", r.nextID)
	clone.CreatedAt = time.Now().UTC()
	clone.UpdatedAt = clone.CreatedAt
	r.notes[clone.ID] = clone
	return cloneNote(clone), nil
}

func (r *stubNoteRepo) Update(_ context.Context, n *domain.Note) (*domain.Note, error) {
	if _, ok := r.notes[n.ID]; !ok {
		return nil, domain.ErrNoteNotFound
	}
	for id, existing := range r.notes {
		if existing.Title == n.Title && id != n.ID {
			return nil, domain.ErrDuplicateTitle
		}
	}
	clone := cloneNote(n)
	clone.UpdatedAt = time.Now().UTC()
	r.notes[clone.ID] = clone
	return cloneNote(clone), nil
}

func (r *stubNoteRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.notes[id]; !ok {
		return domain.ErrNoteNotFound
	}
	delete(r.notes, id)
	return nil
}

type stubTokenStore struct {
	tokens map[string]string
}

func newStubTokenStore() *stubTokenStore {
	return &stubTokenStore{tokens: make(map[string]string)}
}

func (s *stubTokenStore) Save(_ context.Context, token, username string) error {
	s.tokens[token] = username
	return nil
}

func (s *stubTokenStore) Lookup(_ context.Context, token string) (string, error) {
	username, ok := s.tokens[token]
	if !ok {
		return "", domain.ErrInvalidToken
	}
	return username, nil
}

func (s *stubTokenStore) Revoke(_ context.Context, token string) error {
	delete(s.tokens, token)
	return nil
}

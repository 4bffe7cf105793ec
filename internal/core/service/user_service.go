package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/technotes/notes-api/internal/core/domain"
	"github.com/technotes/notes-api/internal/core/ports"
)

const bcryptCost = 10

// UserService implements user CRUD with username uniqueness and the
// referential-integrity guard against deleting users that still own notes.
type UserService struct {
	users  ports.UserRepository
	notes  ports.NoteRepository
	logger zerolog.Logger
}

func NewUserService(users ports.UserRepository, notes ports.NoteRepository, logger zerolog.Logger) *UserService {
	return &UserService{users: users, notes: notes, logger: logger}
}

// List returns every user. Password hashes stay server-side via the domain
// type's json tag.
func (s *UserService) List(ctx context.Context) ([]*domain.User, error) {
	users, err := s.users.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, domain.ErrNoUsers
	}
	return users, nil
}

// Create validates field presence and username uniqueness, hashes the
// password and persists the user. New users start active.
func (s *UserService) Create(ctx context.Context, input ports.CreateUserInput) (*domain.User, error) {
	if input.Username == "" || input.Password == "" || len(input.Roles) == 0 {
		return nil, domain.ErrMissingFields
	}

	if _, err := s.users.FindByUsername(ctx, input.Username); err == nil {
		return nil, domain.ErrUserExists
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcryptCost)
	if err != nil {
		return nil, err
	}

	created, err := s.users.Create(ctx, &domain.User{
		Username:     input.Username,
		PasswordHash: string(hash),
		Roles:        input.Roles,
		Active:       true,
	})
	if err != nil {
		if errors.Is(err, domain.ErrUserExists) {
			return nil, err
		}
		s.logger.Error().Err(err).Str("username", input.Username).Msg("failed to create user")
		return nil, domain.ErrInvalidUserData
	}

	s.logger.Info().Str("user_id", created.ID).Str("username", created.Username).Msg("user created")
	return created, nil
}

// Update applies username, roles and active to an existing user, rehashing
// the password only when a new one was supplied.
func (s *UserService) Update(ctx context.Context, input ports.UpdateUserInput) (*domain.User, error) {
	if input.ID == "" || input.Username == "" || len(input.Roles) == 0 || input.Active == nil {
		return nil, domain.ErrMissingFields
	}

	user, err := s.users.FindByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	if dup, err := s.users.FindByUsername(ctx, input.Username); err == nil {
		if dup.ID != user.ID {
			return nil, domain.ErrUserExists
		}
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	user.Username = input.Username
	user.Roles = input.Roles
	user.Active = *input.Active

	if input.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcryptCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	}

	updated, err := s.users.Update(ctx, user)
	if err != nil {
		if errors.Is(err, domain.ErrUserExists) {
			return nil, err
		}
		s.logger.Error().Err(err).Str("user_id", user.ID).Msg("failed to update user")
		return nil, domain.ErrInvalidUserData
	}

	s.logger.Info().Str("user_id", updated.ID).Str("username", updated.Username).Msg("user updated")
	return updated, nil
}

// Delete removes a user and returns the deleted record. The notes guard runs
// before the existence check, matching the endpoint's contract.
func (s *UserService) Delete(ctx context.Context, id string) (*domain.User, error) {
	if id == "" {
		return nil, domain.ErrMissingFields
	}

	if _, err := s.notes.FindOneByUser(ctx, id); err == nil {
		return nil, domain.ErrUserHasNotes
	} else if !errors.Is(err, domain.ErrNoteNotFound) {
		return nil, err
	}

	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.users.Delete(ctx, user.ID); err != nil {
		s.logger.Error().Err(err).Str("user_id", user.ID).Msg("failed to delete user")
		return nil, err
	}

	s.logger.Info().Str("user_id", user.ID).Str("username", user.Username).Msg("user deleted")
	return user, nil
}

package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"hlcompare/internal/store"
)

// Validation and credential errors mapped to HTTP statuses by the API layer.
var (
	ErrInvalidUsername = errors.New("username must be 3-64 characters")
	ErrWeakPassword    = errors.New("password must be at least 8 characters")
	ErrBadCredentials  = errors.New("incorrect username or password")
)

// Service implements register/login/logout on top of the users repository
// and the Redis session store.
type Service struct {
	users    store.UsersRepo
	sessions *SessionStore
	log      zerolog.Logger
}

// NewService wires the auth service.
func NewService(users store.UsersRepo, sessions *SessionStore, logger zerolog.Logger) *Service {
	return &Service{users: users, sessions: sessions, log: logger}
}

// Register validates and creates a new account.
func (s *Service) Register(ctx context.Context, username, password string) (*store.User, error) {
	username = strings.TrimSpace(username)
	if len(username) < 3 || len(username) > 64 {
		return nil, ErrInvalidUsername
	}
	if len(password) < 8 {
		return nil, ErrWeakPassword
	}

	hash, err := HashPassword(password)
	if err != nil {
		return nil, err
	}

	user, err := s.users.Create(ctx, username, hash)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("username", username).Int64("user_id", user.ID).Msg("user registered")
	return user, nil
}

// Login verifies credentials and mints a session token. Unknown usernames
// and wrong passwords both report ErrBadCredentials.
func (s *Service) Login(ctx context.Context, username, password string) (string, error) {
	user, err := s.users.GetByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", ErrBadCredentials
		}
		return "", fmt.Errorf("failed to look up user: %w", err)
	}

	if !CheckPassword(user.HashedPassword, password) {
		return "", ErrBadCredentials
	}

	token, err := s.sessions.Create(ctx, user.ID, user.Username)
	if err != nil {
		return "", err
	}

	s.log.Info().Str("username", user.Username).Msg("user logged in")
	return token, nil
}

// Authenticate resolves a bearer token for middleware.
func (s *Service) Authenticate(ctx context.Context, token string) (*Session, error) {
	return s.sessions.Get(ctx, token)
}

// Logout revokes the session token.
func (s *Service) Logout(ctx context.Context, token string) error {
	return s.sessions.Delete(ctx, token)
}

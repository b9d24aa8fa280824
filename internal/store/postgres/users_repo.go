package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"hlcompare/internal/store"
)

type usersRepo struct {
	db      *sqlx.DB
	timeout time.Duration
}

// NewUsersRepo creates the PostgreSQL users repository.
func NewUsersRepo(db *sqlx.DB, timeout time.Duration) store.UsersRepo {
	return &usersRepo{db: db, timeout: timeout}
}

func (r *usersRepo) Create(ctx context.Context, username, hashedPassword string) (*store.User, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	query := `
		INSERT INTO users (username, hashed_password)
		VALUES ($1, $2)
		RETURNING id, username, hashed_password, created_at`

	var user store.User
	err := r.db.QueryRowxContext(ctx, query, username, hashedPassword).StructScan(&user)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return nil, store.ErrUsernameTaken
		}
		return nil, fmt.Errorf("failed to insert user: %w", err)
	}
	return &user, nil
}

func (r *usersRepo) GetByUsername(ctx context.Context, username string) (*store.User, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	query := `
		SELECT id, username, hashed_password, created_at
		FROM users
		WHERE username = $1`

	var user store.User
	err := r.db.GetContext(ctx, &user, query, username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user by username: %w", err)
	}
	return &user, nil
}

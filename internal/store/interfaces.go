// Package store defines the persistence contracts for users, uploaded file
// records, and stored comparison results. PostgreSQL implementations live in
// the postgres subpackage; the API layer treats persistence as best-effort
// behind a circuit breaker.
package store

import (
	"context"
	"errors"
	"time"

	"github.com/lib/pq"
)

// Sentinel errors surfaced by repository implementations.
var (
	ErrNotFound      = errors.New("record not found")
	ErrUsernameTaken = errors.New("username already taken")
)

// User is a registered account.
type User struct {
	ID             int64     `db:"id"`
	Username       string    `db:"username"`
	HashedPassword string    `db:"hashed_password"`
	CreatedAt      time.Time `db:"created_at"`
}

// File records one persisted upload. UserID is nil for anonymous uploads.
type File struct {
	ID         int64     `db:"id"`
	Filename   string    `db:"filename"`
	Path       string    `db:"path"`
	SizeBytes  int64     `db:"size_bytes"`
	UserID     *int64    `db:"user_id"`
	UploadedAt time.Time `db:"uploaded_at"`
}

// Comparison stores one comparison run with its full JSON payload.
type Comparison struct {
	ID        int64          `db:"id"`
	UserID    *int64         `db:"user_id"`
	Entities  pq.StringArray `db:"entities"`
	Result    []byte         `db:"result"`
	CreatedAt time.Time      `db:"created_at"`
}

// UsersRepo manages account rows.
type UsersRepo interface {
	Create(ctx context.Context, username, hashedPassword string) (*User, error)
	GetByUsername(ctx context.Context, username string) (*User, error)
}

// FilesRepo manages upload records.
type FilesRepo interface {
	Insert(ctx context.Context, file *File) error
	InsertBatch(ctx context.Context, files []*File) error
	ListRecent(ctx context.Context, limit int) ([]File, error)
}

// ComparisonsRepo manages stored comparison results.
type ComparisonsRepo interface {
	Insert(ctx context.Context, cmp *Comparison) error
	GetByID(ctx context.Context, id int64) (*Comparison, error)
	ListRecent(ctx context.Context, limit int) ([]Comparison, error)
}

// Repos bundles all repositories behind one handle.
type Repos struct {
	Users       UsersRepo
	Files       FilesRepo
	Comparisons ComparisonsRepo
}

package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"hlcompare/internal/store"
)

type filesRepo struct {
	db      *sqlx.DB
	timeout time.Duration
}

// NewFilesRepo creates the PostgreSQL files repository.
func NewFilesRepo(db *sqlx.DB, timeout time.Duration) store.FilesRepo {
	return &filesRepo{db: db, timeout: timeout}
}

func (r *filesRepo) Insert(ctx context.Context, file *store.File) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	query := `
		INSERT INTO files (filename, path, size_bytes, user_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id, uploaded_at`

	err := r.db.QueryRowxContext(ctx, query, file.Filename, file.Path, file.SizeBytes, file.UserID).
		Scan(&file.ID, &file.UploadedAt)
	if err != nil {
		return fmt.Errorf("failed to insert file record: %w", err)
	}
	return nil
}

func (r *filesRepo) InsertBatch(ctx context.Context, files []*store.File) error {
	if len(files) == 0 {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PreparexContext(ctx, `
		INSERT INTO files (filename, path, size_bytes, user_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id, uploaded_at`)
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer stmt.Close()

	for _, file := range files {
		err := stmt.QueryRowxContext(ctx, file.Filename, file.Path, file.SizeBytes, file.UserID).
			Scan(&file.ID, &file.UploadedAt)
		if err != nil {
			return fmt.Errorf("failed to insert file record in batch: %w", err)
		}
	}

	return tx.Commit()
}

func (r *filesRepo) ListRecent(ctx context.Context, limit int) ([]store.File, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	query := `
		SELECT id, filename, path, size_bytes, user_id, uploaded_at
		FROM files
		ORDER BY uploaded_at DESC
		LIMIT $1`

	var files []store.File
	if err := r.db.SelectContext(ctx, &files, query, limit); err != nil {
		return nil, fmt.Errorf("failed to list recent files: %w", err)
	}
	return files, nil
}

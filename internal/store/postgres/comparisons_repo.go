package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"hlcompare/internal/store"
)

type comparisonsRepo struct {
	db      *sqlx.DB
	timeout time.Duration
}

// NewComparisonsRepo creates the PostgreSQL comparisons repository.
func NewComparisonsRepo(db *sqlx.DB, timeout time.Duration) store.ComparisonsRepo {
	return &comparisonsRepo{db: db, timeout: timeout}
}

func (r *comparisonsRepo) Insert(ctx context.Context, cmp *store.Comparison) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	query := `
		INSERT INTO comparisons (user_id, entities, result)
		VALUES ($1, $2, $3)
		RETURNING id, created_at`

	err := r.db.QueryRowxContext(ctx, query, cmp.UserID, cmp.Entities, cmp.Result).
		Scan(&cmp.ID, &cmp.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert comparison: %w", err)
	}
	return nil
}

func (r *comparisonsRepo) GetByID(ctx context.Context, id int64) (*store.Comparison, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	query := `
		SELECT id, user_id, entities, result, created_at
		FROM comparisons
		WHERE id = $1`

	var cmp store.Comparison
	err := r.db.GetContext(ctx, &cmp, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get comparison %d: %w", id, err)
	}
	return &cmp, nil
}

func (r *comparisonsRepo) ListRecent(ctx context.Context, limit int) ([]store.Comparison, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	query := `
		SELECT id, user_id, entities, result, created_at
		FROM comparisons
		ORDER BY created_at DESC
		LIMIT $1`

	var cmps []store.Comparison
	if err := r.db.SelectContext(ctx, &cmps, query, limit); err != nil {
		return nil, fmt.Errorf("failed to list recent comparisons: %w", err)
	}
	return cmps, nil
}

package repository

import (
	"context"
	"database/sql"
	"fmt"
)

// SQLiteSequenceRepo allocates monotonic ids atomically from the sequences
// table. Ids are never reused; deleting lines leaves gaps.
type SQLiteSequenceRepo struct {
	db *sql.DB
}

// NewSQLiteSequenceRepo creates a new SQLiteSequenceRepo.
func NewSQLiteSequenceRepo(db *sql.DB) *SQLiteSequenceRepo {
	return &SQLiteSequenceRepo{db: db}
}

func (r *SQLiteSequenceRepo) NextLineID(ctx context.Context) (int64, error) {
	return r.next(ctx, "order_line")
}

func (r *SQLiteSequenceRepo) NextGroupID(ctx context.Context) (int64, error) {
	return r.next(ctx, "order_group")
}

func (r *SQLiteSequenceRepo) next(ctx context.Context, name string) (int64, error) {
	var next int64
	query := `UPDATE sequences
		SET next_val = next_val + 1
		WHERE name = ?
		RETURNING next_val - 1`
	if err := r.db.QueryRowContext(ctx, query, name).Scan(&next); err != nil {
		return 0, fmt.Errorf("allocating next %s id: %w", name, err)
	}
	return next, nil
}

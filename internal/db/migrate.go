package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS order_lines (
		id                 INTEGER PRIMARY KEY,
		group_id           INTEGER NOT NULL,
		client             TEXT NOT NULL,
		product            TEXT NOT NULL,
		material           TEXT NOT NULL
		                   CHECK(material IN ('A','B')),
		structure          TEXT NOT NULL
		                   CHECK(structure IN ('hinged','sliding','special')),
		pieces             INTEGER NOT NULL DEFAULT 0 CHECK(pieces >= 0),
		glass_units        INTEGER NOT NULL DEFAULT 0 CHECK(glass_units >= 0),
		required_min       INTEGER NOT NULL DEFAULT 0 CHECK(required_min >= 0),
		requested_delivery TEXT,
		start_date         TEXT NOT NULL,
		estimated_delivery TEXT,
		created_at         TEXT NOT NULL,
		updated_at         TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_order_lines_group ON order_lines(group_id)`,
	`CREATE INDEX IF NOT EXISTS idx_order_lines_start ON order_lines(start_date)`,

	// Monotonic id allocators. Ids are handed out once and never reused;
	// deleting lines leaves gaps.
	`CREATE TABLE IF NOT EXISTS sequences (
		name     TEXT PRIMARY KEY,
		next_val INTEGER NOT NULL CHECK(next_val > 0)
	)`,

	`INSERT OR IGNORE INTO sequences (name, next_val) VALUES ('order_line', 1)`,
	`INSERT OR IGNORE INTO sequences (name, next_val) VALUES ('order_group', 1)`,
}

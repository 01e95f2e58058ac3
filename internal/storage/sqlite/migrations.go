package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/GustavoCaso/ledger/internal/logger"
)

type migration struct {
	name string
	up   func(ctx context.Context, tx *sql.Tx) error
}

var migrations = []migration{
	{
		name: "Create transactions table",
		up: func(ctx context.Context, tx *sql.Tx) error {
			_, err := tx.ExecContext(ctx, `
				CREATE TABLE IF NOT EXISTS transactions
				(
				 id INTEGER PRIMARY KEY,
				 position INTEGER NOT NULL,
				 amount INTEGER NOT NULL,
				 category TEXT NOT NULL,
				 date TEXT NOT NULL,
				 is_income INTEGER NOT NULL
				) STRICT;`)
			return err
		},
	},
	{
		name: "Index transactions by position",
		up: func(ctx context.Context, tx *sql.Tx) error {
			_, err := tx.ExecContext(ctx,
				"CREATE INDEX IF NOT EXISTS idx_transactions_position ON transactions(position)")
			return err
		},
	},
}

func createMigrationsTable(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at INTEGER NOT NULL
		)`)
	return err
}

func applyMigrations(ctx context.Context, db *sql.DB, logger *logger.Logger) error {
	if err := createMigrationsTable(ctx, db); err != nil {
		return fmt.Errorf("failed to create migrations table: %w", err)
	}

	currentVersion := 0
	row := db.QueryRowContext(ctx, "SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("failed to get current schema version: %w", err)
	}

	for i := currentVersion; i < len(migrations); i++ {
		m := migrations[i]
		version := i + 1

		logger.Debug("Applying migration", "version", version, "name", m.name)

		tx, err := db.BeginTx(ctx, nil)
		if err != nil {
			return fmt.Errorf("failed to begin transaction for migration %d: %w", version, err)
		}

		if err = m.up(ctx, tx); err != nil {
			if rErr := tx.Rollback(); rErr != nil {
				return rErr
			}
			return fmt.Errorf("failed to apply migration %d (%s): %w", version, m.name, err)
		}

		_, err = tx.ExecContext(ctx,
			"INSERT INTO schema_migrations (version, applied_at) VALUES (?, ?)", version, time.Now().Unix())
		if err != nil {
			if rErr := tx.Rollback(); rErr != nil {
				return rErr
			}
			return fmt.Errorf("failed to record migration %d: %w", version, err)
		}

		if err = tx.Commit(); err != nil {
			return fmt.Errorf("failed to commit migration %d: %w", version, err)
		}
	}

	return nil
}

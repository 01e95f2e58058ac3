package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"

	// import sqlite driver.
	_ "github.com/mattn/go-sqlite3"

	"github.com/GustavoCaso/ledger/internal/logger"
	"github.com/GustavoCaso/ledger/internal/transaction"
)

// Storage keeps transactions in a SQLite database. Every Save or Load opens
// the database, works on it, and closes it before returning.
type Storage struct {
	logger *logger.Logger
}

func New(logger *logger.Logger) *Storage {
	return &Storage{logger: logger}
}

func open(ctx context.Context, path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	_, err = db.ExecContext(ctx, "PRAGMA foreign_keys = ON")
	if err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

// Save replaces every stored transaction with the given list, keeping its
// order.
func (s *Storage) Save(ctx context.Context, path string, transactions []transaction.Transaction) (err error) {
	db, err := open(ctx, path)
	if err != nil {
		return fmt.Errorf("failed to open database %s: %w", path, err)
	}
	defer func() {
		if closeErr := db.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("failed to close database %s: %w", path, closeErr)
		}
	}()

	if err = applyMigrations(ctx, db, s.logger); err != nil {
		return err
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	if err = replaceTransactions(ctx, tx, transactions); err != nil {
		if rErr := tx.Rollback(); rErr != nil {
			return errors.Join(err, rErr)
		}
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transactions: %w", err)
	}

	s.logger.Debug("Saved transactions", "path", path, "count", len(transactions))

	return nil
}

func replaceTransactions(ctx context.Context, tx *sql.Tx, transactions []transaction.Transaction) error {
	if _, err := tx.ExecContext(ctx, "DELETE FROM transactions"); err != nil {
		return fmt.Errorf("failed to clear transactions: %w", err)
	}

	insertStmt, err := tx.PrepareContext(ctx,
		"INSERT INTO transactions(position, amount, category, date, is_income) VALUES(?, ?, ?, ?, ?)")
	if err != nil {
		return err
	}
	defer insertStmt.Close()

	for i, t := range transactions {
		_, err = insertStmt.ExecContext(ctx,
			i, t.Amount(), t.Category(), t.Date().Format(transaction.DateLayout), boolToInt(t.IsIncome()))
		if err != nil {
			return fmt.Errorf("failed to insert transaction %d: %w", i, err)
		}
	}

	return nil
}

// Load reads every stored transaction. A missing database file is an error;
// sqlite would otherwise create an empty one.
func (s *Storage) Load(ctx context.Context, path string) (_ []transaction.Transaction, err error) {
	if _, err = os.Stat(path); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	db, err := open(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database %s: %w", path, err)
	}
	defer func() {
		if closeErr := db.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("failed to close database %s: %w", path, closeErr)
		}
	}()

	if err = applyMigrations(ctx, db, s.logger); err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx,
		"SELECT amount, category, date, is_income FROM transactions ORDER BY position")
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	transactions := []transaction.Transaction{}
	for rows.Next() {
		var (
			amount   int64
			category string
			date     string
			isIncome int
		)
		if err = rows.Scan(&amount, &category, &date, &isIncome); err != nil {
			return nil, err
		}

		parsedDate, parseErr := transaction.ParseDate(date)
		if parseErr != nil {
			return nil, fmt.Errorf("transaction %d: %w", len(transactions), parseErr)
		}

		transactions = append(transactions, transaction.New(amount, category, parsedDate, isIncome == 1))
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	s.logger.Debug("Loaded transactions", "path", path, "count", len(transactions))

	return transactions, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

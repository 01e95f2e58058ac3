package storage

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/GustavoCaso/ledger/internal/logger"
	"github.com/GustavoCaso/ledger/internal/storage/file"
	"github.com/GustavoCaso/ledger/internal/storage/sqlite"
	"github.com/GustavoCaso/ledger/internal/transaction"
)

// Backend persists a whole transaction list at a path. Save overwrites
// whatever was stored there before.
type Backend interface {
	Save(ctx context.Context, path string, transactions []transaction.Transaction) error
	Load(ctx context.Context, path string) ([]transaction.Transaction, error)
}

var sqliteExtensions = []string{".db", ".sqlite", ".sqlite3"}

// ForPath returns the SQLite backend for database file extensions and the
// text file backend for anything else.
func ForPath(path string, logger *logger.Logger) Backend {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range sqliteExtensions {
		if ext == e {
			return sqlite.New(logger)
		}
	}

	return file.New(logger)
}

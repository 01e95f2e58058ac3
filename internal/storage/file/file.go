package file

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/GustavoCaso/ledger/internal/codec"
	"github.com/GustavoCaso/ledger/internal/logger"
	"github.com/GustavoCaso/ledger/internal/transaction"
)

const filePermissions = 0o644

// Storage keeps transactions in a plain text file using the codec format.
type Storage struct {
	logger *logger.Logger
}

func New(logger *logger.Logger) *Storage {
	return &Storage{logger: logger}
}

// Save replaces the file contents. The write is not atomic: a failure half way
// leaves the partially written file in place.
func (s *Storage) Save(ctx context.Context, path string, transactions []transaction.Transaction) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	text, err := codec.Encode(transactions)
	if err != nil {
		return err
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, filePermissions)
	if err != nil {
		return fmt.Errorf("failed to open %s for writing: %w", path, err)
	}

	_, err = f.WriteString(text)
	if err != nil {
		return errors.Join(fmt.Errorf("failed to write %s: %w", path, err), f.Close())
	}

	if err = f.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", path, err)
	}

	s.logger.Debug("Saved transactions", "path", path, "count", len(transactions), "bytes", len(text))

	return nil
}

func (s *Storage) Load(ctx context.Context, path string) ([]transaction.Transaction, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	transactions, err := codec.Decode(string(content))
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}

	s.logger.Debug("Loaded transactions", "path", path, "count", len(transactions))

	return transactions, nil
}

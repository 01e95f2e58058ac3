// Package session holds the working set of one ledger run and exposes the
// operations the interactive menu and the subcommands call: add, monthly
// summary, list, save, load and exit.
package session

import (
	"context"
	"fmt"
	"io"
	"iter"
	"path/filepath"
	"time"

	"github.com/GustavoCaso/ledger/internal/logger"
	"github.com/GustavoCaso/ledger/internal/report"
	"github.com/GustavoCaso/ledger/internal/storage"
	"github.com/GustavoCaso/ledger/internal/store"
	"github.com/GustavoCaso/ledger/internal/transaction"
)

type Session struct {
	store    *store.Store
	out      io.Writer
	logger   *logger.Logger
	currency string
	now      func() time.Time
	backend  func(path string) storage.Backend
}

type Option func(*Session)

// WithClock sets the reference date used by the monthly summary.
func WithClock(now func() time.Time) Option {
	return func(s *Session) {
		s.now = now
	}
}

func WithBackend(backend func(path string) storage.Backend) Option {
	return func(s *Session) {
		s.backend = backend
	}
}

func New(out io.Writer, logger *logger.Logger, currency string, opts ...Option) *Session {
	s := &Session{
		store:    store.New(),
		out:      out,
		logger:   logger,
		currency: currency,
		now:      time.Now,
	}
	s.backend = func(path string) storage.Backend {
		return storage.ForPath(path, s.logger)
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

func (s *Session) Transactions() iter.Seq[transaction.Transaction] {
	return s.store.All()
}

func (s *Session) Len() int {
	return s.store.Len()
}

func (s *Session) AddTransaction(amount int64, category string, date time.Time, isIncome bool) {
	t := transaction.New(amount, category, date, isIncome)
	s.store.Add(t)

	s.logger.Debug("Transaction added", "transaction", t.String())
	fmt.Fprintln(s.out, "Transaction Saved.")
}

// Import appends transactions after the existing ones, keeping their order.
func (s *Session) Import(transactions []transaction.Transaction) {
	for _, t := range transactions {
		s.store.Add(t)
	}

	fmt.Fprintf(s.out, "Total transactions imported: %d\n", len(transactions))
}

func (s *Session) MonthlySummary() store.Summary {
	return s.store.MonthlySummary(s.now())
}

func (s *Session) ViewMonthlySummary() error {
	r := report.Monthly(s.now(), s.store.All(), s.currency)
	if err := report.Render(s.out, r); err != nil {
		s.logger.Error("Unable to render summary", "error", err)
		return fmt.Errorf("unable to render summary: %w", err)
	}
	return nil
}

func (s *Session) ViewAllTransactions() {
	if s.store.Len() == 0 {
		fmt.Fprintln(s.out, "No transactions recorded.")
		return
	}
	report.RenderTable(s.out, s.store.All(), s.currency)
}

// Save writes the whole working set to path. Failures are reported to the user
// and returned; the working set is not touched either way.
func (s *Session) Save(ctx context.Context, path string) error {
	err := s.backend(path).Save(ctx, path, s.store.Snapshot())
	if err != nil {
		s.logger.Error("Unable to save transactions", "path", path, "error", err)
		fmt.Fprintf(s.out, "Error saving file: %s\n", err)
		return err
	}

	fmt.Fprintf(s.out, "Saved %d transactions to: %s\n", s.store.Len(), absPath(path))
	return nil
}

// Load replaces the working set with the contents of path. When loading fails
// the error is reported and the current working set is kept.
func (s *Session) Load(ctx context.Context, path string) error {
	transactions, err := s.backend(path).Load(ctx, path)
	if err != nil {
		s.logger.Error("Unable to load transactions", "path", path, "error", err)
		fmt.Fprintf(s.out, "Error reading file: %s\n", err)
		return err
	}

	s.store.Replace(transactions)

	fmt.Fprintf(s.out, "Loaded %d transactions from %s\n", len(transactions), absPath(path))
	return nil
}

func (s *Session) Exit() {
	fmt.Fprintln(s.out, "Exiting... Goodbye!")
}

func absPath(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return abs
}

package store

import (
	"iter"
	"slices"
	"time"

	"github.com/GustavoCaso/ledger/internal/transaction"
)

// Summary holds the aggregated totals for one calendar month.
type Summary struct {
	Income  int64
	Expense int64
	Balance int64
}

// Store keeps the working set of transactions in insertion order.
type Store struct {
	transactions []transaction.Transaction
}

func New(transactions ...transaction.Transaction) *Store {
	return &Store{
		transactions: slices.Clone(transactions),
	}
}

func (s *Store) Add(t transaction.Transaction) {
	s.transactions = append(s.transactions, t)
}

// Replace swaps the whole working set, as done after a successful load.
func (s *Store) Replace(transactions []transaction.Transaction) {
	s.transactions = slices.Clone(transactions)
}

func (s *Store) Len() int {
	return len(s.transactions)
}

// All yields every transaction in insertion order.
func (s *Store) All() iter.Seq[transaction.Transaction] {
	return func(yield func(transaction.Transaction) bool) {
		for _, t := range s.transactions {
			if !yield(t) {
				return
			}
		}
	}
}

func (s *Store) Snapshot() []transaction.Transaction {
	return slices.Clone(s.transactions)
}

// MonthlySummary totals the transactions that fall in the same year and month
// as asOf.
func (s *Store) MonthlySummary(asOf time.Time) Summary {
	return Summarize(s.All(), asOf)
}

func Summarize(transactions iter.Seq[transaction.Transaction], asOf time.Time) Summary {
	var summary Summary

	for t := range InMonth(transactions, asOf) {
		if t.IsIncome() {
			summary.Income += t.Amount()
		} else {
			summary.Expense += t.Amount()
		}
	}

	summary.Balance = summary.Income - summary.Expense

	return summary
}

// InMonth filters transactions down to the year and month of asOf.
func InMonth(transactions iter.Seq[transaction.Transaction], asOf time.Time) iter.Seq[transaction.Transaction] {
	year, month := asOf.Year(), asOf.Month()

	return func(yield func(transaction.Transaction) bool) {
		for t := range transactions {
			if t.Date().Year() != year || t.Date().Month() != month {
				continue
			}
			if !yield(t) {
				return
			}
		}
	}
}

package filter

import (
	"cmp"
	"iter"
	"slices"
	"strings"
	"time"

	"github.com/GustavoCaso/ledger/internal/transaction"
)

// TransactionFilter holds filter criteria for listing transactions.
// All fields are pointers to distinguish "not set" from zero values.
type TransactionFilter struct {
	Category  *string           // case-insensitive substring
	Type      *transaction.Type // income or expense only
	AmountMin *int64            // inclusive
	AmountMax *int64            // inclusive
	DateFrom  *time.Time        // inclusive
	DateTo    *time.Time        // inclusive
}

func (f *TransactionFilter) Matches(t transaction.Transaction) bool {
	if f.Category != nil && !strings.Contains(strings.ToLower(t.Category()), strings.ToLower(*f.Category)) {
		return false
	}
	if f.Type != nil && t.Type() != *f.Type {
		return false
	}
	if f.AmountMin != nil && t.Amount() < *f.AmountMin {
		return false
	}
	if f.AmountMax != nil && t.Amount() > *f.AmountMax {
		return false
	}
	if f.DateFrom != nil && t.Date().Before(*f.DateFrom) {
		return false
	}
	if f.DateTo != nil && t.Date().After(*f.DateTo) {
		return false
	}
	return true
}

// Apply yields the transactions of seq that match, in the order seq yields them.
func (f *TransactionFilter) Apply(seq iter.Seq[transaction.Transaction]) iter.Seq[transaction.Transaction] {
	return func(yield func(transaction.Transaction) bool) {
		for t := range seq {
			if f.Matches(t) && !yield(t) {
				return
			}
		}
	}
}

// SortField represents a field that can be sorted on.
type SortField string

const (
	SortByInsertion SortField = "insertion"
	SortByDate      SortField = "date"
	SortByAmount    SortField = "amount"
)

// SortDirection represents sort order.
type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// SortOptions holds sorting preferences.
type SortOptions struct {
	Field     SortField
	Direction SortDirection
}

// DefaultSortOptions keeps insertion order.
func DefaultSortOptions() *SortOptions {
	return &SortOptions{
		Field:     SortByInsertion,
		Direction: SortAsc,
	}
}

// String returns the sort options as a string (e.g., "date:desc").
func (s *SortOptions) String() string {
	return string(s.Field) + ":" + string(s.Direction)
}

// Sort returns the transactions of seq ordered by s. Ties keep insertion order.
func (s *SortOptions) Sort(seq iter.Seq[transaction.Transaction]) []transaction.Transaction {
	transactions := slices.Collect(seq)

	var compare func(a, b transaction.Transaction) int
	switch s.Field {
	case SortByDate:
		compare = func(a, b transaction.Transaction) int { return a.Date().Compare(b.Date()) }
	case SortByAmount:
		compare = func(a, b transaction.Transaction) int { return cmp.Compare(a.Amount(), b.Amount()) }
	default:
		if s.Direction == SortDesc {
			slices.Reverse(transactions)
		}
		return transactions
	}

	slices.SortStableFunc(transactions, func(a, b transaction.Transaction) int {
		if s.Direction == SortDesc {
			return compare(b, a)
		}
		return compare(a, b)
	})

	return transactions
}

package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"iter"
	"strconv"

	"github.com/GustavoCaso/ledger/internal/transaction"
)

const base10 = 10

var header = []string{"Date", "Category", "Type", "Amount"}

// CSV exports transactions to CSV format
// format: Date,Category,Type,Amount
func CSV(writer io.Writer, transactions iter.Seq[transaction.Transaction]) error {
	w := csv.NewWriter(writer)

	records := [][]string{header}
	for t := range transactions {
		records = append(records, transactionToCSVRecord(t))
	}

	// WriteAll flushes
	if err := w.WriteAll(records); err != nil {
		return fmt.Errorf("failed to write CSV records: %w", err)
	}

	return nil
}

func transactionToCSVRecord(t transaction.Transaction) []string {
	typeStr := "expense"
	if t.IsIncome() {
		typeStr = "income"
	}

	return []string{
		t.Date().Format(transaction.DateLayout),
		t.Category(),
		typeStr,
		strconv.FormatInt(t.Amount(), base10),
	}
}

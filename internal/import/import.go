package importutil

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"path"
	"strconv"
	"strings"

	"github.com/GustavoCaso/ledger/internal/codec"
	"github.com/GustavoCaso/ledger/internal/transaction"
	"github.com/GustavoCaso/ledger/internal/util"
)

var ErrUnsupportedFormat = errors.New("unsupported file format")

// Import reads transactions from reader. The format is picked from the
// filename extension:
//
//	.csv   Date,Category,Type,Amount as written by the export command. The
//	       header row is optional. An explicit Type keeps Amount as signed;
//	       an empty Type takes the sign of Amount and stores its magnitude.
//	.json  a ledger data file.
//
// Nothing is returned unless every row is valid.
func Import(filename string, reader io.Reader) ([]transaction.Transaction, error) {
	switch fileFormat := strings.ToLower(path.Ext(filename)); fileFormat {
	case ".csv":
		return importCSV(reader)
	case ".json":
		content, err := io.ReadAll(reader)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", filename, err)
		}
		return codec.Decode(string(content))
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, fileFormat)
	}
}

func importCSV(reader io.Reader) ([]transaction.Transaction, error) {
	r := csv.NewReader(reader)
	r.FieldsPerRecord = 4
	r.TrimLeadingSpace = true

	transactions := []transaction.Transaction{}
	line := 0
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		line++

		if line == 1 && isHeader(record) {
			continue
		}

		t, err := recordToTransaction(record)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		transactions = append(transactions, t)
	}

	return transactions, nil
}

func isHeader(record []string) bool {
	return strings.EqualFold(record[0], "date") && strings.EqualFold(record[3], "amount")
}

func recordToTransaction(record []string) (transaction.Transaction, error) {
	date, err := transaction.ParseDate(record[0])
	if err != nil {
		return transaction.Transaction{}, err
	}

	amount, err := strconv.ParseInt(strings.TrimSpace(record[3]), 10, 64)
	if err != nil {
		return transaction.Transaction{}, fmt.Errorf("invalid amount %q: %w", record[3], err)
	}

	var isIncome bool
	switch kind := strings.ToLower(strings.TrimSpace(record[2])); kind {
	case "income":
		isIncome = true
	case "expense":
		isIncome = false
	case "":
		// the sign carries the type and is dropped from the amount
		if amount == math.MinInt64 {
			return transaction.Transaction{}, fmt.Errorf("invalid amount %q: %w", record[3], strconv.ErrRange)
		}
		isIncome = amount >= 0
		amount = util.Abs(amount)
	default:
		return transaction.Transaction{}, fmt.Errorf("invalid type %q", record[2])
	}

	return transaction.New(amount, record[1], date, isIncome), nil
}

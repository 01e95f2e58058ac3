// Package codec converts transaction lists to and from the ledger text format:
//
//	[{"Amount":1000,"Category":"Salary","Date":"2024-06-01","IsIncome":true}]
//
// New files are always written as strict JSON with a fixed field order. Files
// the JSON decoder rejects are read with the legacy quote-aware decoder, which
// tolerates unescaped quotes, case-insensitive booleans and truncated objects.
package codec

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/GustavoCaso/ledger/internal/transaction"
)

var (
	ErrMalformed   = errors.New("malformed record")
	ErrMissingDate = errors.New("missing Date field")
)

// ParseError reports the record and field that could not be decoded. A single
// ParseError fails the whole decode.
type ParseError struct {
	Index int
	Field string
	Value string
	Err   error
}

func (e *ParseError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("record %d: %q: %v", e.Index, e.Value, e.Err)
	}
	return fmt.Sprintf("record %d: invalid %s %q: %v", e.Index, e.Field, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// record fixes the field order of the encoded object.
type record struct {
	Amount   int64  `json:"Amount"`
	Category string `json:"Category"`
	Date     string `json:"Date"`
	IsIncome bool   `json:"IsIncome"`
}

// Encode renders the list. The output is deterministic and an empty list
// encodes as "[]".
func Encode(transactions []transaction.Transaction) (string, error) {
	records := make([]record, 0, len(transactions))
	for _, t := range transactions {
		records = append(records, record{
			Amount:   t.Amount(),
			Category: t.Category(),
			Date:     t.Date().Format(transaction.DateLayout),
			IsIncome: t.IsIncome(),
		})
	}

	var buffer bytes.Buffer
	encoder := json.NewEncoder(&buffer)
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(records); err != nil {
		return "", fmt.Errorf("failed to encode transactions: %w", err)
	}

	return strings.TrimSuffix(buffer.String(), "\n"), nil
}

// Decode parses the whole text. Either every record decodes or an error is
// returned and no transactions are.
func Decode(text string) ([]transaction.Transaction, error) {
	transactions, err := decodeJSON(text)
	if err == nil {
		return transactions, nil
	}

	// The text was valid JSON but a value was wrong; the legacy decoder would
	// hit the same value.
	var parseErr *ParseError
	if errors.As(err, &parseErr) {
		return nil, err
	}

	return DecodeLegacy(text)
}

// decodedRecord keeps Amount raw so an explicit null can be told apart from
// an absent field.
type decodedRecord struct {
	Amount   json.RawMessage `json:"Amount"`
	Category string          `json:"Category"`
	Date     string          `json:"Date"`
	IsIncome bool            `json:"IsIncome"`
}

func decodeJSON(text string) ([]transaction.Transaction, error) {
	var records []decodedRecord
	if err := json.Unmarshal([]byte(text), &records); err != nil {
		return nil, err
	}

	transactions := make([]transaction.Transaction, 0, len(records))
	for i, r := range records {
		var amount int64
		if len(r.Amount) > 0 {
			if string(r.Amount) == "null" {
				return nil, &ParseError{Index: i, Field: "Amount", Value: "null", Err: ErrMalformed}
			}
			// non-integer values are left to the legacy decoder
			if err := json.Unmarshal(r.Amount, &amount); err != nil {
				return nil, err
			}
		}
		if r.Date == "" {
			return nil, &ParseError{Index: i, Field: "Date", Err: ErrMissingDate}
		}
		date, err := transaction.ParseDate(r.Date)
		if err != nil {
			return nil, &ParseError{Index: i, Field: "Date", Value: r.Date, Err: err}
		}
		transactions = append(transactions, transaction.New(amount, r.Category, date, r.IsIncome))
	}

	return transactions, nil
}

package codec

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/GustavoCaso/ledger/internal/transaction"
)

// DecodeLegacy decodes the hand written bracket format. Keys are matched
// exactly; unknown keys are ignored, so misspelled fields are silently dropped.
func DecodeLegacy(text string) ([]transaction.Transaction, error) {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "[")
	text = strings.TrimSuffix(text, "]")

	transactions := []transaction.Transaction{}
	if strings.TrimSpace(text) == "" {
		return transactions, nil
	}

	for i, chunk := range splitObjects(text) {
		t, err := decodeObject(i, normalizeObject(chunk))
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, t)
	}

	return transactions, nil
}

// splitObjects cuts the list body between adjacent object literals. Commas
// inside quoted strings or inside an object never split.
func splitObjects(text string) []string {
	var chunks []string
	inQuote := false
	depth := 0
	start := 0

	for i, r := range text {
		switch {
		case r == '"':
			inQuote = !inQuote
		case inQuote:
		case r == '{':
			depth++
		case r == '}':
			if depth > 0 {
				depth--
			}
		case r == ',' && depth == 0:
			chunks = append(chunks, text[start:i])
			start = i + 1
		}
	}

	return append(chunks, text[start:])
}

func normalizeObject(chunk string) string {
	chunk = strings.TrimSpace(chunk)
	if !strings.HasPrefix(chunk, "{") {
		chunk = "{" + chunk
	}
	if !strings.HasSuffix(chunk, "}") || len(chunk) == 1 {
		chunk += "}"
	}
	return chunk
}

// splitFields splits on commas preceded by an even number of quotes.
func splitFields(body string) []string {
	var fields []string
	inQuote := false
	start := 0

	for i, r := range body {
		switch {
		case r == '"':
			inQuote = !inQuote
		case r == ',' && !inQuote:
			fields = append(fields, body[start:i])
			start = i + 1
		}
	}

	return append(fields, body[start:])
}

func decodeObject(index int, object string) (transaction.Transaction, error) {
	body := object[1 : len(object)-1]

	var (
		amount   int64
		category string
		date     string
		isIncome bool
		hasDate  bool
	)

	for _, field := range splitFields(body) {
		if strings.TrimSpace(field) == "" {
			continue
		}

		rawKey, rawValue, ok := strings.Cut(field, ":")
		if !ok {
			return transaction.Transaction{}, &ParseError{Index: index, Value: field, Err: ErrMalformed}
		}

		key := unquote(rawKey)
		value := unquote(rawValue)

		switch key {
		case "Amount":
			parsed, err := strconv.ParseInt(value, 10, 64)
			if err != nil {
				return transaction.Transaction{}, &ParseError{Index: index, Field: key, Value: value, Err: err}
			}
			amount = parsed
		case "Category":
			category = value
		case "Date":
			date = value
			hasDate = true
		case "IsIncome":
			isIncome = strings.EqualFold(value, "true")
		}
	}

	if !hasDate {
		return transaction.Transaction{}, &ParseError{Index: index, Field: "Date", Err: ErrMissingDate}
	}

	parsedDate, err := transaction.ParseDate(date)
	if err != nil {
		return transaction.Transaction{}, &ParseError{Index: index, Field: "Date", Value: date, Err: err}
	}

	return transaction.New(amount, category, parsedDate, isIncome), nil
}

// unquote trims whitespace and surrounding quotes. Valid JSON string literals
// are unescaped as well.
func unquote(raw string) string {
	raw = strings.TrimSpace(raw)
	if len(raw) >= 2 && strings.HasPrefix(raw, `"`) && strings.HasSuffix(raw, `"`) {
		var s string
		if err := json.Unmarshal([]byte(raw), &s); err == nil {
			return s
		}
	}
	return strings.Trim(raw, `"`)
}

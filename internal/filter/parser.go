package filter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/GustavoCaso/ledger/internal/transaction"
)

// Params are the raw filter values as typed by the user. Empty means unset.
type Params struct {
	Category  string
	Type      string
	AmountMin string
	AmountMax string
	DateFrom  string
	DateTo    string
	Sort      string
}

// parseAmount converts a whole-unit amount string.
func parseAmount(s string) (int64, error) {
	if s == "" {
		return 0, fmt.Errorf("amount cannot be empty")
	}

	amount, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid amount format: %w", err)
	}

	return amount, nil
}

func parseType(s string) (transaction.Type, error) {
	switch strings.ToLower(s) {
	case "income":
		return transaction.IncomeType, nil
	case "expense":
		return transaction.ChargeType, nil
	default:
		return 0, fmt.Errorf("invalid type: %s (must be income or expense)", s)
	}
}

// parseSort parses a sort string like "date:desc" into SortOptions. The
// direction defaults to ascending.
func parseSort(s string) (*SortOptions, error) {
	if s == "" {
		return nil, fmt.Errorf("sort string cannot be empty")
	}

	field, direction, found := strings.Cut(s, ":")
	if !found {
		direction = string(SortAsc)
	}

	options := &SortOptions{
		Field:     SortField(field),
		Direction: SortDirection(direction),
	}

	if options.Field != SortByInsertion && options.Field != SortByDate && options.Field != SortByAmount {
		return nil, fmt.Errorf("invalid sort field: %s (must be insertion, date or amount)", field)
	}

	if options.Direction != SortAsc && options.Direction != SortDesc {
		return nil, fmt.Errorf("invalid sort direction: %s (must be asc or desc)", direction)
	}

	return options, nil
}

// Parse validates params into filter and sort options.
func Parse(params Params) (*TransactionFilter, *SortOptions, error) {
	filter := &TransactionFilter{}
	sort := DefaultSortOptions()

	if params.Category != "" {
		category := params.Category
		filter.Category = &category
	}

	if params.Type != "" {
		kind, err := parseType(params.Type)
		if err != nil {
			return nil, nil, err
		}
		filter.Type = &kind
	}

	if params.AmountMin != "" {
		val, err := parseAmount(params.AmountMin)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid amount-min: %w", err)
		}
		filter.AmountMin = &val
	}

	if params.AmountMax != "" {
		val, err := parseAmount(params.AmountMax)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid amount-max: %w", err)
		}
		filter.AmountMax = &val
	}

	if params.DateFrom != "" {
		val, err := transaction.ParseDate(params.DateFrom)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid from: %w", err)
		}
		filter.DateFrom = &val
	}

	if params.DateTo != "" {
		val, err := transaction.ParseDate(params.DateTo)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid to: %w", err)
		}
		filter.DateTo = &val
	}

	if params.Sort != "" {
		parsed, err := parseSort(params.Sort)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid sort: %w", err)
		}
		sort = parsed
	}

	return filter, sort, nil
}

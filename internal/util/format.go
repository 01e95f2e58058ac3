package util

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

const thousandValue = 1000

// Abs returns the absolute value. The minimum value of T has no positive
// counterpart and is returned unchanged.
func Abs[T constraints.Signed](value T) T {
	if value < 0 {
		return -value
	}
	return value
}

// FormatAmount renders a whole-unit amount grouping every three digits with
// the thousand separator.
func FormatAmount(value int64, thousand string) string {
	isNegative := value < 0
	// uint64 holds the magnitude of math.MinInt64 as well
	magnitude := uint64(value)
	if isNegative {
		magnitude = -magnitude
	}

	var result string
	for magnitude >= thousandValue {
		result = fmt.Sprintf("%s%03d%s", thousand, magnitude%thousandValue, result)
		magnitude /= thousandValue
	}

	if isNegative {
		return fmt.Sprintf("-%d%s", magnitude, result)
	}

	return fmt.Sprintf("%d%s", magnitude, result)
}

// FormatMoney prefixes the formatted amount with the currency symbol.
func FormatMoney(value int64, currency string) string {
	if currency == "" {
		return FormatAmount(value, ",")
	}
	return currency + FormatAmount(value, ",")
}

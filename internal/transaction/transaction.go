package transaction

import (
	"fmt"
	"time"
)

// DateLayout is the on-disk and user facing date format.
const DateLayout = "2006-01-02"

type Type int

const (
	ChargeType Type = iota
	IncomeType
)

func (t Type) String() string {
	if t == IncomeType {
		return "Income"
	}
	return "Expense"
}

// Transaction is a single income or expense event. It is immutable once built
// with New.
type Transaction struct {
	amount   int64
	category string
	date     time.Time
	isIncome bool
}

func New(amount int64, category string, date time.Time, isIncome bool) Transaction {
	return Transaction{
		amount:   amount,
		category: category,
		date:     truncateToDay(date),
		isIncome: isIncome,
	}
}

func (t Transaction) Amount() int64 {
	return t.amount
}

func (t Transaction) Category() string {
	return t.category
}

func (t Transaction) Date() time.Time {
	return t.date
}

func (t Transaction) IsIncome() bool {
	return t.isIncome
}

func (t Transaction) Type() Type {
	if t.isIncome {
		return IncomeType
	}
	return ChargeType
}

func (t Transaction) Equal(other Transaction) bool {
	return t.amount == other.amount &&
		t.category == other.category &&
		t.date.Equal(other.date) &&
		t.isIncome == other.isIncome
}

func (t Transaction) String() string {
	return fmt.Sprintf("%s %s %s %d", t.date.Format(DateLayout), t.Type(), t.category, t.amount)
}

// ParseDate parses a YYYY-MM-DD calendar date.
func ParseDate(value string) (time.Time, error) {
	d, err := time.Parse(DateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD: %w", value, err)
	}
	return d, nil
}

// truncateToDay drops the time component, keeping the calendar date as seen in
// the original location.
func truncateToDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

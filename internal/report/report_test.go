package report

import (
	"bytes"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/GustavoCaso/ledger/internal/store"
	"github.com/GustavoCaso/ledger/internal/transaction"
	"github.com/GustavoCaso/ledger/internal/util"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func testStore() *store.Store {
	return store.New(
		transaction.New(1000, "Salary", date(2024, time.June, 1), true),
		transaction.New(500, "Groceries", date(2024, time.June, 5), false),
		transaction.New(100, "Groceries", date(2024, time.June, 20), false),
		transaction.New(300, "rent, utilities", date(2024, time.June, 2), false),
		transaction.New(9999, "Salary", date(2024, time.May, 1), true),
	)
}

func TestMonthly(t *testing.T) {
	r := Monthly(date(2024, time.June, 15), testStore().All(), "Rs.")

	if r.Title != "June 2024" {
		t.Errorf("Title = %q, want %q", r.Title, "June 2024")
	}
	if r.Income != 1000 || r.Expense != 900 || r.Balance != 100 {
		t.Errorf("totals = %d/%d/%d, want 1000/900/100", r.Income, r.Expense, r.Balance)
	}
	if r.SavingsPercentage != 10 {
		t.Errorf("SavingsPercentage = %v, want 10", r.SavingsPercentage)
	}
	if r.AverageSpendingPerDay != 30 {
		t.Errorf("AverageSpendingPerDay = %d, want 30", r.AverageSpendingPerDay)
	}

	var names []string
	for _, c := range r.Categories {
		names = append(names, c.Name)
	}
	want := []string{"Salary", "Groceries", "rent, utilities"}
	if !slices.Equal(names, want) {
		t.Fatalf("categories = %v, want %v", names, want)
	}

	groceries := r.Categories[1]
	if groceries.Amount != 600 || groceries.Count != 2 {
		t.Errorf("Groceries = %+v, want amount 600 and count 2", groceries)
	}
	if groceries.Type != transaction.ChargeType {
		t.Errorf("Groceries type = %v, want %v", groceries.Type, transaction.ChargeType)
	}
	if int(groceries.PercentageOfTotal) != 66 {
		t.Errorf("Groceries percentage = %v, want ~66.67", groceries.PercentageOfTotal)
	}
	if r.Categories[0].PercentageOfTotal != 100 {
		t.Errorf("Salary percentage = %v, want 100", r.Categories[0].PercentageOfTotal)
	}
}

func TestMonthlySameNameDifferentType(t *testing.T) {
	s := store.New(
		transaction.New(50, "Refund", date(2024, time.June, 1), true),
		transaction.New(20, "Refund", date(2024, time.June, 2), false),
	)

	r := Monthly(date(2024, time.June, 15), s.All(), "")
	if len(r.Categories) != 2 {
		t.Fatalf("expected income and expense categories to stay apart, got %+v", r.Categories)
	}
}

func TestMonthlyEmpty(t *testing.T) {
	r := Monthly(date(2024, time.June, 15), store.New().All(), "Rs.")

	if r.Income != 0 || r.Expense != 0 || r.Balance != 0 {
		t.Errorf("expected zero totals, got %d/%d/%d", r.Income, r.Expense, r.Balance)
	}
	if r.SavingsPercentage != 0 {
		t.Errorf("SavingsPercentage = %v, want 0", r.SavingsPercentage)
	}
	if len(r.Categories) != 0 {
		t.Errorf("expected no categories, got %v", r.Categories)
	}
}

func TestRender(t *testing.T) {
	util.DisableColor()

	var buf bytes.Buffer
	err := Render(&buf, Monthly(date(2024, time.June, 15), testStore().All(), "Rs."))
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	output := buf.String()
	for _, want := range []string{
		"--- Monthly Summary: June 2024 ---",
		"Total Income: Rs.1,000",
		"Total Expense: Rs.900",
		"Net Balance: Rs.100",
		"Savings: 10.00%",
		"Income Salary: Rs.1,000 (1) 100.00%",
		"Expense Groceries: Rs.600 (2) 66.67%",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("expected output to contain %q, got:\n%s", want, output)
		}
	}
}

func TestRenderEmpty(t *testing.T) {
	util.DisableColor()

	var buf bytes.Buffer
	if err := Render(&buf, Monthly(date(2024, time.June, 15), store.New().All(), "Rs.")); err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	output := buf.String()
	if !strings.Contains(output, "Net Balance: Rs.0") {
		t.Errorf("expected zero balance, got:\n%s", output)
	}
	if strings.Contains(output, "By category") {
		t.Errorf("expected no category section, got:\n%s", output)
	}
}

func TestRenderTemplateMissing(t *testing.T) {
	if err := renderTemplate(&bytes.Buffer{}, "missing.tmpl", nil); err == nil {
		t.Error("expected error for missing template")
	}
}

func TestRenderTable(t *testing.T) {
	var buf bytes.Buffer
	count := RenderTable(&buf, testStore().All(), "Rs.")

	if count != 5 {
		t.Errorf("RenderTable() count = %d, want 5", count)
	}

	output := buf.String()
	for _, want := range []string{"2024-06-01", "rent, utilities", "Rs.9,999", "Expense", "Income"} {
		if !strings.Contains(output, want) {
			t.Errorf("expected table to contain %q, got:\n%s", want, output)
		}
	}

	// insertion order, not date order
	if strings.Index(output, "Groceries") > strings.Index(output, "rent, utilities") {
		t.Errorf("expected rows in insertion order, got:\n%s", output)
	}
}

package importutil

import (
	"bytes"
	"errors"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/GustavoCaso/ledger/internal/codec"
	"github.com/GustavoCaso/ledger/internal/export"
	"github.com/GustavoCaso/ledger/internal/store"
	"github.com/GustavoCaso/ledger/internal/transaction"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestImportCSV(t *testing.T) {
	tests := []struct {
		name string
		data string
		want []transaction.Transaction
	}{
		{
			name: "export format with header",
			data: "Date,Category,Type,Amount\n" +
				"2024-06-01,Salary,income,1000\n" +
				"2024-06-05,\"Food, drinks\",expense,500\n",
			want: []transaction.Transaction{
				transaction.New(1000, "Salary", date(2024, time.June, 1), true),
				transaction.New(500, "Food, drinks", date(2024, time.June, 5), false),
			},
		},
		{
			name: "no header and signed amounts",
			data: "2024-06-01,Salary,,1000\n2024-06-05,Rent,,-700\n",
			want: []transaction.Transaction{
				transaction.New(1000, "Salary", date(2024, time.June, 1), true),
				transaction.New(700, "Rent", date(2024, time.June, 5), false),
			},
		},
		{
			name: "explicit type keeps the sign",
			data: "2024-06-01,Refund,expense,-200\n2024-06-02,Correction,income,-5\n",
			want: []transaction.Transaction{
				transaction.New(-200, "Refund", date(2024, time.June, 1), false),
				transaction.New(-5, "Correction", date(2024, time.June, 2), true),
			},
		},
		{
			name: "type is case insensitive",
			data: "2024-06-01, Bonus, INCOME, 50\n",
			want: []transaction.Transaction{
				transaction.New(50, "Bonus", date(2024, time.June, 1), true),
			},
		},
		{
			name: "only header",
			data: "Date,Category,Type,Amount\n",
			want: []transaction.Transaction{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Import("bank.csv", strings.NewReader(tt.data))
			if err != nil {
				t.Fatalf("Import() error = %v", err)
			}

			if len(got) != len(tt.want) {
				t.Fatalf("Import() returned %d transactions, want %d", len(got), len(tt.want))
			}
			for i := range got {
				if !got[i].Equal(tt.want[i]) {
					t.Errorf("transaction %d = %s, want %s", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestImportCSVErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "invalid date", data: "01/06/2024,Salary,income,1000\n"},
		{name: "invalid amount", data: "2024-06-01,Salary,income,10.50\n"},
		{name: "invalid type", data: "2024-06-01,Salary,transfer,10\n"},
		{name: "wrong column count", data: "2024-06-01,Salary,10\n"},
		{name: "signed amount out of range", data: "2024-06-01,Salary,,-9223372036854775808\n"},
		{name: "error after valid rows", data: "2024-06-01,Salary,income,10\n2024-13-01,Rent,expense,5\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Import("bank.csv", strings.NewReader(tt.data))
			if err == nil {
				t.Fatal("Import() expected error")
			}
			if got != nil {
				t.Errorf("Import() returned %d transactions on error", len(got))
			}
		})
	}
}

func TestImportExportedCSV(t *testing.T) {
	original := []transaction.Transaction{
		transaction.New(1000, "Salary", date(2024, time.June, 1), true),
		transaction.New(-200, "Refund", date(2024, time.June, 3), false),
		transaction.New(300, "Food, drinks", date(2024, time.June, 5), false),
	}

	var buf bytes.Buffer
	if err := export.CSV(&buf, slices.Values(original)); err != nil {
		t.Fatalf("CSV() error = %v", err)
	}

	got, err := Import("ledger.csv", &buf)
	if err != nil {
		t.Fatalf("Import() error = %v", err)
	}

	if len(got) != len(original) {
		t.Fatalf("Import() returned %d transactions, want %d", len(got), len(original))
	}
	for i := range got {
		if !got[i].Equal(original[i]) {
			t.Errorf("transaction %d = %s, want %s", i, got[i], original[i])
		}
	}

	asOf := date(2024, time.June, 30)
	want := store.Summarize(slices.Values(original), asOf)
	if summary := store.Summarize(slices.Values(got), asOf); summary != want {
		t.Errorf("summary after import = %+v, want %+v", summary, want)
	}
}

func TestImportJSON(t *testing.T) {
	data := `[{"Amount":42,"Category":"Gift","Date":"2024-06-10","IsIncome":true}]`

	got, err := Import("other.JSON", strings.NewReader(data))
	if err != nil {
		t.Fatalf("Import() error = %v", err)
	}

	want := transaction.New(42, "Gift", date(2024, time.June, 10), true)
	if len(got) != 1 || !got[0].Equal(want) {
		t.Errorf("Import() = %v, want [%s]", got, want)
	}
}

func TestImportJSONMissingDate(t *testing.T) {
	_, err := Import("other.json", strings.NewReader(`[{"Amount":42}]`))
	if !errors.Is(err, codec.ErrMissingDate) {
		t.Errorf("Import() error = %v, want %v", err, codec.ErrMissingDate)
	}
}

func TestImportUnsupportedFormat(t *testing.T) {
	_, err := Import("bank.xlsx", strings.NewReader(""))
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("Import() error = %v, want %v", err, ErrUnsupportedFormat)
	}
}

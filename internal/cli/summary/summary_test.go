package summary

import (
	"bytes"
	"context"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/GustavoCaso/ledger/internal/cli"
	"github.com/GustavoCaso/ledger/internal/config"
	"github.com/GustavoCaso/ledger/internal/testutil"
	"github.com/GustavoCaso/ledger/internal/util"
)

func TestNewCommand(t *testing.T) {
	if NewCommand() == nil {
		t.Error("NewCommand() returned nil")
	}
}

func TestDescription(t *testing.T) {
	want := "Displays income, expense and balance for a calendar month"
	if desc := NewCommand().Description(); desc != want {
		t.Errorf("Description() = %v, want %v", desc, want)
	}
}

func TestSetFlags(t *testing.T) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	NewCommand().SetFlags(fs)

	if fs.Lookup("f") == nil {
		t.Error("File flag not registered")
	}
	if fs.Lookup("month") == nil {
		t.Error("Month flag not registered")
	}
}

func TestRun(t *testing.T) {
	util.DisableColor()

	path := filepath.Join(t.TempDir(), "data.json")
	content := `[{"Amount":1000,"Category":"Salary","Date":"2024-06-01","IsIncome":true},` +
		`{"Amount":500,"Category":"Groceries","Date":"2024-06-05","IsIncome":false},` +
		`{"Amount":300,"Category":"Groceries","Date":"2024-05-20","IsIncome":false}]`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to seed file: %v", err)
	}

	tests := []struct {
		name  string
		month string
		want  []string
	}{
		{
			name:  "june",
			month: "2024-06",
			want:  []string{"June 2024", "Total Income: Rs.1,000", "Total Expense: Rs.500", "Net Balance: Rs.500"},
		},
		{
			name:  "may",
			month: "2024-05",
			want:  []string{"May 2024", "Total Income: Rs.0", "Total Expense: Rs.300", "Net Balance: Rs.-300"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := NewCommand()
			fs := flag.NewFlagSet("summary", flag.ContinueOnError)
			cmd.SetFlags(fs)
			if err := fs.Parse([]string{"-f", path, "-month", tt.month}); err != nil {
				t.Fatalf("failed to parse flags: %v", err)
			}

			var out bytes.Buffer
			env := cli.Env{Config: &config.Config{Currency: "Rs."}, Logger: testutil.TestLogger(t), Out: &out}
			if err := cmd.Run(context.Background(), env); err != nil {
				t.Fatalf("Run() error = %v", err)
			}

			for _, want := range tt.want {
				if !strings.Contains(out.String(), want) {
					t.Errorf("expected output to contain %q, got:\n%s", want, out.String())
				}
			}
		})
	}
}

func TestRunErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "invalid month", args: []string{"-month", "June"}},
		{name: "missing file", args: []string{"-f", filepath.Join(t.TempDir(), "missing.json")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := NewCommand()
			fs := flag.NewFlagSet("summary", flag.ContinueOnError)
			cmd.SetFlags(fs)
			if err := fs.Parse(tt.args); err != nil {
				t.Fatalf("failed to parse flags: %v", err)
			}

			var out bytes.Buffer
			env := cli.Env{
				Config: &config.Config{DataFile: filepath.Join(t.TempDir(), "none.json"), Currency: "Rs."},
				Logger: testutil.TestLogger(t),
				Out:    &out,
			}
			if err := cmd.Run(context.Background(), env); err == nil {
				t.Error("Run() expected error")
			}
		})
	}
}

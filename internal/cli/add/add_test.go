package add

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
)

func TestNewCommand(t *testing.T) {
	cmd := NewCommand()
	if cmd == nil {
		t.Error("NewCommand() returned nil")
	}
}

func TestDescription(t *testing.T) {
	want := "Records a transaction and saves the data file"
	if desc := NewCommand().Description(); desc != want {
		t.Errorf("Description() = %v, want %v", desc, want)
	}
}

func TestSetFlags(t *testing.T) {
	cmd := NewCommand()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cmd.SetFlags(fs)

	for _, name := range []string{"f", "amount", "category", "date", "income"} {
		if fs.Lookup(name) == nil {
			t.Errorf("%s flag not registered", name)
		}
	}
}

func runAdd(t *testing.T, path string, args ...string) (string, error) {
	t.Helper()

	cmd := NewCommand()
	fs := flag.NewFlagSet("add", flag.ContinueOnError)
	cmd.SetFlags(fs)
	if err := fs.Parse(append([]string{"-f", path}, args...)); err != nil {
		t.Fatalf("failed to parse flags: %v", err)
	}

	var out bytes.Buffer
	env := cli.Env{
		Config: &config.Config{DataFile: "unused.json", Currency: "Rs."},
		Logger: testutil.TestLogger(t),
		Out:    &out,
	}
	err := cmd.Run(context.Background(), env)
	return out.String(), err
}

func TestRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")

	if _, err := runAdd(t, path, "-amount", "1000", "-category", "Salary", "-date", "2024-06-01", "-income"); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	output, err := runAdd(t, path, "-amount", "500", "-category", "Food, drinks", "-date", "2024-06-05")
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if !strings.Contains(output, "Transaction Saved.") {
		t.Errorf("expected confirmation, got %q", output)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read data file: %v", err)
	}
	want := `[{"Amount":1000,"Category":"Salary","Date":"2024-06-01","IsIncome":true},` +
		`{"Amount":500,"Category":"Food, drinks","Date":"2024-06-05","IsIncome":false}]`
	if string(content) != want {
		t.Errorf("data file = %s, want %s", content, want)
	}
}

func TestRunValidation(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "missing category", args: []string{"-amount", "10"}},
		{name: "invalid date", args: []string{"-amount", "10", "-category", "Tea", "-date", "06/01/2024"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "data.json")
			if _, err := runAdd(t, path, tt.args...); err == nil {
				t.Error("Run() expected error")
			}
			if _, err := os.Stat(path); !os.IsNotExist(err) {
				t.Error("data file should not be written")
			}
		})
	}
}

func TestRunMalformedFileIsNotOverwritten(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	original := `[{"Amount":1,"Category":"x"}]`
	if err := os.WriteFile(path, []byte(original), 0o600); err != nil {
		t.Fatalf("failed to seed file: %v", err)
	}

	if _, err := runAdd(t, path, "-amount", "10", "-category", "Tea"); err == nil {
		t.Fatal("Run() expected error")
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read data file: %v", err)
	}
	if string(content) != original {
		t.Errorf("data file was modified: %s", content)
	}
}

package export

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/GustavoCaso/ledger/internal/cli"
	"github.com/GustavoCaso/ledger/internal/export"
)

type exportCommand struct {
	file   string
	output string
}

func NewCommand() cli.Command {
	return &exportCommand{}
}

func (c *exportCommand) Description() string {
	return "Exports the transactions as CSV"
}

func (c *exportCommand) SetFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.file, "f", "", "data file to read (defaults to the configured data file)")
	fs.StringVar(&c.output, "o", "", "CSV file to write, defaults to standard output")
}

func (c *exportCommand) Run(ctx context.Context, env cli.Env) error {
	// Load messages go to the log so they never mix with CSV on standard output.
	quiet := env
	quiet.Out = io.Discard

	sess, err := cli.NewSession(ctx, quiet, cli.DataFile(c.file, env.Config), false)
	if err != nil {
		return err
	}

	if c.output == "" {
		return export.CSV(env.Out, sess.Transactions())
	}

	file, err := os.Create(c.output)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", c.output, err)
	}

	if err = export.CSV(file, sess.Transactions()); err != nil {
		file.Close()
		return err
	}

	env.Logger.Info("Exported transactions", "path", c.output, "count", sess.Len())
	return file.Close()
}

package importcmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/GustavoCaso/ledger/internal/cli"
	importUtil "github.com/GustavoCaso/ledger/internal/import"
)

type importCommand struct {
	file       string
	importFile string
}

func NewCommand() cli.Command {
	return &importCommand{}
}

func (c *importCommand) Description() string {
	return "Imports transactions from a CSV or ledger JSON file into the data file"
}

func (c *importCommand) SetFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.file, "f", "", "data file to update (defaults to the configured data file)")
	fs.StringVar(&c.importFile, "i", "", "file to import")
}

func (c *importCommand) Run(ctx context.Context, env cli.Env) error {
	if c.importFile == "" {
		return errors.New("you must provide a file to import")
	}

	file, err := os.Open(c.importFile)
	if err != nil {
		return err
	}
	defer file.Close()

	transactions, err := importUtil.Import(c.importFile, file)
	if err != nil {
		return fmt.Errorf("unable to import transactions due to error: %w", err)
	}

	path := cli.DataFile(c.file, env.Config)
	sess, err := cli.NewSession(ctx, env, path, true)
	if err != nil {
		return err
	}

	sess.Import(transactions)

	return sess.Save(ctx, path)
}

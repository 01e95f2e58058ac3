package add

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"time"

	"github.com/GustavoCaso/ledger/internal/cli"
	"github.com/GustavoCaso/ledger/internal/transaction"
)

type addCommand struct {
	file     string
	amount   int64
	category string
	date     string
	income   bool
}

func NewCommand() cli.Command {
	return &addCommand{}
}

func (c *addCommand) Description() string {
	return "Records a transaction and saves the data file"
}

func (c *addCommand) SetFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.file, "f", "", "data file to update (defaults to the configured data file)")
	fs.Int64Var(&c.amount, "amount", 0, "amount in whole currency units")
	fs.StringVar(&c.category, "category", "", "category of the transaction")
	fs.StringVar(&c.date, "date", "", "date of the transaction (YYYY-MM-DD), defaults to today")
	fs.BoolVar(&c.income, "income", false, "record the transaction as income")
}

func (c *addCommand) Run(ctx context.Context, env cli.Env) error {
	if c.category == "" {
		return errors.New("category is required")
	}

	date := time.Now()
	if c.date != "" {
		parsed, err := transaction.ParseDate(c.date)
		if err != nil {
			return fmt.Errorf("invalid date: %w", err)
		}
		date = parsed
	}

	path := cli.DataFile(c.file, env.Config)
	sess, err := cli.NewSession(ctx, env, path, true)
	if err != nil {
		return err
	}

	sess.AddTransaction(c.amount, c.category, date, c.income)

	return sess.Save(ctx, path)
}

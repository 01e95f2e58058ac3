package summary

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/GustavoCaso/ledger/internal/cli"
	"github.com/GustavoCaso/ledger/internal/session"
)

const monthLayout = "2006-01"

type summaryCommand struct {
	file  string
	month string
}

func NewCommand() cli.Command {
	return &summaryCommand{}
}

func (c *summaryCommand) Description() string {
	return "Displays income, expense and balance for a calendar month"
}

func (c *summaryCommand) SetFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.file, "f", "", "data file to read (defaults to the configured data file)")
	fs.StringVar(&c.month, "month", "", "month to summarize (YYYY-MM), defaults to the current month")
}

func (c *summaryCommand) Run(ctx context.Context, env cli.Env) error {
	asOf := time.Now()
	if c.month != "" {
		parsed, err := time.Parse(monthLayout, c.month)
		if err != nil {
			return fmt.Errorf("invalid month %q: %w", c.month, err)
		}
		asOf = parsed
	}

	sess, err := cli.NewSession(ctx, env, cli.DataFile(c.file, env.Config), false,
		session.WithClock(func() time.Time { return asOf }))
	if err != nil {
		return err
	}

	return sess.ViewMonthlySummary()
}

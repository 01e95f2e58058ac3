package list

import (
	"context"
	"flag"
	"slices"

	"github.com/GustavoCaso/ledger/internal/cli"
	"github.com/GustavoCaso/ledger/internal/filter"
	"github.com/GustavoCaso/ledger/internal/report"
)

type listCommand struct {
	file   string
	params filter.Params
}

func NewCommand() cli.Command {
	return &listCommand{}
}

func (c *listCommand) Description() string {
	return "Lists the recorded transactions in insertion order, optionally filtered and sorted"
}

func (c *listCommand) SetFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.file, "f", "", "data file to read (defaults to the configured data file)")
	fs.StringVar(&c.params.Category, "category", "", "only categories containing this text")
	fs.StringVar(&c.params.Type, "type", "", "only income or expense")
	fs.StringVar(&c.params.AmountMin, "amount-min", "", "minimum amount (inclusive)")
	fs.StringVar(&c.params.AmountMax, "amount-max", "", "maximum amount (inclusive)")
	fs.StringVar(&c.params.DateFrom, "from", "", "first date (YYYY-MM-DD, inclusive)")
	fs.StringVar(&c.params.DateTo, "to", "", "last date (YYYY-MM-DD, inclusive)")
	fs.StringVar(&c.params.Sort, "sort", "", "sort as field:direction, field is insertion, date or amount")
}

func (c *listCommand) Run(ctx context.Context, env cli.Env) error {
	transactionFilter, sort, err := filter.Parse(c.params)
	if err != nil {
		return err
	}

	sess, err := cli.NewSession(ctx, env, cli.DataFile(c.file, env.Config), false)
	if err != nil {
		return err
	}

	if c.params == (filter.Params{}) {
		sess.ViewAllTransactions()
		return nil
	}

	transactions := sort.Sort(transactionFilter.Apply(sess.Transactions()))
	report.RenderTable(env.Out, slices.Values(transactions), env.Config.Currency)
	return nil
}

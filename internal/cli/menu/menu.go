package menu

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/GustavoCaso/ledger/internal/cli"
	"github.com/GustavoCaso/ledger/internal/session"
	"github.com/GustavoCaso/ledger/internal/transaction"
)

var errInputClosed = errors.New("input closed")

const options = `
1. Add Transaction
2. View Monthly Summary
3. View All Transactions
4. Save to File
5. Load from File
6. Exit`

type menuCommand struct {
	file string
}

func NewCommand() cli.Command {
	return &menuCommand{}
}

func (c *menuCommand) Description() string {
	return "Starts the interactive ledger menu"
}

func (c *menuCommand) SetFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.file, "f", "", "data file to load on start and suggest for save and load")
}

func (c *menuCommand) Run(ctx context.Context, env cli.Env) error {
	sess := session.New(env.Out, env.Logger, env.Config.Currency)

	// A failed load is reported by the session and the menu starts empty.
	if c.file != "" {
		_ = sess.Load(ctx, c.file)
	}

	return Loop(ctx, sess, env.In, env.Out, cli.DataFile(c.file, env.Config))
}

type prompter struct {
	scanner *bufio.Scanner
	out     io.Writer
}

// ask prints question and reads one line. It returns errInputClosed on EOF.
func (p prompter) ask(question string) (string, error) {
	fmt.Fprint(p.out, question)
	if !p.scanner.Scan() {
		if err := p.scanner.Err(); err != nil {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
		return "", errInputClosed
	}
	return strings.TrimSpace(p.scanner.Text()), nil
}

// Loop runs the menu until the user exits or in is exhausted. defaultFile is
// used when the user answers a file prompt with an empty line.
func Loop(ctx context.Context, sess *session.Session, in io.Reader, out io.Writer, defaultFile string) error {
	p := prompter{scanner: bufio.NewScanner(in), out: out}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		fmt.Fprintln(out, options)
		choice, err := p.ask("Enter your choice: ")
		if err != nil {
			return exit(sess, err)
		}

		switch choice {
		case "1":
			err = addTransaction(p, sess)
		case "2":
			// rendering failures are logged by the session
			_ = sess.ViewMonthlySummary()
		case "3":
			sess.ViewAllTransactions()
		case "4":
			var path string
			path, err = askFile(p, "Enter file name to save (e.g., data.json):\n", defaultFile)
			if err == nil {
				_ = sess.Save(ctx, path)
			}
		case "5":
			var path string
			path, err = askFile(p, "Enter file name to load (e.g., data.json):\n", defaultFile)
			if err == nil {
				_ = sess.Load(ctx, path)
			}
		case "6":
			sess.Exit()
			return nil
		default:
			fmt.Fprintln(out, "Invalid option.")
		}

		if err != nil {
			return exit(sess, err)
		}
	}
}

func exit(sess *session.Session, err error) error {
	sess.Exit()
	if errors.Is(err, errInputClosed) {
		return nil
	}
	return err
}

func askFile(p prompter, question, defaultFile string) (string, error) {
	path, err := p.ask(question)
	if err != nil {
		return "", err
	}
	if path == "" {
		return defaultFile, nil
	}
	return path, nil
}

// addTransaction prompts for every field. Invalid values abort the add and
// return to the menu without touching the session.
func addTransaction(p prompter, sess *session.Session) error {
	rawAmount, err := p.ask("Enter Amount:\n")
	if err != nil {
		return err
	}
	amount, err := strconv.ParseInt(rawAmount, 10, 64)
	if err != nil {
		fmt.Fprintf(p.out, "Invalid amount %q, transaction not saved.\n", rawAmount)
		return nil
	}

	category, err := p.ask("Enter Category:\n")
	if err != nil {
		return err
	}

	answer, err := p.ask("Is Transaction Income? (yes / no):\n")
	if err != nil {
		return err
	}
	isIncome := strings.EqualFold(answer, "yes")

	rawDate, err := p.ask("Enter Date (yyyy-mm-dd):\n")
	if err != nil {
		return err
	}
	date, err := transaction.ParseDate(rawDate)
	if err != nil {
		fmt.Fprintf(p.out, "Invalid date %q, transaction not saved.\n", rawDate)
		return nil
	}

	sess.AddTransaction(amount, category, date, isIncome)
	return nil
}

package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sort"
	"strings"

	"github.com/GustavoCaso/ledger/internal/cli"
	"github.com/GustavoCaso/ledger/internal/cli/add"
	exportCmd "github.com/GustavoCaso/ledger/internal/cli/export"
	importCmd "github.com/GustavoCaso/ledger/internal/cli/import"
	"github.com/GustavoCaso/ledger/internal/cli/list"
	"github.com/GustavoCaso/ledger/internal/cli/menu"
	"github.com/GustavoCaso/ledger/internal/cli/summary"
	"github.com/GustavoCaso/ledger/internal/config"
	"github.com/GustavoCaso/ledger/internal/logger"
	"github.com/GustavoCaso/ledger/internal/util"
)

const defaultCommand = "menu"

var configPath string

var subcommands = map[string]cli.Command{
	"menu":    menu.NewCommand(),
	"add":     add.NewCommand(),
	"summary": summary.NewCommand(),
	"list":    list.NewCommand(),
	"export":  exportCmd.NewCommand(),
	"import":  importCmd.NewCommand(),
}

var subcommandsFlagSets = map[string]*flag.FlagSet{}

func main() {
	for c, cLogic := range subcommands {
		fset := flag.NewFlagSet(c, flag.ExitOnError)
		fset.StringVar(&configPath, "c", "ledger.toml", "Configuration file")

		cLogic.SetFlags(fset)

		subcommandsFlagSets[c] = fset
	}

	commandName := defaultCommand
	args := []string{}
	if len(os.Args) > 1 {
		commandName = os.Args[1]
		args = os.Args[2:]
	}

	command, ok := subcommands[commandName]
	if !ok {
		if strings.Contains(commandName, "help") {
			printHelp(os.Stdout)

			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "unsupported command %s.\nUse 'help' command to print information about supported commands\n", commandName)
		os.Exit(1)
	}

	// errors are ignored, flag.ExitOnError
	_ = subcommandsFlagSets[commandName].Parse(args)

	if err := config.LoadDotEnv(".env"); err != nil {
		fmt.Fprintf(os.Stderr, "Unable to load environment file. %s\n", err.Error())
		os.Exit(1)
	}

	conf, err := config.Parse(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Unable to parse the configuration. %s\n", err.Error())
		os.Exit(1)
	}

	if conf.NoColor {
		util.DisableColor()
	}

	appLogger := logger.New(conf.Logger).With("command", commandName)
	appLogger.Debug("Running command", "data_file", conf.DataFile)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	env := cli.Env{
		Config: conf,
		Logger: appLogger,
		In:     os.Stdin,
		Out:    os.Stdout,
	}

	if err = command.Run(ctx, env); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %s\n", commandName, err.Error())
		stop()
		appLogger.Fatal("Command failed", "error", err)
	}
}

func printHelp(out io.Writer) {
	printUsage(out)

	names := make([]string, 0, len(subcommands))
	for c := range subcommands {
		names = append(names, c)
	}
	sort.Strings(names)

	for _, c := range names {
		fmt.Fprintf(out, "subcommand <%s>: %s\n", c, subcommands[c].Description())
		fset := subcommandsFlagSets[c]
		fset.SetOutput(out)
		fset.PrintDefaults()
		fmt.Fprintln(out)
	}
}

func printUsage(out io.Writer) {
	fmt.Fprintf(out, "usage: ledger [subcommand] [flags]\n\nWithout a subcommand the interactive %s is started.\n\n", defaultCommand)
}

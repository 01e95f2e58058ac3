package cli

import (
	"context"
	"errors"
	"flag"
	"io"
	"io/fs"
	"os"

	"github.com/GustavoCaso/ledger/internal/config"
	"github.com/GustavoCaso/ledger/internal/logger"
	"github.com/GustavoCaso/ledger/internal/session"
)

// Env carries what every subcommand needs to run.
type Env struct {
	Config *config.Config
	Logger *logger.Logger
	In     io.Reader
	Out    io.Writer
}

type Command interface {
	SetFlags(fset *flag.FlagSet)
	Description() string
	Run(ctx context.Context, env Env) error
}

// NewSession builds a session for env and loads path into it. A missing file
// leaves the session empty when allowMissing is set.
func NewSession(ctx context.Context, env Env, path string, allowMissing bool, opts ...session.Option) (*session.Session, error) {
	sess := session.New(env.Out, env.Logger, env.Config.Currency, opts...)

	if allowMissing {
		if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
			env.Logger.Debug("Data file not found, starting empty", "path", path)
			return sess, nil
		}
	}

	if err := sess.Load(ctx, path); err != nil {
		return nil, err
	}

	return sess, nil
}

// DataFile returns flagValue when set and the configured data file otherwise.
func DataFile(flagValue string, conf *config.Config) string {
	if flagValue != "" {
		return flagValue
	}
	return conf.DataFile
}

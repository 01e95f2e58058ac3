package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/GustavoCaso/ledger/internal/logger"
)

type Config struct {
	DataFile string        `toml:"data_file"`
	Currency string        `toml:"currency"`
	NoColor  bool          `toml:"no_color"`
	Logger   logger.Config `toml:"logger"`
}

const (
	defaultDataFile  = "transactions.json"
	defaultCurrency  = "Rs."
	defaultLogLevel  = logger.LevelWarn
	defaultLogFormat = logger.FormatText
	defaultLogOutput = "stderr"
)

func defaults() *Config {
	return &Config{
		DataFile: defaultDataFile,
		Currency: defaultCurrency,
		Logger: logger.Config{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
			Output: defaultLogOutput,
		},
	}
}

// Parse reads the TOML file at path on top of the defaults and then applies
// LEDGER_* environment overrides. A missing file is not an error.
func Parse(path string) (*Config, error) {
	conf := defaults()

	content, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("failed to read configuration %s: %w", path, err)
	default:
		if err = toml.Unmarshal(content, conf); err != nil {
			return nil, fmt.Errorf("failed to parse configuration %s: %w", path, err)
		}
	}

	if err = conf.parseEnv(); err != nil {
		return nil, err
	}

	return conf, nil
}

func (c *Config) parseEnv() error {
	if dataFile := os.Getenv("LEDGER_DATA_FILE"); dataFile != "" {
		c.DataFile = dataFile
	}

	if currency := os.Getenv("LEDGER_CURRENCY"); currency != "" {
		c.Currency = currency
	}

	if noColor := os.Getenv("LEDGER_NO_COLOR"); noColor != "" {
		value, err := strconv.ParseBool(noColor)
		if err != nil {
			return fmt.Errorf("invalid LEDGER_NO_COLOR %q: %w", noColor, err)
		}
		c.NoColor = value
	}

	if level := os.Getenv("LEDGER_LOG_LEVEL"); level != "" {
		c.Logger.Level = logger.Level(level)
	}

	if format := os.Getenv("LEDGER_LOG_FORMAT"); format != "" {
		c.Logger.Format = logger.Format(format)
	}

	if output := os.Getenv("LEDGER_LOG_OUTPUT"); output != "" {
		c.Logger.Output = output
	}

	return nil
}

// LoadDotEnv exports the variables of a .env file into the process
// environment. Variables already set win. A missing file is ignored.
func LoadDotEnv(path string) error {
	err := godotenv.Load(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

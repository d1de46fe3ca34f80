package cmd

import (
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/rustyeddy/teller/config"
)

var rootCmd = &cobra.Command{
	Use:   "teller",
	Short: "A console bank teller for a single account",
	Long: `Teller runs an interactive console session against one bank account.

It provides:
  - Deposits and withdrawals with a daily withdrawal count limit
  - A per-withdrawal ceiling and a proportional withdrawal fee
  - A statement of every transaction in the session
  - An optional CSV or SQLite journal that can be queried afterwards

Running teller without a subcommand starts a session.`,
	SilenceUsage: true,
	RunE:         runSession,
}

var (
	cfgFile  string
	logLevel string
)

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (YAML or JSON); defaults are used when empty")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error (overrides config)")
}

// loadConfig reads path, or returns defaults when path is empty.
func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	cfg, err := config.LoadFromFile(path)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

// newLogger builds the console logger on w. The --log-level flag wins over
// the config file.
func newLogger(w io.Writer, cfg *config.Config) (zerolog.Logger, error) {
	lc := cfg.Log
	if logLevel != "" {
		lc.Level = logLevel
	}
	lvl, err := lc.ParseLevel()
	if err != nil {
		return zerolog.Nop(), err
	}
	out := zerolog.ConsoleWriter{Out: w, TimeFormat: time.TimeOnly}
	return zerolog.New(out).Level(lvl).With().Timestamp().Logger(), nil
}

package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/teller/journal"
	"github.com/rustyeddy/teller/ledger"
	"github.com/rustyeddy/teller/session"
)

var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Start an interactive teller session",
	Long: `Open a single account and serve the teller menu on stdin/stdout.

The session ends on quit, end of input or Ctrl-C. Accepted transactions are
written to the journal named in the config file, if any.

Example:
  teller session -f teller.yaml`,
	Args: cobra.NoArgs,
	RunE: runSession,
}

var sessionConfigPath string

func init() {
	rootCmd.AddCommand(sessionCmd)

	sessionCmd.Flags().StringVarP(&sessionConfigPath, "file", "f", "", "path to config file (overrides --config)")
}

func runSession(cmd *cobra.Command, args []string) error {
	path := cfgFile
	if sessionConfigPath != "" {
		path = sessionConfigPath
	}
	cfg, err := loadConfig(path)
	if err != nil {
		return err
	}

	log, err := newLogger(cmd.ErrOrStderr(), cfg)
	if err != nil {
		return fmt.Errorf("log level: %w", err)
	}

	j, err := journal.Open(cfg.Journal)
	if err != nil {
		return fmt.Errorf("open journal: %w", err)
	}
	defer func() {
		if err := j.Close(); err != nil {
			log.Error().Err(err).Msg("close journal")
		}
	}()

	acct := ledger.NewAccount(cfg.Account.Policy())
	log.Debug().
		Str("account", acct.ID()).
		Str("journal", cfg.Journal.Type).
		Msg("account opened")

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	s := session.New(acct, cmd.InOrStdin(), cmd.OutOrStdout(),
		session.WithJournal(j),
		session.WithLogger(log),
		session.WithCurrency(cfg.Display.Currency),
	)
	return s.Run(ctx)
}

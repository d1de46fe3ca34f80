package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/teller/journal"
	"github.com/rustyeddy/teller/pkg/id"
	"github.com/rustyeddy/teller/report"
)

var journalCmd = &cobra.Command{
	Use:   "journal",
	Short: "Query the transaction journal",
	Long: `Query and display transactions recorded in a SQLite journal.

Subcommands:
  list   - List recorded transactions, optionally for one account
  tx     - Get details of a specific transaction by ID
  today  - List transactions made today
  day    - List transactions made on a specific day

Examples:
  teller journal list --account 3f1c2d4e-...
  teller journal tx <tx-id>
  teller journal today
  teller journal day 2024-01-15`,
}

var journalListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recorded transactions",
	Args:  cobra.NoArgs,
	RunE:  runJournalList,
}

var journalTxCmd = &cobra.Command{
	Use:   "tx <tx-id>",
	Short: "Get details of a specific transaction",
	Args:  cobra.ExactArgs(1),
	RunE:  runJournalTx,
}

var journalTodayCmd = &cobra.Command{
	Use:   "today",
	Short: "List transactions made today",
	Args:  cobra.NoArgs,
	RunE:  runJournalToday,
}

var journalDayCmd = &cobra.Command{
	Use:   "day <YYYY-MM-DD>",
	Short: "List transactions made on a specific day",
	Args:  cobra.ExactArgs(1),
	RunE:  runJournalDay,
}

var (
	journalDBPath  string
	journalAccount string
)

func init() {
	rootCmd.AddCommand(journalCmd)
	journalCmd.AddCommand(journalListCmd)
	journalCmd.AddCommand(journalTxCmd)
	journalCmd.AddCommand(journalTodayCmd)
	journalCmd.AddCommand(journalDayCmd)

	journalCmd.PersistentFlags().StringVarP(&journalDBPath, "db", "d", "", "path to SQLite journal DB (default: journal.db_path from config, else ./teller.sqlite)")
	journalListCmd.Flags().StringVarP(&journalAccount, "account", "a", "", "only list transactions of this account ID")
}

// openJournal opens the SQLite journal and returns the display currency.
func openJournal() (*journal.SQLite, string, error) {
	cfg, err := loadConfig(cfgFile)
	if err != nil {
		return nil, "", err
	}

	path := journalDBPath
	if path == "" {
		path = cfg.Journal.DBPath
	}
	if path == "" {
		path = "./teller.sqlite"
	}

	j, err := journal.NewSQLite(path)
	if err != nil {
		return nil, "", fmt.Errorf("open db: %w", err)
	}
	return j, cfg.Display.Currency, nil
}

func runJournalList(cmd *cobra.Command, args []string) error {
	j, currency, err := openJournal()
	if err != nil {
		return err
	}
	defer j.Close()

	var recs []journal.Record
	if journalAccount != "" {
		recs, err = j.ListByAccount(journalAccount)
	} else {
		recs, err = j.List()
	}
	if err != nil {
		return fmt.Errorf("query transactions: %w", err)
	}

	fmt.Fprint(cmd.OutOrStdout(), report.FormatRecords(recs, currency))
	return nil
}

func runJournalTx(cmd *cobra.Command, args []string) error {
	j, _, err := openJournal()
	if err != nil {
		return err
	}
	defer j.Close()

	if _, err := id.Time(args[0]); err != nil {
		return fmt.Errorf("invalid transaction id %q: %w", args[0], err)
	}

	rec, err := j.GetTransaction(args[0])
	if err != nil {
		return fmt.Errorf("get transaction: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), report.FormatRecordOrg(rec))
	return nil
}

func runJournalToday(cmd *cobra.Command, args []string) error {
	loc := time.Local
	return listDay(cmd, loc, time.Now().In(loc).Format("2006-01-02"))
}

func runJournalDay(cmd *cobra.Command, args []string) error {
	return listDay(cmd, time.Local, args[0])
}

func listDay(cmd *cobra.Command, loc *time.Location, day string) error {
	start, end, err := dayBounds(loc, day)
	if err != nil {
		return fmt.Errorf("date: %w", err)
	}

	j, currency, err := openJournal()
	if err != nil {
		return err
	}
	defer j.Close()

	recs, err := j.ListBetween(start, end)
	if err != nil {
		return fmt.Errorf("query transactions: %w", err)
	}

	fmt.Fprint(cmd.OutOrStdout(), report.FormatRecords(recs, currency))
	return nil
}

// dayBounds returns [midnight, next midnight) of day in loc. AddDate keeps
// DST days at their real length.
func dayBounds(loc *time.Location, day string) (time.Time, time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02", day, loc)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
	return start, start.AddDate(0, 0, 1), nil
}

// Package report renders ledger and journal data as console text.
package report

import (
	"fmt"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/shopspring/decimal"

	"github.com/rustyeddy/teller/journal"
	"github.com/rustyeddy/teller/ledger"
)

// TimeLayout is how entry timestamps are printed.
const TimeLayout = "02/01/2006 15:04"

const width = 50

// FormatMoney prints v with two decimals after the currency symbol.
func FormatMoney(currency string, v decimal.Decimal) string {
	if currency == "" {
		return v.StringFixed(2)
	}
	return currency + " " + v.StringFixed(2)
}

func formatFee(currency string, fee decimal.Decimal) string {
	if fee.IsZero() {
		return "-"
	}
	return FormatMoney(currency, fee)
}

func kindLabel(k ledger.Kind) string {
	s := k.String()
	return strings.ToUpper(s[:1]) + s[1:]
}

func banner(b *strings.Builder, title string) {
	b.WriteString(strings.Repeat("=", width) + "\n")
	pad := (width - len(title)) / 2
	b.WriteString(strings.Repeat(" ", pad) + title + "\n")
	b.WriteString(strings.Repeat("=", width) + "\n")
}

// FormatStatement renders the statement table followed by the current
// balance and how many withdrawals are left today.
func FormatStatement(st ledger.Statement, remaining int, currency string) string {
	var b strings.Builder
	banner(&b, "STATEMENT")

	if st.Len() == 0 {
		b.WriteString("No transactions recorded.\n")
	} else {
		tw := tabwriter.NewWriter(&b, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "Date/Time\tType\tAmount\tFee\tBalance")
		for tx := range st.Transactions() {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
				tx.Time.Format(TimeLayout),
				kindLabel(tx.Kind),
				FormatMoney(currency, tx.Amount),
				formatFee(currency, tx.Fee),
				FormatMoney(currency, tx.Balance),
			)
		}
		tw.Flush()
	}

	b.WriteString(strings.Repeat("-", width) + "\n")
	fmt.Fprintf(&b, "Balance: %s\n", FormatMoney(currency, st.Balance))
	fmt.Fprintf(&b, "Withdrawals remaining today: %d\n", remaining)
	b.WriteString(strings.Repeat("=", width) + "\n")
	return b.String()
}

// FormatSummary renders the account information block.
func FormatSummary(s ledger.Summary, currency string) string {
	var b strings.Builder
	banner(&b, "ACCOUNT")
	fmt.Fprintf(&b, "Balance: %s\n", FormatMoney(currency, s.Balance))
	fmt.Fprintf(&b, "Per-withdrawal limit: %s\n", FormatMoney(currency, s.PerWithdrawalLimit))
	fmt.Fprintf(&b, "Withdrawals remaining today: %d\n", s.WithdrawalsRemaining)
	fmt.Fprintf(&b, "Transactions: %d\n", s.TransactionCount)
	return b.String()
}

// FormatRecords renders journal rows as a table in local time.
func FormatRecords(recs []journal.Record, currency string) string {
	if len(recs) == 0 {
		return "No transactions recorded.\n"
	}

	var b strings.Builder
	tw := tabwriter.NewWriter(&b, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tAccount\tDate/Time\tType\tAmount\tFee\tBalance")
	for _, r := range recs {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			r.TxID,
			shortID(r.AccountID),
			r.Time.Local().Format(TimeLayout),
			kindLabel(r.Kind),
			FormatMoney(currency, r.Amount),
			formatFee(currency, r.Fee),
			FormatMoney(currency, r.Balance),
		)
	}
	tw.Flush()
	return b.String()
}

// FormatRecordOrg renders a journal record as an Org-mode block with the
// facts in a PROPERTIES drawer.
func FormatRecordOrg(r journal.Record) string {
	var b strings.Builder
	fmt.Fprintf(&b, "** %s: %s (%s)\n", kindLabel(r.Kind), r.Amount.StringFixed(2), shortID(r.TxID))
	b.WriteString(":PROPERTIES:\n")
	fmt.Fprintf(&b, ":TX_ID: %s\n", r.TxID)
	fmt.Fprintf(&b, ":ACCOUNT_ID: %s\n", r.AccountID)
	fmt.Fprintf(&b, ":KIND: %s\n", r.Kind)
	fmt.Fprintf(&b, ":AMOUNT: %s\n", r.Amount.String())
	fmt.Fprintf(&b, ":FEE: %s\n", r.Fee.String())
	fmt.Fprintf(&b, ":BALANCE: %s\n", r.Balance.String())
	fmt.Fprintf(&b, ":TIME: %s\n", r.Time.UTC().Format(time.RFC3339))
	b.WriteString(":END:\n")
	return b.String()
}

func shortID(full string) string {
	if len(full) <= 8 {
		return full
	}
	return full[:8]
}

package report

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rustyeddy/teller/journal"
	"github.com/rustyeddy/teller/ledger"
	"github.com/rustyeddy/teller/policy"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestFormatMoney(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "R$ 49.25", FormatMoney("R$", d("49.25")))
	assert.Equal(t, "R$ 0.00", FormatMoney("R$", decimal.Zero))
	assert.Equal(t, "$ 0.50", FormatMoney("$", d("0.49995")))
	assert.Equal(t, "12.30", FormatMoney("", d("12.3")))
}

func TestFormatStatementEmpty(t *testing.T) {
	t.Parallel()

	a := ledger.NewAccount(policy.Default())
	out := FormatStatement(a.Statement(), 3, "R$")

	assert.Contains(t, out, "STATEMENT")
	assert.Contains(t, out, "No transactions recorded.")
	assert.Contains(t, out, "Balance: R$ 0.00")
	assert.Contains(t, out, "Withdrawals remaining today: 3")
	assert.NotContains(t, out, "Date/Time")
}

func TestFormatStatement(t *testing.T) {
	t.Parallel()

	at := time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)
	a := ledger.NewAccount(policy.Default(), ledger.WithClock(func() time.Time { return at }))
	_, err := a.Deposit(d("100"))
	require.NoError(t, err)
	_, err = a.Withdraw(d("50"))
	require.NoError(t, err)

	out := FormatStatement(a.Statement(), a.Summary().WithdrawalsRemaining, "R$")
	lines := strings.Split(out, "\n")

	var header, dep, wd string
	for _, l := range lines {
		switch {
		case strings.HasPrefix(l, "Date/Time"):
			header = l
		case strings.HasPrefix(l, "15/03/2024") && strings.Contains(l, "Deposit"):
			dep = l
		case strings.HasPrefix(l, "15/03/2024") && strings.Contains(l, "Withdrawal"):
			wd = l
		}
	}
	require.NotEmpty(t, header)
	assert.Contains(t, header, "Type")
	assert.Contains(t, header, "Fee")

	assert.Contains(t, dep, "15/03/2024 10:30")
	assert.Contains(t, dep, "R$ 100.00")
	assert.Contains(t, dep, "-")

	assert.Contains(t, wd, "R$ 50.00")
	assert.Contains(t, wd, "R$ 0.75")
	assert.Contains(t, wd, "R$ 49.25")

	assert.Contains(t, out, "Balance: R$ 49.25")
	assert.Contains(t, out, "Withdrawals remaining today: 2")

	// Deposit printed before withdrawal.
	assert.Less(t, strings.Index(out, "Deposit"), strings.Index(out, "Withdrawal"))
}

func TestFormatSummary(t *testing.T) {
	t.Parallel()

	out := FormatSummary(ledger.Summary{
		Balance:              d("198.5"),
		PerWithdrawalLimit:   d("500"),
		WithdrawalsRemaining: 2,
		TransactionCount:     2,
	}, "R$")

	assert.Contains(t, out, "Balance: R$ 198.50")
	assert.Contains(t, out, "Per-withdrawal limit: R$ 500.00")
	assert.Contains(t, out, "Withdrawals remaining today: 2")
	assert.Contains(t, out, "Transactions: 2")
}

func TestFormatRecords(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "No transactions recorded.\n", FormatRecords(nil, "R$"))

	recs := []journal.Record{
		{TxID: "01HXAAAA", AccountID: "3f1c2d4e-aaaa", Kind: ledger.Deposit, Amount: d("10"), Fee: d("0"), Balance: d("10"), Time: time.Now()},
		{TxID: "01HXBBBB", AccountID: "3f1c2d4e-aaaa", Kind: ledger.Withdrawal, Amount: d("5"), Fee: d("0.075"), Balance: d("4.925"), Time: time.Now()},
	}
	out := FormatRecords(recs, "$")

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "ID"))
	assert.Contains(t, lines[1], "01HXAAAA")
	assert.Contains(t, lines[1], "3f1c2d4e ")
	assert.NotContains(t, lines[1], "3f1c2d4e-aaaa")
	assert.Contains(t, lines[2], "$ 0.08")
	assert.Contains(t, lines[2], "$ 4.93")
}

func TestFormatRecordOrg(t *testing.T) {
	t.Parallel()

	r := journal.Record{
		TxID:      "01HX1234567890",
		AccountID: "acct-1",
		Kind:      ledger.Withdrawal,
		Amount:    d("50"),
		Fee:       d("0.75"),
		Balance:   d("49.25"),
		Time:      time.Date(2024, 3, 15, 10, 30, 45, 0, time.UTC),
	}

	out := FormatRecordOrg(r)

	assert.Contains(t, out, "** Withdrawal: 50.00 (01HX1234)")
	assert.Contains(t, out, ":PROPERTIES:")
	assert.Contains(t, out, ":TX_ID: 01HX1234567890")
	assert.Contains(t, out, ":ACCOUNT_ID: acct-1")
	assert.Contains(t, out, ":KIND: withdrawal")
	assert.Contains(t, out, ":AMOUNT: 50")
	assert.Contains(t, out, ":FEE: 0.75")
	assert.Contains(t, out, ":BALANCE: 49.25")
	assert.Contains(t, out, ":TIME: 2024-03-15T10:30:45Z")
	assert.Contains(t, out, ":END:")
}

// Package ledger holds a single account: its balance, its append-only
// history and the withdrawal rules enforced on it.
//
// The ledger performs no I/O. Callers own the Account and must not share it
// between goroutines without their own locking.
package ledger

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/rustyeddy/teller/pkg/id"
	"github.com/rustyeddy/teller/policy"
)

type Account struct {
	id     string
	policy policy.Policy
	now    func() time.Time

	balance          decimal.Decimal
	withdrawalsToday int
	lastWithdrawal   time.Time // zero until the first withdrawal
	txs              []Transaction
}

// Option configures an Account at construction.
type Option func(*Account)

// WithClock replaces time.Now. The calendar day used for the daily limit is
// taken in the location of the times the clock returns.
func WithClock(now func() time.Time) Option {
	return func(a *Account) { a.now = now }
}

// WithID sets the account ID instead of generating a UUID.
func WithID(id string) Option {
	return func(a *Account) { a.id = id }
}

// NewAccount opens an empty account governed by p.
func NewAccount(p policy.Policy, opts ...Option) *Account {
	a := &Account{
		id:      uuid.NewString(),
		policy:  p,
		now:     time.Now,
		balance: decimal.Zero,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

func (a *Account) ID() string               { return a.id }
func (a *Account) Policy() policy.Policy    { return a.policy }
func (a *Account) Balance() decimal.Decimal { return a.balance }

// Deposit adds amount to the balance and records a deposit entry.
func (a *Account) Deposit(amount decimal.Decimal) (Transaction, error) {
	if !amount.IsPositive() {
		return Transaction{}, fmt.Errorf("%w: %s must be greater than zero", ErrInvalidAmount, amount)
	}

	a.balance = a.balance.Add(amount)
	return a.record(a.now(), Deposit, amount, decimal.Zero), nil
}

// Withdraw takes amount plus the service fee from the balance.
//
// Checks run in a fixed order and the first failure is reported: amount,
// daily count, per-withdrawal limit, funds. A rejected withdrawal changes
// neither the balance nor the history.
func (a *Account) Withdraw(amount decimal.Decimal) (Transaction, error) {
	if !amount.IsPositive() {
		return Transaction{}, fmt.Errorf("%w: %s must be greater than zero", ErrInvalidAmount, amount)
	}

	now := a.now()
	a.rollover(now)
	if a.withdrawalsToday >= a.policy.DailyWithdrawalLimit {
		return Transaction{}, fmt.Errorf("%w: %d of %d withdrawals used today",
			ErrDailyLimitExceeded, a.withdrawalsToday, a.policy.DailyWithdrawalLimit)
	}

	if amount.GreaterThan(a.policy.PerWithdrawalLimit) {
		return Transaction{}, fmt.Errorf("%w: %s is above %s",
			ErrPerTransactionLimitExceeded, amount.StringFixed(2), a.policy.PerWithdrawalLimit.StringFixed(2))
	}

	fee := a.policy.Fee(amount)
	total := amount.Add(fee)
	if total.GreaterThan(a.balance) {
		return Transaction{}, fmt.Errorf("%w: need %s including fee, have %s",
			ErrInsufficientFunds, total.StringFixed(2), a.balance.StringFixed(2))
	}

	a.balance = a.balance.Sub(total)
	a.withdrawalsToday++
	a.lastWithdrawal = now
	return a.record(now, Withdrawal, amount, fee), nil
}

// rollover zeroes the daily count the first time it is consulted on a new
// calendar day. It runs only from Withdraw; there is no timer.
func (a *Account) rollover(now time.Time) {
	if !sameDay(a.lastWithdrawal, now) {
		a.withdrawalsToday = 0
	}
}

func sameDay(last, now time.Time) bool {
	if last.IsZero() {
		return false
	}
	ly, lm, ld := last.In(now.Location()).Date()
	ny, nm, nd := now.Date()
	return ly == ny && lm == nm && ld == nd
}

func (a *Account) record(at time.Time, kind Kind, amount, fee decimal.Decimal) Transaction {
	tx := Transaction{
		ID:      id.NewAt(at),
		Kind:    kind,
		Amount:  amount,
		Fee:     fee,
		Balance: a.balance,
		Time:    at,
	}
	a.txs = append(a.txs, tx)
	return tx
}

// Statement returns the current balance and the history so far.
func (a *Account) Statement() Statement {
	return Statement{
		Balance: a.balance,
		entries: a.txs[:len(a.txs):len(a.txs)],
	}
}

// Summary reports the account without touching it. Withdrawals remaining is
// computed from the stored count; a new day is only noticed by Withdraw.
func (a *Account) Summary() Summary {
	remaining := a.policy.DailyWithdrawalLimit - a.withdrawalsToday
	if remaining < 0 {
		remaining = 0
	}
	return Summary{
		Balance:              a.balance,
		PerWithdrawalLimit:   a.policy.PerWithdrawalLimit,
		WithdrawalsRemaining: remaining,
		TransactionCount:     len(a.txs),
	}
}

// amountPattern is plain decimal notation with at most two fractional
// digits. Exponents are not accepted.
var amountPattern = regexp.MustCompile(`^[+-]?(\d+(\.\d{0,2})?|\.\d{1,2})$`)

// ParseAmount reads an amount typed by a user. Comma and dot are both
// accepted as the decimal separator. Sign is not checked here.
func ParseAmount(s string) (decimal.Decimal, error) {
	clean := strings.ReplaceAll(strings.TrimSpace(s), ",", ".")
	if !amountPattern.MatchString(clean) {
		return decimal.Zero, fmt.Errorf("%w: %q is not a number with at most two decimal places", ErrInvalidAmount, s)
	}
	v, err := decimal.NewFromString(clean)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q is not a number", ErrInvalidAmount, s)
	}
	return v, nil
}

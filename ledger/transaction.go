package ledger

import (
	"fmt"
	"iter"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Kind is the type of a statement entry.
type Kind uint8

const (
	Deposit Kind = iota + 1
	Withdrawal
)

func (k Kind) String() string {
	switch k {
	case Deposit:
		return "deposit"
	case Withdrawal:
		return "withdrawal"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// ParseKind is the inverse of Kind.String.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "deposit":
		return Deposit, nil
	case "withdrawal":
		return Withdrawal, nil
	}
	return 0, fmt.Errorf("unknown transaction kind %q", s)
}

// Transaction is one statement entry. Entries are never changed after they
// are appended.
type Transaction struct {
	ID      string
	Kind    Kind
	Amount  decimal.Decimal
	Fee     decimal.Decimal // zero for deposits
	Balance decimal.Decimal // balance right after this entry
	Time    time.Time
}

// Statement is a point-in-time view of an account's history.
type Statement struct {
	Balance decimal.Decimal
	entries []Transaction
}

// Transactions yields the entries oldest first. The sequence can be ranged
// over any number of times and always yields the same entries.
func (s Statement) Transactions() iter.Seq[Transaction] {
	return func(yield func(Transaction) bool) {
		for _, tx := range s.entries {
			if !yield(tx) {
				return
			}
		}
	}
}

// Len is the number of entries in the statement.
func (s Statement) Len() int { return len(s.entries) }

// Summary is a read-only projection of an account.
type Summary struct {
	Balance              decimal.Decimal
	PerWithdrawalLimit   decimal.Decimal
	WithdrawalsRemaining int
	TransactionCount     int
}

package policy

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Policy holds the withdrawal rules applied to an account.
type Policy struct {
	// Largest amount a single withdrawal may take, fee excluded.
	PerWithdrawalLimit decimal.Decimal // 500.00

	// Number of withdrawals allowed per calendar day.
	DailyWithdrawalLimit int // 3

	// Service fee charged on top of each withdrawal, as a fraction.
	FeeRate decimal.Decimal // 0.015
}

// Default returns the policy new accounts open with.
func Default() Policy {
	return Policy{
		PerWithdrawalLimit:   decimal.NewFromInt(500),
		DailyWithdrawalLimit: 3,
		FeeRate:              decimal.RequireFromString("0.015"),
	}
}

// Fee is the service fee charged for withdrawing amount.
func (p Policy) Fee(amount decimal.Decimal) decimal.Decimal {
	return amount.Mul(p.FeeRate)
}

// Total is what leaves the balance when amount is withdrawn.
func (p Policy) Total(amount decimal.Decimal) decimal.Decimal {
	return amount.Add(p.Fee(amount))
}

// Validate checks the policy values are usable.
func (p Policy) Validate() error {
	if !p.PerWithdrawalLimit.IsPositive() {
		return fmt.Errorf("per-withdrawal limit must be positive")
	}
	if p.DailyWithdrawalLimit < 1 {
		return fmt.Errorf("daily withdrawal limit must be at least 1")
	}
	if p.FeeRate.IsNegative() || p.FeeRate.GreaterThanOrEqual(decimal.NewFromInt(1)) {
		return fmt.Errorf("fee rate must be in [0, 1)")
	}
	return nil
}

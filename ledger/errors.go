package ledger

import "errors"

// Every rejected operation wraps exactly one of these; match with errors.Is.
var (
	// ErrInvalidAmount is returned for amounts that are not numbers or are <= 0.
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrDailyLimitExceeded is returned once today's withdrawals are used up.
	ErrDailyLimitExceeded = errors.New("daily withdrawal limit exceeded")

	// ErrPerTransactionLimitExceeded is returned when a single withdrawal is above the ceiling.
	ErrPerTransactionLimitExceeded = errors.New("per-withdrawal limit exceeded")

	// ErrInsufficientFunds is returned when amount plus fee is more than the balance.
	ErrInsufficientFunds = errors.New("insufficient funds")
)

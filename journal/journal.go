package journal

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/rustyeddy/teller/config"
	"github.com/rustyeddy/teller/ledger"
)

// Record is one accepted ledger transaction as written to a journal.
type Record struct {
	TxID      string
	AccountID string
	Kind      ledger.Kind
	Amount    decimal.Decimal
	Fee       decimal.Decimal
	Balance   decimal.Decimal
	Time      time.Time
}

// FromTransaction tags tx with the account it belongs to.
func FromTransaction(accountID string, tx ledger.Transaction) Record {
	return Record{
		TxID:      tx.ID,
		AccountID: accountID,
		Kind:      tx.Kind,
		Amount:    tx.Amount,
		Fee:       tx.Fee,
		Balance:   tx.Balance,
		Time:      tx.Time,
	}
}

type Journal interface {
	RecordTransaction(Record) error
	Close() error
}

// Nop discards everything. It backs the default in-memory-only setup.
type Nop struct{}

func (Nop) RecordTransaction(Record) error { return nil }
func (Nop) Close() error                   { return nil }

// Open builds the journal described by cfg.
func Open(cfg config.JournalConfig) (Journal, error) {
	switch cfg.Type {
	case "", config.JournalNone:
		return Nop{}, nil
	case config.JournalCSV:
		return NewCSV(cfg.CSVFile)
	case config.JournalSQLite:
		return NewSQLite(cfg.DBPath)
	default:
		return nil, fmt.Errorf("unknown journal type %q", cfg.Type)
	}
}

package journal

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/rustyeddy/teller/ledger"
)

// ErrNotFound is returned when a lookup matches no row.
var ErrNotFound = errors.New("not found")

const selectColumns = `SELECT tx_id, account_id, kind, amount, fee, balance, time FROM transactions`

type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(s scanner) (Record, error) {
	var (
		rec  Record
		kind string
	)
	if err := s.Scan(
		&rec.TxID,
		&rec.AccountID,
		&kind,
		&rec.Amount,
		&rec.Fee,
		&rec.Balance,
		&rec.Time,
	); err != nil {
		return Record{}, err
	}
	k, err := ledger.ParseKind(kind)
	if err != nil {
		return Record{}, err
	}
	rec.Kind = k
	return rec, nil
}

// GetTransaction returns a single record by transaction ID.
func (j *SQLite) GetTransaction(txID string) (Record, error) {
	row := j.db.QueryRow(selectColumns+` WHERE tx_id = ?`, txID)
	rec, err := scanRecord(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Record{}, fmt.Errorf("transaction %q: %w", txID, ErrNotFound)
		}
		return Record{}, err
	}
	return rec, nil
}

// List returns every record, oldest first.
func (j *SQLite) List() ([]Record, error) {
	return j.query(selectColumns + ` ORDER BY time ASC, tx_id ASC`)
}

// ListByAccount returns the records of one account, oldest first.
func (j *SQLite) ListByAccount(accountID string) ([]Record, error) {
	return j.query(selectColumns+`
		WHERE account_id = ?
		ORDER BY time ASC, tx_id ASC`, accountID)
}

// ListBetween returns records whose time is within [start, end).
func (j *SQLite) ListBetween(start, end time.Time) ([]Record, error) {
	return j.query(selectColumns+`
		WHERE time >= ? AND time < ?
		ORDER BY time ASC, tx_id ASC`, start.UTC(), end.UTC())
}

func (j *SQLite) query(q string, args ...any) ([]Record, error) {
	rows, err := j.db.Query(q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

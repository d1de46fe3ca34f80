package journal

import (
	"database/sql"

	_ "github.com/mattn/go-sqlite3"
)

type SQLite struct {
	db *sql.DB
}

func NewSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(Schema); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &SQLite{db: db}, nil
}

func (j *SQLite) RecordTransaction(r Record) error {
	_, err := j.db.Exec(`
		INSERT INTO transactions
		(tx_id, account_id, kind, amount, fee, balance, time)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		r.TxID, r.AccountID, r.Kind.String(),
		r.Amount.String(), r.Fee.String(), r.Balance.String(), r.Time.UTC(),
	)
	return err
}

func (j *SQLite) Close() error {
	return j.db.Close()
}

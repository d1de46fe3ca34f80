package journal

import (
	"encoding/csv"
	"fmt"
	"os"
	"time"
)

var csvHeader = []string{"tx_id", "account_id", "kind", "amount", "fee", "balance", "time"}

// CSVJournal appends one row per record. An existing file is appended to;
// the header is written only when the file is empty.
type CSVJournal struct {
	w *csv.Writer
	f *os.File
}

func NewCSV(path string) (*CSVJournal, error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, err
	}
	st, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, err
	}

	w := csv.NewWriter(f)
	if st.Size() == 0 {
		if err := w.Write(csvHeader); err != nil {
			_ = f.Close()
			return nil, err
		}
		w.Flush()
		if err := w.Error(); err != nil {
			_ = f.Close()
			return nil, err
		}
	}

	return &CSVJournal{w: w, f: f}, nil
}

func (j *CSVJournal) RecordTransaction(r Record) error {
	err := j.w.Write([]string{
		r.TxID,
		r.AccountID,
		r.Kind.String(),
		r.Amount.String(),
		r.Fee.String(),
		r.Balance.String(),
		r.Time.UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		return fmt.Errorf("csv journal: %w", err)
	}

	j.w.Flush()
	return j.w.Error()
}

func (j *CSVJournal) Close() error {
	j.w.Flush()
	if err := j.w.Error(); err != nil {
		_ = j.f.Close()
		return err
	}
	return j.f.Close()
}

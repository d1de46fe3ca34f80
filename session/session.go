// Package session runs the interactive console loop around a single
// ledger account.
package session

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/rustyeddy/teller/journal"
	"github.com/rustyeddy/teller/ledger"
	"github.com/rustyeddy/teller/report"
)

const menu = `
========== TELLER ==========
[d] Deposit
[w] Withdraw
[s] Statement
[i] Account info
[q] Quit
============================`

type Session struct {
	acct     *ledger.Account
	journal  journal.Journal
	log      zerolog.Logger
	in       io.Reader
	out      io.Writer
	currency string
}

// Option configures a Session.
type Option func(*Session)

// WithJournal records every accepted transaction to j.
func WithJournal(j journal.Journal) Option {
	return func(s *Session) { s.journal = j }
}

func WithLogger(l zerolog.Logger) Option {
	return func(s *Session) { s.log = l }
}

// WithCurrency sets the symbol printed before amounts.
func WithCurrency(symbol string) Option {
	return func(s *Session) { s.currency = symbol }
}

// New builds a session that reads commands from in and writes to out.
func New(acct *ledger.Account, in io.Reader, out io.Writer, opts ...Option) *Session {
	s := &Session{
		acct:     acct,
		journal:  journal.Nop{},
		log:      zerolog.Nop(),
		in:       in,
		out:      out,
		currency: "R$",
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.With().Str("account", acct.ID()).Logger()
	return s
}

type line struct {
	text string
	err  error
}

// readLines feeds input lines to the loop so a blocked read does not keep
// Run from seeing ctx cancellation.
func readLines(ctx context.Context, r io.Reader) <-chan line {
	ch := make(chan line)
	go func() {
		defer close(ch)
		sc := bufio.NewScanner(r)
		for sc.Scan() {
			select {
			case ch <- line{text: sc.Text()}:
			case <-ctx.Done():
				return
			}
		}
		if err := sc.Err(); err != nil {
			select {
			case ch <- line{err: err}:
			case <-ctx.Done():
			}
		}
	}()
	return ch
}

// Run loops until the user quits, input ends or ctx is cancelled; all three
// return nil. Only a failing input stream is reported as an error.
//
// Input is read on a separate goroutine. If Run returns while that goroutine
// is blocked reading a live stream, it exits only once the read returns, so
// callers that outlive the session should close the input afterwards.
func (s *Session) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := readLines(ctx, s.in)
	s.log.Info().Msg("session started")
	fmt.Fprintln(s.out, "Welcome to teller!")

	for {
		fmt.Fprintln(s.out, menu)
		choice, err := s.prompt(ctx, lines, "Choose an option: ")
		if err == nil {
			var quit bool
			quit, err = s.dispatch(ctx, lines, choice)
			if quit {
				s.goodbye()
				return nil
			}
		}

		switch {
		case err == nil:
		case errors.Is(err, io.EOF):
			fmt.Fprintln(s.out)
			s.goodbye()
			return nil
		case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
			fmt.Fprintln(s.out, "\n\nSession ended by user.")
			s.log.Info().Msg("session interrupted")
			return nil
		default:
			s.log.Error().Err(err).Msg("input failed")
			return fmt.Errorf("read input: %w", err)
		}
	}
}

func (s *Session) goodbye() {
	fmt.Fprintln(s.out, "Thank you for banking with us. Goodbye!")
	s.log.Info().
		Stringer("balance", s.acct.Balance()).
		Int("transactions", s.acct.Statement().Len()).
		Msg("session closed")
}

func (s *Session) prompt(ctx context.Context, lines <-chan line, msg string) (string, error) {
	fmt.Fprint(s.out, msg)
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case l, ok := <-lines:
		if !ok {
			return "", io.EOF
		}
		if l.err != nil {
			return "", l.err
		}
		return l.text, nil
	}
}

func (s *Session) dispatch(ctx context.Context, lines <-chan line, choice string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(choice)) {
	case "d", "deposit":
		return false, s.deposit(ctx, lines)
	case "w", "withdraw":
		return false, s.withdraw(ctx, lines)
	case "s", "statement":
		sum := s.acct.Summary()
		fmt.Fprint(s.out, report.FormatStatement(s.acct.Statement(), sum.WithdrawalsRemaining, s.currency))
	case "i", "info":
		fmt.Fprint(s.out, report.FormatSummary(s.acct.Summary(), s.currency))
	case "q", "quit":
		return true, nil
	default:
		fmt.Fprintln(s.out, "Invalid option, please try again.")
	}
	return false, nil
}

func (s *Session) deposit(ctx context.Context, lines <-chan line) error {
	text, err := s.prompt(ctx, lines, fmt.Sprintf("Deposit amount: %s ", s.currency))
	if err != nil {
		return err
	}

	amount, err := ledger.ParseAmount(text)
	if err == nil {
		var tx ledger.Transaction
		tx, err = s.acct.Deposit(amount)
		if err == nil {
			s.accept(tx)
			fmt.Fprintf(s.out, "Deposit of %s completed.\n", s.money(tx.Amount))
			return nil
		}
	}
	s.reject(ledger.Deposit, text, amount, err)
	return nil
}

func (s *Session) withdraw(ctx context.Context, lines <-chan line) error {
	text, err := s.prompt(ctx, lines, fmt.Sprintf("Withdrawal amount: %s ", s.currency))
	if err != nil {
		return err
	}

	amount, err := ledger.ParseAmount(text)
	if err == nil {
		var tx ledger.Transaction
		tx, err = s.acct.Withdraw(amount)
		if err == nil {
			s.accept(tx)
			fmt.Fprintf(s.out, "Withdrawal of %s completed.\n", s.money(tx.Amount))
			fmt.Fprintf(s.out, "Service fee: %s\n", s.money(tx.Fee))
			return nil
		}
	}
	s.reject(ledger.Withdrawal, text, amount, err)
	return nil
}

func (s *Session) accept(tx ledger.Transaction) {
	s.log.Info().
		Str("tx_id", tx.ID).
		Stringer("kind", tx.Kind).
		Stringer("amount", tx.Amount).
		Stringer("fee", tx.Fee).
		Stringer("balance", tx.Balance).
		Msg("transaction recorded")

	if err := s.journal.RecordTransaction(journal.FromTransaction(s.acct.ID(), tx)); err != nil {
		s.log.Error().Err(err).Str("tx_id", tx.ID).Msg("journal write failed")
		fmt.Fprintf(s.out, "Warning: transaction %s was not written to the journal: %v\n", tx.ID, err)
	}
}

func (s *Session) reject(kind ledger.Kind, input string, amount decimal.Decimal, err error) {
	s.log.Warn().
		Err(err).
		Stringer("kind", kind).
		Str("input", input).
		Msg("transaction rejected")
	fmt.Fprintln(s.out, s.failure(amount, err))
}

// failure turns a ledger error into the line shown to the user.
func (s *Session) failure(amount decimal.Decimal, err error) string {
	p := s.acct.Policy()
	switch {
	case errors.Is(err, ledger.ErrInvalidAmount):
		return "Operation failed: the amount must be a positive number."
	case errors.Is(err, ledger.ErrDailyLimitExceeded):
		return fmt.Sprintf("Operation failed: daily limit of %d withdrawals reached.", p.DailyWithdrawalLimit)
	case errors.Is(err, ledger.ErrPerTransactionLimitExceeded):
		return fmt.Sprintf("Operation failed: amount exceeds the per-withdrawal limit of %s.", s.money(p.PerWithdrawalLimit))
	case errors.Is(err, ledger.ErrInsufficientFunds):
		return fmt.Sprintf("Operation failed: insufficient funds. Needed %s including fee.", s.money(p.Total(amount)))
	default:
		return fmt.Sprintf("Operation failed: %v", err)
	}
}

func (s *Session) money(v decimal.Decimal) string {
	return report.FormatMoney(s.currency, v)
}

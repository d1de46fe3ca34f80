package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/rustyeddy/teller/policy"
)

// Journal types.
const (
	JournalNone   = "none"
	JournalCSV    = "csv"
	JournalSQLite = "sqlite"
)

// Config represents the complete session configuration
type Config struct {
	Account AccountConfig `json:"account" yaml:"account"`
	Journal JournalConfig `json:"journal" yaml:"journal"`
	Log     LogConfig     `json:"log" yaml:"log"`
	Display DisplayConfig `json:"display" yaml:"display"`
}

// AccountConfig contains the withdrawal policy the account opens with
type AccountConfig struct {
	PerWithdrawalLimit   decimal.Decimal `json:"per_withdrawal_limit" yaml:"per_withdrawal_limit"`
	DailyWithdrawalLimit int             `json:"daily_withdrawal_limit" yaml:"daily_withdrawal_limit"`
	FeeRate              decimal.Decimal `json:"fee_rate" yaml:"fee_rate"`
}

// Policy converts the configured values to a ledger policy.
func (a AccountConfig) Policy() policy.Policy {
	return policy.Policy{
		PerWithdrawalLimit:   a.PerWithdrawalLimit,
		DailyWithdrawalLimit: a.DailyWithdrawalLimit,
		FeeRate:              a.FeeRate,
	}
}

// JournalConfig contains journaling parameters
type JournalConfig struct {
	Type    string `json:"type" yaml:"type"` // "none", "csv" or "sqlite"
	CSVFile string `json:"csv_file,omitempty" yaml:"csv_file,omitempty"`
	DBPath  string `json:"db_path,omitempty" yaml:"db_path,omitempty"`
}

// LogConfig contains logging parameters
type LogConfig struct {
	Level string `json:"level" yaml:"level"` // zerolog level name
}

// DisplayConfig contains console rendering parameters
type DisplayConfig struct {
	Currency string `json:"currency" yaml:"currency"` // symbol printed before amounts
}

// LoadFromFile loads configuration from a file (YAML or JSON)
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	// Unset keys keep their defaults.
	cfg := Default()

	// Try YAML first, fall back to JSON
	err = yaml.Unmarshal(data, cfg)
	if err != nil {
		cfg = Default()
		err = json.Unmarshal(data, cfg)
		if err != nil {
			return nil, fmt.Errorf("parse config (tried YAML and JSON): %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// SaveToFile saves configuration to a file (JSON or YAML based on extension)
func (c *Config) SaveToFile(path string) error {
	var data []byte
	var err error

	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		data, err = yaml.Marshal(c)
	default:
		data, err = json.MarshalIndent(c, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}

	return nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if err := c.Account.Policy().Validate(); err != nil {
		return fmt.Errorf("account: %w", err)
	}
	switch c.Journal.Type {
	case JournalNone, "":
	case JournalCSV:
		if c.Journal.CSVFile == "" {
			return fmt.Errorf("journal csv_file required for CSV type")
		}
	case JournalSQLite:
		if c.Journal.DBPath == "" {
			return fmt.Errorf("journal db_path required for SQLite type")
		}
	default:
		return fmt.Errorf("journal.type must be 'none', 'csv' or 'sqlite'")
	}
	if _, err := c.Log.ParseLevel(); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	return nil
}

// ParseLevel returns the zerolog level, defaulting to info when unset.
func (l LogConfig) ParseLevel() (zerolog.Level, error) {
	if l.Level == "" {
		return zerolog.InfoLevel, nil
	}
	return zerolog.ParseLevel(l.Level)
}

// Default returns a configuration with sensible defaults
func Default() *Config {
	return &Config{
		Account: AccountConfig{
			PerWithdrawalLimit:   decimal.NewFromInt(500),
			DailyWithdrawalLimit: 3,
			FeeRate:              decimal.RequireFromString("0.015"),
		},
		Journal: JournalConfig{
			Type: JournalNone,
		},
		Log: LogConfig{
			Level: "info",
		},
		Display: DisplayConfig{
			Currency: "R$",
		},
	}
}

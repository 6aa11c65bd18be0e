package config

import (
	"encoding/json"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents a complete scaling-run configuration
type Config struct {
	Input    InputConfig    `json:"input" yaml:"input"`
	Account  AccountConfig  `json:"account" yaml:"account"`
	Strategy StrategyConfig `json:"strategy" yaml:"strategy"`
	Journal  JournalConfig  `json:"journal" yaml:"journal"`
}

// InputConfig describes where the daily P&L data comes from
type InputConfig struct {
	// Path to the delimited file; "-" reads stdin
	Path string `json:"path" yaml:"path"`
	// Delimiter override: "comma", "tab", "semicolon" or "" for auto-detect
	Delimiter string `json:"delimiter,omitempty" yaml:"delimiter,omitempty"`
}

// AccountConfig contains account initialization parameters
type AccountConfig struct {
	Currency        string  `json:"currency" yaml:"currency"`
	StartingCapital float64 `json:"starting_capital" yaml:"starting_capital"`
}

// StrategyConfig contains position-sizing parameters
type StrategyConfig struct {
	RiskPercent float64 `json:"risk_percent" yaml:"risk_percent"`
}

// JournalConfig contains result-export parameters
type JournalConfig struct {
	Type       string `json:"type,omitempty" yaml:"type,omitempty"` // "", "csv" or "sqlite"
	RunsFile   string `json:"runs_file,omitempty" yaml:"runs_file,omitempty"`
	LedgerFile string `json:"ledger_file,omitempty" yaml:"ledger_file,omitempty"`
	DBPath     string `json:"db_path,omitempty" yaml:"db_path,omitempty"`
}

// DelimiterRune maps the configured delimiter name to its rune; 0 means
// auto-detect.
func (c InputConfig) DelimiterRune() (rune, error) {
	switch c.Delimiter {
	case "":
		return 0, nil
	case "comma":
		return ',', nil
	case "tab":
		return '\t', nil
	case "semicolon":
		return ';', nil
	}
	return 0, fmt.Errorf("unknown delimiter %q (use comma, tab or semicolon)", c.Delimiter)
}

// LoadFromFile loads configuration from a file (JSON or YAML based on extension)
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := &Config{}

	// Try YAML first, fall back to JSON
	err = yaml.Unmarshal(data, cfg)
	if err != nil {
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

	if (len(path) > 5 && path[len(path)-5:] == ".yaml") || (len(path) > 4 && path[len(path)-4:] == ".yml") {
		data, err = yaml.Marshal(c)
	} else {
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
	if c.Account.Currency == "" {
		return fmt.Errorf("account.currency is required")
	}
	if c.Account.StartingCapital <= 0 {
		return fmt.Errorf("account.starting_capital must be positive")
	}
	if c.Strategy.RiskPercent <= 0 || c.Strategy.RiskPercent > 1 {
		return fmt.Errorf("strategy.risk_percent must be between 0 and 1")
	}
	if _, err := c.Input.DelimiterRune(); err != nil {
		return fmt.Errorf("input.delimiter: %w", err)
	}
	switch c.Journal.Type {
	case "":
		// report-only, nothing exported
	case "csv":
		if c.Journal.RunsFile == "" || c.Journal.LedgerFile == "" {
			return fmt.Errorf("journal runs_file and ledger_file required for CSV type")
		}
	case "sqlite":
		if c.Journal.DBPath == "" {
			return fmt.Errorf("journal db_path required for SQLite type")
		}
	default:
		return fmt.Errorf("journal.type must be 'csv' or 'sqlite'")
	}
	return nil
}

// Default returns a configuration with sensible defaults
func Default() *Config {
	return &Config{
		Input: InputConfig{
			Path: "-",
		},
		Account: AccountConfig{
			Currency:        "USD",
			StartingCapital: 10000,
		},
		Strategy: StrategyConfig{
			RiskPercent: 0.10,
		},
	}
}

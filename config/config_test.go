package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.NotNil(t, cfg)
	assert.Equal(t, "USD", cfg.Account.Currency)
	assert.Equal(t, 10000.0, cfg.Account.StartingCapital)
	assert.Equal(t, 0.10, cfg.Strategy.RiskPercent)
	assert.Equal(t, "-", cfg.Input.Path)
	assert.NoError(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
		errMsg  string
	}{
		{
			name:    "valid config",
			mutate:  func(c *Config) {},
			wantErr: false,
		},
		{
			name:    "missing currency",
			mutate:  func(c *Config) { c.Account.Currency = "" },
			wantErr: true,
			errMsg:  "account.currency is required",
		},
		{
			name:    "negative starting capital",
			mutate:  func(c *Config) { c.Account.StartingCapital = -1000 },
			wantErr: true,
			errMsg:  "account.starting_capital must be positive",
		},
		{
			name:    "risk percent above one",
			mutate:  func(c *Config) { c.Strategy.RiskPercent = 1.5 },
			wantErr: true,
			errMsg:  "strategy.risk_percent must be between 0 and 1",
		},
		{
			name:    "zero risk percent",
			mutate:  func(c *Config) { c.Strategy.RiskPercent = 0 },
			wantErr: true,
			errMsg:  "strategy.risk_percent must be between 0 and 1",
		},
		{
			name:    "unknown delimiter",
			mutate:  func(c *Config) { c.Input.Delimiter = "pipe" },
			wantErr: true,
			errMsg:  "input.delimiter",
		},
		{
			name:    "csv journal missing files",
			mutate:  func(c *Config) { c.Journal.Type = "csv" },
			wantErr: true,
			errMsg:  "journal runs_file and ledger_file required for CSV type",
		},
		{
			name:    "sqlite journal missing path",
			mutate:  func(c *Config) { c.Journal.Type = "sqlite" },
			wantErr: true,
			errMsg:  "journal db_path required for SQLite type",
		},
		{
			name:    "unknown journal type",
			mutate:  func(c *Config) { c.Journal.Type = "parquet" },
			wantErr: true,
			errMsg:  "journal.type must be 'csv' or 'sqlite'",
		},
		{
			name: "valid csv journal",
			mutate: func(c *Config) {
				c.Journal = JournalConfig{Type: "csv", RunsFile: "./runs.csv", LedgerFile: "./ledger.csv"}
			},
			wantErr: false,
		},
		{
			name: "valid sqlite journal",
			mutate: func(c *Config) {
				c.Journal = JournalConfig{Type: "sqlite", DBPath: "./scaler.sqlite"}
			},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestDelimiterRune(t *testing.T) {
	tests := []struct {
		in   string
		want rune
		ok   bool
	}{
		{"", 0, true},
		{"comma", ',', true},
		{"tab", '\t', true},
		{"semicolon", ';', true},
		{"pipe", 0, false},
	}

	for _, tt := range tests {
		got, err := InputConfig{Delimiter: tt.in}.DelimiterRune()
		if tt.ok {
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		} else {
			assert.Error(t, err)
		}
	}
}

func TestLoadFromFileYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scaler.yaml")

	data := `
input:
  path: ./pnl.csv
  delimiter: tab
account:
  currency: USD
  starting_capital: 25000
strategy:
  risk_percent: 0.05
journal:
  type: sqlite
  db_path: ./scaler.sqlite
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "./pnl.csv", cfg.Input.Path)
	assert.Equal(t, "tab", cfg.Input.Delimiter)
	assert.Equal(t, 25000.0, cfg.Account.StartingCapital)
	assert.Equal(t, 0.05, cfg.Strategy.RiskPercent)
	assert.Equal(t, "sqlite", cfg.Journal.Type)
}

func TestLoadFromFileJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scaler.json")

	data := `{
  "input": {"path": "./pnl.csv"},
  "account": {"currency": "EUR", "starting_capital": 5000},
  "strategy": {"risk_percent": 0.2}
}`
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "EUR", cfg.Account.Currency)
	assert.Equal(t, 5000.0, cfg.Account.StartingCapital)
}

func TestLoadFromFileInvalid(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")

	// Parses fine but fails validation.
	require.NoError(t, os.WriteFile(path, []byte("account:\n  currency: USD\n"), 0644))

	_, err := LoadFromFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid config")
}

func TestSaveAndReload(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "roundtrip.yaml")

	cfg := Default()
	cfg.Account.StartingCapital = 42000
	require.NoError(t, cfg.SaveToFile(path))

	got, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, 42000.0, got.Account.StartingCapital)
}

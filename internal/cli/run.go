package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/rustyeddy/scaler/config"
	"github.com/rustyeddy/scaler/dataset"
	"github.com/rustyeddy/scaler/internal/report"
	"github.com/rustyeddy/scaler/journal"
	"github.com/rustyeddy/scaler/session"
)

func newRunCmd(rc *RootConfig) *cobra.Command {
	var (
		input     string
		delimiter string
		capital   float64
		risk      float64

		journalType string
		runsFile    string
		ledgerFile  string
		dbPath      string
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Compute the scaled vs original ledger and print the report",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(rc)
			if err != nil {
				return err
			}

			// Flags override config values
			if cmd.Flags().Changed("input") {
				cfg.Input.Path = input
			}
			if cmd.Flags().Changed("delimiter") {
				cfg.Input.Delimiter = delimiter
			}
			if cmd.Flags().Changed("capital") {
				cfg.Account.StartingCapital = capital
			}
			if cmd.Flags().Changed("risk") {
				cfg.Strategy.RiskPercent = risk
			}
			if cmd.Flags().Changed("journal") {
				cfg.Journal.Type = journalType
			}
			if cmd.Flags().Changed("runs-file") {
				cfg.Journal.RunsFile = runsFile
			}
			if cmd.Flags().Changed("ledger-file") {
				cfg.Journal.LedgerFile = ledgerFile
			}
			if cmd.Flags().Changed("db") {
				cfg.Journal.DBPath = dbPath
			}

			if err := cfg.Validate(); err != nil {
				return err
			}

			res, err := loadInput(cfg)
			if err != nil {
				return err
			}
			logWarnings(res)

			sess := session.New()
			sess.Load(res)

			out, err := sess.Recalculate(session.Params{
				StartingCapital: cfg.Account.StartingCapital,
				RiskPct:         cfg.Strategy.RiskPercent,
			})
			if err != nil {
				return err
			}

			report.PrintRun(cmd.OutOrStdout(), out)

			return export(cfg, out)
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "-", "Delimited P&L file ('-' for stdin; .gz/.xz/.zip accepted)")
	cmd.Flags().StringVar(&delimiter, "delimiter", "", "Delimiter override: comma|tab|semicolon (default auto-detect)")
	cmd.Flags().Float64Var(&capital, "capital", 10000, "Starting capital")
	cmd.Flags().Float64Var(&risk, "risk", 0.10, "Risk percentage per day as a fraction, e.g. 0.10")
	cmd.Flags().StringVar(&journalType, "journal", "", "Export results: csv|sqlite (default none)")
	cmd.Flags().StringVar(&runsFile, "runs-file", "./runs.csv", "Runs CSV output path")
	cmd.Flags().StringVar(&ledgerFile, "ledger-file", "./ledger.csv", "Ledger CSV output path")
	cmd.Flags().StringVar(&dbPath, "db", "./scaler.sqlite", "SQLite output path")

	return cmd
}

func loadConfig(rc *RootConfig) (*config.Config, error) {
	if rc.ConfigPath == "" {
		return config.Default(), nil
	}
	return config.LoadFromFile(rc.ConfigPath)
}

func loadInput(cfg *config.Config) (*dataset.Result, error) {
	delim, err := cfg.Input.DelimiterRune()
	if err != nil {
		return nil, err
	}

	if cfg.Input.Path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		if delim != 0 {
			return dataset.ParseWith(string(data), delim)
		}
		return dataset.Parse(string(data))
	}

	if delim != 0 {
		data, err := os.ReadFile(cfg.Input.Path)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", cfg.Input.Path, err)
		}
		return dataset.ParseWith(string(data), delim)
	}
	return dataset.Load(cfg.Input.Path)
}

func logWarnings(res *dataset.Result) {
	for _, w := range res.Warnings {
		log.Warn().Int("row", w.Row).Msg(w.Reason)
	}
	log.Debug().
		Str("delimiter", fmt.Sprintf("%q", res.Delimiter)).
		Bool("header", res.HasHeader).
		Int("rows", len(res.Observations)).
		Msg("dataset normalized")
}

func export(cfg *config.Config, out *session.Results) error {
	var j journal.Journal
	var err error

	switch cfg.Journal.Type {
	case "":
		return nil
	case "csv":
		j, err = journal.NewCSV(cfg.Journal.RunsFile, cfg.Journal.LedgerFile)
	case "sqlite":
		j, err = journal.NewSQLite(cfg.Journal.DBPath)
	}
	if err != nil {
		return fmt.Errorf("open journal: %w", err)
	}
	defer j.Close()

	final := cfg.Account.StartingCapital
	if n := len(out.Scaled); n > 0 {
		final = out.Scaled[n-1].EndingCapital
	}

	rec := journal.RunRecord{
		RunID:           out.RunID,
		Created:         out.Created,
		Dataset:         cfg.Input.Path,
		StartingCapital: out.Params.StartingCapital,
		RiskPct:         out.Params.RiskPct,
		MaxLoss:         out.MaxLoss,
		FinalCapital:    final,
		TotalReturnPct:  out.ScaledSummary.TotalReturnPct,
		MaxDrawdownPct:  out.ScaledSummary.MaxDrawdownPct,
		WinRate:         out.ScaledSummary.WinRate,
		Days:            len(out.Scaled),
	}
	if err := j.RecordRun(rec); err != nil {
		return fmt.Errorf("record run: %w", err)
	}
	if err := j.RecordLedger(out.RunID, out.Scaled); err != nil {
		return fmt.Errorf("record ledger: %w", err)
	}

	log.Info().Str("run_id", out.RunID).Str("journal", cfg.Journal.Type).Msg("run exported")
	return nil
}

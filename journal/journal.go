// Package journal exports a completed scaling run — its parameter
// record and its per-day ledger — to CSV files or a SQLite database for
// downstream chart tooling.
package journal

import (
	"time"

	"github.com/rustyeddy/scaler/scaling"
)

// RunRecord is the one-line description of a completed run.
type RunRecord struct {
	RunID           string
	Created         time.Time
	Dataset         string
	StartingCapital float64
	RiskPct         float64
	MaxLoss         float64
	FinalCapital    float64
	TotalReturnPct  float64
	MaxDrawdownPct  float64
	WinRate         float64
	Days            int
}

type Journal interface {
	RecordRun(RunRecord) error
	RecordLedger(runID string, recs []scaling.LedgerRecord) error
	Close() error
}

package journal

import (
	"encoding/csv"
	"os"
	"strconv"
	"time"

	"github.com/rustyeddy/scaler/scaling"
)

const dateLayout = "2006-01-02"

type CSVJournal struct {
	runs   *csv.Writer
	ledger *csv.Writer
	rf, lf *os.File
}

func NewCSV(runsPath, ledgerPath string) (*CSVJournal, error) {
	rf, err := os.Create(runsPath)
	if err != nil {
		return nil, err
	}
	lf, err := os.Create(ledgerPath)
	if err != nil {
		return nil, err
	}

	rw := csv.NewWriter(rf)
	lw := csv.NewWriter(lf)

	if err := rw.Write([]string{"run_id", "created", "dataset", "starting_capital", "risk_pct", "max_loss", "final_capital", "total_return_pct", "max_drawdown_pct", "win_rate", "days"}); err != nil {
		return nil, err
	}
	if err := lw.Write([]string{"run_id", "date", "starting_capital", "position_size", "original_pnl", "scaled_pnl", "ending_capital"}); err != nil {
		return nil, err
	}

	rw.Flush()
	if err := rw.Error(); err != nil {
		return nil, err
	}
	lw.Flush()
	if err := lw.Error(); err != nil {
		return nil, err
	}

	return &CSVJournal{rw, lw, rf, lf}, nil
}

func (j *CSVJournal) RecordRun(r RunRecord) error {
	err := j.runs.Write([]string{
		r.RunID,
		r.Created.Format(time.RFC3339),
		r.Dataset,
		f(r.StartingCapital),
		f(r.RiskPct),
		f(r.MaxLoss),
		f(r.FinalCapital),
		f(r.TotalReturnPct),
		f(r.MaxDrawdownPct),
		f(r.WinRate),
		strconv.Itoa(r.Days),
	})
	if err != nil {
		return err
	}
	j.runs.Flush()
	return j.runs.Error()
}

func (j *CSVJournal) RecordLedger(runID string, recs []scaling.LedgerRecord) error {
	for _, rec := range recs {
		err := j.ledger.Write([]string{
			runID,
			rec.Date.Format(dateLayout),
			f(rec.StartingCapital),
			strconv.Itoa(rec.PositionSize),
			f(rec.OriginalPnL),
			f(rec.ScaledPnL),
			f(rec.EndingCapital),
		})
		if err != nil {
			return err
		}
	}
	j.ledger.Flush()
	return j.ledger.Error()
}

func (j *CSVJournal) Close() error {
	j.runs.Flush()
	if err := j.runs.Error(); err != nil {
		return err
	}
	j.ledger.Flush()
	if err := j.ledger.Error(); err != nil {
		return err
	}

	if err := j.rf.Close(); err != nil {
		return err
	}
	if err := j.lf.Close(); err != nil {
		return err
	}
	return nil
}

func f(x float64) string {
	return strconv.FormatFloat(x, 'f', 6, 64)
}

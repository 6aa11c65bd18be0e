package journal

import (
	"database/sql"
	"fmt"

	"github.com/rustyeddy/scaler/scaling"
)

// GetRun returns a single run record by ID.
func (j *SQLite) GetRun(runID string) (RunRecord, error) {
	var rec RunRecord

	row := j.db.QueryRow(`
		SELECT run_id, created, dataset, starting_capital, risk_pct, max_loss, final_capital, total_return_pct, max_drawdown_pct, win_rate, days
		FROM runs
		WHERE run_id = ?`, runID)

	err := row.Scan(
		&rec.RunID,
		&rec.Created,
		&rec.Dataset,
		&rec.StartingCapital,
		&rec.RiskPct,
		&rec.MaxLoss,
		&rec.FinalCapital,
		&rec.TotalReturnPct,
		&rec.MaxDrawdownPct,
		&rec.WinRate,
		&rec.Days,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return RunRecord{}, fmt.Errorf("run %q not found", runID)
		}
		return RunRecord{}, err
	}
	return rec, nil
}

// ListLedger returns a run's ledger rows in day order.
func (j *SQLite) ListLedger(runID string) ([]scaling.LedgerRecord, error) {
	rows, err := j.db.Query(`
		SELECT date, starting_capital, position_size, original_pnl, scaled_pnl, ending_capital
		FROM ledger
		WHERE run_id = ?
		ORDER BY seq ASC`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []scaling.LedgerRecord
	for rows.Next() {
		var rec scaling.LedgerRecord
		if err := rows.Scan(
			&rec.Date,
			&rec.StartingCapital,
			&rec.PositionSize,
			&rec.OriginalPnL,
			&rec.ScaledPnL,
			&rec.EndingCapital,
		); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

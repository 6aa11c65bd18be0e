package journal

import (
	"database/sql"

	_ "github.com/mattn/go-sqlite3"

	"github.com/rustyeddy/scaler/scaling"
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
		return nil, err
	}

	return &SQLite{db: db}, nil
}

func (j *SQLite) RecordRun(r RunRecord) error {
	_, err := j.db.Exec(`
		INSERT INTO runs
		(run_id, created, dataset, starting_capital, risk_pct, max_loss, final_capital, total_return_pct, max_drawdown_pct, win_rate, days)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.RunID, r.Created, r.Dataset, r.StartingCapital, r.RiskPct,
		r.MaxLoss, r.FinalCapital, r.TotalReturnPct, r.MaxDrawdownPct, r.WinRate, r.Days,
	)
	return err
}

func (j *SQLite) RecordLedger(runID string, recs []scaling.LedgerRecord) error {
	tx, err := j.db.Begin()
	if err != nil {
		return err
	}

	stmt, err := tx.Prepare(`
		INSERT INTO ledger
		(run_id, seq, date, starting_capital, position_size, original_pnl, scaled_pnl, ending_capital)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		tx.Rollback()
		return err
	}
	defer stmt.Close()

	for i, rec := range recs {
		if _, err := stmt.Exec(runID, i, rec.Date, rec.StartingCapital,
			rec.PositionSize, rec.OriginalPnL, rec.ScaledPnL, rec.EndingCapital); err != nil {
			tx.Rollback()
			return err
		}
	}
	return tx.Commit()
}

func (j *SQLite) Close() error {
	return j.db.Close()
}

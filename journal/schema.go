package journal

const Schema = `
CREATE TABLE IF NOT EXISTS runs (
	run_id TEXT PRIMARY KEY,
	created DATETIME NOT NULL,
	dataset TEXT NOT NULL,
	starting_capital REAL NOT NULL,
	risk_pct REAL NOT NULL,
	max_loss REAL NOT NULL,
	final_capital REAL NOT NULL,
	total_return_pct REAL NOT NULL,
	max_drawdown_pct REAL NOT NULL,
	win_rate REAL NOT NULL,
	days INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS ledger (
	run_id TEXT NOT NULL,
	seq INTEGER NOT NULL,
	date DATETIME NOT NULL,
	starting_capital REAL NOT NULL,
	position_size INTEGER NOT NULL,
	original_pnl REAL NOT NULL,
	scaled_pnl REAL NOT NULL,
	ending_capital REAL NOT NULL,
	PRIMARY KEY (run_id, seq)
);

CREATE INDEX IF NOT EXISTS idx_ledger_run ON ledger(run_id);
`

package metrics

import (
	"math"
	"time"

	"github.com/rustyeddy/scaler/scaling"
)

// EquityPoint is one day of the equity curve.
type EquityPoint struct {
	Date   time.Time
	Equity float64
}

// DrawdownPoint is the decline from the running equity peak at one day,
// in absolute and percentage form. Pct is zero whenever the running peak
// is not positive.
type DrawdownPoint struct {
	Date time.Time
	Abs  float64
	Pct  float64
}

// WeeklyPnL is the P&L of one calendar week (Monday start).
type WeeklyPnL struct {
	WeekStart time.Time
	PnL       float64
}

// Equity extracts the ending-capital series in ledger order.
func Equity(ledger []scaling.LedgerRecord) []EquityPoint {
	out := make([]EquityPoint, 0, len(ledger))
	for _, r := range ledger {
		out = append(out, EquityPoint{Date: r.Date, Equity: r.EndingCapital})
	}
	return out
}

// Drawdown computes the per-day decline from the running equity peak.
func Drawdown(ledger []scaling.LedgerRecord) []DrawdownPoint {
	out := make([]DrawdownPoint, 0, len(ledger))
	peak := math.Inf(-1)
	for _, r := range ledger {
		if r.EndingCapital > peak {
			peak = r.EndingCapital
		}
		p := DrawdownPoint{Date: r.Date, Abs: peak - r.EndingCapital}
		if peak > 0 {
			p.Pct = p.Abs / peak
		}
		out = append(out, p)
	}
	return out
}

// Weekly sums ScaledPnL by calendar week in chronological order.
func Weekly(ledger []scaling.LedgerRecord) []WeeklyPnL {
	var out []WeeklyPnL
	index := make(map[time.Time]int)

	for _, r := range ledger {
		ws := weekStart(r.Date)
		i, ok := index[ws]
		if !ok {
			i = len(out)
			index[ws] = i
			out = append(out, WeeklyPnL{WeekStart: ws})
		}
		out[i].PnL += r.ScaledPnL
	}
	return out
}

// weekStart returns the Monday of d's calendar week, at midnight UTC.
func weekStart(d time.Time) time.Time {
	d = time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
	offset := (int(d.Weekday()) + 6) % 7
	return d.AddDate(0, 0, -offset)
}

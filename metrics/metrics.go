// Package metrics derives summary statistics and chart-ready series from
// a completed ledger. Everything here is a pure function of the ledger:
// recomputing on an unchanged ledger yields identical output.
package metrics

import (
	"math"

	"github.com/rustyeddy/scaler/scaling"
)

// Summary is the scalar performance bundle for one ledger variant.
//
// Win rate, AvgWin and AvgLoss consider only records where ScaledPnL is
// non-zero; zero-position days are legitimate outcomes of the sizing
// algorithm and are excluded from those three, but still count toward
// the position-size statistics. When no qualifying records exist the
// degenerate statistics report zero rather than failing, so a summary is
// always producible for display.
type Summary struct {
	Trades int
	Wins   int
	Losses int

	TotalPnL       float64
	TotalReturnAbs float64
	TotalReturnPct float64

	MaxDrawdownAbs float64
	MaxDrawdownPct float64

	WinRate float64
	AvgWin  float64
	AvgLoss float64 // signed: a negative number

	MaxPositionSize int
	MinPositionSize int
	AvgPositionSize float64
}

// Compute builds the Summary for a completed ledger against the
// configured starting capital.
func Compute(ledger []scaling.LedgerRecord, startingCapital float64) Summary {
	var s Summary
	s.Trades = len(ledger)
	if len(ledger) == 0 {
		return s
	}

	var sumWin, sumLoss float64
	for _, r := range ledger {
		s.TotalPnL += r.ScaledPnL
		switch {
		case r.ScaledPnL > 0:
			s.Wins++
			sumWin += r.ScaledPnL
		case r.ScaledPnL < 0:
			s.Losses++
			sumLoss += r.ScaledPnL
		}
	}
	if n := s.Wins + s.Losses; n > 0 {
		s.WinRate = float64(s.Wins) / float64(n)
	}
	if s.Wins > 0 {
		s.AvgWin = sumWin / float64(s.Wins)
	}
	if s.Losses > 0 {
		s.AvgLoss = sumLoss / float64(s.Losses)
	}

	final := ledger[len(ledger)-1].EndingCapital
	s.TotalReturnAbs = final - startingCapital
	if startingCapital != 0 {
		s.TotalReturnPct = s.TotalReturnAbs / startingCapital
	}

	peak := math.Inf(-1)
	for _, r := range ledger {
		if r.EndingCapital > peak {
			peak = r.EndingCapital
		}
		dd := peak - r.EndingCapital
		if dd > s.MaxDrawdownAbs {
			s.MaxDrawdownAbs = dd
			if peak > 0 {
				s.MaxDrawdownPct = dd / peak
			} else {
				s.MaxDrawdownPct = 0
			}
		}
	}

	s.MinPositionSize = ledger[0].PositionSize
	sum := 0
	for _, r := range ledger {
		if r.PositionSize > s.MaxPositionSize {
			s.MaxPositionSize = r.PositionSize
		}
		if r.PositionSize < s.MinPositionSize {
			s.MinPositionSize = r.PositionSize
		}
		sum += r.PositionSize
	}
	s.AvgPositionSize = float64(sum) / float64(len(ledger))

	return s
}

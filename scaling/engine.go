// Package scaling applies risk-based whole-unit position sizing with
// daily compounding to a chronological sequence of P&L observations.
package scaling

import (
	"errors"
	"fmt"

	"github.com/rustyeddy/scaler/dataset"
)

// ErrNoRiskBasis means the sample contains no losing day, so the
// risk-per-unit denominator is undefined and scaling cannot proceed.
var ErrNoRiskBasis = errors.New("no losing day in sample: maximum loss is undefined")

// MaxLoss returns the absolute value of the most negative P&L in the
// sample. It is computed once per run and held constant; it is never
// recomputed per day.
func MaxLoss(obs []dataset.Observation) (float64, error) {
	worst := 0.0
	for _, o := range obs {
		if o.PnL < worst {
			worst = o.PnL
		}
	}
	if worst >= 0 {
		return 0, ErrNoRiskBasis
	}
	return -worst, nil
}

// Run replays the observations in input order, sizing each day with s and
// compounding the result into the next day's starting capital.
//
// Capital is allowed to go negative (ruin). The loop does not halt early:
// once capital×risk is non-positive the sizer clamps to zero units and the
// run keeps emitting zero-scaled records, which models "the strategy blew
// up" rather than masking it.
//
// Run is a pure function of its inputs; identical inputs always yield an
// identical ledger.
func Run(obs []dataset.Observation, startingCapital float64, s Sizer) []LedgerRecord {
	ledger := make([]LedgerRecord, 0, len(obs))
	capital := startingCapital

	for _, o := range obs {
		size := s.Size(capital)
		scaled := o.PnL * float64(size)
		end := capital + scaled

		ledger = append(ledger, LedgerRecord{
			Date:            o.Date,
			StartingCapital: capital,
			PositionSize:    size,
			OriginalPnL:     o.PnL,
			ScaledPnL:       scaled,
			EndingCapital:   end,
		})

		capital = end
	}
	return ledger
}

// Scale validates the parameters, derives the maximum loss and runs the
// risk-sized compounding loop. It returns the ledger and the maximum loss
// used as the risk basis.
func Scale(obs []dataset.Observation, startingCapital, riskPct float64) ([]LedgerRecord, float64, error) {
	if len(obs) == 0 {
		return nil, 0, fmt.Errorf("scaling: empty observation sequence")
	}
	if startingCapital <= 0 {
		return nil, 0, fmt.Errorf("scaling: starting capital must be positive (got %v)", startingCapital)
	}
	if riskPct <= 0 || riskPct > 1 {
		return nil, 0, fmt.Errorf("scaling: risk percentage must be in (0, 1] (got %v)", riskPct)
	}

	maxLoss, err := MaxLoss(obs)
	if err != nil {
		return nil, 0, err
	}

	return Run(obs, startingCapital, RiskSizer{RiskPct: riskPct, MaxLoss: maxLoss}), maxLoss, nil
}

// Unscaled produces the comparison ledger with every day pinned to one
// unit, so OriginalPnL and ScaledPnL coincide.
func Unscaled(obs []dataset.Observation, startingCapital float64) []LedgerRecord {
	return Run(obs, startingCapital, UnitSizer{})
}

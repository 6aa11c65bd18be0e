package scaling

import (
	"math"
	"time"
)

// LedgerRecord is one day of the compounded run. Records chain:
// EndingCapital of day i becomes StartingCapital of day i+1.
type LedgerRecord struct {
	Date            time.Time
	StartingCapital float64
	PositionSize    int
	OriginalPnL     float64
	ScaledPnL       float64
	EndingCapital   float64
}

// Sizer decides how many whole units to put on for a day, given the
// capital available at the start of that day.
type Sizer interface {
	Size(capital float64) int
}

// RiskSizer sizes floor((capital × RiskPct) / MaxLoss) units, clamped
// at zero. A zero-unit day is a legitimate outcome (capital too small
// relative to the worst historical loss), not an error.
type RiskSizer struct {
	RiskPct float64
	MaxLoss float64
}

func (s RiskSizer) Size(capital float64) int {
	n := int(math.Floor((capital * s.RiskPct) / s.MaxLoss))
	if n < 0 {
		return 0
	}
	return n
}

// UnitSizer always sizes one unit. Running the engine with it yields the
// unscaled ledger used for the original-vs-scaled comparison.
type UnitSizer struct{}

func (UnitSizer) Size(float64) int { return 1 }

package scaling

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rustyeddy/scaler/dataset"
)

func obs(pnls ...float64) []dataset.Observation {
	day := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	out := make([]dataset.Observation, 0, len(pnls))
	for i, p := range pnls {
		out = append(out, dataset.Observation{Date: day.AddDate(0, 0, i), PnL: p})
	}
	return out
}

func TestMaxLoss(t *testing.T) {
	t.Parallel()

	ml, err := MaxLoss(obs(100, -200, 150))
	require.NoError(t, err)
	assert.Equal(t, 200.0, ml)

	ml, err = MaxLoss(obs(-50, -300, -10))
	require.NoError(t, err)
	assert.Equal(t, 300.0, ml)
}

func TestMaxLossNoLosingDay(t *testing.T) {
	t.Parallel()

	_, err := MaxLoss(obs(100, 200, 0))
	assert.ErrorIs(t, err, ErrNoRiskBasis)
}

func TestScaleAllZeroPositions(t *testing.T) {
	t.Parallel()

	// Capital too small relative to the worst loss: every day sizes to
	// zero, capital never moves.
	ledger, maxLoss, err := Scale(obs(100, -200, 150), 1000, 0.10)
	require.NoError(t, err)
	assert.Equal(t, 200.0, maxLoss)
	require.Len(t, ledger, 3)

	for _, r := range ledger {
		assert.Equal(t, 0, r.PositionSize)
		assert.Equal(t, 0.0, r.ScaledPnL)
		assert.Equal(t, 1000.0, r.StartingCapital)
		assert.Equal(t, 1000.0, r.EndingCapital)
	}
}

func TestScaleCompounds(t *testing.T) {
	t.Parallel()

	ledger, maxLoss, err := Scale(obs(-50, 100), 10000, 0.10)
	require.NoError(t, err)
	assert.Equal(t, 50.0, maxLoss)
	require.Len(t, ledger, 2)

	assert.Equal(t, 20, ledger[0].PositionSize)
	assert.Equal(t, -1000.0, ledger[0].ScaledPnL)
	assert.Equal(t, 9000.0, ledger[0].EndingCapital)

	assert.Equal(t, 18, ledger[1].PositionSize)
	assert.Equal(t, 1800.0, ledger[1].ScaledPnL)
	assert.Equal(t, 10800.0, ledger[1].EndingCapital)
}

func TestScaleNoLosingDay(t *testing.T) {
	t.Parallel()

	_, _, err := Scale(obs(100, 200, 300), 10000, 0.10)
	assert.ErrorIs(t, err, ErrNoRiskBasis)
}

func TestScaleParamValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		capital float64
		risk    float64
	}{
		{"zero capital", 0, 0.10},
		{"negative capital", -1000, 0.10},
		{"zero risk", 10000, 0},
		{"negative risk", 10000, -0.1},
		{"risk above one", 10000, 1.5},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, _, err := Scale(obs(-50, 100), tt.capital, tt.risk)
			assert.Error(t, err)
			assert.False(t, errors.Is(err, ErrNoRiskBasis))
		})
	}

	_, _, err := Scale(nil, 10000, 0.10)
	assert.Error(t, err)
}

func TestRunChainingAndConservation(t *testing.T) {
	t.Parallel()

	in := obs(120, -80, 45, -260, 310, 0, -15, 90, -120, 200)
	ledger, _, err := Scale(in, 25000, 0.25)
	require.NoError(t, err)
	require.Len(t, ledger, len(in))

	assert.Equal(t, 25000.0, ledger[0].StartingCapital)
	for i, r := range ledger {
		assert.GreaterOrEqual(t, r.PositionSize, 0)
		assert.Equal(t, r.OriginalPnL*float64(r.PositionSize), r.ScaledPnL)
		assert.Equal(t, r.StartingCapital+r.ScaledPnL, r.EndingCapital)
		if i > 0 {
			assert.Equal(t, ledger[i-1].EndingCapital, r.StartingCapital)
		}
	}
}

func TestRunDeterminism(t *testing.T) {
	t.Parallel()

	in := obs(120, -80, 45, -260, 310, -15, 90)
	a, _, err := Scale(in, 12345.67, 0.13)
	require.NoError(t, err)
	b, _, err := Scale(in, 12345.67, 0.13)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestRunContinuesAfterRuin(t *testing.T) {
	t.Parallel()

	// Full risk and a first day that loses exactly the maximum: capital
	// hits zero and every later day still emits a zero-position record.
	ledger, _, err := Scale(obs(-100, 50, -100, 75), 100, 1.0)
	require.NoError(t, err)
	require.Len(t, ledger, 4)

	assert.Equal(t, 1, ledger[0].PositionSize)
	assert.Equal(t, 0.0, ledger[0].EndingCapital)

	for _, r := range ledger[1:] {
		assert.Equal(t, 0, r.PositionSize)
		assert.Equal(t, 0.0, r.ScaledPnL)
		assert.Equal(t, 0.0, r.EndingCapital)
	}
}

func TestUnscaled(t *testing.T) {
	t.Parallel()

	in := obs(100, -200, 150)
	ledger := Unscaled(in, 1000)
	require.Len(t, ledger, 3)

	for i, r := range ledger {
		assert.Equal(t, 1, r.PositionSize)
		assert.Equal(t, in[i].PnL, r.ScaledPnL)
	}
	assert.Equal(t, 1100.0, ledger[0].EndingCapital)
	assert.Equal(t, 900.0, ledger[1].EndingCapital)
	assert.Equal(t, 1050.0, ledger[2].EndingCapital)
}

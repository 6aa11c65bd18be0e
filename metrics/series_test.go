package metrics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rustyeddy/scaler/scaling"
)

func ledgerOn(dates []time.Time, pnls []float64) []scaling.LedgerRecord {
	capital := 1000.0
	out := make([]scaling.LedgerRecord, 0, len(dates))
	for i := range dates {
		end := capital + pnls[i]
		out = append(out, scaling.LedgerRecord{
			Date:            dates[i],
			StartingCapital: capital,
			PositionSize:    1,
			OriginalPnL:     pnls[i],
			ScaledPnL:       pnls[i],
			EndingCapital:   end,
		})
		capital = end
	}
	return out
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestEquity(t *testing.T) {
	t.Parallel()

	ledger := ledgerOn(
		[]time.Time{day(2024, 1, 2), day(2024, 1, 3)},
		[]float64{100, -50},
	)
	eq := Equity(ledger)
	require.Len(t, eq, 2)
	assert.Equal(t, day(2024, 1, 2), eq[0].Date)
	assert.InDelta(t, 1100.0, eq[0].Equity, 1e-9)
	assert.InDelta(t, 1050.0, eq[1].Equity, 1e-9)
}

func TestDrawdown(t *testing.T) {
	t.Parallel()

	ledger := ledgerOn(
		[]time.Time{day(2024, 1, 2), day(2024, 1, 3), day(2024, 1, 4), day(2024, 1, 5)},
		[]float64{100, -200, 50, 300},
	)
	// Equity: 1100, 900, 950, 1250. Peak: 1100 until day 4.
	dd := Drawdown(ledger)
	require.Len(t, dd, 4)

	assert.InDelta(t, 0.0, dd[0].Abs, 1e-9)
	assert.InDelta(t, 200.0, dd[1].Abs, 1e-9)
	assert.InDelta(t, 200.0/1100.0, dd[1].Pct, 1e-9)
	assert.InDelta(t, 150.0, dd[2].Abs, 1e-9)
	assert.InDelta(t, 0.0, dd[3].Abs, 1e-9)
}

func TestWeeklyMondayBuckets(t *testing.T) {
	t.Parallel()

	// Thu Jan 4 and Fri Jan 5 fall in the week of Mon Jan 1; Sun Jan 7
	// still belongs to that week; Mon Jan 8 starts the next one.
	ledger := ledgerOn(
		[]time.Time{day(2024, 1, 4), day(2024, 1, 5), day(2024, 1, 7), day(2024, 1, 8), day(2024, 1, 10)},
		[]float64{100, -30, 20, 500, -80},
	)

	weekly := Weekly(ledger)
	require.Len(t, weekly, 2)

	assert.Equal(t, day(2024, 1, 1), weekly[0].WeekStart)
	assert.InDelta(t, 90.0, weekly[0].PnL, 1e-9)
	assert.Equal(t, day(2024, 1, 8), weekly[1].WeekStart)
	assert.InDelta(t, 420.0, weekly[1].PnL, 1e-9)
}

func TestWeeklyEmpty(t *testing.T) {
	t.Parallel()

	assert.Empty(t, Weekly(nil))
}

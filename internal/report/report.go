// Package report renders a completed run as a sectioned plain-text
// report for the CLI.
package report

import (
	"fmt"
	"io"
	"time"

	"github.com/rustyeddy/scaler/metrics"
	"github.com/rustyeddy/scaler/session"
)

func PrintRun(w io.Writer, r *session.Results) {
	fmt.Fprintln(w, "==================================================")
	fmt.Fprintln(w, " Strategy Scaling Result")
	fmt.Fprintln(w, "==================================================")

	fmt.Fprintf(w, "Run ID:         %s\n", r.RunID)
	fmt.Fprintf(w, "Created:        %s\n", r.Created.Format(time.RFC3339))
	fmt.Fprintf(w, "Days:           %d\n", len(r.Scaled))
	fmt.Fprintf(w, "Start Capital:  %.2f\n", r.Params.StartingCapital)
	fmt.Fprintf(w, "Risk per Day:   %.2f%%\n", r.Params.RiskPct*100)
	fmt.Fprintf(w, "Max Loss Used:  %.2f\n", r.MaxLoss)

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Original Strategy")
	fmt.Fprintln(w, "--------------------------------------------------")
	printSummary(w, r.OriginalSummary)

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Scaled Strategy")
	fmt.Fprintln(w, "--------------------------------------------------")
	printSummary(w, r.ScaledSummary)
	if len(r.Scaled) > 0 {
		fmt.Fprintf(w, "Final Capital:  %.2f\n", r.Scaled[len(r.Scaled)-1].EndingCapital)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Position Sizing")
	fmt.Fprintln(w, "--------------------------------------------------")
	fmt.Fprintf(w, "Max Position:   %d\n", r.ScaledSummary.MaxPositionSize)
	fmt.Fprintf(w, "Avg Position:   %.2f\n", r.ScaledSummary.AvgPositionSize)
	fmt.Fprintf(w, "Min Position:   %d\n", r.ScaledSummary.MinPositionSize)

	weekly := metrics.Weekly(r.Scaled)
	if len(weekly) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Weekly P&L (scaled)")
		fmt.Fprintln(w, "--------------------------------------------------")
		for _, wk := range weekly {
			fmt.Fprintf(w, "%s  %+12.2f\n", wk.WeekStart.Format("2006-01-02"), wk.PnL)
		}
	}

	fmt.Fprintln(w)
}

func printSummary(w io.Writer, s metrics.Summary) {
	fmt.Fprintf(w, "Total P&L:      %.2f\n", s.TotalPnL)
	fmt.Fprintf(w, "Return:         %.2f%%\n", s.TotalReturnPct*100)
	fmt.Fprintf(w, "Win Rate:       %.2f%%\n", s.WinRate*100)
	fmt.Fprintf(w, "Avg Win:        %.2f\n", s.AvgWin)
	fmt.Fprintf(w, "Avg Loss:       %.2f\n", s.AvgLoss)
	fmt.Fprintf(w, "Max Drawdown:   %.2f (%.2f%%)\n", s.MaxDrawdownAbs, s.MaxDrawdownPct*100)
}

// Package session holds the run-scoped state of one calculation
// workflow: the current dataset, the current parameters, and the last
// successfully computed results. The engine and metrics underneath stay
// pure; the session is the only stateful object.
package session

import (
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/rustyeddy/scaler/dataset"
	"github.com/rustyeddy/scaler/metrics"
	"github.com/rustyeddy/scaler/scaling"
)

// Params are the two scalar inputs of a calculation.
type Params struct {
	StartingCapital float64
	RiskPct         float64
}

// Results is one completed calculation: both ledger variants plus their
// summaries. Results are immutable once built; a parameter change always
// recomputes from day 0.
type Results struct {
	RunID   string
	Created time.Time
	Params  Params
	MaxLoss float64

	Scaled   []scaling.LedgerRecord
	Original []scaling.LedgerRecord

	ScaledSummary   metrics.Summary
	OriginalSummary metrics.Summary
}

// Session carries the current dataset and the last good Results. A
// failed recalculation leaves the previous Results untouched so a
// display can keep showing them alongside the error.
type Session struct {
	observations []dataset.Observation
	warnings     []dataset.Warning

	last    *Results
	lastErr error
}

func New() *Session {
	return &Session{}
}

// Load replaces the current dataset and clears any prior results; they
// were computed against different data.
func (s *Session) Load(res *dataset.Result) {
	s.observations = res.Observations
	s.warnings = res.Warnings
	s.last = nil
	s.lastErr = nil
}

func (s *Session) Observations() []dataset.Observation { return s.observations }
func (s *Session) Warnings() []dataset.Warning         { return s.warnings }

// Last returns the most recent successful Results, which survive a
// failed Recalculate.
func (s *Session) Last() *Results { return s.last }

// LastErr returns the error of the most recent Recalculate, nil after a
// success.
func (s *Session) LastErr() error { return s.lastErr }

// Recalculate runs both ledger variants over the loaded dataset. On
// success the new Results replace the previous ones; on failure the
// previous Results are kept and the error is retained for display.
func (s *Session) Recalculate(p Params) (*Results, error) {
	if len(s.observations) == 0 {
		s.lastErr = fmt.Errorf("session: no dataset loaded")
		return nil, s.lastErr
	}

	scaled, maxLoss, err := scaling.Scale(s.observations, p.StartingCapital, p.RiskPct)
	if err != nil {
		s.lastErr = err
		return nil, err
	}

	r := &Results{
		RunID:    ulid.Make().String(),
		Created:  time.Now().UTC(),
		Params:   p,
		MaxLoss:  maxLoss,
		Scaled:   scaled,
		Original: scaling.Unscaled(s.observations, p.StartingCapital),
	}
	r.ScaledSummary = metrics.Compute(r.Scaled, p.StartingCapital)
	r.OriginalSummary = metrics.Compute(r.Original, p.StartingCapital)

	s.last = r
	s.lastErr = nil
	return r, nil
}

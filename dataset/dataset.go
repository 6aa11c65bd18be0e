// Package dataset normalizes raw delimited text into an ordered sequence
// of daily (date, P&L) observations. It tolerates header variance,
// delimiter style and currency-formatted numbers, the way data arrives
// when pasted out of a spreadsheet or a query tool.
package dataset

import (
	"fmt"
	"time"
)

// Observation is one normalized input row. Order of observations equals
// input row order; the source is assumed chronological oldest→newest and
// is never re-sorted.
type Observation struct {
	Date time.Time
	PnL  float64
}

// Warning records a dropped row. Row is the 1-based line number in the
// raw input, counting the header if one was present.
type Warning struct {
	Row    int
	Reason string
}

// Result is the outcome of a successful parse.
type Result struct {
	Observations []Observation
	Warnings     []Warning
	Delimiter    rune
	HasHeader    bool
}

// ParseError is batch-fatal: the input as a whole is unusable and no
// partial results are produced.
type ParseError struct {
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse: %s", e.Reason)
}

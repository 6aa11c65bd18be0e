package dataset

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Parse normalizes a raw text block, auto-detecting the delimiter from
// the first non-empty line.
func Parse(text string) (*Result, error) {
	return parse(text, 0)
}

// ParseWith is Parse with an explicit delimiter, skipping auto-detection.
func ParseWith(text string, delim rune) (*Result, error) {
	return parse(text, delim)
}

func parse(text string, delim rune) (*Result, error) {
	if strings.TrimSpace(text) == "" {
		return nil, &ParseError{Reason: "input is empty"}
	}

	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")

	if delim == 0 {
		first := ""
		for _, ln := range lines {
			if strings.TrimSpace(ln) != "" {
				first = ln
				break
			}
		}
		d, ok := Detect(first)
		if !ok {
			return nil, &ParseError{Reason: "no column structure detected: expected comma, tab or semicolon separated columns"}
		}
		delim = d
	}

	res := &Result{Delimiter: delim}
	sawDataRow := false

	for i, ln := range lines {
		row := i + 1
		if strings.TrimSpace(ln) == "" {
			continue
		}

		fields := strings.Split(ln, string(delim))
		if len(fields) < 2 {
			res.Warnings = append(res.Warnings, Warning{Row: row, Reason: "missing P&L column"})
			continue
		}

		// Header detection is positional: if the first content row's
		// second field is not a number, it is a header and is dropped.
		// Header text is never used to reorder columns.
		if !sawDataRow && !res.HasHeader {
			if _, err := parsePnL(fields[1]); err != nil {
				res.HasHeader = true
				continue
			}
		}
		sawDataRow = true

		date, err := parseDate(fields[0])
		if err != nil {
			res.Warnings = append(res.Warnings, Warning{Row: row, Reason: err.Error()})
			continue
		}

		pnl, err := parsePnL(fields[1])
		if err != nil {
			res.Warnings = append(res.Warnings, Warning{Row: row, Reason: fmt.Sprintf("bad P&L value: %v", err)})
			continue
		}

		res.Observations = append(res.Observations, Observation{Date: date, PnL: pnl})
	}

	if len(res.Observations) == 0 {
		return nil, &ParseError{Reason: "no valid data rows"}
	}
	return res, nil
}

// pnlCleaner strips currency symbols, thousands separators and stray
// whitespace before numeric parsing.
var pnlCleaner = strings.NewReplacer(
	"$", "", "€", "", "£", "",
	",", "", " ", "", " ", "",
)

// parsePnL parses a signed decimal P&L field. Accounting-style
// parenthesized negatives like (123.45) are honored. Parsing goes through
// decimal so cleanup of currency formatting stays exact.
func parsePnL(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty value")
	}

	neg := false
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		neg = true
		s = s[1 : len(s)-1]
	}

	s = pnlCleaner.Replace(s)
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("not a number: %q", s)
	}
	if neg {
		d = d.Neg()
	}
	return d.InexactFloat64(), nil
}

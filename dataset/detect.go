package dataset

import "strings"

// A delimiterStrategy recognizes one delimiter style on a sample line.
// Strategies are tried in priority order rather than nested conditionals
// so each can be exercised on its own.
type delimiterStrategy struct {
	Name  string
	Delim rune
}

// Tab outranks semicolon outranks comma: tab-delimited paste from
// spreadsheets and query tools is the primary supported workflow, and a
// tab-delimited line may still contain commas inside currency values.
var delimiterStrategies = []delimiterStrategy{
	{Name: "tab", Delim: '\t'},
	{Name: "semicolon", Delim: ';'},
	{Name: "comma", Delim: ','},
}

// Detect inspects a sample line (normally the first non-empty line of the
// input) and picks the delimiter with the highest presence count. Ties go
// to the higher-priority strategy. ok is false when no candidate
// delimiter appears at all.
func Detect(line string) (delim rune, ok bool) {
	best := 0
	for _, s := range delimiterStrategies {
		if n := strings.Count(line, string(s.Delim)); n > best {
			best = n
			delim = s.Delim
		}
	}
	return delim, best > 0
}

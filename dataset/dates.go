package dataset

import (
	"fmt"
	"strings"
	"time"
)

// dateLayouts are tried in order. ISO forms first, then month/day/year
// (preferred for ambiguous slash dates, matching the primary spreadsheet
// workflow), then spelled-out months and timestamp forms.
var dateLayouts = []string{
	"2006-1-2",
	"2006/1/2",
	"1/2/2006",
	"1-2-2006",
	"1/2/06",
	"Jan 2, 2006",
	"2 Jan 2006",
	"January 2, 2006",
	"2006-1-2 15:04:05",
	time.RFC3339,
}

// parseDate accepts the common regional date spellings. The result keeps
// only the calendar day; any time-of-day component is dropped.
func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("empty date")
	}
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, s)
		if err != nil {
			continue
		}
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", s)
}

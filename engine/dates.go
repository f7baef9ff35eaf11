package engine

import (
	"strings"
	"time"
)

// Layouts seen in exported workpack sheets; tried in order.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"02/01/2006",
	"01-02-06",
	"2006/01/02",
}

// WorkpackPeriod is the scheduled window of one work package; Days is
// inclusive of both the start and end day.
type WorkpackPeriod struct {
	Start time.Time
	End   time.Time
	Days  int
}

// parseDate tries the known layouts against a date cell.
func parseDate(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if ts, err := time.Parse(layout, raw); err == nil {
			return ts, true
		}
	}
	return time.Time{}, false
}

// extractPeriod reads the start/end dates from the first data row (the
// columns carry the same value on every row). Missing or unparseable dates
// return a zero period and a warning; they never fail the run.
func extractPeriod(ds Dataset, idx columnIndex, cols ColumnMap) (WorkpackPeriod, string) {
	startCol := idx.lookup(cols.StartDate)
	endCol := idx.lookup(cols.EndDate)
	if startCol < 0 || endCol < 0 {
		if cols.StartDate == "" && cols.EndDate == "" {
			return WorkpackPeriod{}, ""
		}
		return WorkpackPeriod{}, "start/end date columns not found; per-day figures disabled"
	}
	if len(ds.Rows) == 0 {
		return WorkpackPeriod{}, ""
	}

	start, okStart := parseDate(cell(ds.Rows[0], startCol))
	end, okEnd := parseDate(cell(ds.Rows[0], endCol))
	if !okStart || !okEnd {
		return WorkpackPeriod{}, "could not parse workpack start/end dates; per-day figures disabled"
	}
	if end.Before(start) {
		return WorkpackPeriod{}, "workpack end date precedes start date; per-day figures disabled"
	}

	days := int(end.Sub(start).Hours()/24) + 1
	return WorkpackPeriod{Start: start, End: end, Days: days}, ""
}

// Package engine computes the adjusted man-hour total for one aircraft
// maintenance work package and reconciles its task identifiers against
// reference master data. It is a pure in-memory computation layer: loaders
// hand it a tabular dataset plus pre-built lookup tables, and it returns a
// structured Result. Nothing here touches files or the network.
package engine

import (
	"fmt"
	"strings"
)

// Dataset is the raw tabular input for one work package: a header row and
// the data rows below it, all as text cells.
type Dataset struct {
	Headers []string
	Rows    [][]string
}

// ColumnMap names the dataset columns the engine reads. SeqNo, Title and
// PlannedMhrs are mandatory; the rest are optional features that degrade to
// warnings when their column is missing.
type ColumnMap struct {
	SeqNo       string
	Title       string
	PlannedMhrs string

	SpecialCode string
	Label       string
	StartDate   string
	EndDate     string

	ToolName   string
	ToolType   string
	ToolPartNo string
	TotalQty   string
	AltQty     string
}

// columnIndex maps normalized header text to its column position. Matching
// is case-insensitive and ignores surrounding whitespace, the same way
// uploaded sheets are matched elsewhere.
type columnIndex map[string]int

func indexColumns(headers []string) columnIndex {
	idx := make(columnIndex, len(headers))
	for i, h := range headers {
		norm := normalizeHeader(h)
		if _, seen := idx[norm]; !seen {
			idx[norm] = i
		}
	}
	return idx
}

func normalizeHeader(h string) string {
	return strings.ToLower(strings.TrimSpace(h))
}

// lookup returns the position of a configured column, or -1 when the name
// is unconfigured or absent from the header row.
func (idx columnIndex) lookup(name string) int {
	if strings.TrimSpace(name) == "" {
		return -1
	}
	if i, ok := idx[normalizeHeader(name)]; ok {
		return i
	}
	return -1
}

// cell returns the trimmed value of a column in a row, or "" when the row
// is short or the column absent.
func cell(row []string, col int) string {
	if col < 0 || col >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[col])
}

// validateRequired checks that every mandatory column is present. It is the
// only fatal check in a run: without these columns no row computation is
// meaningful.
func validateRequired(idx columnIndex, cols ColumnMap) error {
	var missing []string
	for _, c := range []struct{ label, name string }{
		{"sequence key", cols.SeqNo},
		{"title", cols.Title},
		{"planned man-hours", cols.PlannedMhrs},
	} {
		if strings.TrimSpace(c.name) == "" {
			missing = append(missing, fmt.Sprintf("%s (unconfigured)", c.label))
		} else if idx.lookup(c.name) < 0 {
			missing = append(missing, fmt.Sprintf("%s (%q)", c.label, c.name))
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("dataset is missing required columns: %s", strings.Join(missing, ", "))
	}
	return nil
}

// LineItem is one dataset row augmented with its derived values. Rows live
// only within a single processing run.
type LineItem struct {
	Index       int // 0-based position in the dataset
	SeqKey      string
	Title       string
	SpecialCode string

	TaskID         string
	CheckReference bool

	BaseHours     float64
	Coefficient   float64
	AdjustedHours float64
}

// TaskRef is a (sequence key, identifier) pair reported by reconciliation.
type TaskRef struct {
	SeqKey string
	TaskID string
}

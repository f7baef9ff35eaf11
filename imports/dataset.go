// Package imports loads workpack datasets and lookup tables from Excel
// workbooks into the in-memory structures the engine consumes. All parsing
// stays here; the engine itself never touches files.
package imports

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"workpackengine/engine"
)

// LoadDataset reads the first sheet of an xlsx workbook into a Dataset.
// The first row is the header row.
func LoadDataset(path string) (engine.Dataset, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return engine.Dataset{}, fmt.Errorf("open workpack file: %w", err)
	}
	defer f.Close()

	sheetName := f.GetSheetName(0)
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return engine.Dataset{}, fmt.Errorf("read sheet %q: %w", sheetName, err)
	}
	if len(rows) < 2 {
		return engine.Dataset{}, fmt.Errorf("file must contain a header row and at least one data row")
	}

	return engine.Dataset{Headers: rows[0], Rows: rows[1:]}, nil
}

// headerIndex maps normalized header text to its column position.
func headerIndex(headers []string) map[string]int {
	idx := make(map[string]int, len(headers))
	for i, h := range headers {
		norm := strings.ToLower(strings.TrimSpace(h))
		if _, seen := idx[norm]; !seen {
			idx[norm] = i
		}
	}
	return idx
}

func findColumn(idx map[string]int, name string) int {
	if i, ok := idx[strings.ToLower(strings.TrimSpace(name))]; ok {
		return i
	}
	return -1
}

func cellAt(row []string, col int) string {
	if col < 0 || col >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[col])
}

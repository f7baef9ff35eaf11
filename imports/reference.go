package imports

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/xuri/excelize/v2"

	"workpackengine/tables"
)

// ReferenceLayout names the sheets and columns of the reference workbook.
type ReferenceLayout struct {
	TaskSheet  string
	TaskColumn string
	EOSheet    string
	EOColumn   string
	EOPrefix   string
}

// LoadReferenceSets reads the task and EO identifier sets from the
// reference workbook.
func LoadReferenceSets(path string, layout ReferenceLayout) (*tables.ReferenceSets, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open reference file: %w", err)
	}
	defer f.Close()

	taskIDs, err := readIDColumn(f, layout.TaskSheet, layout.TaskColumn)
	if err != nil {
		return nil, fmt.Errorf("task reference: %w", err)
	}
	eoIDs, err := readIDColumn(f, layout.EOSheet, layout.EOColumn)
	if err != nil {
		return nil, fmt.Errorf("eo reference: %w", err)
	}

	return tables.NewReferenceSets(taskIDs, eoIDs, layout.EOPrefix), nil
}

func readIDColumn(f *excelize.File, sheetName, columnName string) ([]string, error) {
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheetName, err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	col := findColumn(headerIndex(rows[0]), columnName)
	if col < 0 {
		return nil, fmt.Errorf("column %q not found in sheet %q", columnName, sheetName)
	}

	var ids []string
	for _, row := range rows[1:] {
		if id := cellAt(row, col); id != "" {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

// LoadIgnoreList reads the tool-control ignore list: one item per line,
// blank lines and '#' comments skipped. A missing file simply means
// nothing is ignored.
func LoadIgnoreList(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("open ignore list: %w", err)
	}
	defer file.Close()

	var items []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		items = append(items, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read ignore list: %w", err)
	}
	return items, nil
}

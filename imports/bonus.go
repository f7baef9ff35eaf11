package imports

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"workpackengine/tables"
)

// BonusColumns names the columns of a bonus source sheet.
type BonusColumns struct {
	Primary   string
	Secondary string
	Amount    string
	Active    string // optional; rows default to active when absent
}

// DefaultBonusColumns returns the conventional bonus sheet layout.
func DefaultBonusColumns() BonusColumns {
	return BonusColumns{
		Primary:   "a_type",
		Secondary: "a_check",
		Amount:    "bonus_hours",
		Active:    "is_active",
	}
}

// LoadBonusSources scans every sheet of the bonus workbook and returns one
// source per sheet that carries the expected columns, named after the
// sheet. Sheet names themselves are irrelevant; sheets without the required
// columns are not bonus sources and are skipped. Rows with a non-numeric
// amount are dropped.
func LoadBonusSources(path string, cols BonusColumns) ([]tables.BonusSource, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open bonus file: %w", err)
	}
	defer f.Close()

	var sources []tables.BonusSource
	for _, sheetName := range f.GetSheetList() {
		rows, err := f.GetRows(sheetName)
		if err != nil {
			return nil, fmt.Errorf("read sheet %q: %w", sheetName, err)
		}
		if len(rows) < 2 {
			continue
		}

		idx := headerIndex(rows[0])
		primaryCol := findColumn(idx, cols.Primary)
		secondaryCol := findColumn(idx, cols.Secondary)
		amountCol := findColumn(idx, cols.Amount)
		if primaryCol < 0 || secondaryCol < 0 || amountCol < 0 {
			continue
		}
		activeCol := -1
		if cols.Active != "" {
			activeCol = findColumn(idx, cols.Active)
		}

		source := tables.BonusSource{Name: sheetName}
		for _, row := range rows[1:] {
			amount, err := strconv.ParseFloat(cellAt(row, amountCol), 64)
			if err != nil {
				continue
			}
			source.Rows = append(source.Rows, tables.BonusRow{
				Primary:   cellAt(row, primaryCol),
				Secondary: cellAt(row, secondaryCol),
				Amount:    amount,
				Active:    activeCol < 0 || parseActive(cellAt(row, activeCol)),
			})
		}
		sources = append(sources, source)
	}
	return sources, nil
}

// parseActive interprets an activity flag cell. Empty cells count as
// active; only an explicit negative turns a row off.
func parseActive(raw string) bool {
	switch strings.ToLower(raw) {
	case "", "true", "yes", "y", "1":
		return true
	default:
		return false
	}
}

package tables

import "strings"

// BonusRow is one contribution inside a bonus source. Inactive rows are
// ignored when the table is built.
type BonusRow struct {
	Primary   string
	Secondary string
	Amount    float64
	Active    bool
}

// BonusSource is one independent lookup source (typically one sheet of the
// bonus workbook). Several sources may contribute to the same key pair.
type BonusSource struct {
	Name string
	Rows []BonusRow
}

// SourceBonus is one line of the per-source audit breakdown.
type SourceBonus struct {
	Source string
	Amount float64
}

// BonusTable accumulates bonus hours per (primary, secondary) key pair
// across every source. Contributions for the same pair sum; they are never
// overwritten. The original sources are retained for audit breakdowns.
type BonusTable struct {
	totals  map[string]map[string]float64 // secondary -> primary -> sum
	sources []BonusSource
}

// NewBonusTable builds the accumulated table from the given sources.
// Rows with a blank primary or secondary key are skipped.
func NewBonusTable(sources []BonusSource) *BonusTable {
	t := &BonusTable{
		totals:  make(map[string]map[string]float64),
		sources: sources,
	}
	for _, src := range sources {
		for _, row := range src.Rows {
			primary, secondary, ok := normalizeBonusKeys(row)
			if !ok {
				continue
			}
			byPrimary, exists := t.totals[secondary]
			if !exists {
				byPrimary = make(map[string]float64)
				t.totals[secondary] = byPrimary
			}
			byPrimary[primary] += row.Amount
		}
	}
	return t
}

// TotalFor returns the accumulated bonus for a key pair, or 0 when either
// key is absent. A miss is not an error.
func (t *BonusTable) TotalFor(primary, secondary string) float64 {
	byPrimary, ok := t.totals[strings.TrimSpace(secondary)]
	if !ok {
		return 0
	}
	return byPrimary[strings.TrimSpace(primary)]
}

// BreakdownFor re-scans the original sources and reports, per contributing
// source, the amount that matched the key pair. It exists for audit output
// only; the numeric total always comes from the accumulated table so the
// two views cannot drift apart.
func (t *BonusTable) BreakdownFor(primary, secondary string) []SourceBonus {
	primary = strings.TrimSpace(primary)
	secondary = strings.TrimSpace(secondary)

	var breakdown []SourceBonus
	for _, src := range t.sources {
		var amount float64
		matched := false
		for _, row := range src.Rows {
			p, s, ok := normalizeBonusKeys(row)
			if ok && p == primary && s == secondary {
				amount += row.Amount
				matched = true
			}
		}
		if matched {
			breakdown = append(breakdown, SourceBonus{Source: src.Name, Amount: amount})
		}
	}
	return breakdown
}

// Entries returns the number of accumulated (primary, secondary) pairs.
func (t *BonusTable) Entries() int {
	n := 0
	for _, byPrimary := range t.totals {
		n += len(byPrimary)
	}
	return n
}

func normalizeBonusKeys(row BonusRow) (primary, secondary string, ok bool) {
	if !row.Active {
		return "", "", false
	}
	primary = strings.TrimSpace(row.Primary)
	secondary = strings.TrimSpace(row.Secondary)
	if primary == "" || secondary == "" {
		return "", "", false
	}
	return primary, secondary, true
}

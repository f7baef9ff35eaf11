package tables

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func bonusTestSources() []BonusSource {
	return []BonusSource{
		{
			Name: "CabinMods",
			Rows: []BonusRow{
				{Primary: "B787", Secondary: "A06", Amount: 10.0, Active: true},
				{Primary: "B787", Secondary: "C02", Amount: 4.0, Active: true},
				{Primary: "A320", Secondary: "A06", Amount: 3.0, Active: true},
			},
		},
		{
			Name: "AvionicsUpgrades",
			Rows: []BonusRow{
				{Primary: "B787", Secondary: "A06", Amount: 5.0, Active: true},
				{Primary: "B787", Secondary: "A06", Amount: 2.0, Active: false},
			},
		},
	}
}

func TestBonusTable_TotalFor(t *testing.T) {
	table := NewBonusTable(bonusTestSources())

	tests := []struct {
		name      string
		primary   string
		secondary string
		expect    float64
	}{
		{"accumulates across sources", "B787", "A06", 15.0},
		{"single source pair", "B787", "C02", 4.0},
		{"other primary", "A320", "A06", 3.0},
		{"unknown primary", "B737", "A06", 0},
		{"unknown secondary", "B787", "D01", 0},
		{"trims keys", " B787 ", " A06 ", 15.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := table.TotalFor(tt.primary, tt.secondary)
			if got != tt.expect {
				t.Errorf("TotalFor(%q, %q) = %v, want %v", tt.primary, tt.secondary, got, tt.expect)
			}
		})
	}
}

// Accumulation must be order independent: processing sources in any order
// yields the same totals.
func TestBonusTable_OrderIndependent(t *testing.T) {
	sources := bonusTestSources()
	reversed := []BonusSource{sources[1], sources[0]}

	a := NewBonusTable(sources)
	b := NewBonusTable(reversed)

	pairs := [][2]string{{"B787", "A06"}, {"B787", "C02"}, {"A320", "A06"}}
	for _, p := range pairs {
		if a.TotalFor(p[0], p[1]) != b.TotalFor(p[0], p[1]) {
			t.Errorf("TotalFor(%q, %q) depends on source order", p[0], p[1])
		}
	}
	if a.Entries() != b.Entries() {
		t.Errorf("Entries() depends on source order: %d vs %d", a.Entries(), b.Entries())
	}
}

func TestBonusTable_InactiveRowsSkipped(t *testing.T) {
	table := NewBonusTable([]BonusSource{{
		Name: "Only",
		Rows: []BonusRow{
			{Primary: "B787", Secondary: "A06", Amount: 8.0, Active: false},
		},
	}})

	if got := table.TotalFor("B787", "A06"); got != 0 {
		t.Errorf("inactive row contributed: got %v, want 0", got)
	}
	if got := table.Entries(); got != 0 {
		t.Errorf("Entries() = %d, want 0", got)
	}
}

func TestBonusTable_BlankKeysSkipped(t *testing.T) {
	table := NewBonusTable([]BonusSource{{
		Name: "Only",
		Rows: []BonusRow{
			{Primary: "", Secondary: "A06", Amount: 8.0, Active: true},
			{Primary: "B787", Secondary: "  ", Amount: 8.0, Active: true},
		},
	}})

	if got := table.Entries(); got != 0 {
		t.Errorf("Entries() = %d, want 0", got)
	}
}

func TestBonusTable_BreakdownFor(t *testing.T) {
	table := NewBonusTable(bonusTestSources())

	got := table.BreakdownFor("B787", "A06")
	want := []SourceBonus{
		{Source: "CabinMods", Amount: 10.0},
		{Source: "AvionicsUpgrades", Amount: 5.0},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("BreakdownFor mismatch (-want +got):\n%s", diff)
	}

	// The breakdown must sum to the accumulated total.
	var sum float64
	for _, b := range got {
		sum += b.Amount
	}
	if sum != table.TotalFor("B787", "A06") {
		t.Errorf("breakdown sum %v != accumulated total %v", sum, table.TotalFor("B787", "A06"))
	}
}

func TestBonusTable_BreakdownForMiss(t *testing.T) {
	table := NewBonusTable(bonusTestSources())
	if got := table.BreakdownFor("B737", "A06"); got != nil {
		t.Errorf("BreakdownFor miss = %v, want nil", got)
	}
}

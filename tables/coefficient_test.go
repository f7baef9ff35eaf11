package tables

import (
	"fmt"
	"testing"
)

func testCoefficientTable() *CoefficientTable {
	return NewCoefficientTable(CoefficientConfig{
		Prefixes: map[string]float64{
			"2": 2.0,
			"3": 2.0,
			"4": 1.0,
		},
		Default:         1.0,
		SkipMatches:     []string{"NC-", "DEFER"},
		SkipCoefficient: 1.0,
	})
}

func TestCoefficientTable_Resolve(t *testing.T) {
	table := testCoefficientTable()

	tests := []struct {
		name   string
		seqKey string
		taskID string
		expect float64
	}{
		{"mapped prefix 2", "2.1", "", 2.0},
		{"mapped prefix 2 high minor", "2.39", "", 2.0},
		{"mapped prefix 3", "3.456", "", 2.0},
		{"mapped prefix 4", "4.78", "", 1.0},
		{"unmapped prefix", "7.1", "", 1.0},
		{"double digit prefix", "10.5", "", 1.0},
		{"blank key falls back to default", "", "", 1.0},
		{"skip list overrides prefix", "2.5", "NC-2024-001", 1.0},
		{"skip list is case insensitive", "3.5", "nc-2024-002", 1.0},
		{"skip list substring match", "2.9", "TASK-DEFERRED-01", 1.0},
		{"no skip match keeps prefix coefficient", "2.5", "24-045-00", 2.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := table.Resolve(tt.seqKey, tt.taskID)
			if got != tt.expect {
				t.Errorf("Resolve(%q, %q) = %v, want %v", tt.seqKey, tt.taskID, got, tt.expect)
			}
		})
	}
}

// The resolver must depend only on the major prefix, never on the minor
// version.
func TestCoefficientTable_PrefixOnly(t *testing.T) {
	table := testCoefficientTable()

	for _, prefix := range []string{"2", "3", "4", "9"} {
		want := table.Resolve(prefix, "")
		for _, minor := range []string{"1", "5", "99", "456"} {
			seqKey := fmt.Sprintf("%s.%s", prefix, minor)
			if got := table.Resolve(seqKey, ""); got != want {
				t.Errorf("Resolve(%q) = %v, want %v (same as prefix %q)", seqKey, got, want, prefix)
			}
		}
	}
}

func TestCoefficientTable_ZeroDefaultMeansOne(t *testing.T) {
	table := NewCoefficientTable(CoefficientConfig{})
	if got := table.Resolve("1.1", ""); got != 1.0 {
		t.Errorf("Resolve with empty config = %v, want 1.0", got)
	}
	if got := table.Default(); got != 1.0 {
		t.Errorf("Default() = %v, want 1.0", got)
	}
}

func TestCoefficientTable_SkipOverrideValue(t *testing.T) {
	table := NewCoefficientTable(CoefficientConfig{
		Prefixes:        map[string]float64{"3": 2.5},
		SkipMatches:     []string{"rii"},
		SkipCoefficient: 0.5,
	})

	if got := table.Resolve("3.1", "RII-CHECK"); got != 0.5 {
		t.Errorf("skip override = %v, want 0.5", got)
	}
	if got := table.Resolve("3.1", ""); got != 2.5 {
		t.Errorf("prefix lookup = %v, want 2.5", got)
	}
}

package engine

import (
	"testing"

	"workpackengine/tables"
)

func TestClassify(t *testing.T) {
	policies := tables.NewPolicyTable(map[string]tables.PolicyEntry{
		"2": {Processing: tables.PolicyInclude, Extraction: tables.ExtractBeforeParen},
		"5": {Processing: tables.PolicyExclude},
		"6": {Processing: tables.PolicySkipReference, Extraction: tables.ExtractVerbatim},
	})

	tests := []struct {
		name   string
		seqKey string
		expect Classification
	}{
		{
			"include with paren rule",
			"2.14",
			Classification{Process: true, CheckReference: true, Rule: tables.ExtractBeforeParen},
		},
		{
			"excluded prefix drops the row",
			"5.1",
			Classification{},
		},
		{
			"skip reference still processes hours",
			"6.3",
			Classification{Process: true, CheckReference: false, Rule: tables.ExtractVerbatim},
		},
		{
			"unmapped prefix defaults to include with delimiter rule",
			"4.9",
			Classification{Process: true, CheckReference: true, Rule: tables.ExtractBeforeDelimiter},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.seqKey, policies); got != tt.expect {
				t.Errorf("Classify(%q) = %+v, want %+v", tt.seqKey, got, tt.expect)
			}
		})
	}
}

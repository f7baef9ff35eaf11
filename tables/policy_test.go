package tables

import "testing"

func TestMajorPrefix(t *testing.T) {
	tests := []struct {
		seqKey string
		expect string
	}{
		{"2.1", "2"},
		{"3.456", "3"},
		{"10.5", "10"},
		{"4", "4"},
		{" 4.39 ", "4"},
		{"", ""},
		{".5", ""},
	}

	for _, tt := range tests {
		if got := MajorPrefix(tt.seqKey); got != tt.expect {
			t.Errorf("MajorPrefix(%q) = %q, want %q", tt.seqKey, got, tt.expect)
		}
	}
}

func TestPolicyTable_Lookup(t *testing.T) {
	table := NewPolicyTable(map[string]PolicyEntry{
		"2": {Processing: PolicyInclude, Extraction: ExtractBeforeParen},
		"5": {Processing: PolicyExclude},
		"6": {Processing: PolicySkipReference, Extraction: ExtractVerbatim},
	})

	tests := []struct {
		name   string
		prefix string
		expect PolicyEntry
	}{
		{"mapped include", "2", PolicyEntry{PolicyInclude, ExtractBeforeParen}},
		{"mapped exclude", "5", PolicyEntry{PolicyExclude, ExtractBeforeDelimiter}},
		{"mapped skip reference", "6", PolicyEntry{PolicySkipReference, ExtractVerbatim}},
		{"unmapped defaults to include", "4", PolicyEntry{PolicyInclude, ExtractBeforeDelimiter}},
		{"empty prefix defaults", "", PolicyEntry{PolicyInclude, ExtractBeforeDelimiter}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := table.Lookup(tt.prefix); got != tt.expect {
				t.Errorf("Lookup(%q) = %+v, want %+v", tt.prefix, got, tt.expect)
			}
		})
	}
}

func TestPolicyTable_ForSeq(t *testing.T) {
	table := NewPolicyTable(map[string]PolicyEntry{
		"5": {Processing: PolicyExclude},
	})

	if got := table.ForSeq("5.12").Processing; got != PolicyExclude {
		t.Errorf("ForSeq(5.12).Processing = %v, want PolicyExclude", got)
	}
	if got := table.ForSeq("4.1").Processing; got != PolicyInclude {
		t.Errorf("ForSeq(4.1).Processing = %v, want PolicyInclude", got)
	}
}

func TestPolicyTable_CopiesEntries(t *testing.T) {
	entries := map[string]PolicyEntry{"2": {Processing: PolicyExclude}}
	table := NewPolicyTable(entries)

	entries["2"] = PolicyEntry{Processing: PolicyInclude}

	if got := table.Lookup("2").Processing; got != PolicyExclude {
		t.Errorf("table mutated through constructor argument: got %v", got)
	}
}

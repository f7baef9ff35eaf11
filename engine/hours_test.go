package engine

import "testing"

func TestMinutesToHours(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		expect float64
	}{
		{"whole hours", "120", 2.0},
		{"fractional hours", "90", 1.5},
		{"decimal minutes", "45.0", 0.75},
		{"zero", "0", 0},
		{"whitespace", " 60 ", 1.0},
		{"empty contributes zero", "", 0},
		{"non-numeric contributes zero", "n/a", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MinutesToHours(tt.raw); got != tt.expect {
				t.Errorf("MinutesToHours(%q) = %v, want %v", tt.raw, got, tt.expect)
			}
		})
	}
}

func TestFormatHHMM(t *testing.T) {
	tests := []struct {
		hours  float64
		expect string
	}{
		{36.5, "36:30"},
		{2.25, "02:15"},
		{0, "00:00"},
		{0.996, "01:00"}, // rounds to the nearest minute
		{148.75, "148:45"},
		{-3, "00:00"},
	}

	for _, tt := range tests {
		if got := FormatHHMM(tt.hours); got != tt.expect {
			t.Errorf("FormatHHMM(%v) = %q, want %q", tt.hours, got, tt.expect)
		}
	}
}

package tables

import "strings"

// CoefficientConfig describes a coefficient table before construction.
type CoefficientConfig struct {
	// Prefixes maps a sequence-major prefix to its multiplicative factor.
	Prefixes map[string]float64
	// Default is used for prefixes absent from the map. Zero means 1.0.
	Default float64
	// SkipMatches is a list of identifier substrings that force the
	// override coefficient regardless of prefix. Matching is
	// case-insensitive.
	SkipMatches []string
	// SkipCoefficient is the override applied on a skip-list match.
	SkipCoefficient float64
}

// CoefficientTable resolves the multiplicative scale factor for a row's
// base hours. Resolution order: identifier skip-list first, then the
// sequence-major prefix, then the default.
type CoefficientTable struct {
	prefixes     map[string]float64
	defaultCoeff float64
	skipMatches  []string
	skipCoeff    float64
}

// NewCoefficientTable builds an immutable coefficient table.
func NewCoefficientTable(cfg CoefficientConfig) *CoefficientTable {
	def := cfg.Default
	if def == 0 {
		def = 1.0
	}
	prefixes := make(map[string]float64, len(cfg.Prefixes))
	for prefix, coeff := range cfg.Prefixes {
		prefixes[strings.TrimSpace(prefix)] = coeff
	}
	matches := make([]string, 0, len(cfg.SkipMatches))
	for _, m := range cfg.SkipMatches {
		m = strings.ToLower(strings.TrimSpace(m))
		if m != "" {
			matches = append(matches, m)
		}
	}
	return &CoefficientTable{
		prefixes:     prefixes,
		defaultCoeff: def,
		skipMatches:  matches,
		skipCoeff:    cfg.SkipCoefficient,
	}
}

// Default returns the fallback coefficient.
func (t *CoefficientTable) Default() float64 {
	return t.defaultCoeff
}

// Resolve returns the coefficient for a row. The task identifier is
// optional; when present it is matched against the skip-list before any
// prefix lookup, and a match wins unconditionally.
func (t *CoefficientTable) Resolve(seqKey, taskID string) float64 {
	if taskID != "" && len(t.skipMatches) > 0 {
		id := strings.ToLower(taskID)
		for _, m := range t.skipMatches {
			if strings.Contains(id, m) {
				return t.skipCoeff
			}
		}
	}

	prefix := MajorPrefix(seqKey)
	if prefix == "" {
		return t.defaultCoeff
	}
	if coeff, ok := t.prefixes[prefix]; ok {
		return coeff
	}
	return t.defaultCoeff
}

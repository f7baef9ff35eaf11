// Package tables provides the immutable lookup tables that drive workpack
// processing: sequence-prefix policies, man-hour coefficients, bonus hours
// and reference identifier sets. Tables are built once per run and are
// read-only afterwards, so they can be shared freely between engines.
package tables

import "strings"

// ProcessingPolicy controls whether rows under a sequence prefix are
// processed and whether their identifiers are checked against reference data.
type ProcessingPolicy int

const (
	// PolicyInclude processes the row and reconciles its identifier.
	PolicyInclude ProcessingPolicy = iota
	// PolicySkipReference processes the row for hours but never
	// contributes it to reconciliation.
	PolicySkipReference
	// PolicyExclude drops the row entirely.
	PolicyExclude
)

// ExtractionRule selects how a task identifier is extracted from a title.
type ExtractionRule int

const (
	// ExtractBeforeDelimiter takes everything before the first occurrence
	// of the configured delimiter character.
	ExtractBeforeDelimiter ExtractionRule = iota
	// ExtractBeforeParen takes everything before the first '('.
	ExtractBeforeParen
	// ExtractVerbatim returns the whole trimmed title.
	ExtractVerbatim
)

// PolicyEntry pairs the processing policy and extraction rule for one
// sequence-major prefix.
type PolicyEntry struct {
	Processing ProcessingPolicy
	Extraction ExtractionRule
}

// PolicyTable maps sequence-major prefixes to policy entries. Unmapped
// prefixes resolve to the default entry (include + delimiter extraction).
type PolicyTable struct {
	entries      map[string]PolicyEntry
	defaultEntry PolicyEntry
}

// NewPolicyTable builds a policy table from explicit prefix entries.
// The entries map is copied; later mutation of the argument has no effect.
func NewPolicyTable(entries map[string]PolicyEntry) *PolicyTable {
	copied := make(map[string]PolicyEntry, len(entries))
	for prefix, entry := range entries {
		copied[strings.TrimSpace(prefix)] = entry
	}
	return &PolicyTable{
		entries:      copied,
		defaultEntry: PolicyEntry{Processing: PolicyInclude, Extraction: ExtractBeforeDelimiter},
	}
}

// Lookup returns the policy entry for a sequence-major prefix.
func (t *PolicyTable) Lookup(prefix string) PolicyEntry {
	if entry, ok := t.entries[strings.TrimSpace(prefix)]; ok {
		return entry
	}
	return t.defaultEntry
}

// ForSeq returns the policy entry for a full sequence key ("4.39" -> "4").
func (t *PolicyTable) ForSeq(seqKey string) PolicyEntry {
	return t.Lookup(MajorPrefix(seqKey))
}

// MajorPrefix extracts the major-version prefix from a sequence key:
// everything before the first '.'. A key without a dot is its own prefix.
func MajorPrefix(seqKey string) string {
	prefix, _, _ := strings.Cut(strings.TrimSpace(seqKey), ".")
	return prefix
}

package engine

import "workpackengine/tables"

// Classification is the row classifier's verdict for one line item.
type Classification struct {
	Process        bool
	CheckReference bool
	Rule           tables.ExtractionRule
}

// Classify decides, from the sequence key alone, whether a row is processed,
// whether its identifier takes part in reconciliation, and which extraction
// rule applies. Pure function of the key and the policy table.
func Classify(seqKey string, policies *tables.PolicyTable) Classification {
	entry := policies.ForSeq(seqKey)

	switch entry.Processing {
	case tables.PolicyExclude:
		return Classification{}
	case tables.PolicySkipReference:
		return Classification{Process: true, CheckReference: false, Rule: entry.Extraction}
	default:
		return Classification{Process: true, CheckReference: true, Rule: entry.Extraction}
	}
}

package tables

import "strings"

// ReferenceSets holds the two reference identifier domains: maintenance
// task IDs and engineering-order (EO) IDs. An identifier belongs to the EO
// domain when it starts with the configured EO prefix; it is only ever
// checked against the set for its own domain.
type ReferenceSets struct {
	taskIDs  map[string]struct{}
	eoIDs    map[string]struct{}
	eoPrefix string
}

// NewReferenceSets builds the reference sets. IDs are trimmed; blanks are
// dropped.
func NewReferenceSets(taskIDs, eoIDs []string, eoPrefix string) *ReferenceSets {
	r := &ReferenceSets{
		taskIDs:  make(map[string]struct{}, len(taskIDs)),
		eoIDs:    make(map[string]struct{}, len(eoIDs)),
		eoPrefix: eoPrefix,
	}
	for _, id := range taskIDs {
		if id = strings.TrimSpace(id); id != "" {
			r.taskIDs[id] = struct{}{}
		}
	}
	for _, id := range eoIDs {
		if id = strings.TrimSpace(id); id != "" {
			r.eoIDs[id] = struct{}{}
		}
	}
	return r
}

// IsEO reports whether an identifier belongs to the EO domain.
func (r *ReferenceSets) IsEO(id string) bool {
	return r.eoPrefix != "" && strings.HasPrefix(id, r.eoPrefix)
}

// Contains reports whether an identifier is known to the reference set of
// its own domain.
func (r *ReferenceSets) Contains(id string) bool {
	id = strings.TrimSpace(id)
	if r.IsEO(id) {
		_, ok := r.eoIDs[id]
		return ok
	}
	_, ok := r.taskIDs[id]
	return ok
}

// TaskCount returns the number of task-domain identifiers.
func (r *ReferenceSets) TaskCount() int { return len(r.taskIDs) }

// EOCount returns the number of EO-domain identifiers.
func (r *ReferenceSets) EOCount() int { return len(r.eoIDs) }

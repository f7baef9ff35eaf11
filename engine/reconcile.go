package engine

import "workpackengine/tables"

// reconcile reports the identifiers of reference-checked rows that are
// absent from the reference set of their own domain, in input order. An
// EO-prefixed identifier is only ever compared to the EO set, and every
// other identifier only to the task set. Rows with an empty identifier are
// skipped; they are a data-quality issue, not a new task.
func reconcile(items []LineItem, refs *tables.ReferenceSets) []TaskRef {
	if refs == nil {
		return nil
	}
	var missing []TaskRef
	for _, item := range items {
		if !item.CheckReference || item.TaskID == "" {
			continue
		}
		if !refs.Contains(item.TaskID) {
			missing = append(missing, TaskRef{SeqKey: item.SeqKey, TaskID: item.TaskID})
		}
	}
	return missing
}

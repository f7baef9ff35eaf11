package engine

import (
	"strconv"
	"strings"
)

// ToolIssue is one tool or spare with zero availability.
type ToolIssue struct {
	SeqKey     string
	TaskID     string
	PartNumber string
	Name       string
	Type       string // "Tool", "Spare", "Unknown" or the raw flag
}

// ToolControlSummary aggregates tool-control findings for reporting.
type ToolControlSummary struct {
	Total        int
	Tools        int
	Spares       int
	UniqueParts  int
	AffectedSeqs int
}

// toolControl scans every raw dataset row for tools/spares whose primary
// and alternate quantities are both zero. It deliberately performs no
// deduplication and ignores processing policies: each row is a distinct
// part requirement even when sequence keys repeat. Entries on the ignore
// list (part number or tool name, case-insensitive) are filtered out.
func (e *Engine) toolControl(ds Dataset, idx columnIndex) ([]ToolIssue, []string) {
	nameCol := idx.lookup(e.cols.ToolName)
	typeCol := idx.lookup(e.cols.ToolType)
	partCol := idx.lookup(e.cols.ToolPartNo)
	totalCol := idx.lookup(e.cols.TotalQty)
	altCol := idx.lookup(e.cols.AltQty)

	if nameCol < 0 || typeCol < 0 || partCol < 0 || totalCol < 0 || altCol < 0 {
		return nil, []string{"tool control enabled but its columns are not all present; check disabled"}
	}

	ignore := make(map[string]struct{}, len(e.opts.IgnoreItems))
	for _, item := range e.opts.IgnoreItems {
		item = strings.ToLower(strings.TrimSpace(item))
		if item != "" {
			ignore[item] = struct{}{}
		}
	}

	seqCol := idx.lookup(e.cols.SeqNo)
	titleCol := idx.lookup(e.cols.Title)

	var issues []ToolIssue
	for _, row := range ds.Rows {
		name := cell(row, nameCol)
		part := cell(row, partCol)
		if name == "" || part == "" {
			continue
		}
		if parseQty(cell(row, totalCol)) != 0 || parseQty(cell(row, altCol)) != 0 {
			continue
		}
		if _, skip := ignore[strings.ToLower(part)]; skip {
			continue
		}
		if _, skip := ignore[strings.ToLower(name)]; skip {
			continue
		}

		seqKey := cell(row, seqCol)
		rule := e.tables.policies.ForSeq(seqKey).Extraction
		issues = append(issues, ToolIssue{
			SeqKey:     seqKey,
			TaskID:     ExtractTaskID(cell(row, titleCol), rule, e.opts.Delimiter),
			PartNumber: part,
			Name:       name,
			Type:       toolType(cell(row, typeCol)),
		})
	}
	return issues, nil
}

// parseQty reads a quantity cell; non-numeric values count as zero stock.
func parseQty(raw string) float64 {
	qty, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0
	}
	return qty
}

// toolType maps the tool flag: Y -> Tool, N -> Spare, blank -> Unknown,
// anything else passes through untouched.
func toolType(flag string) string {
	switch strings.ToUpper(flag) {
	case "Y":
		return "Tool"
	case "N":
		return "Spare"
	case "":
		return "Unknown"
	default:
		return flag
	}
}

// SummarizeToolIssues computes the per-type and uniqueness counts used by
// reporting collaborators.
func SummarizeToolIssues(issues []ToolIssue) ToolControlSummary {
	summary := ToolControlSummary{Total: len(issues)}
	parts := make(map[string]struct{})
	seqs := make(map[string]struct{})
	for _, issue := range issues {
		switch issue.Type {
		case "Tool":
			summary.Tools++
		case "Spare":
			summary.Spares++
		}
		parts[issue.PartNumber] = struct{}{}
		seqs[issue.SeqKey] = struct{}{}
	}
	summary.UniqueParts = len(parts)
	summary.AffectedSeqs = len(seqs)
	return summary
}

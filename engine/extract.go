package engine

import (
	"strings"

	"workpackengine/tables"
)

// ExtractTaskID converts a row's title into a normalized task identifier
// using the given extraction rule. If the rule's split character is absent
// the whole trimmed title is returned unchanged. Deterministic and
// side-effect free.
func ExtractTaskID(title string, rule tables.ExtractionRule, delimiter rune) string {
	switch rule {
	case tables.ExtractBeforeParen:
		return cutBefore(title, "(")
	case tables.ExtractBeforeDelimiter:
		return cutBefore(title, string(delimiter))
	default:
		return strings.TrimSpace(title)
	}
}

func cutBefore(s, sep string) string {
	before, _, _ := strings.Cut(s, sep)
	return strings.TrimSpace(before)
}

// SplitLabel derives the bonus lookup keys from the work-package label:
// the primary key is everything before the first '-', the secondary key
// everything after the last '-'. A label without a dash yields the whole
// trimmed text for both.
func SplitLabel(label string) (primary, secondary string) {
	label = strings.TrimSpace(label)
	if label == "" {
		return "", ""
	}
	if !strings.Contains(label, "-") {
		return label, label
	}
	first, _, _ := strings.Cut(label, "-")
	last := label[strings.LastIndex(label, "-")+1:]
	return strings.TrimSpace(first), strings.TrimSpace(last)
}

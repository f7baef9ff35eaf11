package engine

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// MinutesToHours converts a raw planned man-hours cell (minutes) into
// hours. A blank or non-numeric value contributes 0 hours rather than
// failing the run.
func MinutesToHours(raw string) float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0
	}
	minutes, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0
	}
	return minutes / 60.0
}

// FormatHHMM renders a decimal hour value as "HH:MM" (36.5 -> "36:30").
// Negative values render as "00:00".
func FormatHHMM(hours float64) string {
	if hours < 0 {
		return "00:00"
	}
	totalMinutes := int(math.Round(hours * 60))
	return fmt.Sprintf("%02d:%02d", totalMinutes/60, totalMinutes%60)
}

package console

import (
	"math"
	"strconv"
	"strings"
)

// Fallbacks applied when numeric input cannot be used. Bad input is never
// rejected or re-prompted; it silently takes the default. Values outside the
// bounds below count as unusable too: the bounds keep DaysAdmitted and
// RoomRateCents non-negative and the bill arithmetic within int64.
const (
	defaultDaysAdmitted        = 1
	defaultRoomRateCents int64 = 100000 // $1000.00 per day

	maxDaysAdmitted            = 1_000_000
	maxRoomRateDollars float64 = 1e9
)

// parseDays reads a non-negative day count, falling back to the default on
// anything unparseable, negative, or absurdly large.
func parseDays(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 || n > maxDaysAdmitted {
		return defaultDaysAdmitted
	}
	return n
}

// parseRoomRateCents reads a dollar amount and converts it to cents, falling
// back to the default on anything unparseable, negative, or beyond the rate
// bound (which also catches +Inf; NaN fails every comparison and gets its
// own check).
func parseRoomRateCents(s string) int64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || v < 0 || v > maxRoomRateDollars || math.IsNaN(v) {
		return defaultRoomRateCents
	}
	return int64(math.Round(v * 100))
}

// parseYes treats any trimmed, lowercased response starting with "y" as yes;
// everything else, including empty input, is no.
func parseYes(s string) bool {
	return strings.HasPrefix(strings.ToLower(strings.TrimSpace(s)), "y")
}

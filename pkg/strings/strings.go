// Package strings holds small text helpers shared by the API client and the
// command layer.
package strings

import (
	"strings"
)

// DefaultBodyMaxLen bounds how much of a remote response body ends up in an
// error message or log line.
const DefaultBodyMaxLen = 512

// MinTruncateLen is the minimum maxLen value for Truncate.
// Values smaller than this would not leave room for meaningful content plus "...".
const MinTruncateLen = 4

// Truncate collapses all whitespace runs into single spaces and cuts s to at
// most maxLen runes, marking the cut with "...".
func Truncate(s string, maxLen int) string {
	if maxLen < MinTruncateLen {
		maxLen = MinTruncateLen
	}

	s = strings.Join(strings.Fields(s), " ")

	runes := []rune(s)
	if len(runes) > maxLen {
		return string(runes[:maxLen-3]) + "..."
	}
	return s
}

// MaskSecret hides all but the last four characters of a credential so it can
// be shown in logs. Secrets of eight characters or fewer are hidden entirely.
func MaskSecret(secret string) string {
	if secret == "" {
		return ""
	}
	runes := []rune(secret)
	if len(runes) <= 8 {
		return strings.Repeat("*", len(runes))
	}
	return strings.Repeat("*", len(runes)-4) + string(runes[len(runes)-4:])
}

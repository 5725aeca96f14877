package namer

import "strings"

// SplitLines splits raw list text into lines. Carriage returns are dropped
// first so CRLF and LF input split identically. Empty lines, including a
// trailing one, are kept and nothing is trimmed.
func SplitLines(raw string) []string {
	return strings.Split(strings.ReplaceAll(raw, "\r", ""), "\n")
}

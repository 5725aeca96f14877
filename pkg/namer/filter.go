package namer

import "strings"

// Filter returns the entries of list that start with prefix and end with
// suffix, in their original order. An empty prefix or suffix matches
// anything. Matching is byte-exact and case-sensitive.
//
// With both constraints empty the list itself is returned. The input is never
// modified.
func Filter(list []string, prefix, suffix string) []string {
	if prefix == "" && suffix == "" {
		return list
	}

	out := make([]string, 0)
	for _, s := range list {
		if prefix != "" && !strings.HasPrefix(s, prefix) {
			continue
		}
		if suffix != "" && !strings.HasSuffix(s, suffix) {
			continue
		}
		out = append(out, s)
	}
	return out
}

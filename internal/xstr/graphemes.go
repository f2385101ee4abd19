// Package xstr provides grapheme-cluster-aware string helpers used wherever
// zyinput needs to walk UTF-8 text (Chinese phrases, template expansions) a
// visual character at a time instead of a rune at a time.
package xstr

import (
	"strings"

	"github.com/rivo/uniseg"
)

// Graphemes splits s into its grapheme clusters, e.g. a CJK ideograph
// followed by a combining mark stays a single cluster.
func Graphemes(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	remaining := s
	state := -1
	for len(remaining) > 0 {
		cluster, rest, _, newState := uniseg.FirstGraphemeClusterInString(remaining, state)
		if cluster == "" {
			break
		}
		out = append(out, cluster)
		remaining = rest
		state = newState
	}
	return out
}

// Count returns the number of grapheme clusters in s.
func Count(s string) int {
	return uniseg.GraphemeClusterCount(s)
}

// TruncateGraphemes returns the first n grapheme clusters of s.
func TruncateGraphemes(s string, n int) string {
	g := Graphemes(s)
	if n >= len(g) {
		return s
	}
	var b strings.Builder
	for _, c := range g[:n] {
		b.WriteString(c)
	}
	return b.String()
}

// Package simptrad implements the Simplified/Traditional converter (C7),
// grounded on original_source/src/SimpTradConverter.cc's non-OpenCC bsearch
// fallback path (OpenCC itself links against a C library and needs cgo,
// unavailable here).
package simptrad

import "sort"

// Converter holds a sorted Simp->Trad lookup table built once by New.
type Converter struct {
	simp []string // sorted ascending, parallel to trad
	trad []string
}

// New builds a Converter from the bundled table.
func New() *Converter {
	type pair struct{ simp, trad string }
	pairs := make([]pair, len(rawTable))
	for i, e := range rawTable {
		pairs[i] = pair{e.Simp, e.Trad}
	}
	sort.Slice(pairs, func(i, j int) bool { return pairs[i].simp < pairs[j].simp })
	c := &Converter{simp: make([]string, len(pairs)), trad: make([]string, len(pairs))}
	for i, p := range pairs {
		c.simp[i] = p.simp
		c.trad[i] = p.trad
	}
	return c
}

// lookup returns the Traditional rendering for an exact Simp key, or "",
// false if absent.
func (c *Converter) lookup(key string) (string, bool) {
	i := sort.SearchStrings(c.simp, key)
	if i < len(c.simp) && c.simp[i] == key {
		return c.trad[i], true
	}
	return "", false
}

// ToTraditional converts a Simplified string to Traditional, greedily
// matching the longest table entry at each position and shrinking the
// window by one rune until a match is found or only a single,
// pass-through rune remains — the same shrink-on-miss strategy as
// SimpTradConverter::simpToTrad's non-OpenCC path.
func (c *Converter) ToTraditional(in string) string {
	runes := []rune(in)
	out := make([]rune, 0, len(runes))
	pos := 0
	for pos < len(runes) {
		window := maxLen
		if remaining := len(runes) - pos; window > remaining {
			window = remaining
		}
		matched := false
		for window > 0 {
			key := string(runes[pos : pos+window])
			if trad, ok := c.lookup(key); ok {
				out = append(out, []rune(trad)...)
				pos += window
				matched = true
				break
			}
			window--
		}
		if !matched {
			out = append(out, runes[pos])
			pos++
		}
	}
	return string(out)
}

// ToSimplified performs the reverse mapping; the table is small enough that
// a linear reverse scan per lookup is adequate (no reverse query path
// exists in the original's sqlite-free fallback either).
func (c *Converter) ToSimplified(in string) string {
	runes := []rune(in)
	out := make([]rune, 0, len(runes))
	for pos := 0; pos < len(runes); {
		window := maxLen
		if remaining := len(runes) - pos; window > remaining {
			window = remaining
		}
		matched := false
		for window > 0 {
			key := string(runes[pos : pos+window])
			for i, t := range c.trad {
				if t == key {
					out = append(out, []rune(c.simp[i])...)
					pos += window
					matched = true
					break
				}
			}
			if matched {
				break
			}
			window--
		}
		if !matched {
			out = append(out, runes[pos])
			pos++
		}
	}
	return string(out)
}

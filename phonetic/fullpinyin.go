package phonetic

import "github.com/zyinput/zyinput/table"

// Parse extends tokens over raw[cursor:end] greedily: at each position it
// tries decreasing window lengths (table.MaxTextLen down to 1), applies any
// enabled correction rewrite, and accepts the first admissible match. It
// stops when the cursor is reached, no further syllable can be formed, or
// MaxPhraseLen is hit. Because it extends tokens, callers may pass only the
// unparsed suffix range via cursor/end; the session passes the whole buffer
// from 0 on every reparse.
func Parse(raw string, cursor, end int, o table.Option, tokens Array) Array {
	pos := cursor
	for pos < end && len(tokens) < MaxPhraseLen {
		matched := false
		maxLen := table.MaxTextLen
		if end-pos < maxLen {
			maxLen = end - pos
		}
		for l := maxLen; l >= 1; l-- {
			window := raw[pos : pos+l]
			candidate := table.ApplyCorrections(o, window)
			if s := table.Lookup(o, candidate); s != nil {
				tokens = append(tokens, Token{Syllable: s, Begin: pos, Len: l})
				pos += l
				matched = true
				break
			}
		}
		if !matched {
			break
		}
	}
	return tokens
}

// IsPinyin reports whether text names a valid syllable (complete or, when
// the option allows it, incomplete) under o, after any enabled correction
// rewrite.
func IsPinyin(o table.Option, text string) bool {
	return table.Lookup(o, table.ApplyCorrections(o, text)) != nil
}

// IsAdmissibleChar reports whether ch can ever start or extend a Pinyin
// spelling; insert() uses this to reject keystrokes outside a-z and the
// apostrophe-free ASCII alphabet up front.
func IsAdmissibleChar(ch byte) bool {
	return ch >= 'a' && ch <= 'z'
}

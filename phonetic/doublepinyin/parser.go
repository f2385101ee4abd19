package doublepinyin

import (
	"github.com/zyinput/zyinput/phonetic"
	"github.com/zyinput/zyinput/table"
)

const maxPhraseLen = phonetic.MaxPhraseLen

// IsAdmissibleChar accepts a-z and ';' (which the original keyboard maps
// maps to key index 26); every other byte is rejected outright.
func IsAdmissibleChar(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || ch == ';'
}

// Parse extends tokens by consuming raw[cursor:end] two keys at a time. A
// trailing single key at end of buffer yields an incomplete-syllable token
// when admissible, matching the one-key-typed-so-far editing state.
func Parse(raw string, cursor, end int, o table.Option, sc Schema, tokens phonetic.Array) phonetic.Array {
	pos := cursor
	for pos < end && len(tokens) < maxPhraseLen {
		if end-pos == 1 {
			if s := IncompleteSyllable(o, sc, raw[pos]); s != nil {
				tokens = append(tokens, phonetic.Token{Syllable: s, Begin: pos, Len: 1})
				pos++
			}
			break
		}
		s := Resolve(o, sc, raw[pos], raw[pos+1])
		if s == nil {
			break
		}
		tokens = append(tokens, phonetic.Token{Syllable: s, Begin: pos, Len: 2})
		pos += 2
	}
	return tokens
}

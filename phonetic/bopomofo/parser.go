package bopomofo

import (
	"github.com/zyinput/zyinput/phonetic"
	"github.com/zyinput/zyinput/table"
)

const maxPhraseLen = phonetic.MaxPhraseLen

// maxGlyphs bounds a syllable's glyph sequence: up to 4 non-tone glyphs
// (tone glyphs are skipped and not counted).
const maxGlyphs = 4

// IsAdmissibleChar reports whether ch is a mapped key under keyboard kb;
// insert() passes the active keyboard.
func IsAdmissibleChar(kb Keyboard, ch byte) bool {
	_, ok := Keymaps[kb][ch]
	return ok
}

// Parse extends tokens by accumulating raw[cursor:end] ASCII keys into
// Bopomofo glyphs (skipping tone glyphs, which are not matched against the
// table) and testing the accumulation against the table after each key,
// greedily preferring the longest accumulation that still names a valid
// syllable.
func Parse(raw string, cursor, end int, o table.Option, kb Keyboard, tokens phonetic.Array) phonetic.Array {
	pos := cursor
	for pos < end && len(tokens) < maxPhraseLen {
		matched := -1
		var matchedSyllable *table.Syllable
		var glyphs []rune
		i := pos
		for i < end && len(glyphs) < maxGlyphs {
			r, ok := Keymaps[kb][raw[i]]
			if !ok {
				break
			}
			i++
			if IsToneChar(r) {
				continue
			}
			glyphs = append(glyphs, r)
			if s, ok := table.ByBopomofo[string(glyphs)]; ok {
				matched = i
				matchedSyllable = s
			}
		}
		if matched < 0 {
			break
		}
		tokens = append(tokens, phonetic.Token{Syllable: matchedSyllable, Begin: pos, Len: matched - pos})
		pos = matched
	}
	return tokens
}

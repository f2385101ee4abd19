package bopomofo

import "testing"

// TestKeymapsArePairwiseDistinct locks in the fix for ChingYeah/ETen/IBM
// previously returning near-identical copies of standardMap(): every
// keyboard's glyph map must now differ from every other keyboard's.
func TestKeymapsArePairwiseDistinct(t *testing.T) {
	for i := Keyboard(0); i < SchemaCount; i++ {
		for j := i + 1; j < SchemaCount; j++ {
			if mapsEqual(Keymaps[i], Keymaps[j]) {
				t.Errorf("keyboard %d and %d have identical key maps", i, j)
			}
		}
	}
}

func TestKeymapsCoverEveryKeymapKey(t *testing.T) {
	for kb := Keyboard(0); kb < SchemaCount; kb++ {
		for _, key := range keymapKeys {
			if _, ok := Keymaps[kb][key]; !ok {
				t.Errorf("keyboard %d missing glyph for key %q", kb, key)
			}
		}
	}
}

func mapsEqual(a, b map[byte]rune) bool {
	if len(a) != len(b) {
		return false
	}
	for k, v := range a {
		if b[k] != v {
			return false
		}
	}
	return true
}

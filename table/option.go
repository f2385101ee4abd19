// Package table holds the static syllable inventory (C1): valid Pinyin
// syllables together with their initial/final ids, Bopomofo glyphs, and
// correction/fuzzy option flags shared by every phonetic parser.
package table

// Option is the bitset threaded through the parser and the phrase store
// query path. Bit layout follows the original engine bit-for-bit so that
// CorrectAll and FuzzyAll land on the same literal values documented in the
// spec.
type Option uint32

const (
	IncompletePinyin Option = 1 << 0

	CorrectGnNg   Option = 1 << 1
	CorrectMgNg   Option = 1 << 2
	CorrectIouIu  Option = 1 << 3
	CorrectUeiUi  Option = 1 << 4
	CorrectUenUn  Option = 1 << 5
	CorrectUeVe   Option = 1 << 6
	CorrectVU     Option = 1 << 7
	CorrectOnOng  Option = 1 << 8

	FuzzyCCh  Option = 1 << 9
	FuzzyChC  Option = 1 << 10
	FuzzyZZh  Option = 1 << 11
	FuzzyZhZ  Option = 1 << 12
	FuzzySSh  Option = 1 << 13
	FuzzyShS  Option = 1 << 14
	FuzzyLN   Option = 1 << 15
	FuzzyNL   Option = 1 << 16
	FuzzyFH   Option = 1 << 17
	FuzzyHF   Option = 1 << 18
	FuzzyLR   Option = 1 << 19
	FuzzyRL   Option = 1 << 20
	FuzzyKG   Option = 1 << 21
	FuzzyGK   Option = 1 << 22

	FuzzyAnAng Option = 1 << 23
	FuzzyAngAn Option = 1 << 24
	FuzzyEnEng Option = 1 << 25
	FuzzyEngEn Option = 1 << 26
	FuzzyInIng Option = 1 << 27
	FuzzyIngIn Option = 1 << 28
)

const (
	CorrectAll Option = 0x1FE
	FuzzyAll   Option = 0x1FFFFE00
	// DefaultOption matches the engine's documented default: every
	// incomplete/correction/fuzzy relaxation turned on.
	DefaultOption Option = IncompletePinyin | CorrectAll | FuzzyAll
)

// Has reports whether all bits of flag are set in o.
func (o Option) Has(flag Option) bool {
	return o&flag == flag
}

// fuzzyInitialPairs lists (flag, from, to) triples: when flag is set, an
// initial spelled "from" is also accepted as "to" and vice versa via the
// paired flag.
var fuzzyInitialPairs = []struct {
	flag     Option
	from, to string
}{
	{FuzzyCCh, "c", "ch"}, {FuzzyChC, "ch", "c"},
	{FuzzyZZh, "z", "zh"}, {FuzzyZhZ, "zh", "z"},
	{FuzzySSh, "s", "sh"}, {FuzzyShS, "sh", "s"},
	{FuzzyLN, "l", "n"}, {FuzzyNL, "n", "l"},
	{FuzzyFH, "f", "h"}, {FuzzyHF, "h", "f"},
	{FuzzyLR, "l", "r"}, {FuzzyRL, "r", "l"},
	{FuzzyKG, "k", "g"}, {FuzzyGK, "g", "k"},
}

var fuzzyFinalPairs = []struct {
	flag     Option
	from, to string
}{
	{FuzzyAnAng, "an", "ang"}, {FuzzyAngAn, "ang", "an"},
	{FuzzyEnEng, "en", "eng"}, {FuzzyEngEn, "eng", "en"},
	{FuzzyInIng, "in", "ing"}, {FuzzyIngIn, "ing", "in"},
	// IAN/UAN alias onto the AN/ANG bits per the original engine.
	{FuzzyAnAng, "ian", "iang"}, {FuzzyAngAn, "iang", "ian"},
	{FuzzyAnAng, "uan", "uang"}, {FuzzyAngAn, "uang", "uan"},
}

// FuzzyInitialExpansions returns, for the given initial spelling, the set of
// initials admissible under o (including the initial itself).
func FuzzyInitialExpansions(o Option, initial string) []string {
	out := []string{initial}
	for _, p := range fuzzyInitialPairs {
		if p.from == initial && o.Has(p.flag) {
			out = append(out, p.to)
		}
	}
	return out
}

// FuzzyFinalExpansions is the final-spelling analog of FuzzyInitialExpansions.
func FuzzyFinalExpansions(o Option, final string) []string {
	out := []string{final}
	for _, p := range fuzzyFinalPairs {
		if p.from == final && o.Has(p.flag) {
			out = append(out, p.to)
		}
	}
	return out
}

// corrections lists rewrite rules applied to a raw spelling before table
// lookup, gated by their flag.
var corrections = []struct {
	flag     Option
	from, to string
}{
	{CorrectGnNg, "gn", "ng"},
	{CorrectMgNg, "mg", "ng"},
	{CorrectIouIu, "iou", "iu"},
	{CorrectUeiUi, "uei", "ui"},
	{CorrectUenUn, "uen", "un"},
	{CorrectUeVe, "ue", "ve"},
	{CorrectVU, "v", "u"},
	{CorrectOnOng, "on", "ong"},
}

// ApplyCorrections returns the replacement of the first enabled correction
// rule whose pattern equals s as a whole, or s unchanged when none does. A
// pattern occurring inside a longer spelling (e.g. "uei" in "guei") is not
// rewritten.
func ApplyCorrections(o Option, s string) string {
	for _, c := range corrections {
		if o.Has(c.flag) && s == c.from {
			return c.to
		}
	}
	return s
}

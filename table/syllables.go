package table

import "strings"

// Syllable is the static descriptor described in the spec's data model: a
// romanized spelling together with its Bopomofo rendering and the
// (sheng, yun) id pair used by the Double-Pinyin resolver and the phrase
// store's syllable-sequence keys.
type Syllable struct {
	Text       string // canonical romanized spelling, e.g. "zhi", "lve", "n"
	Bopomofo   string // Bopomofo glyph cluster, empty for incomplete entries
	Sheng      string // initial spelling ("" for zero-initial)
	Yun        string // canonical final spelling ("" for incomplete)
	Incomplete bool   // true for initial-only entries (n, m, zh, ...)
}

// apicalInitials is the set of initials (zh ch sh r z c s) after which the
// final "i" is the apical vowel.
var apicalInitials = map[string]bool{
	"zh": true, "ch": true, "sh": true, "r": true, "z": true, "c": true, "s": true,
}

var initialGlyph = map[string]string{
	"b": "ㄅ", "p": "ㄆ", "m": "ㄇ", "f": "ㄈ",
	"d": "ㄉ", "t": "ㄊ", "n": "ㄋ", "l": "ㄌ",
	"g": "ㄍ", "k": "ㄎ", "h": "ㄏ",
	"j": "ㄐ", "q": "ㄑ", "x": "ㄒ",
	"zh": "ㄓ", "ch": "ㄔ", "sh": "ㄕ", "r": "ㄖ",
	"z": "ㄗ", "c": "ㄘ", "s": "ㄙ",
}

var finalGlyph = map[string]string{
	"a": "ㄚ", "o": "ㄛ", "e": "ㄜ", "ai": "ㄞ", "ei": "ㄟ", "ao": "ㄠ", "ou": "ㄡ",
	"an": "ㄢ", "en": "ㄣ", "ang": "ㄤ", "eng": "ㄥ", "er": "ㄦ", "ong": "ㄨㄥ",
	"i": "ㄧ", "ia": "ㄧㄚ", "ie": "ㄧㄝ", "iao": "ㄧㄠ", "iu": "ㄧㄡ",
	"ian": "ㄧㄢ", "in": "ㄧㄣ", "iang": "ㄧㄤ", "ing": "ㄧㄥ", "iong": "ㄩㄥ",
	"u": "ㄨ", "ua": "ㄨㄚ", "uo": "ㄨㄛ", "uai": "ㄨㄞ", "ui": "ㄨㄟ",
	"uan": "ㄨㄢ", "un": "ㄨㄣ", "uang": "ㄨㄤ", "ueng": "ㄨㄥ",
	"v": "ㄩ", "ve": "ㄩㄝ", "van": "ㄩㄢ", "vn": "ㄩㄣ",
}

// shengFinals enumerates, per initial, every canonical final it legally
// combines with. "" is the zero-initial plain-vowel series; "y" and "w" are
// the zero-initial glide series (their finals are spelled with a leading
// y/w instead of i/u, see romanize).
var shengFinals = map[string][]string{
	"b": {"a", "o", "ai", "ei", "ao", "an", "en", "ang", "eng", "i", "ie", "iao", "ian", "in", "iang", "ing", "u"},
	"p": {"a", "o", "ai", "ei", "ao", "ou", "an", "en", "ang", "eng", "i", "ie", "iao", "ian", "in", "ing", "u"},
	"m": {"a", "o", "e", "ai", "ei", "ao", "ou", "an", "en", "ang", "eng", "i", "ie", "iao", "iu", "ian", "in", "ing", "u"},
	"f": {"a", "o", "ei", "ou", "an", "en", "ang", "eng", "u"},
	"d": {"a", "e", "ai", "ei", "ao", "ou", "an", "ang", "eng", "ong", "i", "ie", "iao", "iu", "ian", "ing", "u", "uo", "ui", "uan", "un"},
	"t": {"a", "e", "ai", "ao", "ou", "an", "ang", "eng", "ong", "i", "ie", "iao", "ian", "ing", "u", "uo", "ui", "uan", "un"},
	"n": {"a", "e", "ai", "ei", "ao", "ou", "an", "en", "ang", "eng", "ong", "i", "ie", "iao", "iu", "ian", "in", "iang", "ing", "u", "uo", "uan", "v", "ve"},
	"l": {"a", "e", "ai", "ei", "ao", "ou", "an", "ang", "eng", "ong", "i", "ia", "ie", "iao", "iu", "ian", "in", "iang", "ing", "u", "uo", "uan", "un", "v", "ve"},
	"g": {"a", "e", "ai", "ei", "ao", "ou", "an", "en", "ang", "eng", "ong", "u", "ua", "uo", "uai", "ui", "uan", "un", "uang"},
	"k": {"a", "e", "ai", "ei", "ao", "ou", "an", "en", "ang", "eng", "ong", "u", "ua", "uo", "uai", "ui", "uan", "un", "uang"},
	"h": {"a", "e", "ai", "ei", "ao", "ou", "an", "en", "ang", "eng", "ong", "u", "ua", "uo", "uai", "ui", "uan", "un", "uang"},
	"j": {"i", "ia", "ie", "iao", "iu", "ian", "in", "iang", "ing", "iong", "v", "ve", "van", "vn"},
	"q": {"i", "ia", "ie", "iao", "iu", "ian", "in", "iang", "ing", "iong", "v", "ve", "van", "vn"},
	"x": {"i", "ia", "ie", "iao", "iu", "ian", "in", "iang", "ing", "iong", "v", "ve", "van", "vn"},
	"zh": {"a", "e", "ai", "ei", "ao", "ou", "an", "en", "ang", "eng", "ong", "i", "u", "ua", "uo", "uai", "ui", "uan", "un", "uang"},
	"ch": {"a", "e", "ai", "ao", "ou", "an", "en", "ang", "eng", "ong", "i", "u", "ua", "uo", "uai", "ui", "uan", "un", "uang"},
	"sh": {"a", "e", "ai", "ei", "ao", "ou", "an", "en", "ang", "eng", "i", "u", "ua", "uo", "uai", "ui", "uan", "un", "uang"},
	"r":  {"e", "ao", "ou", "an", "en", "ang", "eng", "ong", "i", "u", "ua", "uo", "ui", "uan", "un"},
	"z":  {"a", "e", "ai", "ei", "ao", "ou", "an", "en", "ang", "eng", "ong", "i", "u", "uo", "ui", "uan", "un"},
	"c":  {"a", "e", "ai", "ao", "ou", "an", "en", "ang", "eng", "ong", "i", "u", "uo", "ui", "uan", "un"},
	"s":  {"a", "e", "ai", "ao", "ou", "an", "en", "ang", "eng", "ong", "i", "u", "uo", "ui", "uan", "un"},
	"y": {"i", "ia", "ie", "iao", "iu", "ian", "in", "iang", "ing", "iong", "v", "ve", "van", "vn"},
	"w": {"u", "ua", "uo", "uai", "ui", "uan", "un", "uang", "ueng"},
	"":  {"a", "o", "e", "ai", "ei", "ao", "ou", "an", "en", "ang", "eng", "er"},
}

// incompleteInitials are accepted standalone (e.g. typing just "n") when
// IncompletePinyin is enabled.
var incompleteInitials = []string{
	"b", "p", "m", "f", "d", "t", "n", "l", "g", "k", "h",
	"j", "q", "x", "zh", "ch", "sh", "r", "z", "c", "s",
}

// yGlideSpelling and wGlideSpelling give the y-/w- prefixed romanization for
// the zero-initial glide series; vGlideSpelling gives the j/q/x spelling of
// the ü-family finals (written with a bare "u" since pinyin never types the
// umlaut).
var yGlideSpelling = map[string]string{
	"i": "i", "ia": "a", "ie": "e", "iao": "ao", "iu": "ou", "ian": "an",
	"in": "in", "iang": "ang", "ing": "ing", "iong": "ong",
	"v": "u", "ve": "ue", "van": "uan", "vn": "un",
}

var wGlideSpelling = map[string]string{
	"u": "u", "ua": "a", "uo": "o", "uai": "ai", "ui": "ei",
	"uan": "an", "un": "en", "uang": "ang", "ueng": "eng",
}

var vSpelling = map[string]string{"v": "u", "ve": "ue", "van": "uan", "vn": "un"}

func romanize(sheng, yun string) string {
	switch {
	case apicalInitials[sheng] && yun == "i":
		return sheng + "i"
	case sheng == "j" || sheng == "q" || sheng == "x":
		if s, ok := vSpelling[yun]; ok {
			return sheng + s
		}
		return sheng + yun
	case sheng == "y":
		return "y" + yGlideSpelling[yun]
	case sheng == "w":
		return "w" + wGlideSpelling[yun]
	case sheng == "":
		return yun
	default:
		return sheng + yun
	}
}

func bopomofo(sheng, yun string) string {
	if apicalInitials[sheng] && yun == "i" {
		return initialGlyph[sheng]
	}
	lookupSheng := sheng
	if sheng == "y" || sheng == "w" {
		lookupSheng = ""
	}
	return initialGlyph[lookupSheng] + finalGlyph[yun]
}

// All is the full syllable inventory, built once at package init from
// shengFinals. Index maps below make lookup O(1) both ways.
var All []Syllable

// ByText indexes complete syllables by their canonical romanized spelling.
var ByText map[string]*Syllable

// ByShengYun indexes complete syllables by (sheng, yun) id pair, where sheng
// is normalized to the phonetic initial (never "y"/"w" — those are rendering
// spellings of the zero-initial series, keyed here under "").
var ByShengYun map[[2]string]*Syllable

// ByBopomofo indexes complete syllables by their tone-less Bopomofo glyph
// rendering, used by the Bopomofo parser to match an accumulated glyph
// sequence against the table.
var ByBopomofo map[string]*Syllable

func init() {
	seen := map[string]bool{}
	add := func(sheng, yun string, incomplete bool) {
		s := Syllable{Sheng: sheng, Yun: yun, Incomplete: incomplete}
		if incomplete {
			s.Text = sheng
			s.Bopomofo = initialGlyph[sheng]
		} else {
			s.Text = romanize(sheng, yun)
			s.Bopomofo = bopomofo(sheng, yun)
		}
		if seen[s.Text] {
			return
		}
		seen[s.Text] = true
		All = append(All, s)
	}

	for sheng, finals := range shengFinals {
		idSheng := sheng
		if sheng == "y" || sheng == "w" {
			idSheng = ""
		}
		for _, yun := range finals {
			add(idSheng, yun, false)
		}
	}
	for _, sheng := range incompleteInitials {
		add(sheng, "", true)
	}

	ByText = make(map[string]*Syllable, len(All))
	ByShengYun = make(map[[2]string]*Syllable, len(All))
	ByBopomofo = make(map[string]*Syllable, len(All))
	for i := range All {
		s := &All[i]
		ByText[s.Text] = s
		if !s.Incomplete {
			ByShengYun[[2]string{s.Sheng, s.Yun}] = s
			ByBopomofo[s.Bopomofo] = s
		}
	}
}

// MaxTextLen is the longest romanized spelling in the table, bounding the
// Full-Pinyin greedy matcher's search window.
var MaxTextLen = func() int {
	max := 0
	for _, s := range All {
		if len(s.Text) > max {
			max = len(s.Text)
		}
	}
	return max
}()

// Lookup resolves a raw romanized spelling (already correction-rewritten) to
// its descriptor under the given option set; incomplete entries are only
// returned when IncompletePinyin is enabled.
func Lookup(o Option, text string) *Syllable {
	s, ok := ByText[text]
	if !ok {
		return nil
	}
	if s.Incomplete && !o.Has(IncompletePinyin) {
		return nil
	}
	return s
}

// LookupShengYun resolves a (sheng, yun) id pair to its descriptor, trying
// every fuzzy expansion of both ids admissible under o. Returns nil if no
// combination forms a valid syllable.
func LookupShengYun(o Option, sheng, yun string) *Syllable {
	for _, si := range FuzzyInitialExpansions(o, sheng) {
		for _, yi := range FuzzyFinalExpansions(o, yun) {
			if s, ok := ByShengYun[[2]string{si, yi}]; ok {
				return s
			}
		}
	}
	return nil
}

// SplitShengYun best-effort splits a complete romanized syllable spelling
// back into its (sheng, yun) canonical ids, used by the phrase store's
// seeding and by tests. It is the inverse of
// romanize for table entries, not a general pinyin splitter.
func SplitShengYun(text string) (sheng, yun string, ok bool) {
	s, found := ByText[text]
	if !found || s.Incomplete {
		return "", "", false
	}
	return s.Sheng, s.Yun, true
}

// HasPrefix reports whether text is a prefix of some syllable's romanized
// spelling.
func HasPrefix(text string) bool {
	for t := range ByText {
		if strings.HasPrefix(t, text) {
			return true
		}
	}
	return false
}

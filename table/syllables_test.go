package table

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupKnownSyllables(t *testing.T) {
	for _, text := range []string{"zhi", "a", "n", "lve", "wan", "yi", "jue"} {
		t.Run(text, func(t *testing.T) {
			s := Lookup(DefaultOption, text)
			require.NotNil(t, s, "expected %q to resolve", text)
			assert.Equal(t, text, s.Text)
		})
	}
}

func TestLookupIncompleteGatedByOption(t *testing.T) {
	s := Lookup(DefaultOption, "n")
	require.NotNil(t, s)
	assert.True(t, s.Incomplete)

	s = Lookup(DefaultOption&^IncompletePinyin, "n")
	assert.Nil(t, s)
}

func TestLookupUnknownSpelling(t *testing.T) {
	assert.Nil(t, Lookup(DefaultOption, "xyzzy"))
}

func TestLookupShengYunRoundTrip(t *testing.T) {
	sheng, yun, ok := SplitShengYun("zhi")
	require.True(t, ok)
	s := LookupShengYun(DefaultOption, sheng, yun)
	require.NotNil(t, s)
	assert.Equal(t, "zhi", s.Text)
}

func TestLookupShengYunFuzzy(t *testing.T) {
	// "s"+"ei" has no direct syllable ("s" never combines with "ei"), but
	// "sh"+"ei" ("shei") does; FuzzySSh should bridge the two.
	require.Nil(t, LookupShengYun(IncompletePinyin, "s", "ei"))

	s := LookupShengYun(IncompletePinyin|FuzzySSh, "s", "ei")
	require.NotNil(t, s)
	assert.Equal(t, "shei", s.Text)
}

func TestSplitShengYunRejectsIncomplete(t *testing.T) {
	_, _, ok := SplitShengYun("n")
	assert.False(t, ok)
}

func TestHasPrefix(t *testing.T) {
	assert.True(t, HasPrefix("zh"))
	assert.True(t, HasPrefix("zhon"))
	assert.False(t, HasPrefix("zzzzz"))
}

func TestApplyCorrections(t *testing.T) {
	assert.Equal(t, "ng", ApplyCorrections(CorrectAll, "gn"))
	assert.Equal(t, "un", ApplyCorrections(CorrectAll, "uen"))
	assert.Equal(t, "gn", ApplyCorrections(0, "gn"))
}

func TestFuzzyInitialExpansions(t *testing.T) {
	out := FuzzyInitialExpansions(FuzzyCCh, "c")
	assert.ElementsMatch(t, []string{"c", "ch"}, out)

	out = FuzzyInitialExpansions(0, "c")
	assert.Equal(t, []string{"c"}, out)
}

func TestMaxTextLenCoversAllEntries(t *testing.T) {
	for _, s := range All {
		assert.LessOrEqual(t, len(s.Text), MaxTextLen)
	}
}

func TestBopomofoRenderingPopulatedForCompleteSyllables(t *testing.T) {
	s := Lookup(DefaultOption, "zhi")
	require.NotNil(t, s)
	assert.NotEmpty(t, s.Bopomofo)
}

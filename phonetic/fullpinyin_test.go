package phonetic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zyinput/zyinput/table"
)

func TestParseGreedyLongestMatch(t *testing.T) {
	raw := "nihao"
	tokens := Parse(raw, 0, len(raw), table.DefaultOption, nil)
	require.Len(t, tokens, 2)
	assert.Equal(t, "ni", tokens[0].Syllable.Text)
	assert.Equal(t, "hao", tokens[1].Syllable.Text)
	assert.Equal(t, len(raw), tokens.BytesConsumed())
}

func TestParseStopsAtUnmatchableTail(t *testing.T) {
	raw := "nixyz"
	tokens := Parse(raw, 0, len(raw), table.DefaultOption, nil)
	require.Len(t, tokens, 2)
	assert.Equal(t, "ni", tokens[0].Syllable.Text)
	assert.Equal(t, "x", tokens[1].Syllable.Text)
	assert.Equal(t, 3, tokens.BytesConsumed())
}

func TestParseRespectsEndBound(t *testing.T) {
	raw := "nihao"
	tokens := Parse(raw, 0, 2, table.DefaultOption, nil)
	require.Len(t, tokens, 1)
	assert.Equal(t, "ni", tokens[0].Syllable.Text)
}

func TestParseAppendsToExistingArray(t *testing.T) {
	base := Array{{Syllable: table.Lookup(table.DefaultOption, "ni"), Begin: 0, Len: 2}}
	tokens := Parse("nihao", 2, 5, table.DefaultOption, base)
	require.Len(t, tokens, 2)
	assert.Equal(t, "hao", tokens[1].Syllable.Text)
	assert.Equal(t, 2, tokens[1].Begin)
}

func TestIsPinyin(t *testing.T) {
	assert.True(t, IsPinyin(table.DefaultOption, "zhi"))
	assert.False(t, IsPinyin(table.DefaultOption, "xyz"))
}

func TestIsAdmissibleChar(t *testing.T) {
	assert.True(t, IsAdmissibleChar('a'))
	assert.True(t, IsAdmissibleChar('z'))
	assert.False(t, IsAdmissibleChar('A'))
	assert.False(t, IsAdmissibleChar('5'))
}

func TestTokenEnd(t *testing.T) {
	tok := Token{Begin: 3, Len: 4}
	assert.Equal(t, 7, tok.End())
}

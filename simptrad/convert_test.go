package simptrad

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToTraditionalMultiCharGreedyMatch(t *testing.T) {
	c := New()
	assert.Equal(t, "謝謝", c.ToTraditional("谢谢"))
	assert.Equal(t, "老師", c.ToTraditional("老师"))
	assert.Equal(t, "我們", c.ToTraditional("我们"))
}

func TestToTraditionalShrinksOnMissThenMatchesSingleChars(t *testing.T) {
	c := New()
	// No combined entry for "谢见"; the matcher must shrink its window and
	// convert each character individually rather than passing the whole
	// two-char run through unchanged.
	assert.Equal(t, "謝見", c.ToTraditional("谢见"))
}

func TestToTraditionalPassesThroughUnknownRunes(t *testing.T) {
	c := New()
	assert.Equal(t, "abc", c.ToTraditional("abc"))
	assert.Equal(t, "你好abc", c.ToTraditional("你好abc"))
}

func TestToTraditionalLongestPrefixPreferredOverShorterEntry(t *testing.T) {
	c := New()
	// "为什么" (3 chars) and "什么" (2 chars) both appear in the table; the
	// longer entry must win when it matches at the current position.
	assert.Equal(t, "為什麼", c.ToTraditional("为什么"))
}

func TestToSimplifiedReverseMapping(t *testing.T) {
	c := New()
	assert.Equal(t, "谢谢", c.ToSimplified("謝謝"))
	assert.Equal(t, "见", c.ToSimplified("見"))
	assert.Equal(t, "abc", c.ToSimplified("abc"))
}

func TestRoundTripThroughBothDirections(t *testing.T) {
	c := New()
	for _, simp := range []string{"你好", "学生", "电脑", "现在", "觉得"} {
		trad := c.ToTraditional(simp)
		assert.Equal(t, simp, c.ToSimplified(trad), "round trip for %q via %q", simp, trad)
	}
}

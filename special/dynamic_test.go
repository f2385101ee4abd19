package special

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCnDigitsRanges(t *testing.T) {
	assert.Equal(t, "零", cnDigits(0))
	assert.Equal(t, "九", cnDigits(9))
	assert.Equal(t, "十", cnDigits(10))
	assert.Equal(t, "十四", cnDigits(14))
	assert.Equal(t, "二十", cnDigits(20))
	assert.Equal(t, "二十一", cnDigits(21))
	assert.Equal(t, "五十九", cnDigits(59))
}

func TestCnYearDigitByDigit(t *testing.T) {
	assert.Equal(t, "二零二六", cnYear(2026))
}

func TestHalfHourWrapsTwelveHour(t *testing.T) {
	assert.Equal(t, 12, halfHour(0))
	assert.Equal(t, 1, halfHour(13))
	assert.Equal(t, 11, halfHour(23))
	assert.Equal(t, 12, halfHour(12))
}

func TestExpandSubstitutesDateAndTimeTokens(t *testing.T) {
	now := time.Date(2026, time.July, 31, 14, 5, 9, 0, time.UTC) // Friday
	out := Expand("%year-%month-%day %hour:%minute:%second (%weekday)", now, nil)
	assert.Equal(t, "二零二六-七-三十一 十四:五:九 (五)", out)
}

func TestExpandNamedVariable(t *testing.T) {
	out := Expand("hello %{user}!", time.Now(), map[string]string{"user": "小明"})
	assert.Equal(t, "hello 小明!", out)
}

func TestExpandUnknownNamedVariableBecomesEmpty(t *testing.T) {
	out := Expand("x%{missing}y", time.Now(), nil)
	assert.Equal(t, "xy", out)
}

func TestExpandYearYYUsesTwoDigitForm(t *testing.T) {
	now := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)
	out := Expand("%year_yy", now, nil)
	assert.Equal(t, "二六", out)
}

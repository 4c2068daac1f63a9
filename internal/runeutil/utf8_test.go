package runeutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInsertAndErase(t *testing.T) {
	s := "héllo wörld"
	s2 := Insert(s, 5, "!!")
	assert.Equal(t, "héllo!! wörld", s2)

	s3 := Erase(s2, 5, 2)
	assert.Equal(t, s, s3)
}

func TestInsertClampsOutOfRange(t *testing.T) {
	assert.Equal(t, "abcX", Insert("abc", 99, "X"))
	assert.Equal(t, "Xabc", Insert("abc", -5, "X"))
}

func TestEraseClampsOutOfRange(t *testing.T) {
	assert.Equal(t, "ab", Erase("abcdef", 2, 99))
	assert.Equal(t, "abcdef", Erase("abcdef", -3, 0))
}

func TestSubstringClamps(t *testing.T) {
	assert.Equal(t, "cde", Substring("abcdef", 2, 3))
	assert.Equal(t, "", Substring("abcdef", 99, 2))
	assert.Equal(t, "def", Substring("abcdef", 3, -1))
}

func TestDecodeEncodeRoundTrip(t *testing.T) {
	for _, s := range []string{"", "hello", "日本語", "café"} {
		assert.Equal(t, s, Encode(Decode(s)))
		assert.Equal(t, Length(s), len(Decode(s)))
	}
}

func TestDisplayWidthWideRunes(t *testing.T) {
	assert.Equal(t, 2, DisplayWidth("日"))
	assert.Equal(t, 1, DisplayWidth("a"))
}

func TestCharLength(t *testing.T) {
	assert.Equal(t, 1, CharLength('a'))
	assert.Equal(t, 3, CharLength(0xE6)) // lead byte of "日"
}

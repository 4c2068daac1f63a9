// Package runeutil provides rune-indexed string operations for widgets
// that must never treat a multi-byte UTF-8 string as a byte array: cursor
// position, substring, and insert/erase all operate on rune offsets.
// Grounded on the teacher's bubbles/runeutil/runeutil.go (the sanitizer
// pattern) and the mattn/go-runewidth use throughout bubbles/textinput.
package runeutil

import (
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
)

// CharLength returns the UTF-8 byte length implied by a string's first
// byte: 1, 2, 3, or 4 from its high-bit pattern.
func CharLength(first byte) int {
	switch {
	case first&0x80 == 0x00:
		return 1
	case first&0xE0 == 0xC0:
		return 2
	case first&0xF0 == 0xE0:
		return 3
	case first&0xF8 == 0xF0:
		return 4
	default:
		return 1
	}
}

// Length counts the runes in s.
func Length(s string) int { return utf8.RuneCountInString(s) }

// Decode yields s's code points in order.
func Decode(s string) []rune { return []rune(s) }

// Encode joins code points back into a string.
func Encode(runes []rune) string { return string(runes) }

// Substring returns the n runes of s starting at rune position start. Out
// of range positions/counts are clamped rather than treated as an error
// (spec §7: OutOfBounds is silently clamped).
func Substring(s string, start, n int) string {
	runes := []rune(s)
	if start < 0 {
		start = 0
	}
	if start > len(runes) {
		start = len(runes)
	}
	end := start + n
	if end > len(runes) || n < 0 {
		end = len(runes)
	}
	return string(runes[start:end])
}

// Insert splices t into s at rune position pos.
func Insert(s string, pos int, t string) string {
	runes := []rune(s)
	if pos < 0 {
		pos = 0
	}
	if pos > len(runes) {
		pos = len(runes)
	}
	out := make([]rune, 0, len(runes)+utf8.RuneCountInString(t))
	out = append(out, runes[:pos]...)
	out = append(out, []rune(t)...)
	out = append(out, runes[pos:]...)
	return string(out)
}

// Erase removes n runes of s starting at rune position pos.
func Erase(s string, pos, n int) string {
	runes := []rune(s)
	if pos < 0 {
		pos = 0
	}
	if pos > len(runes) {
		pos = len(runes)
	}
	end := pos + n
	if end > len(runes) || n < 0 {
		end = len(runes)
	}
	out := make([]rune, 0, len(runes)-(end-pos))
	out = append(out, runes[:pos]...)
	out = append(out, runes[end:]...)
	return string(out)
}

// DisplayWidth returns the monospaced cell width of s: the authoritative
// measure for cursor placement (1 for ASCII/ordinary runes, 2 for
// East-Asian Wide/Fullwidth and common emoji, 0 for combining marks and
// zero-width joiners). Delegates to mattn/go-runewidth, which implements
// exactly this East-Asian-width table.
func DisplayWidth(s string) int { return runewidth.StringWidth(s) }

// RuneWidth returns the display width of a single rune.
func RuneWidth(r rune) int { return runewidth.RuneWidth(r) }

// Truncate shortens s so its display width does not exceed width, optionally
// appending tail (e.g. an ellipsis) within that budget.
func Truncate(s string, width int, tail string) string {
	return runewidth.Truncate(s, width, tail)
}

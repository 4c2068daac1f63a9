package term

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnterAltScreen_EmitsEnterSequenceAndHidesCursor(t *testing.T) {
	var buf bytes.Buffer
	s := NewScreen(&buf)
	a := EnterAltScreen(s, true)
	assert.True(t, a.Active())
	assert.Contains(t, buf.String(), "\x1b[?1049h")
	assert.Contains(t, buf.String(), "\x1b[?25l")
}

func TestLeave_RestoresPrimaryScreenAndCursor(t *testing.T) {
	var buf bytes.Buffer
	s := NewScreen(&buf)
	a := EnterAltScreen(s, true)
	buf.Reset()
	a.Leave()
	assert.False(t, a.Active())
	assert.Contains(t, buf.String(), "\x1b[?25h")
	assert.Contains(t, buf.String(), "\x1b[?1049l")
}

func TestLeave_IdempotentAndNilSafe(t *testing.T) {
	var a *AltScreen
	assert.False(t, a.Active())
	assert.NotPanics(t, func() { a.Leave() })

	var buf bytes.Buffer
	s := NewScreen(&buf)
	real := EnterAltScreen(s, false)
	real.Leave()
	buf.Reset()
	real.Leave() // second Leave should be a no-op
	assert.Empty(t, buf.String())
}

func TestEnterAltScreen_NoHideCursorWhenNotRequested(t *testing.T) {
	var buf bytes.Buffer
	s := NewScreen(&buf)
	EnterAltScreen(s, false)
	assert.NotContains(t, buf.String(), "\x1b[?25l")
}
